// Command tokengen mints a staff access token for the reservation API.
//
//	tokengen -sub frontdesk -ttl 120
//
// The signing secret comes from JWT_SECRET (or .env), the same variable the
// server reads.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

func main() {
	cfg := config.Load()

	sub := flag.String("sub", "staff", "token subject")
	role := flag.String("role", utils.RoleStaff, "role claim")
	ttl := flag.Int("ttl", cfg.AccessTTLMin, "lifetime in minutes")
	flag.Parse()

	tok, err := utils.NewAccessToken(cfg.JWTSecret, *sub, *role, *ttl)
	if err != nil {
		log.Fatalf("tokengen: %v", err)
	}
	fmt.Fprintln(os.Stdout, tok.Token)
	fmt.Fprintf(os.Stderr, "expires %s\n", tok.Exp.Format("2006-01-02 15:04:05 MST"))
}
