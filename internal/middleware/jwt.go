package middleware // package middleware contains reusable HTTP middleware for the reservation API

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var (
	errMissingBearer = errors.New("missing bearer token")
	errInvalidToken  = errors.New("invalid token")
	errInvalidClaims = errors.New("invalid claims")
)

// bearerClaims verifies the HS256 bearer token in the Authorization header.
func bearerClaims(c echo.Context, secret string) (jwt.MapClaims, error) {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return nil, errMissingBearer
	}
	tok, err := jwt.Parse(strings.TrimPrefix(auth, "Bearer "), func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, echo.ErrUnauthorized
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, errInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidClaims
	}
	return claims, nil
}

func storeClaims(c echo.Context, claims jwt.MapClaims) {
	c.Set("user_id", claims["sub"])
	c.Set("role", claims["role"])
}

// JWTAuth returns an Echo middleware that validates a Bearer access token and
// stores the token's subject and role claims in the request context under
// "user_id" and "role".  The secret must match the one used by
// utils.NewAccessToken.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := bearerClaims(c, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
			}
			storeClaims(c, claims)
			return next(c)
		}
	}
}

// Identify stores the subject and role of a valid bearer token like JWTAuth
// but never rejects the request.  It runs ahead of the rate limiter so
// per-user buckets see who is calling; JWTAuth still guards the routes that
// require a token.
func Identify(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims, err := bearerClaims(c, secret); err == nil {
				storeClaims(c, claims)
			}
			return next(c)
		}
	}
}
