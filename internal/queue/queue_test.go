package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

func TestNewReservationEvent(t *testing.T) {
	res := model.Reservation{
		ID:        7,
		HotelName: model.HotelName,
		Clients:   []model.Client{{Name: "Juan"}, {Name: "Pedro"}},
		Duration:  3,
		Price:     150,
		Breakfast: true,
	}
	ev := NewReservationEvent(EventReservationCreated, res)
	if ev.EventID == "" || ev.OccurredAt == "" {
		t.Fatalf("expected generated id and timestamp: %+v", ev)
	}
	if ev.ReservationID != 7 || ev.Type != EventReservationCreated || strings.Join(ev.Clients, ",") != "Juan,Pedro" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if other := NewReservationEvent(EventReservationCreated, res); other.EventID == ev.EventID {
		t.Fatal("expected unique event ids")
	}
}

func TestHandleMessageAppendsLine(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "reservations.log")
	ev := ReservationEvent{
		EventID:       "e-1",
		Type:          EventReservationCancelled,
		ReservationID: 3,
		HotelName:     model.HotelName,
		Clients:       []string{"Diego"},
		Duration:      2,
		Price:         40,
		OccurredAt:    "2026-01-02T03:04:05Z",
	}
	body, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := HandleMessage(body, logPath); err != nil {
			t.Fatalf("handle message: %v", err)
		}
	}

	raw, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), raw)
	}
	want := `[2026-01-02T03:04:05Z] reservation.cancelled | reservation_id=3 | hotel="Hotel 1" | clients=[Diego] | nights=2 | breakfast=false | total=40.00 | event_id=e-1`
	if lines[0] != want {
		t.Fatalf("unexpected line:\n got %s\nwant %s", lines[0], want)
	}
}

func TestHandleMessageRejectsInvalidPayload(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "reservations.log")
	if err := HandleMessage([]byte("not json"), logPath); err == nil {
		t.Fatal("expected error for malformed body")
	}
	if err := HandleMessage([]byte(`{"type":""}`), logPath); err == nil {
		t.Fatal("expected error for incomplete event")
	}
	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Fatalf("expected no log file to be written, stat err=%v", err)
	}
}
