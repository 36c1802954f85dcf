package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/register"
)

type recordingPublisher struct {
	created   []uint64
	cancelled []uint64
	err       error
}

func (p *recordingPublisher) ReservationCreated(_ context.Context, res model.Reservation) error {
	p.created = append(p.created, res.ID)
	return p.err
}

func (p *recordingPublisher) ReservationCancelled(_ context.Context, res model.Reservation) error {
	p.cancelled = append(p.cancelled, res.ID)
	return p.err
}

type listResponse struct {
	Items []model.Reservation `json:"items"`
	Count int                 `json:"count"`
}

func newTestServer(events *recordingPublisher) (*echo.Echo, *register.Register) {
	reg := register.New(nil)
	h := NewReservationHandler(reg, events, nil)
	e := echo.New()
	e.GET("/healthz", Health)
	e.GET("/v1/reservations", h.ListReservations)
	e.GET("/v1/reservations/:id", h.GetReservation)
	e.POST("/v1/reservations", h.CreateReservation)
	e.DELETE("/v1/reservations/:id", h.CancelReservation)
	return e, reg
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	e, _ := newTestServer(&recordingPublisher{})
	rec := do(e, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected health response %d %q", rec.Code, rec.Body.String())
	}
}

func TestCreateReservation(t *testing.T) {
	events := &recordingPublisher{}
	e, reg := newTestServer(events)

	rec := do(e, http.MethodPost, "/v1/reservations",
		`{"clients":[{"name":"Juan","age":35,"height":1.9},{"name":"Pedro","age":40,"height":1.8}],"duration":3,"breakfast":true}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var res model.Reservation
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.ID != 1 || res.HotelName != model.HotelName || res.Price != 150 || len(res.Clients) != 2 {
		t.Fatalf("unexpected reservation: %+v", res)
	}
	if res.Clients[0] != (model.Client{Name: "Juan", Age: 35, Height: 1.9}) {
		t.Fatalf("client not mapped: %+v", res.Clients[0])
	}
	if reg.Len() != 1 {
		t.Fatalf("expected register to hold 1 reservation, got %d", reg.Len())
	}
	if len(events.created) != 1 || events.created[0] != 1 {
		t.Fatalf("expected created event for id 1, got %v", events.created)
	}
}

func TestCreateReservationRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"clients":`},
		{name: "no clients", body: `{"clients":[],"duration":1}`},
		{name: "missing clients", body: `{"duration":1}`},
		{name: "client without name", body: `{"clients":[{"age":3}],"duration":1}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			events := &recordingPublisher{}
			e, reg := newTestServer(events)
			rec := do(e, http.MethodPost, "/v1/reservations", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			if reg.Len() != 0 || len(events.created) != 0 {
				t.Fatal("rejected request changed state")
			}
		})
	}
}

func TestCreateReservationConflict(t *testing.T) {
	events := &recordingPublisher{}
	e, reg := newTestServer(events)

	if rec := do(e, http.MethodPost, "/v1/reservations", `{"clients":[{"name":"Juan"},{"name":"Pedro"}],"duration":3}`); rec.Code != http.StatusCreated {
		t.Fatalf("first create: %d %s", rec.Code, rec.Body.String())
	}
	rec := do(e, http.MethodPost, "/v1/reservations", `{"clients":[{"name":"Pedro"}],"duration":3}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	if reg.Len() != 1 || len(events.created) != 1 {
		t.Fatalf("conflict changed state: len=%d events=%v", reg.Len(), events.created)
	}
}

func TestPublishFailureDoesNotFailRequest(t *testing.T) {
	events := &recordingPublisher{err: errors.New("broker down")}
	e, _ := newTestServer(events)

	if rec := do(e, http.MethodPost, "/v1/reservations", `{"clients":[{"name":"Juan"}],"duration":1}`); rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 despite publish failure, got %d", rec.Code)
	}
	if rec := do(e, http.MethodDelete, "/v1/reservations/1", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 despite publish failure, got %d", rec.Code)
	}
}

func TestListGetAndCancel(t *testing.T) {
	events := &recordingPublisher{}
	e, _ := newTestServer(events)

	for _, name := range []string{"Juan", "Pedro", "Diego"} {
		if rec := do(e, http.MethodPost, "/v1/reservations", `{"clients":[{"name":"`+name+`"}],"duration":2}`); rec.Code != http.StatusCreated {
			t.Fatalf("create %s: %d", name, rec.Code)
		}
	}

	rec := do(e, http.MethodGet, "/v1/reservations/2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}

	if rec := do(e, http.MethodDelete, "/v1/reservations/2", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("cancel: expected 204, got %d", rec.Code)
	}
	if len(events.cancelled) != 1 || events.cancelled[0] != 2 {
		t.Fatalf("expected cancelled event for id 2, got %v", events.cancelled)
	}

	rec = do(e, http.MethodGet, "/v1/reservations", "")
	var list listResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Count != 2 || len(list.Items) != 2 || list.Items[0].ID != 1 || list.Items[1].ID != 3 {
		t.Fatalf("unexpected list after cancel: %+v", list)
	}

	if rec := do(e, http.MethodGet, "/v1/reservations/2", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("get cancelled: expected 404, got %d", rec.Code)
	}
}

func TestCancelUnknownOrInvalidID(t *testing.T) {
	events := &recordingPublisher{}
	e, _ := newTestServer(events)

	if rec := do(e, http.MethodDelete, "/v1/reservations/9999", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	for _, id := range []string{"0", "abc", "-1"} {
		if rec := do(e, http.MethodDelete, "/v1/reservations/"+id, ""); rec.Code != http.StatusBadRequest {
			t.Fatalf("id %q: expected 400, got %d", id, rec.Code)
		}
	}
	if len(events.cancelled) != 0 {
		t.Fatalf("unexpected cancelled events %v", events.cancelled)
	}
}

func TestListEmpty(t *testing.T) {
	e, _ := newTestServer(&recordingPublisher{})
	rec := do(e, http.MethodGet, "/v1/reservations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"items":[]`) || !strings.Contains(rec.Body.String(), `"count":0`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
