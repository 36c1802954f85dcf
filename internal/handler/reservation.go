package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/jinzhu/copier"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/register"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

var validate = validator.New()

// ReservationHandler exposes the reservation register over HTTP.  Events
// are published after each successful write; publish failures are logged
// and do not change the response.
type ReservationHandler struct {
	Register *register.Register
	Events   service.EventPublisher
	Log      *zap.Logger
}

// NewReservationHandler panics if reg is nil.  A nil publisher disables
// events and a nil logger disables logging.
func NewReservationHandler(reg *register.Register, events service.EventPublisher, log *zap.Logger) *ReservationHandler {
	if reg == nil {
		panic("nil register passed to NewReservationHandler")
	}
	if events == nil {
		events = service.NopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ReservationHandler{Register: reg, Events: events, Log: log}
}

// ----- DTOs -----

type clientReq struct {
	Name   string  `json:"name" validate:"required"`
	Age    int     `json:"age"`
	Height float64 `json:"height"`
}

type createReservationReq struct {
	Clients   []clientReq `json:"clients" validate:"required,min=1,dive"`
	Duration  int         `json:"duration"`
	Breakfast bool        `json:"breakfast"`
}

// ListReservations handles GET /v1/reservations.  Reservations are returned
// in booking order together with their count.
func (h *ReservationHandler) ListReservations(c echo.Context) error {
	items := h.Register.All()
	return c.JSON(http.StatusOK, echo.Map{
		"items": items,
		"count": len(items),
	})
}

// GetReservation handles GET /v1/reservations/:id.
func (h *ReservationHandler) GetReservation(c echo.Context) error {
	id, err := parseReservationID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	res, err := h.Register.Get(id)
	if err != nil {
		return writeRegisterError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// CreateReservation handles POST /v1/reservations.  The body must contain
// at least one client with a name.  It returns 201 with the stored
// reservation, or 409 when a client is already booked.
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "clients with a name are required"})
	}

	var clients []model.Client
	if err := copier.Copy(&clients, &req.Clients); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to read clients"})
	}

	res, err := h.Register.Add(clients, req.Duration, req.Breakfast)
	if err != nil {
		return writeRegisterError(c, err)
	}
	if err := h.Events.ReservationCreated(c.Request().Context(), res); err != nil {
		h.Log.Warn("publish reservation created", zap.Uint64("reservation_id", res.ID), zap.Error(err))
	}
	return c.JSON(http.StatusCreated, res)
}

// CancelReservation handles DELETE /v1/reservations/:id.  It returns 204
// on success and 404 when no active reservation has that id.
func (h *ReservationHandler) CancelReservation(c echo.Context) error {
	id, err := parseReservationID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	res, err := h.Register.Cancel(id)
	if err != nil {
		return writeRegisterError(c, err)
	}
	if err := h.Events.ReservationCancelled(c.Request().Context(), res); err != nil {
		h.Log.Warn("publish reservation cancelled", zap.Uint64("reservation_id", res.ID), zap.Error(err))
	}
	return c.NoContent(http.StatusNoContent)
}

func parseReservationID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, errors.New("reservation id must be positive")
	}
	return id, nil
}

func writeRegisterError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, register.ErrReservationNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
	case errors.Is(err, register.ErrClientHasReservation):
		return c.JSON(http.StatusConflict, echo.Map{"error": "client already has a reservation"})
	case errors.Is(err, register.ErrDuplicateID):
		return c.JSON(http.StatusConflict, echo.Map{"error": "duplicate reservation id"})
	case errors.Is(err, register.ErrNoClients):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "clients with a name are required"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
