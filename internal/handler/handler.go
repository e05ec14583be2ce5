package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/fatimaaziz27/busbooker/internal/domain"
	"github.com/fatimaaziz27/busbooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type BusSvc interface {
	List(ctx context.Context) ([]*domain.Bus, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	Cancel(ctx context.Context, name string) (*domain.Booking, error)
}

type Handler struct {
	busService     BusSvc
	bookingService BookingSvc
}

func NewHandler(busService BusSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		busService:     busService,
		bookingService: bookingService,
	}
}

// Buses

func (h *Handler) ListBuses(c *ginext.Context) {
	buses, err := h.busService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BusResponse, 0, len(buses))
	for _, b := range buses {
		resp = append(resp, dto.ToBusResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateBookingInput{
		Name:  req.Name,
		BusID: req.BusID,
		Seats: req.Seats,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancelBookingResponse{
		Message: "booking cancelled successfully",
		Booking: dto.ToBookingResponse(booking),
	})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBusNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotEnoughSeats):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
