package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plutoride/vendor-app/internal/pkg/logger"
	"github.com/plutoride/vendor-app/internal/pkg/models"
	"github.com/plutoride/vendor-app/internal/utils"
	"github.com/plutoride/vendor-app/services/booking"
	"github.com/plutoride/vendor-app/services/session"
)

// BookingHandler handles HTTP requests for the booking views and the
// accept/reject transitions
type BookingHandler struct {
	bookingUC booking.BookingUC
	sessionUC session.SessionUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC booking.BookingUC, sessionUC session.SessionUC) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
		sessionUC: sessionUC,
	}
}

// RegisterRoutes registers the booking API routes behind the session guard
func (h *BookingHandler) RegisterRoutes(protected *echo.Group) {
	protected.GET("/bookings", h.ListBookings)
	protected.POST("/bookings/:id/accept", h.AcceptBooking)
	protected.POST("/bookings/:id/reject", h.RejectBooking)
}

// ListBookings serves the tab views. The tab query parameter selects the
// filter: new (default), pending, completed or all.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	ctx := c.Request().Context()
	token := h.sessionUC.Token()

	tab := c.QueryParam("tab")
	if tab == "" {
		tab = "new"
	}

	var (
		bookings []models.Booking
		err      error
	)
	switch tab {
	case "new":
		bookings, err = h.bookingUC.FetchNew(ctx, token)
	case "pending":
		bookings, err = h.bookingUC.FetchPending(ctx, token)
	case "completed":
		bookings, err = h.bookingUC.FetchCompleted(ctx, token)
	case "all":
		bookings, err = h.bookingUC.FetchAll(ctx, token)
	default:
		return utils.BadRequestResponse(c, "unknown tab: "+tab)
	}

	if err != nil {
		logger.Warn("Failed to fetch bookings", logger.String("tab", tab), logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", bookings)
}

// AcceptBooking handles the accept transition
func (h *BookingHandler) AcceptBooking(c echo.Context) error {
	bookingID := c.Param("id")
	if bookingID == "" {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	err := h.bookingUC.Accept(c.Request().Context(), h.sessionUC.Token(), bookingID)
	if err != nil {
		logger.Warn("Failed to accept booking", logger.String("booking_id", bookingID), logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking accepted", nil)
}

// RejectBooking handles the reject transition with its reason and optional
// counter bid
func (h *BookingHandler) RejectBooking(c echo.Context) error {
	bookingID := c.Param("id")
	if bookingID == "" {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var submission models.RejectionSubmission
	if err := c.Bind(&submission); err != nil {
		logger.Warn("Invalid request payload for booking rejection", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	err := h.bookingUC.Reject(c.Request().Context(), h.sessionUC.Token(), bookingID, submission)
	if err != nil {
		logger.Warn("Failed to reject booking", logger.String("booking_id", bookingID), logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking rejected", nil)
}
