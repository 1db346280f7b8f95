package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/plutoride/vendor-app/internal/pkg/apperr"
	"github.com/plutoride/vendor-app/internal/pkg/logger"
	"github.com/plutoride/vendor-app/internal/pkg/models"
	"github.com/plutoride/vendor-app/internal/utils"
	"github.com/plutoride/vendor-app/services/booking"
)

// recencyWindow is the age limit for the New and Pending tabs. A booking
// exactly at the boundary is included.
const recencyWindow = 24 * time.Hour

// BookingUC implements the booking repository. It holds no state between
// calls; the remote service is the sole source of truth.
type BookingUC struct {
	gw        booking.BookingGW
	publisher booking.DecisionPublisher
	now       func() time.Time
}

// NewBookingUC creates the booking usecase. publisher may be nil when
// decision events are not configured.
func NewBookingUC(gw booking.BookingGW, publisher booking.DecisionPublisher) *BookingUC {
	return &BookingUC{
		gw:        gw,
		publisher: publisher,
		now:       time.Now,
	}
}

// FetchAll returns the full, unfiltered booking collection
func (u *BookingUC) FetchAll(ctx context.Context, token string) ([]models.Booking, error) {
	bookings, err := u.gw.FetchBookings(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return bookings, nil
}

// FetchNew returns bookings created within the last 24 hours, inclusive,
// regardless of status. The window is evaluated at call time.
func (u *BookingUC) FetchNew(ctx context.Context, token string) ([]models.Booking, error) {
	bookings, err := u.FetchAll(ctx, token)
	if err != nil {
		return nil, err
	}

	now := u.now()
	filtered := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if u.withinWindow(now, b) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

// FetchPending returns unresponded or pending bookings created within the
// last 24 hours.
func (u *BookingUC) FetchPending(ctx context.Context, token string) ([]models.Booking, error) {
	bookings, err := u.FetchAll(ctx, token)
	if err != nil {
		return nil, err
	}

	now := u.now()
	filtered := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		awaiting := b.BookingStatus == models.BookingStatusUnresponded ||
			b.BookingStatus == models.BookingStatusPending
		if awaiting && u.withinWindow(now, b) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

// FetchCompleted returns completed bookings with no recency filter
func (u *BookingUC) FetchCompleted(ctx context.Context, token string) ([]models.Booking, error) {
	bookings, err := u.FetchAll(ctx, token)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.BookingStatus == models.BookingStatusCompleted {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

// Accept transitions a booking to accepted. No optimistic update: on failure
// the caller re-fetches and the displayed status is unchanged.
func (u *BookingUC) Accept(ctx context.Context, token, bookingID string) error {
	respondedAt := u.now()
	err := u.gw.UpdateBooking(ctx, token, bookingID, models.BookingUpdateRequest{
		BookingStatus: models.BookingStatusAccepted,
		ResponseDetails: models.ResponseDetails{
			Status:      string(models.BookingStatusAccepted),
			RespondedAt: respondedAt,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to accept booking: %w", err)
	}

	u.publishDecision(ctx, models.BookingDecisionEvent{
		EventID:   uuid.New().String(),
		BookingID: bookingID,
		Decision:  models.BookingStatusAccepted,
		DecidedAt: respondedAt,
	})

	return nil
}

// Reject transitions a booking to rejected. The submission is validated
// before any network call; an invalid submission never reaches the wire.
func (u *BookingUC) Reject(ctx context.Context, token, bookingID string, submission models.RejectionSubmission) error {
	if errs := utils.ValidateRejection(submission); len(errs) > 0 {
		return apperr.Validation(errs)
	}

	bidAmount := utils.ParseBidAmount(submission.BidAmount)
	respondedAt := u.now()

	err := u.gw.UpdateBooking(ctx, token, bookingID, models.BookingUpdateRequest{
		BookingStatus: models.BookingStatusRejected,
		ResponseDetails: models.ResponseDetails{
			Status:      string(models.BookingStatusRejected),
			Reason:      submission.Reason,
			Amount:      bidAmount,
			RespondedAt: respondedAt,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to reject booking: %w", err)
	}

	u.publishDecision(ctx, models.BookingDecisionEvent{
		EventID:   uuid.New().String(),
		BookingID: bookingID,
		Decision:  models.BookingStatusRejected,
		Reason:    submission.Reason,
		BidAmount: bidAmount,
		DecidedAt: respondedAt,
	})

	return nil
}

func (u *BookingUC) withinWindow(now time.Time, b models.Booking) bool {
	if b.CreatedAt.IsZero() {
		return false
	}
	return now.Sub(b.CreatedAt) <= recencyWindow
}

// publishDecision emits a decision event. Failures are logged only; the
// remote transition already succeeded.
func (u *BookingUC) publishDecision(ctx context.Context, event models.BookingDecisionEvent) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.PublishDecision(ctx, event); err != nil {
		logger.Warn("Failed to publish booking decision event",
			logger.String("booking_id", event.BookingID),
			logger.Err(err))
	}
}
