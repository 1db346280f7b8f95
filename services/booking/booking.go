package booking

import (
	"context"

	"github.com/plutoride/vendor-app/internal/pkg/models"
)

// BookingUC defines the interface for booking business logic operations
type BookingUC interface {
	// FetchAll returns the full, unfiltered booking collection.
	FetchAll(ctx context.Context, token string) ([]models.Booking, error)

	// FetchNew returns bookings created within the last 24 hours (inclusive),
	// regardless of status.
	FetchNew(ctx context.Context, token string) ([]models.Booking, error)

	// FetchPending returns unresponded/pending bookings created within the
	// last 24 hours.
	FetchPending(ctx context.Context, token string) ([]models.Booking, error)

	// FetchCompleted returns completed bookings with no recency filter.
	FetchCompleted(ctx context.Context, token string) ([]models.Booking, error)

	// Accept transitions a booking to accepted.
	Accept(ctx context.Context, token, bookingID string) error

	// Reject transitions a booking to rejected with a mandatory reason and
	// an optional counter-bid amount.
	Reject(ctx context.Context, token, bookingID string, submission models.RejectionSubmission) error
}
