package booking

import (
	"context"

	"github.com/plutoride/vendor-app/internal/pkg/models"
)

// BookingGW defines the remote booking-endpoint operations
type BookingGW interface {
	FetchBookings(ctx context.Context, token string) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, token, bookingID string, update models.BookingUpdateRequest) error
}

// DecisionPublisher publishes accept/reject decision events for downstream
// consumers. Publishing is best-effort: the decision already succeeded
// remotely when an event goes out.
type DecisionPublisher interface {
	PublishDecision(ctx context.Context, event models.BookingDecisionEvent) error
}
