package gateway_http

import (
	"context"
	"fmt"

	httpclient "github.com/plutoride/vendor-app/internal/pkg/http"
	"github.com/plutoride/vendor-app/internal/pkg/models"
)

// BookingClient is an HTTP client for the remote cab-booking endpoints
type BookingClient struct {
	client *httpclient.BearerClient
}

// NewBookingClient creates a new booking HTTP client
func NewBookingClient(client *httpclient.BearerClient) *BookingClient {
	return &BookingClient{client: client}
}

// FetchBookings issues an authenticated GET for the full booking collection
func (g *BookingClient) FetchBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := g.client.GetJSON(ctx, "/api/cabbooking/get", token, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateBooking issues a status-transition PUT for a single booking. The
// bearer token is always sent when present.
func (g *BookingClient) UpdateBooking(ctx context.Context, token, bookingID string, update models.BookingUpdateRequest) error {
	endpoint := fmt.Sprintf("/api/cabbooking/update/%s", bookingID)
	return g.client.PutJSON(ctx, endpoint, token, update, nil)
}
