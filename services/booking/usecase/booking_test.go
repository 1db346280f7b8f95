package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plutoride/vendor-app/internal/pkg/apperr"
	"github.com/plutoride/vendor-app/internal/pkg/models"
)

type fakeBookingGW struct {
	bookings []models.Booking
	fetchErr error

	updateErr   error
	updateCalls int
	lastID      string
	lastUpdate  models.BookingUpdateRequest
}

func (f *fakeBookingGW) FetchBookings(ctx context.Context, token string) ([]models.Booking, error) {
	return f.bookings, f.fetchErr
}

func (f *fakeBookingGW) UpdateBooking(ctx context.Context, token, bookingID string, update models.BookingUpdateRequest) error {
	f.updateCalls++
	f.lastID = bookingID
	f.lastUpdate = update
	return f.updateErr
}

type fakePublisher struct {
	events     []models.BookingDecisionEvent
	publishErr error
}

func (f *fakePublisher) PublishDecision(ctx context.Context, event models.BookingDecisionEvent) error {
	f.events = append(f.events, event)
	return f.publishErr
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestFetchNew(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	gw := &fakeBookingGW{bookings: []models.Booking{
		{ID: "fresh", BookingStatus: models.BookingStatusUnresponded, CreatedAt: now.Add(-time.Hour)},
		{ID: "boundary", BookingStatus: models.BookingStatusRejected, CreatedAt: now.Add(-24 * time.Hour)},
		{ID: "stale", BookingStatus: models.BookingStatusUnresponded, CreatedAt: now.Add(-24*time.Hour - time.Second)},
		{ID: "completed-recent", BookingStatus: models.BookingStatusCompleted, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "no-created-at", BookingStatus: models.BookingStatusUnresponded},
	}}

	uc := NewBookingUC(gw, nil)
	uc.now = fixedClock(now)

	bookings, err := uc.FetchNew(context.Background(), "abc")
	require.NoError(t, err)

	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}
	// Window is inclusive at exactly 24h and ignores status; entries without
	// a creation time are excluded.
	assert.Equal(t, []string{"fresh", "boundary", "completed-recent"}, ids)
}

func TestFetchPending(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	gw := &fakeBookingGW{bookings: []models.Booking{
		{ID: "unresponded", BookingStatus: models.BookingStatusUnresponded, CreatedAt: now.Add(-time.Hour)},
		{ID: "pending", BookingStatus: models.BookingStatusPending, CreatedAt: now.Add(-23 * time.Hour)},
		{ID: "accepted", BookingStatus: models.BookingStatusAccepted, CreatedAt: now.Add(-time.Hour)},
		{ID: "pending-stale", BookingStatus: models.BookingStatusPending, CreatedAt: now.Add(-25 * time.Hour)},
	}}

	uc := NewBookingUC(gw, nil)
	uc.now = fixedClock(now)

	bookings, err := uc.FetchPending(context.Background(), "abc")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "unresponded", bookings[0].ID)
	assert.Equal(t, "pending", bookings[1].ID)
}

func TestFetchCompleted(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	gw := &fakeBookingGW{bookings: []models.Booking{
		{ID: "old-completed", BookingStatus: models.BookingStatusCompleted, CreatedAt: now.AddDate(0, -3, 0)},
		{ID: "rejected", BookingStatus: models.BookingStatusRejected, CreatedAt: now.Add(-time.Hour)},
		{ID: "recent-completed", BookingStatus: models.BookingStatusCompleted, CreatedAt: now.Add(-time.Hour)},
	}}

	uc := NewBookingUC(gw, nil)
	uc.now = fixedClock(now)

	bookings, err := uc.FetchCompleted(context.Background(), "abc")
	require.NoError(t, err)
	// No recency filter on the completed view.
	require.Len(t, bookings, 2)
	assert.Equal(t, "old-completed", bookings[0].ID)
	assert.Equal(t, "recent-completed", bookings[1].ID)
}

func TestFetchAll_GatewayError(t *testing.T) {
	gw := &fakeBookingGW{fetchErr: errors.New("connection refused")}
	uc := NewBookingUC(gw, nil)

	_, err := uc.FetchAll(context.Background(), "abc")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch bookings")
}

func TestAccept(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)
	gw := &fakeBookingGW{}
	pub := &fakePublisher{}

	uc := NewBookingUC(gw, pub)
	uc.now = fixedClock(now)

	err := uc.Accept(context.Background(), "abc", "booking-1")
	require.NoError(t, err)

	assert.Equal(t, 1, gw.updateCalls)
	assert.Equal(t, "booking-1", gw.lastID)
	assert.Equal(t, models.BookingStatusAccepted, gw.lastUpdate.BookingStatus)
	assert.Equal(t, "accepted", gw.lastUpdate.ResponseDetails.Status)
	assert.Empty(t, gw.lastUpdate.ResponseDetails.Reason)
	assert.Equal(t, now, gw.lastUpdate.ResponseDetails.RespondedAt)

	require.Len(t, pub.events, 1)
	assert.Equal(t, models.BookingStatusAccepted, pub.events[0].Decision)
	assert.Equal(t, "booking-1", pub.events[0].BookingID)
	assert.NotEmpty(t, pub.events[0].EventID)
}

func TestAccept_GatewayError(t *testing.T) {
	gw := &fakeBookingGW{updateErr: errors.New("boom")}
	pub := &fakePublisher{}

	uc := NewBookingUC(gw, pub)

	err := uc.Accept(context.Background(), "abc", "booking-1")
	assert.Error(t, err)
	// Decision events only go out after a successful remote transition.
	assert.Empty(t, pub.events)
}

func TestReject(t *testing.T) {
	now := time.Date(2024, 6, 20, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		submission models.RejectionSubmission
		wantAmount float64
	}{
		{
			name:       "with counter bid",
			submission: models.RejectionSubmission{Reason: "price too low", BidAmount: "500"},
			wantAmount: 500,
		},
		{
			name:       "without counter bid",
			submission: models.RejectionSubmission{Reason: "vehicle unavailable"},
			wantAmount: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gw := &fakeBookingGW{}
			pub := &fakePublisher{}
			uc := NewBookingUC(gw, pub)
			uc.now = fixedClock(now)

			err := uc.Reject(context.Background(), "abc", "booking-1", tc.submission)
			require.NoError(t, err)

			assert.Equal(t, 1, gw.updateCalls)
			assert.Equal(t, models.BookingStatusRejected, gw.lastUpdate.BookingStatus)
			assert.Equal(t, "rejected", gw.lastUpdate.ResponseDetails.Status)
			assert.Equal(t, tc.submission.Reason, gw.lastUpdate.ResponseDetails.Reason)
			assert.Equal(t, tc.wantAmount, gw.lastUpdate.ResponseDetails.Amount)

			require.Len(t, pub.events, 1)
			assert.Equal(t, models.BookingStatusRejected, pub.events[0].Decision)
			assert.Equal(t, tc.wantAmount, pub.events[0].BidAmount)
		})
	}
}

func TestReject_InvalidSubmission(t *testing.T) {
	testCases := []struct {
		name       string
		submission models.RejectionSubmission
		wantField  string
	}{
		{
			name:       "empty reason",
			submission: models.RejectionSubmission{BidAmount: "500"},
			wantField:  "reason",
		},
		{
			name:       "malformed bid",
			submission: models.RejectionSubmission{Reason: "price too low", BidAmount: "abc"},
			wantField:  "bidAmount",
		},
		{
			name:       "negative bid",
			submission: models.RejectionSubmission{Reason: "price too low", BidAmount: "-100"},
			wantField:  "bidAmount",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gw := &fakeBookingGW{}
			pub := &fakePublisher{}
			uc := NewBookingUC(gw, pub)

			err := uc.Reject(context.Background(), "abc", "booking-1", tc.submission)

			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Fields, tc.wantField)
			// An invalid submission never reaches the wire.
			assert.Zero(t, gw.updateCalls)
			assert.Empty(t, pub.events)
		})
	}
}

func TestReject_PublishFailureIsSwallowed(t *testing.T) {
	gw := &fakeBookingGW{}
	pub := &fakePublisher{publishErr: errors.New("nsqd unreachable")}
	uc := NewBookingUC(gw, pub)

	err := uc.Reject(context.Background(), "abc", "booking-1", models.RejectionSubmission{Reason: "price too low"})
	assert.NoError(t, err)
	assert.Equal(t, 1, gw.updateCalls)
}
