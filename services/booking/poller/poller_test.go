package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plutoride/vendor-app/internal/pkg/models"
)

type fakeFetcher struct {
	mu       sync.Mutex
	calls    int
	bookings []models.Booking
	err      error
}

func (f *fakeFetcher) FetchNew(ctx context.Context, token string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.bookings, f.err
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestPoller_DeliversRefreshes(t *testing.T) {
	fetcher := &fakeFetcher{bookings: []models.Booking{{ID: "booking-1"}}}

	results := make(chan []models.Booking, 1)
	p := New(fetcher, staticToken("abc"), 10*time.Millisecond, func(bookings []models.Booking) {
		select {
		case results <- bookings:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	select {
	case bookings := <-results:
		assert.Len(t, bookings, 1)
		assert.Equal(t, "booking-1", bookings[0].ID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a poll result")
	}
}

func TestPoller_SkipsWhenLoggedOut(t *testing.T) {
	fetcher := &fakeFetcher{}

	p := New(fetcher, staticToken(""), 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	time.Sleep(100 * time.Millisecond)
	cancel()

	assert.Zero(t, fetcher.callCount())
}

func TestPoller_SurvivesFetchErrors(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("connection refused")}

	p := New(fetcher, staticToken("abc"), 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	assert.Eventually(t, func() bool {
		return fetcher.callCount() >= 3
	}, 2*time.Second, 10*time.Millisecond)
}

func TestPoller_StopsOnCancel(t *testing.T) {
	fetcher := &fakeFetcher{}

	p := New(fetcher, staticToken("abc"), 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)

	settled := fetcher.callCount()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, settled, fetcher.callCount())
}
