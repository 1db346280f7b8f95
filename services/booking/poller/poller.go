package poller

import (
	"context"
	"time"

	"github.com/plutoride/vendor-app/internal/pkg/logger"
	"github.com/plutoride/vendor-app/internal/pkg/models"
	"github.com/plutoride/vendor-app/internal/pkg/retry"
)

// Fetcher is the slice of the booking usecase the poller needs
type Fetcher interface {
	FetchNew(ctx context.Context, token string) ([]models.Booking, error)
}

// TokenSource exposes the current bearer token of the active session
type TokenSource interface {
	Token() string
}

// Poller periodically re-fetches the new-bookings view. A failed poll is
// logged and swallowed: background refresh never interrupts the user.
type Poller struct {
	fetcher  Fetcher
	tokens   TokenSource
	interval time.Duration
	sink     func([]models.Booking)
	retrier  *retry.Retrier
}

// New creates a poller. sink receives each successful refresh result and may
// be nil.
func New(fetcher Fetcher, tokens TokenSource, interval time.Duration, sink func([]models.Booking)) *Poller {
	return &Poller{
		fetcher:  fetcher,
		tokens:   tokens,
		interval: interval,
		sink:     sink,
		retrier:  retry.New(retry.DefaultConfig()),
	}
}

// Start runs the refresh loop until ctx is cancelled. It returns immediately;
// cancellation is the only way to stop the loop.
func (p *Poller) Start(ctx context.Context) {
	go p.run(ctx)
}

func (p *Poller) run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Booking refresh poller stopped")
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

func (p *Poller) refresh(ctx context.Context) {
	token := p.tokens.Token()
	if token == "" {
		// Logged out; nothing to refresh
		return
	}

	var bookings []models.Booking
	err := p.retrier.Do(ctx, func(ctx context.Context) error {
		var fetchErr error
		bookings, fetchErr = p.fetcher.FetchNew(ctx, token)
		return fetchErr
	})
	if err != nil {
		logger.Warn("Background booking refresh failed", logger.Err(err))
		return
	}

	logger.Debug("Background booking refresh completed", logger.Int("bookings", len(bookings)))
	if p.sink != nil {
		p.sink(bookings)
	}
}
