package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/plutoride/vendor-app/internal/pkg/apperr"
	"github.com/plutoride/vendor-app/internal/pkg/logger"
)

// Config holds retry behaviour. Retryable decides per error; the default
// retries transient remote failures only. Validation and authentication
// errors are never worth repeating.
type Config struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Multiplier float64
	Jitter     bool
	Retryable  func(error) bool
}

// DefaultConfig returns the retry configuration used for remote API calls
func DefaultConfig() Config {
	return Config{
		MaxRetries: 2,
		BaseDelay:  200 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
		Retryable:  transient,
	}
}

// transient reports whether an error is worth retrying: transport failures
// and 5xx responses. 4xx responses mean the request itself is wrong.
func transient(err error) bool {
	var re *apperr.RemoteServiceError
	if !errors.As(err, &re) {
		return false
	}
	return re.StatusCode == 0 || re.StatusCode >= 500
}

// Retrier runs a function with exponential backoff
type Retrier struct {
	config Config
}

// New creates a retrier with the given configuration
func New(config Config) *Retrier {
	if config.Retryable == nil {
		config.Retryable = transient
	}
	return &Retrier{config: config}
}

// Do runs fn until it succeeds, the error is not retryable, the attempts are
// exhausted or ctx is cancelled.
func (r *Retrier) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				logger.Info("Call succeeded after retry", logger.Int("attempt", attempt+1))
			}
			return nil
		}
		lastErr = err

		if !r.config.Retryable(err) {
			return err
		}
		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.delay(attempt)
		logger.Debug("Call failed, retrying",
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("retry limit exceeded after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

func (r *Retrier) delay(attempt int) time.Duration {
	delay := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if delay > float64(r.config.MaxDelay) {
		delay = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		delay = delay/2 + rand.Float64()*delay/2
	}
	return time.Duration(delay)
}
