package resilience

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// State is the circuit breaker state.
type State int

const (
	// StateClosed lets calls through and counts failures.
	StateClosed State = iota
	// StateOpen rejects calls immediately until the recovery timeout elapses.
	StateOpen
	// StateHalfOpen admits a probe call after the recovery timeout.
	StateHalfOpen
)

// String returns the lowercase state label used in logs.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// BreakerConfig configures a Breaker.
type BreakerConfig struct {
	// FailureThreshold is the number of consecutive expected failures that
	// opens the breaker.
	FailureThreshold int

	// RecoveryTimeout is how long the breaker stays open before admitting
	// a probe call.
	RecoveryTimeout time.Duration

	// IsFailure decides whether an error counts against the threshold.
	// Errors it rejects pass through without touching breaker state.
	// Nil counts every error.
	IsFailure func(error) bool
}

// DefaultBreakerConfig returns the default breaker configuration:
// threshold 5, recovery timeout 60s, every error counts.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		RecoveryTimeout:  60 * time.Second,
	}
}

// Breaker is a circuit breaker protecting one backend dependency.
// One Breaker instance is shared by all callers against that dependency;
// all state transitions happen under a single mutex.
type Breaker struct {
	mu           sync.Mutex
	state        State
	failureCount int
	lastFailure  time.Time

	config BreakerConfig
	logger *slog.Logger
	now    func() time.Time
}

// BreakerOption configures a Breaker.
type BreakerOption func(*Breaker)

// WithBreakerLogger sets a custom logger.
// Default is slog.Default().
func WithBreakerLogger(logger *slog.Logger) BreakerOption {
	return func(b *Breaker) {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
	}
}

// WithClock overrides the breaker's time source. Used by tests to step
// through the recovery timeout without sleeping.
func WithClock(now func() time.Time) BreakerOption {
	return func(b *Breaker) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBreaker creates a circuit breaker with the given configuration.
func NewBreaker(config BreakerConfig, opts ...BreakerOption) (*Breaker, error) {
	if config.FailureThreshold < 1 {
		return nil, ErrInvalidThreshold
	}
	if config.RecoveryTimeout <= 0 {
		return nil, ErrInvalidRecoveryTimeout
	}

	b := &Breaker{
		state:  StateClosed,
		config: config,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// State returns the breaker's current state, accounting for an elapsed
// recovery timeout.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateOpen && b.now().Sub(b.lastFailure) >= b.config.RecoveryTimeout {
		return StateHalfOpen
	}
	return b.state
}

// FailureCount returns the current consecutive failure count.
func (b *Breaker) FailureCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failureCount
}

// Execute runs the operation through the breaker.
//
// When the breaker is open and the recovery timeout has not elapsed, the
// operation is not invoked and ErrCircuitOpen is returned. Otherwise the
// operation runs, and its outcome moves the breaker state: an expected
// failure increments the count (opening the breaker at the threshold), a
// success in half-open closes the breaker and resets the count. Errors the
// IsFailure predicate rejects pass through without changing state.
func (b *Breaker) Execute(ctx context.Context, operation func(ctx context.Context) error) error {
	if err := b.before(); err != nil {
		return err
	}

	err := operation(ctx)
	b.after(err)
	return err
}

// Do runs an operation returning a value through the breaker.
// Same semantics as Execute.
func Do[T any](b *Breaker, ctx context.Context, operation func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if err := b.before(); err != nil {
		return zero, err
	}

	result, err := operation(ctx)
	b.after(err)
	return result, err
}

// before checks admission and performs the Open -> HalfOpen transition.
func (b *Breaker) before() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != StateOpen {
		return nil
	}
	if b.now().Sub(b.lastFailure) < b.config.RecoveryTimeout {
		return ErrCircuitOpen
	}

	b.state = StateHalfOpen
	b.logger.Info("circuit breaker half-open, admitting probe call")
	return nil
}

// after records the call outcome.
func (b *Breaker) after(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err == nil {
		if b.state == StateHalfOpen {
			b.logger.Info("circuit breaker closed after successful probe")
		}
		b.state = StateClosed
		b.failureCount = 0
		return
	}

	if b.config.IsFailure != nil && !b.config.IsFailure(err) {
		// Unexpected error class, passes through without counting
		return
	}

	b.lastFailure = b.now()

	if b.state == StateHalfOpen {
		b.state = StateOpen
		b.logger.Warn("circuit breaker re-opened after failed probe", "err", err)
		return
	}

	b.failureCount++
	if b.failureCount >= b.config.FailureThreshold {
		b.state = StateOpen
		b.logger.Warn("circuit breaker opened",
			"failureCount", b.failureCount,
			"threshold", b.config.FailureThreshold,
			"err", err)
	}
}
