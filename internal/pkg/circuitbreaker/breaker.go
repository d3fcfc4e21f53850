package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/ledger/internal/pkg/logger"
)

// State of a breaker
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
	ErrTooManyRequests    = errors.New("too many requests in half-open state")
)

// Config holds circuit breaker configuration
type Config struct {
	MaxRequests      uint32        // probes allowed while half-open
	Interval         time.Duration // closed-state counter reset period
	Timeout          time.Duration // open-state duration before probing
	FailureThreshold uint32        // consecutive failures that open the breaker
	IsFailure        func(err error) bool
}

// DefaultConfig returns a default circuit breaker configuration
func DefaultConfig() Config {
	return Config{
		MaxRequests:      1,
		Interval:         30 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// CircuitBreaker fails fast while a downstream keeps failing
type CircuitBreaker struct {
	name   string
	config Config
	logger *logger.ZapLogger

	mu                  sync.Mutex
	state               State
	requests            uint32
	consecutiveFailures uint32
	expiry              time.Time
}

func New(name string, config Config, l *logger.ZapLogger) *CircuitBreaker {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	if config.IsFailure == nil {
		config.IsFailure = func(err error) bool { return err != nil }
	}
	return &CircuitBreaker{
		name:   name,
		config: config,
		logger: l,
		expiry: time.Now().Add(config.Interval),
	}
}

// Execute runs fn unless the breaker is open
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.before(); err != nil {
		return err
	}
	err := fn(ctx)
	cb.after(err)
	return err
}

func (cb *CircuitBreaker) before() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := time.Now()
	switch cb.state {
	case StateClosed:
		if cb.config.Interval > 0 && cb.expiry.Before(now) {
			cb.requests, cb.consecutiveFailures = 0, 0
			cb.expiry = now.Add(cb.config.Interval)
		}
	case StateOpen:
		if cb.expiry.After(now) {
			return ErrCircuitBreakerOpen
		}
		cb.transition(StateHalfOpen)
	case StateHalfOpen:
		if cb.requests >= cb.config.MaxRequests {
			return ErrTooManyRequests
		}
	}
	cb.requests++
	return nil
}

func (cb *CircuitBreaker) after(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if !cb.config.IsFailure(err) {
		cb.consecutiveFailures = 0
		if cb.state == StateHalfOpen {
			cb.transition(StateClosed)
			cb.expiry = time.Now().Add(cb.config.Interval)
		}
		return
	}

	cb.consecutiveFailures++
	if cb.state == StateHalfOpen || cb.consecutiveFailures >= cb.config.FailureThreshold {
		cb.transition(StateOpen)
		cb.expiry = time.Now().Add(cb.config.Timeout)
	}
}

// transition must be called with mu held
func (cb *CircuitBreaker) transition(to State) {
	if cb.state == to {
		return
	}
	from := cb.state
	cb.state = to
	cb.requests = 0

	cb.logger.Warn("Circuit breaker state changed",
		logger.String("name", cb.name),
		logger.String("from", from.String()),
		logger.String("to", to.String()),
		logger.Int("consecutive_failures", int(cb.consecutiveFailures)))
}

func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Manager keeps one breaker per downstream name
type Manager struct {
	config   Config
	logger   *logger.ZapLogger
	mu       sync.Mutex
	breakers map[string]*CircuitBreaker
}

func NewManager(config Config, l *logger.ZapLogger) *Manager {
	return &Manager{config: config, logger: l, breakers: make(map[string]*CircuitBreaker)}
}

func (m *Manager) get(name string) *CircuitBreaker {
	m.mu.Lock()
	defer m.mu.Unlock()
	cb, ok := m.breakers[name]
	if !ok {
		cb = New(name, m.config, m.logger)
		m.breakers[name] = cb
	}
	return cb
}

// Execute runs fn through the breaker registered under name
func (m *Manager) Execute(ctx context.Context, name string, fn func(context.Context) error) error {
	return m.get(name).Execute(ctx, fn)
}

// States reports the state of every known breaker, used by the readiness probe
func (m *Manager) States() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.breakers))
	for name, cb := range m.breakers {
		out[name] = cb.State().String()
	}
	return out
}
