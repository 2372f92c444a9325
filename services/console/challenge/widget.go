package challenge

import (
	"context"
	"sync"
	"time"

	"github.com/drawdesk/drawdesk/internal/pkg/logger"
	"github.com/drawdesk/drawdesk/internal/pkg/retry"
)

// State is the widget lifecycle position
type State int

const (
	StateUninitialized State = iota
	StateRetrying
	StateReady
	StateTokenIssued
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRetrying:
		return "retrying"
	case StateReady:
		return "ready"
	case StateTokenIssued:
		return "token_issued"
	}
	return "unknown"
}

// DefaultRetryDelay is the fixed backoff before re-triggering
// initialization after a failure.
const DefaultRetryDelay = 3 * time.Second

// Provider is the third-party anti-bot verifier the widget wraps
type Provider interface {
	// Init loads and prepares the widget
	Init(ctx context.Context) error
	// Execute produces one opaque verification token
	Execute(ctx context.Context) (string, error)
}

// Widget wraps an anti-bot provider and delivers verification tokens
// asynchronously. A failed initialization is retried once per failure
// after a fixed delay through a single-slot timer: retries never stack,
// and the pending retry is cancelled if initialization succeeds first.
type Widget struct {
	mu       sync.Mutex
	state    State
	token    string
	onToken  func(token string)
	provider Provider
	timer    *retry.SingleSlot
}

// NewWidget wraps the provider with the default retry delay
func NewWidget(provider Provider) *Widget {
	return NewWidgetWithDelay(provider, DefaultRetryDelay)
}

// NewWidgetWithDelay wraps the provider with a custom retry delay
func NewWidgetWithDelay(provider Provider, delay time.Duration) *Widget {
	return &Widget{
		provider: provider,
		timer:    retry.NewSingleSlot(delay),
	}
}

// OnToken registers the callback that receives each issued token
func (w *Widget) OnToken(fn func(token string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onToken = fn
}

// Init triggers provider initialization and, when it succeeds, requests a
// token. On initialization failure a retry is armed; token-issuance
// failure leaves the widget ready with no token, and callers must treat
// that as "submission not permitted".
func (w *Widget) Init(ctx context.Context) {
	if err := w.provider.Init(ctx); err != nil {
		logger.Warn("Challenge widget initialization failed", logger.Err(err))

		// The retrying state must be visible before the timer can fire,
		// so the transition and the arm happen back to back with no
		// intermediate state for the callback to overwrite.
		w.mu.Lock()
		w.state = StateRetrying
		w.mu.Unlock()

		w.timer.Arm(func() {
			w.Init(context.Background())
		})
		return
	}

	w.timer.Cancel()
	w.mu.Lock()
	w.state = StateReady
	w.mu.Unlock()

	w.issue(ctx)
}

// issue requests one token from the provider and publishes it
func (w *Widget) issue(ctx context.Context) {
	token, err := w.provider.Execute(ctx)
	if err != nil || token == "" {
		logger.Warn("Challenge widget produced no token", logger.Err(err))
		return
	}

	w.mu.Lock()
	w.state = StateTokenIssued
	w.token = token
	fn := w.onToken
	w.mu.Unlock()

	if fn != nil {
		fn(token)
	}
}

// Token returns the issued verification token, or empty when none exists
func (w *Widget) Token() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.token
}

// Consume returns the issued token and invalidates it. Tokens are single
// use per submission attempt; a replacement is requested in the background
// so the next attempt is not blocked on the provider.
func (w *Widget) Consume() string {
	w.mu.Lock()
	token := w.token
	if token == "" {
		w.mu.Unlock()
		return ""
	}
	w.token = ""
	w.state = StateReady
	w.mu.Unlock()

	go w.issue(context.Background())
	return token
}

// State returns the widget lifecycle position
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Close cancels any pending retry
func (w *Widget) Close() {
	w.timer.Cancel()
}
