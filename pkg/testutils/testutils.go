// Package testutils provides shared helpers for service and domain tests.
package testutils

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/olekv/atmsim/pkg/domain/account"
	"github.com/olekv/atmsim/pkg/domain/events"
	"github.com/olekv/atmsim/pkg/money"
)

// SilentLogger returns a logger that discards all output.
func SilentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// RecordingEventBus is an EventBus that records every published event so
// tests can assert on notification behavior.
type RecordingEventBus struct {
	mu     sync.Mutex
	events []events.Event
}

// NewRecordingEventBus creates an empty RecordingEventBus.
func NewRecordingEventBus() *RecordingEventBus {
	return &RecordingEventBus{}
}

// Publish records the event.
func (b *RecordingEventBus) Publish(_ context.Context, event events.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
	return nil
}

// Subscribe is a no-op; the recorder has no handlers.
func (b *RecordingEventBus) Subscribe(string, func(context.Context, events.Event)) {}

// Events returns a copy of the recorded events in publication order.
func (b *RecordingEventBus) Events() []events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]events.Event(nil), b.events...)
}

// LastEvent returns the most recently published event, or nil.
func (b *RecordingEventBus) LastEvent() events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.events) == 0 {
		return nil
	}
	return b.events[len(b.events)-1]
}

// NewTestAccount builds an account for tests, failing the test on error.
func NewTestAccount(t *testing.T, cardNumber, owner, pin string, balance int64) *account.Account {
	t.Helper()
	acc, err := account.New().
		WithCardNumber(cardNumber).
		WithOwner(owner).
		WithPIN(pin).
		WithBalance(money.NewFromInt(balance)).
		Build()
	if err != nil {
		t.Fatalf("failed to build test account: %v", err)
	}
	return acc
}
