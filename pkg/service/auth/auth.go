// Package auth provides the authentication service that turns a card number
// and PIN pair into a validated account or a rejection.
package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/olekv/atmsim/pkg/directory"
	"github.com/olekv/atmsim/pkg/domain/account"
	"github.com/olekv/atmsim/pkg/domain/events"
	"github.com/olekv/atmsim/pkg/eventbus"
)

// ErrAuthenticationFailed is returned on a card/PIN mismatch or an unknown
// card number. The two cases are intentionally indistinguishable to callers.
var ErrAuthenticationFailed = errors.New("authentication failed")

// Service authenticates card-holders against the account directory.
// It applies no retry limit and no lockout; looping policy belongs to the
// calling shell.
type Service struct {
	directory *directory.Directory
	bus       eventbus.EventBus
	logger    *slog.Logger
}

// New creates a Service with the provided dependencies.
func New(dir *directory.Directory, bus eventbus.EventBus, logger *slog.Logger) *Service {
	return &Service{directory: dir, bus: bus, logger: logger}
}

// AuthenticateUser looks up the account by card number and validates the PIN
// against it. Returns the account on success; ErrAuthenticationFailed
// otherwise. The check is read-only: session binding is the caller's job.
func (s *Service) AuthenticateUser(
	ctx context.Context,
	cardNumber, pin string,
) (*account.Account, error) {
	log := s.logger.With("context", "AuthenticateUser", "card_number", cardNumber)
	log.Debug("AuthenticateUser called")

	acc, found := s.directory.Find(cardNumber)
	if !found || !acc.Authenticate(cardNumber, pin) {
		log.Info("authentication rejected")
		s.publish(ctx, events.NewLoginFailed(cardNumber))
		return nil, ErrAuthenticationFailed
	}

	log.Info("authentication successful", "owner", acc.OwnerName())
	s.publish(ctx, events.NewLoginSucceeded(cardNumber, acc.OwnerName()))
	return acc, nil
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish event", "event_type", event.Type(), "error", err)
	}
}
