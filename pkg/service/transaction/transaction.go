// Package transaction provides the orchestration layer that runs balance
// inquiries, withdrawals, and transfers against accounts and translates
// domain outcomes into results and notification events.
package transaction

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/olekv/atmsim/pkg/directory"
	"github.com/olekv/atmsim/pkg/domain/account"
	"github.com/olekv/atmsim/pkg/domain/events"
	"github.com/olekv/atmsim/pkg/eventbus"
	"github.com/olekv/atmsim/pkg/money"
)

// Status classifies the outcome of a transaction operation.
type Status int

const (
	// StatusSucceeded means the operation completed and the balance changed
	// (or, for a self-transfer, legitimately stayed the same).
	StatusSucceeded Status = iota
	// StatusInvalidAmount means the amount was zero or negative.
	StatusInvalidAmount
	// StatusInsufficientFunds means the amount exceeded the balance.
	StatusInsufficientFunds
	// StatusRecipientNotFound means the transfer target card number is not
	// in the directory. The sender's state is untouched.
	StatusRecipientNotFound
)

// String returns a short human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusInvalidAmount:
		return "invalid amount"
	case StatusInsufficientFunds:
		return "insufficient funds"
	case StatusRecipientNotFound:
		return "recipient not found"
	default:
		return "unknown"
	}
}

// Result is the outcome of a withdrawal or transfer.
// NewBalance is only meaningful when Status is StatusSucceeded.
type Result struct {
	Status     Status
	NewBalance money.Money
}

// Service orchestrates transaction operations. It holds no state of its own
// beyond the directory reference for recipient lookups and a lock that
// serializes operations, so a concurrent shell cannot race a
// withdraw/transfer pair on the same account's balance.
type Service struct {
	directory *directory.Directory
	bus       eventbus.EventBus
	logger    *slog.Logger
	mu        sync.Mutex
}

// New creates a Service with the provided dependencies.
func New(dir *directory.Directory, bus eventbus.EventBus, logger *slog.Logger) *Service {
	return &Service{directory: dir, bus: bus, logger: logger}
}

// CheckBalance returns the account's current balance and publishes a
// BalanceChecked notification.
func (s *Service) CheckBalance(ctx context.Context, acc *account.Account) money.Money {
	balance := acc.Balance()
	s.logger.Debug("CheckBalance called", "card_number", acc.CardNumber())
	s.publish(ctx, events.NewBalanceChecked(acc.CardNumber(), balance))
	return balance
}

// Withdraw debits the account and reports the outcome.
func (s *Service) Withdraw(ctx context.Context, acc *account.Account, amount money.Money) Result {
	log := s.logger.With("context", "Withdraw", "card_number", acc.CardNumber(), "amount", amount)
	log.Debug("Withdraw called")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := acc.Withdraw(amount); err != nil {
		status := statusFromError(err)
		log.Info("withdrawal rejected", "status", status)
		s.publish(ctx, events.NewWithdrawFailed(acc.CardNumber(), amount, status.String()))
		return Result{Status: status}
	}

	newBalance := acc.Balance()
	log.Info("withdrawal completed", "new_balance", newBalance)
	s.publish(ctx, events.NewWithdrawCompleted(acc.CardNumber(), amount, newBalance))
	return Result{Status: StatusSucceeded, NewBalance: newBalance}
}

// Transfer resolves the recipient by card number and moves the amount from
// sender to recipient. When the recipient is absent the sender's state is
// never touched.
func (s *Service) Transfer(
	ctx context.Context,
	sender *account.Account,
	recipientCardNumber string,
	amount money.Money,
) Result {
	log := s.logger.With(
		"context", "Transfer",
		"card_number", sender.CardNumber(),
		"recipient", recipientCardNumber,
		"amount", amount,
	)
	log.Debug("Transfer called")

	recipient, found := s.directory.Find(recipientCardNumber)
	if !found {
		log.Info("transfer rejected", "status", StatusRecipientNotFound)
		s.publish(ctx, events.NewTransferFailed(
			sender.CardNumber(), recipientCardNumber, amount, StatusRecipientNotFound.String()))
		return Result{Status: StatusRecipientNotFound}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := sender.Transfer(recipient, amount); err != nil {
		status := statusFromError(err)
		log.Info("transfer rejected", "status", status)
		s.publish(ctx, events.NewTransferFailed(
			sender.CardNumber(), recipientCardNumber, amount, status.String()))
		return Result{Status: status}
	}

	newBalance := sender.Balance()
	log.Info("transfer completed", "new_balance", newBalance)
	s.publish(ctx, events.NewTransferCompleted(
		sender.CardNumber(), recipientCardNumber, recipient.OwnerName(), amount, newBalance))
	return Result{Status: StatusSucceeded, NewBalance: newBalance}
}

func statusFromError(err error) Status {
	switch {
	case errors.Is(err, account.ErrInsufficientFunds):
		return StatusInsufficientFunds
	default:
		return StatusInvalidAmount
	}
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish event", "event_type", event.Type(), "error", err)
	}
}
