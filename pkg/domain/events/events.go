// Package events defines the notification events the core publishes for
// every state-changing attempt, successful or not. Shells subscribe through
// the event bus and display each event's Message verbatim.
package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/olekv/atmsim/pkg/money"
)

// EventType represents the type of an event in the system.
type EventType string

const (
	EventTypeLoginSucceeded    EventType = "Login.Succeeded"
	EventTypeLoginFailed       EventType = "Login.Failed"
	EventTypeBalanceChecked    EventType = "Balance.Checked"
	EventTypeWithdrawCompleted EventType = "Withdraw.Completed"
	EventTypeWithdrawFailed    EventType = "Withdraw.Failed"
	EventTypeTransferCompleted EventType = "Transfer.Completed"
	EventTypeTransferFailed    EventType = "Transfer.Failed"
)

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}

// Event is implemented by every notification event.
// Message returns the user-facing notification string; failure messages keep
// the distinct outcomes (invalid amount, insufficient funds, recipient not
// found) distinguishable and must not be collapsed by a shell.
type Event interface {
	Type() string
	Message() string
}

// Occurrence carries the identity and timestamp shared by all events.
type Occurrence struct {
	ID        uuid.UUID
	Timestamp time.Time
}

func newOccurrence() Occurrence {
	return Occurrence{ID: uuid.New(), Timestamp: time.Now().UTC()}
}

// LoginSucceeded is published after a successful authentication.
type LoginSucceeded struct {
	Occurrence
	CardNumber string
	Owner      string
}

// NewLoginSucceeded creates a LoginSucceeded event.
func NewLoginSucceeded(cardNumber, owner string) *LoginSucceeded {
	return &LoginSucceeded{Occurrence: newOccurrence(), CardNumber: cardNumber, Owner: owner}
}

func (e *LoginSucceeded) Type() string { return EventTypeLoginSucceeded.String() }

func (e *LoginSucceeded) Message() string {
	return fmt.Sprintf("Authentication successful. Welcome, %s!", e.Owner)
}

// LoginFailed is published after a rejected authentication attempt.
// It deliberately does not reveal whether the card number or the PIN was wrong.
type LoginFailed struct {
	Occurrence
	CardNumber string
}

// NewLoginFailed creates a LoginFailed event.
func NewLoginFailed(cardNumber string) *LoginFailed {
	return &LoginFailed{Occurrence: newOccurrence(), CardNumber: cardNumber}
}

func (e *LoginFailed) Type() string { return EventTypeLoginFailed.String() }

func (e *LoginFailed) Message() string {
	return "Invalid card number or PIN."
}

// BalanceChecked is published on every balance inquiry.
type BalanceChecked struct {
	Occurrence
	CardNumber string
	Balance    money.Money
}

// NewBalanceChecked creates a BalanceChecked event.
func NewBalanceChecked(cardNumber string, balance money.Money) *BalanceChecked {
	return &BalanceChecked{Occurrence: newOccurrence(), CardNumber: cardNumber, Balance: balance}
}

func (e *BalanceChecked) Type() string { return EventTypeBalanceChecked.String() }

func (e *BalanceChecked) Message() string {
	return fmt.Sprintf("Your current balance: %s", e.Balance)
}

// WithdrawCompleted is published after a successful withdrawal.
type WithdrawCompleted struct {
	Occurrence
	CardNumber string
	Amount     money.Money
	NewBalance money.Money
}

// NewWithdrawCompleted creates a WithdrawCompleted event.
func NewWithdrawCompleted(cardNumber string, amount, newBalance money.Money) *WithdrawCompleted {
	return &WithdrawCompleted{
		Occurrence: newOccurrence(),
		CardNumber: cardNumber,
		Amount:     amount,
		NewBalance: newBalance,
	}
}

func (e *WithdrawCompleted) Type() string { return EventTypeWithdrawCompleted.String() }

func (e *WithdrawCompleted) Message() string {
	return fmt.Sprintf("Successfully withdrew %s. New balance: %s", e.Amount, e.NewBalance)
}

// WithdrawFailed is published when a withdrawal is rejected.
type WithdrawFailed struct {
	Occurrence
	CardNumber string
	Amount     money.Money
	Reason     string
}

// NewWithdrawFailed creates a WithdrawFailed event.
func NewWithdrawFailed(cardNumber string, amount money.Money, reason string) *WithdrawFailed {
	return &WithdrawFailed{
		Occurrence: newOccurrence(),
		CardNumber: cardNumber,
		Amount:     amount,
		Reason:     reason,
	}
}

func (e *WithdrawFailed) Type() string { return EventTypeWithdrawFailed.String() }

func (e *WithdrawFailed) Message() string {
	return fmt.Sprintf("Withdrawal failed: %s.", e.Reason)
}

// TransferCompleted is published after a successful transfer.
type TransferCompleted struct {
	Occurrence
	SenderCardNumber    string
	RecipientCardNumber string
	RecipientOwner      string
	Amount              money.Money
	NewBalance          money.Money
}

// NewTransferCompleted creates a TransferCompleted event.
func NewTransferCompleted(
	senderCardNumber, recipientCardNumber, recipientOwner string,
	amount, newBalance money.Money,
) *TransferCompleted {
	return &TransferCompleted{
		Occurrence:          newOccurrence(),
		SenderCardNumber:    senderCardNumber,
		RecipientCardNumber: recipientCardNumber,
		RecipientOwner:      recipientOwner,
		Amount:              amount,
		NewBalance:          newBalance,
	}
}

func (e *TransferCompleted) Type() string { return EventTypeTransferCompleted.String() }

func (e *TransferCompleted) Message() string {
	return fmt.Sprintf("Successfully transferred %s to %s. New balance: %s",
		e.Amount, e.RecipientOwner, e.NewBalance)
}

// TransferFailed is published when a transfer is rejected.
type TransferFailed struct {
	Occurrence
	SenderCardNumber    string
	RecipientCardNumber string
	Amount              money.Money
	Reason              string
}

// NewTransferFailed creates a TransferFailed event.
func NewTransferFailed(
	senderCardNumber, recipientCardNumber string,
	amount money.Money,
	reason string,
) *TransferFailed {
	return &TransferFailed{
		Occurrence:          newOccurrence(),
		SenderCardNumber:    senderCardNumber,
		RecipientCardNumber: recipientCardNumber,
		Amount:              amount,
		Reason:              reason,
	}
}

func (e *TransferFailed) Type() string { return EventTypeTransferFailed.String() }

func (e *TransferFailed) Message() string {
	return fmt.Sprintf("Transfer failed: %s.", e.Reason)
}
