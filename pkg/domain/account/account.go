// Package account defines the Account aggregate, the only entity allowed
// to mutate a balance. All state changes go through Withdraw and Deposit
// (and therefore Transfer); there is no external balance setter.
package account

import (
	"errors"
	"sync"

	"github.com/olekv/atmsim/pkg/money"
)

var (
	// ErrInvalidAmount is returned when a transaction amount is zero or negative.
	ErrInvalidAmount = errors.New("transaction amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal or transfer exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNilRecipient is returned when a transfer targets a nil account.
	ErrNilRecipient = errors.New("nil recipient account")
)

// Account represents a card-holder's account.
//
// Invariants:
//   - Card number, owner name, and PIN are immutable after creation.
//   - The balance is never negative; any withdrawal that would make it
//     negative is rejected before mutation.
//   - The PIN is never exposed outside Authenticate.
type Account struct {
	cardNumber string
	ownerName  string
	pin        string
	balance    money.Money
	mu         sync.Mutex
}

// Builder provides a fluent API for constructing Account instances,
// ensuring that only valid accounts are constructed.
type Builder struct {
	cardNumber string
	ownerName  string
	pin        string
	balance    money.Money
}

// New creates an empty account Builder.
func New() *Builder {
	return &Builder{}
}

// WithCardNumber sets the card number. This is a mandatory field.
func (b *Builder) WithCardNumber(cardNumber string) *Builder {
	b.cardNumber = cardNumber
	return b
}

// WithOwner sets the owner display name. This is a mandatory field.
func (b *Builder) WithOwner(ownerName string) *Builder {
	b.ownerName = ownerName
	return b
}

// WithPIN sets the secret PIN. This is a mandatory field.
func (b *Builder) WithPIN(pin string) *Builder {
	b.pin = pin
	return b
}

// WithBalance sets the opening balance. Defaults to zero.
func (b *Builder) WithBalance(balance money.Money) *Builder {
	b.balance = balance
	return b
}

// Build validates all invariants and returns the new Account.
func (b *Builder) Build() (*Account, error) {
	if b.cardNumber == "" {
		return nil, errors.New("card number is required")
	}
	if b.ownerName == "" {
		return nil, errors.New("owner name is required")
	}
	if b.pin == "" {
		return nil, errors.New("pin is required")
	}
	if b.balance.IsNegative() {
		return nil, errors.New("opening balance cannot be negative")
	}
	return &Account{
		cardNumber: b.cardNumber,
		ownerName:  b.ownerName,
		pin:        b.pin,
		balance:    b.balance,
	}, nil
}

// CardNumber returns the account's card number.
func (a *Account) CardNumber() string {
	return a.cardNumber
}

// OwnerName returns the account owner's display name.
func (a *Account) OwnerName() string {
	return a.ownerName
}

// Balance returns the current balance.
func (a *Account) Balance() money.Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Authenticate reports whether the supplied credentials match this account.
// Both comparisons are exact and case-sensitive; no normalization is applied.
// This is a read-only check, session binding is the caller's job.
func (a *Account) Authenticate(cardNumber, pin string) bool {
	return a.cardNumber == cardNumber && a.pin == pin
}

// Withdraw debits the balance.
// Returns ErrInvalidAmount when amount <= 0 (an amount of exactly zero is
// invalid, not a no-op success) and ErrInsufficientFunds when amount exceeds
// the balance. The balance is untouched on any error.
func (a *Account) Withdraw(amount money.Money) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

// Deposit credits the balance. Non-positive amounts are silently ignored.
func (a *Account) Deposit(amount money.Money) {
	if !amount.IsPositive() {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = a.balance.Add(amount)
}

// Transfer moves amount from this account to recipient, composed as a
// withdrawal on self followed by a deposit on recipient, in that order, so a
// failed withdrawal never mutates the recipient. A transfer to the own
// account succeeds and leaves the balance unchanged.
func (a *Account) Transfer(recipient *Account, amount money.Money) error {
	if recipient == nil {
		return ErrNilRecipient
	}
	if err := a.Withdraw(amount); err != nil {
		return err
	}
	recipient.Deposit(amount)
	return nil
}
