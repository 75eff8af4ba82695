// Package directory holds the account registry keyed by card number.
// The directory is seeded once at startup and passed explicitly to the
// services that need lookup; it is never ambient shared state.
package directory

import (
	"fmt"

	"github.com/olekv/atmsim/pkg/domain/account"
)

// Directory maps card numbers to accounts.
//
// Invariant: every key equals the CardNumber of its mapped account. The
// constructor is the only writer, so lookups need no locking.
type Directory struct {
	accounts map[string]*account.Account
}

// New builds a Directory from the given accounts.
// Returns an error on a duplicate card number.
func New(accounts ...*account.Account) (*Directory, error) {
	byCard := make(map[string]*account.Account, len(accounts))
	for _, acc := range accounts {
		if _, exists := byCard[acc.CardNumber()]; exists {
			return nil, fmt.Errorf("duplicate card number %q", acc.CardNumber())
		}
		byCard[acc.CardNumber()] = acc
	}
	return &Directory{accounts: byCard}, nil
}

// Find returns the account for the given card number, if present.
func (d *Directory) Find(cardNumber string) (*account.Account, bool) {
	acc, ok := d.accounts[cardNumber]
	return acc, ok
}

// Size returns the number of registered accounts.
func (d *Directory) Size() int {
	return len(d.accounts)
}
