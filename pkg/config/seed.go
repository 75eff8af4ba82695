package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/olekv/atmsim/pkg/domain/account"
	"github.com/olekv/atmsim/pkg/money"
)

// Seed describes one account to create at startup.
// Balance is a decimal string so seed files never carry binary floats.
type Seed struct {
	CardNumber string `json:"card_number" validate:"required,numeric,min=8"`
	Owner      string `json:"owner"       validate:"required"`
	Balance    string `json:"balance"     validate:"required"`
	PIN        string `json:"pin"         validate:"required,numeric,min=4"`
}

var validate = validator.New()

// DefaultSeeds returns the built-in demo accounts used when no seed file is
// configured.
func DefaultSeeds() []Seed {
	return []Seed{
		{CardNumber: "12345678", Owner: "Ivan Ivanov", Balance: "5000", PIN: "1234"},
		{CardNumber: "4141252547892585", Owner: "Ivan Franchuk", Balance: "7000", PIN: "7777"},
		{CardNumber: "98765432", Owner: "Olha Petrenko", Balance: "8000", PIN: "1111"},
	}
}

// LoadSeeds reads and validates a JSON seed file.
func LoadSeeds(path string) ([]Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seeds []Seed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("seed file %s contains no accounts", path)
	}
	for i, seed := range seeds {
		if err := validate.Struct(seed); err != nil {
			return nil, fmt.Errorf("seed %d invalid: %w", i, err)
		}
	}
	return seeds, nil
}

// BuildAccounts turns seeds into account entities.
func BuildAccounts(seeds []Seed) ([]*account.Account, error) {
	accounts := make([]*account.Account, 0, len(seeds))
	for _, seed := range seeds {
		balance, err := money.NewFromString(seed.Balance)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", seed.CardNumber, err)
		}
		acc, err := account.New().
			WithCardNumber(seed.CardNumber).
			WithOwner(seed.Owner).
			WithPIN(seed.PIN).
			WithBalance(balance).
			Build()
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", seed.CardNumber, err)
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}
