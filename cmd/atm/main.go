// Command atm is the interactive console shell over the banking core. It
// owns all prompting, input parsing, and session state; every business rule
// lives in the service and domain packages.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/olekv/atmsim/pkg/config"
	"github.com/olekv/atmsim/pkg/directory"
	"github.com/olekv/atmsim/pkg/domain/account"
	"github.com/olekv/atmsim/pkg/domain/events"
	"github.com/olekv/atmsim/pkg/eventbus"
	"github.com/olekv/atmsim/pkg/money"
	"github.com/olekv/atmsim/pkg/service/auth"
	"github.com/olekv/atmsim/pkg/service/transaction"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := newLogger(cfg)
	logger.Info("starting atm", "env", cfg.Env)

	seeds := config.DefaultSeeds()
	if cfg.SeedFile != "" {
		if seeds, err = config.LoadSeeds(cfg.SeedFile); err != nil {
			return err
		}
	}
	accounts, err := config.BuildAccounts(seeds)
	if err != nil {
		return err
	}
	dir, err := directory.New(accounts...)
	if err != nil {
		return err
	}

	bus := eventbus.NewSimpleEventBus()
	subscribeDisplay(bus)

	sh := &shell{
		in:     bufio.NewReader(os.Stdin),
		auth:   auth.New(dir, bus, logger),
		tx:     transaction.New(dir, bus, logger),
		logger: logger,
	}
	return sh.Run(context.Background())
}

func newLogger(cfg *config.App) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}
	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// subscribeDisplay registers the display listener that renders every core
// notification verbatim. Success and failure get distinct colors so the
// outcome is visible at a glance.
func subscribeDisplay(bus eventbus.EventBus) {
	success := color.New(color.FgGreen)
	failure := color.New(color.FgRed)
	info := color.New(color.FgCyan)

	show := func(c *color.Color) func(context.Context, events.Event) {
		return func(_ context.Context, e events.Event) {
			_, _ = c.Println(e.Message())
		}
	}

	bus.Subscribe(events.EventTypeLoginSucceeded.String(), show(success))
	bus.Subscribe(events.EventTypeLoginFailed.String(), show(failure))
	bus.Subscribe(events.EventTypeBalanceChecked.String(), show(info))
	bus.Subscribe(events.EventTypeWithdrawCompleted.String(), show(success))
	bus.Subscribe(events.EventTypeWithdrawFailed.String(), show(failure))
	bus.Subscribe(events.EventTypeTransferCompleted.String(), show(success))
	bus.Subscribe(events.EventTypeTransferFailed.String(), show(failure))
}

// shell drives the interactive loop. It is the sole holder of session state:
// at most one authenticated account, set on login and cleared on logout or
// exit, and no transaction call ever happens while unauthenticated.
type shell struct {
	in     *bufio.Reader
	auth   *auth.Service
	tx     *transaction.Service
	logger *slog.Logger
}

// Run loops login sessions until the user exits.
func (s *shell) Run(ctx context.Context) error {
	for {
		acc, err := s.login(ctx)
		if err != nil {
			return err
		}
		exit, err := s.session(ctx, acc)
		if err != nil {
			return err
		}
		if exit {
			fmt.Println("Thank you for using the service!")
			return nil
		}
		// logged out, back to the login prompt
	}
}

// login prompts for credentials until authentication succeeds. Attempts are
// unlimited; there is no lockout.
func (s *shell) login(ctx context.Context) (*account.Account, error) {
	fmt.Println("=== Login ===")
	for {
		cardNumber, err := s.prompt("Card number: ")
		if err != nil {
			return nil, err
		}
		pin, err := s.readPIN("PIN: ")
		if err != nil {
			return nil, err
		}
		acc, err := s.auth.AuthenticateUser(ctx, cardNumber, pin)
		if err == nil {
			return acc, nil
		}
		fmt.Println("Please try again.")
	}
}

// session runs the menu loop for an authenticated account.
// Returns true when the user chose to exit rather than log out.
func (s *shell) session(ctx context.Context, acc *account.Account) (bool, error) {
	for {
		fmt.Println()
		fmt.Println("==== Main menu ====")
		fmt.Println("1. Check balance")
		fmt.Println("2. Withdraw funds")
		fmt.Println("3. Transfer funds")
		fmt.Println("4. Exit")
		fmt.Println("5. Log out")

		choice, err := s.prompt("Choose an option: ")
		if err != nil {
			return false, err
		}

		switch choice {
		case "1":
			s.tx.CheckBalance(ctx, acc)
		case "2":
			amount, ok, err := s.readAmount("Amount to withdraw: ")
			if err != nil {
				return false, err
			}
			if ok {
				s.tx.Withdraw(ctx, acc, amount)
			}
		case "3":
			recipientCard, err := s.prompt("Recipient card number: ")
			if err != nil {
				return false, err
			}
			amount, ok, err := s.readAmount("Amount to transfer: ")
			if err != nil {
				return false, err
			}
			if ok {
				s.tx.Transfer(ctx, acc, recipientCard, amount)
			}
		case "4":
			return true, nil
		case "5":
			fmt.Println("You have been logged out.")
			return false, nil
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func (s *shell) prompt(label string) (string, error) {
	fmt.Print(label)
	line, err := s.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readPIN reads the PIN without echoing it when stdin is a terminal.
func (s *shell) readPIN(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return s.prompt(label)
	}
	fmt.Print(label)
	pin, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(pin)), nil
}

// readAmount parses an amount, keeping malformed input away from the core.
// ok is false when the text was not a valid number.
func (s *shell) readAmount(label string) (amount money.Money, ok bool, err error) {
	text, err := s.prompt(label)
	if err != nil {
		return money.Money{}, false, err
	}
	amount, parseErr := money.NewFromString(text)
	if parseErr != nil {
		fmt.Println("Enter a valid amount.")
		return money.Money{}, false, nil
	}
	return amount, true, nil
}
