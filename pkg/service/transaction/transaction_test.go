package transaction_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olekv/atmsim/pkg/directory"
	"github.com/olekv/atmsim/pkg/domain/account"
	"github.com/olekv/atmsim/pkg/domain/events"
	"github.com/olekv/atmsim/pkg/money"
	"github.com/olekv/atmsim/pkg/service/transaction"
	"github.com/olekv/atmsim/pkg/testutils"
)

type fixture struct {
	svc    *transaction.Service
	bus    *testutils.RecordingEventBus
	sender *account.Account
	other  *account.Account
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	sender := testutils.NewTestAccount(t, "12345678", "Ivan Ivanov", "1234", 1000)
	other := testutils.NewTestAccount(t, "98765432", "Olha Petrenko", "1111", 1500)
	dir, err := directory.New(sender, other)
	require.NoError(t, err)
	bus := testutils.NewRecordingEventBus()
	return fixture{
		svc:    transaction.New(dir, bus, testutils.SilentLogger()),
		bus:    bus,
		sender: sender,
		other:  other,
	}
}

func TestCheckBalance(t *testing.T) {
	t.Parallel()
	fx := newFixture(t)

	balance := fx.svc.CheckBalance(context.Background(), fx.sender)
	assert.True(t, balance.Equals(money.NewFromInt(1000)))

	event, ok := fx.bus.LastEvent().(*events.BalanceChecked)
	require.True(t, ok, "expected BalanceChecked, got %T", fx.bus.LastEvent())
	assert.True(t, event.Balance.Equals(money.NewFromInt(1000)))
}

func TestWithdraw(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("succeeded", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t)

		res := fx.svc.Withdraw(ctx, fx.sender, money.NewFromInt(300))
		assert.Equal(t, transaction.StatusSucceeded, res.Status)
		assert.True(t, res.NewBalance.Equals(money.NewFromInt(700)))
		assert.IsType(t, &events.WithdrawCompleted{}, fx.bus.LastEvent())
	})

	t.Run("invalid amount", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t)

		res := fx.svc.Withdraw(ctx, fx.sender, money.Zero())
		assert.Equal(t, transaction.StatusInvalidAmount, res.Status)
		assert.True(t, fx.sender.Balance().Equals(money.NewFromInt(1000)))

		event, ok := fx.bus.LastEvent().(*events.WithdrawFailed)
		require.True(t, ok, "expected WithdrawFailed, got %T", fx.bus.LastEvent())
		assert.Equal(t, "invalid amount", event.Reason)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t)

		res := fx.svc.Withdraw(ctx, fx.sender, money.NewFromInt(9999))
		assert.Equal(t, transaction.StatusInsufficientFunds, res.Status)
		assert.True(t, fx.sender.Balance().Equals(money.NewFromInt(1000)))

		event, ok := fx.bus.LastEvent().(*events.WithdrawFailed)
		require.True(t, ok, "expected WithdrawFailed, got %T", fx.bus.LastEvent())
		assert.Equal(t, "insufficient funds", event.Reason)
	})
}

func TestTransfer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("succeeded conserves the total", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t)

		res := fx.svc.Transfer(ctx, fx.sender, "98765432", money.NewFromInt(500))
		assert.Equal(t, transaction.StatusSucceeded, res.Status)
		assert.True(t, res.NewBalance.Equals(money.NewFromInt(500)))
		assert.True(t, fx.sender.Balance().Equals(money.NewFromInt(500)))
		assert.True(t, fx.other.Balance().Equals(money.NewFromInt(2000)))

		event, ok := fx.bus.LastEvent().(*events.TransferCompleted)
		require.True(t, ok, "expected TransferCompleted, got %T", fx.bus.LastEvent())
		assert.Equal(t, "Olha Petrenko", event.RecipientOwner)
	})

	t.Run("recipient not found leaves the sender untouched", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t)

		res := fx.svc.Transfer(ctx, fx.sender, "nonexistent-card", money.NewFromInt(100))
		assert.Equal(t, transaction.StatusRecipientNotFound, res.Status)
		assert.True(t, fx.sender.Balance().Equals(money.NewFromInt(1000)))

		event, ok := fx.bus.LastEvent().(*events.TransferFailed)
		require.True(t, ok, "expected TransferFailed, got %T", fx.bus.LastEvent())
		assert.Equal(t, "recipient not found", event.Reason)
	})

	t.Run("invalid amount", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t)

		res := fx.svc.Transfer(ctx, fx.sender, "98765432", money.NewFromInt(-5))
		assert.Equal(t, transaction.StatusInvalidAmount, res.Status)
		assert.True(t, fx.sender.Balance().Equals(money.NewFromInt(1000)))
		assert.True(t, fx.other.Balance().Equals(money.NewFromInt(1500)))
	})

	t.Run("insufficient funds", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t)

		res := fx.svc.Transfer(ctx, fx.sender, "98765432", money.NewFromInt(5000))
		assert.Equal(t, transaction.StatusInsufficientFunds, res.Status)
		assert.True(t, fx.sender.Balance().Equals(money.NewFromInt(1000)))
		assert.True(t, fx.other.Balance().Equals(money.NewFromInt(1500)))

		event, ok := fx.bus.LastEvent().(*events.TransferFailed)
		require.True(t, ok, "expected TransferFailed, got %T", fx.bus.LastEvent())
		assert.Equal(t, "insufficient funds", event.Reason)
	})

	t.Run("self-transfer reports success with unchanged balance", func(t *testing.T) {
		t.Parallel()
		fx := newFixture(t)

		res := fx.svc.Transfer(ctx, fx.sender, "12345678", money.NewFromInt(300))
		assert.Equal(t, transaction.StatusSucceeded, res.Status)
		assert.True(t, fx.sender.Balance().Equals(money.NewFromInt(1000)))
	})
}

func TestStatusString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "succeeded", transaction.StatusSucceeded.String())
	assert.Equal(t, "invalid amount", transaction.StatusInvalidAmount.String())
	assert.Equal(t, "insufficient funds", transaction.StatusInsufficientFunds.String())
	assert.Equal(t, "recipient not found", transaction.StatusRecipientNotFound.String())
	assert.Equal(t, "unknown", transaction.Status(99).String())
}
