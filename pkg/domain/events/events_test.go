package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olekv/atmsim/pkg/domain/events"
	"github.com/olekv/atmsim/pkg/money"
)

func TestEventTypes(t *testing.T) {
	t.Parallel()
	amount := money.NewFromInt(100)
	balance := money.NewFromInt(900)

	testCases := []struct {
		name     string
		event    events.Event
		wantType events.EventType
	}{
		{"login succeeded", events.NewLoginSucceeded("1", "Ivan Ivanov"), events.EventTypeLoginSucceeded},
		{"login failed", events.NewLoginFailed("1"), events.EventTypeLoginFailed},
		{"balance checked", events.NewBalanceChecked("1", balance), events.EventTypeBalanceChecked},
		{"withdraw completed", events.NewWithdrawCompleted("1", amount, balance), events.EventTypeWithdrawCompleted},
		{"withdraw failed", events.NewWithdrawFailed("1", amount, "insufficient funds"), events.EventTypeWithdrawFailed},
		{"transfer completed", events.NewTransferCompleted("1", "2", "B", amount, balance), events.EventTypeTransferCompleted},
		{"transfer failed", events.NewTransferFailed("1", "2", amount, "recipient not found"), events.EventTypeTransferFailed},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantType.String(), tc.event.Type())
			assert.NotEmpty(t, tc.event.Message())
		})
	}
}

// TestFailureMessagesStayDistinct guards the contract that "invalid amount",
// "insufficient funds", and "recipient not found" remain materially different
// notifications and are never collapsed into one generic failure string.
func TestFailureMessagesStayDistinct(t *testing.T) {
	t.Parallel()
	amount := money.NewFromInt(100)

	invalidAmount := events.NewWithdrawFailed("1", amount, "invalid amount").Message()
	insufficient := events.NewWithdrawFailed("1", amount, "insufficient funds").Message()
	notFound := events.NewTransferFailed("1", "2", amount, "recipient not found").Message()

	assert.NotEqual(t, invalidAmount, insufficient)
	assert.NotEqual(t, insufficient, notFound)
	assert.NotEqual(t, invalidAmount, notFound)

	assert.Contains(t, invalidAmount, "invalid amount")
	assert.Contains(t, insufficient, "insufficient funds")
	assert.Contains(t, notFound, "recipient not found")
}

func TestOccurrenceIdentity(t *testing.T) {
	t.Parallel()
	a := events.NewLoginFailed("1")
	b := events.NewLoginFailed("1")
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.Timestamp.IsZero())
}

func TestMessages(t *testing.T) {
	t.Parallel()

	e := events.NewWithdrawCompleted("1", money.NewFromInt(2000), money.NewFromInt(3000))
	assert.Equal(t, "Successfully withdrew 2000. New balance: 3000", e.Message())

	tr := events.NewTransferCompleted("1", "2", "Olha Petrenko", money.NewFromInt(500), money.NewFromInt(4500))
	assert.Contains(t, tr.Message(), "Olha Petrenko")
	assert.Contains(t, tr.Message(), "500")
}
