package account

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payments-replay-engine/internal/domain/money"
	"github.com/payments-replay-engine/internal/domain/shared"
)

func TestNew(t *testing.T) {
	acc := New(7)

	assert.Equal(t, shared.ClientID(7), acc.Client)
	assert.Equal(t, money.Money(0), acc.Available)
	assert.Equal(t, money.Money(0), acc.Held)
	assert.False(t, acc.Locked)
}

func TestAccount_Deposit(t *testing.T) {
	t.Run("FreshAccount", func(t *testing.T) {
		acc := New(1)

		err := acc.Deposit(50_000)

		require.NoError(t, err)
		assert.Equal(t, money.Money(50_000), acc.Available)
		assert.Equal(t, money.Money(0), acc.Held)
		assert.False(t, acc.Locked)
	})

	t.Run("LockedAccount", func(t *testing.T) {
		acc := New(1)
		acc.Locked = true

		err := acc.Deposit(50_000)

		assert.ErrorIs(t, err, ErrLockedAccount)
		assert.Equal(t, money.Money(0), acc.Available)
	})

	t.Run("Overflow", func(t *testing.T) {
		acc := New(1)
		acc.Available = math.MaxInt64

		err := acc.Deposit(1)

		assert.ErrorIs(t, err, money.ErrOverflow)
		assert.Equal(t, money.Money(math.MaxInt64), acc.Available, "failed deposit must not mutate state")
	})
}

func TestAccount_Withdraw(t *testing.T) {
	t.Run("SufficientFunds", func(t *testing.T) {
		acc := New(1)
		acc.Available = 50_000

		err := acc.Withdraw(15_000)

		require.NoError(t, err)
		assert.Equal(t, money.Money(35_000), acc.Available)
	})

	t.Run("ExactBalance", func(t *testing.T) {
		acc := New(1)
		acc.Available = 50_000

		err := acc.Withdraw(50_000)

		require.NoError(t, err)
		assert.Equal(t, money.Money(0), acc.Available)
	})

	t.Run("InsufficientFunds", func(t *testing.T) {
		acc := New(1)
		acc.Available = 10_000

		err := acc.Withdraw(10_001)

		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.Equal(t, money.Money(10_000), acc.Available, "failed withdrawal must leave state unchanged")
		assert.Equal(t, money.Money(0), acc.Held)
		assert.False(t, acc.Locked)
	})

	t.Run("LockedAccount", func(t *testing.T) {
		acc := New(1)
		acc.Available = 50_000
		acc.Locked = true

		err := acc.Withdraw(1)

		assert.ErrorIs(t, err, ErrLockedAccount)
		assert.Equal(t, money.Money(50_000), acc.Available)
	})
}

func TestAccount_Dispute(t *testing.T) {
	t.Run("MovesAvailableToHeld", func(t *testing.T) {
		acc := New(1)
		acc.Available = 50_000

		err := acc.Dispute(50_000)

		require.NoError(t, err)
		assert.Equal(t, money.Money(0), acc.Available)
		assert.Equal(t, money.Money(50_000), acc.Held)

		total, err := acc.Total()
		require.NoError(t, err)
		assert.Equal(t, money.Money(50_000), total, "dispute must leave total unchanged")
	})

	t.Run("AvailableMayGoNegative", func(t *testing.T) {
		acc := New(1)
		acc.Available = 20_000

		err := acc.Dispute(50_000)

		require.NoError(t, err)
		assert.Equal(t, money.Money(-30_000), acc.Available)
		assert.Equal(t, money.Money(50_000), acc.Held)
	})

	t.Run("NotLockedChecked", func(t *testing.T) {
		acc := New(1)
		acc.Available = 50_000
		acc.Locked = true

		err := acc.Dispute(50_000)

		require.NoError(t, err, "dispute deliberately ignores the locked flag")
		assert.Equal(t, money.Money(50_000), acc.Held)
	})

	t.Run("HeldOverflow", func(t *testing.T) {
		acc := New(1)
		acc.Held = math.MaxInt64

		err := acc.Dispute(1)

		assert.ErrorIs(t, err, money.ErrOverflow)
		assert.Equal(t, money.Money(0), acc.Available, "failed dispute must not partially commit")
		assert.Equal(t, money.Money(math.MaxInt64), acc.Held)
	})
}

func TestAccount_Resolve(t *testing.T) {
	t.Run("ReversesDispute", func(t *testing.T) {
		acc := New(1)
		acc.Available = 30_000
		require.NoError(t, acc.Dispute(30_000))

		err := acc.Resolve(30_000)

		require.NoError(t, err)
		assert.Equal(t, money.Money(30_000), acc.Available)
		assert.Equal(t, money.Money(0), acc.Held)
		assert.False(t, acc.Locked)
	})

	t.Run("AvailableOverflow", func(t *testing.T) {
		acc := New(1)
		acc.Available = math.MaxInt64
		acc.Held = 10

		err := acc.Resolve(10)

		assert.ErrorIs(t, err, money.ErrOverflow)
		assert.Equal(t, money.Money(10), acc.Held, "failed resolve must not partially commit")
	})
}

func TestAccount_Chargeback(t *testing.T) {
	t.Run("RemovesHeldAndLocks", func(t *testing.T) {
		acc := New(1)
		acc.Available = 30_000
		require.NoError(t, acc.Dispute(30_000))

		err := acc.Chargeback(30_000)

		require.NoError(t, err)
		assert.Equal(t, money.Money(0), acc.Available)
		assert.Equal(t, money.Money(0), acc.Held)
		assert.True(t, acc.Locked)
	})

	t.Run("SubsequentDepositAndWithdrawalFail", func(t *testing.T) {
		acc := New(1)
		acc.Available = 30_000
		require.NoError(t, acc.Dispute(30_000))
		require.NoError(t, acc.Chargeback(30_000))

		assert.ErrorIs(t, acc.Deposit(1), ErrLockedAccount)
		assert.ErrorIs(t, acc.Withdraw(1), ErrLockedAccount)
	})
}
