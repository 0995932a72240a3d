package bank_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"minibank/internal/bank"
	"minibank/internal/domain"
)

// openTestAccount returns a fresh zero-balance account owned by a new user.
func openTestAccount(t *testing.T) *bank.Account {
	t.Helper()
	b := bank.New("Test Bank")
	u := b.CreateUser("Alice")
	number := u.OpenAccount()
	a, err := u.Account(number)
	if err != nil {
		t.Fatalf("Account: %v", err)
	}
	return a
}

func TestAccount_Deposit_IncreasesBalance(t *testing.T) {
	a := openTestAccount(t)

	if err := a.Deposit(decimal.NewFromInt(100)); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if got, want := a.Balance(), decimal.NewFromInt(100); !got.Equal(want) {
		t.Fatalf("balance = %s, want %s", got, want)
	}

	if err := a.Deposit(decimal.RequireFromString("0.25")); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if got, want := a.Balance(), decimal.RequireFromString("100.25"); !got.Equal(want) {
		t.Fatalf("balance = %s, want %s", got, want)
	}
}

func TestAccount_Deposit_RejectsNonPositive(t *testing.T) {
	a := openTestAccount(t)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		if err := a.Deposit(amount); !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("Deposit(%s) = %v, want ErrInvalidAmount", amount, err)
		}
	}
	if !a.Balance().IsZero() {
		t.Fatalf("balance changed by failed deposit: %s", a.Balance())
	}
	if len(a.Transactions()) != 0 {
		t.Fatalf("failed deposit recorded a transaction")
	}
}

func TestAccount_Withdraw_DecreasesBalance(t *testing.T) {
	a := openTestAccount(t)
	if err := a.Deposit(decimal.NewFromInt(100)); err != nil {
		t.Fatalf("Deposit: %v", err)
	}

	if err := a.Withdraw(decimal.NewFromInt(30)); err != nil {
		t.Fatalf("Withdraw: %v", err)
	}
	if got, want := a.Balance(), decimal.NewFromInt(70); !got.Equal(want) {
		t.Fatalf("balance = %s, want %s", got, want)
	}
}

func TestAccount_Withdraw_RejectsNonPositive(t *testing.T) {
	a := openTestAccount(t)
	if err := a.Deposit(decimal.NewFromInt(50)); err != nil {
		t.Fatalf("Deposit: %v", err)
	}

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-1)} {
		if err := a.Withdraw(amount); !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("Withdraw(%s) = %v, want ErrInvalidAmount", amount, err)
		}
	}
	if got, want := a.Balance(), decimal.NewFromInt(50); !got.Equal(want) {
		t.Fatalf("balance changed by failed withdrawal: %s", got)
	}
}

func TestAccount_Withdraw_InsufficientFunds(t *testing.T) {
	a := openTestAccount(t)
	if err := a.Deposit(decimal.NewFromInt(70)); err != nil {
		t.Fatalf("Deposit: %v", err)
	}

	if err := a.Withdraw(decimal.NewFromInt(1000)); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("Withdraw = %v, want ErrInsufficientFunds", err)
	}
	if got, want := a.Balance(), decimal.NewFromInt(70); !got.Equal(want) {
		t.Fatalf("balance = %s, want %s", got, want)
	}
}

func TestAccount_Statement_RecordsOperations(t *testing.T) {
	a := openTestAccount(t)

	if err := a.Deposit(decimal.NewFromInt(100)); err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if err := a.Withdraw(decimal.NewFromInt(30)); err != nil {
		t.Fatalf("Withdraw: %v", err)
	}
	// Failed operations must not appear on the statement.
	_ = a.Withdraw(decimal.NewFromInt(1000))

	txs := a.Transactions()
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}
	if txs[0].Kind != domain.TxDeposit || !txs[0].Amount.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected first entry: %+v", txs[0])
	}
	if txs[1].Kind != domain.TxWithdrawal || !txs[1].BalanceAfter.Equal(decimal.NewFromInt(70)) {
		t.Fatalf("unexpected second entry: %+v", txs[1])
	}
}
