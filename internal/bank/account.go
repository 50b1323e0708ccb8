// Package bank is the bank-account teaching sample built on userio.
package bank

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidAmount     = errors.New("amount must be a finite number")
	ErrNonPositiveAmount = errors.New("amount must be at least 0.01")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Account is a single-owner account. The balance is kept in cents.
type Account struct {
	Owner string
	cents int64
}

// NewAccount opens an empty account for owner.
func NewAccount(owner string) *Account {
	return &Account{Owner: owner}
}

// Deposit adds amount to the balance.
func (a *Account) Deposit(amount float64) error {
	c, err := toCents(amount)
	if err != nil {
		return err
	}
	a.cents += c
	return nil
}

// Withdraw removes amount from the balance. The balance never goes negative.
func (a *Account) Withdraw(amount float64) error {
	c, err := toCents(amount)
	if err != nil {
		return err
	}
	if c > a.cents {
		return fmt.Errorf("%w: balance is %.2f", ErrInsufficientFunds, a.Balance())
	}
	a.cents -= c
	return nil
}

// Balance returns the balance in currency units.
func (a *Account) Balance() float64 {
	return float64(a.cents) / 100
}

// FormatAmount renders amount with a currency symbol and two decimals.
func FormatAmount(currency string, amount float64) string {
	return fmt.Sprintf("%s%.2f", currency, amount)
}

func toCents(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || math.Abs(amount) > math.MaxInt64/100 {
		return 0, ErrInvalidAmount
	}
	c := int64(math.Round(amount * 100))
	if c <= 0 {
		return 0, ErrNonPositiveAmount
	}
	return c, nil
}
