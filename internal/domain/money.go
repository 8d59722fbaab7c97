package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Money is an amount in minor currency units (grosze for PLN).
type Money struct {
	Amount   int64
	Currency string
}

func NewMoney(amount int64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, NewInvalidAmountError(strconv.FormatInt(amount, 10))
	}
	if currency == "" {
		return Money{}, fmt.Errorf("currency is required: %w", ErrInvalidAmount)
	}
	return Money{Amount: amount, Currency: strings.ToUpper(currency)}, nil
}

// ParseMoney converts a decimal string such as "15.00" or "12.345" into minor
// units, rounding half up at the second decimal place.
func ParseMoney(raw, currency string) (Money, error) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return Money{}, NewInvalidAmountError(raw)
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	if !isDigits(whole) || (frac != "" && !isDigits(frac)) {
		return Money{}, NewInvalidAmountError(raw)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, NewInvalidAmountError(raw)
	}

	frac += "000"
	cents, _ := strconv.ParseInt(frac[:2], 10, 64)
	if frac[2] >= '5' {
		cents++
	}

	return NewMoney(units*100+cents, currency)
}

// Mul returns m multiplied by a non-negative count.
func (m Money) Mul(n int) Money {
	return Money{Amount: m.Amount * int64(n), Currency: m.Currency}
}

func (m Money) IsZero() bool {
	return m.Amount == 0
}

// Decimal renders the amount with two decimal places, e.g. "15.00".
func (m Money) Decimal() string {
	return fmt.Sprintf("%d.%02d", m.Amount/100, m.Amount%100)
}

func (m Money) String() string {
	return m.Decimal() + " " + m.Currency
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
