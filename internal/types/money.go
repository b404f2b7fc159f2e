// README: Common money value object used across modules.
package types

import "math"

// Money is a fare amount in major currency units (patacas, HK dollars).
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Rounded returns the amount rounded to cents.
func (m Money) Rounded() Money {
	return Money{Amount: math.Round(m.Amount*100) / 100, Currency: m.Currency}
}
