// README: Fare estimator contract and bracketed fare tables.
package pricing

import (
	"errors"
	"fmt"

	"explore/internal/maps"
)

// Estimator prices a single leg. ok is false when the leg cannot be priced.
type Estimator interface {
	Estimate(leg maps.Leg) (amount float64, ok bool)
	// Fields lists the provider response fields Estimate reads.
	Fields() []string
}

// Bracket prices every count up to and including MaxCount.
type Bracket struct {
	MaxCount int
	Price    float64
}

// FareTable is an ordered bracket list. Counts beyond the last bracket pay
// the last price.
type FareTable struct {
	brackets []Bracket
}

var ErrEmptyFareTable = errors.New("fare table has no brackets")

// NewFareTable requires strictly increasing thresholds and non-decreasing
// prices.
func NewFareTable(brackets []Bracket) (FareTable, error) {
	if len(brackets) == 0 {
		return FareTable{}, ErrEmptyFareTable
	}
	for i := 1; i < len(brackets); i++ {
		prev, cur := brackets[i-1], brackets[i]
		if cur.MaxCount <= prev.MaxCount {
			return FareTable{}, fmt.Errorf("bracket %d: threshold %d not above %d", i, cur.MaxCount, prev.MaxCount)
		}
		if cur.Price < prev.Price {
			return FareTable{}, fmt.Errorf("bracket %d: price %.2f below %.2f", i, cur.Price, prev.Price)
		}
	}
	out := make([]Bracket, len(brackets))
	copy(out, brackets)
	return FareTable{brackets: out}, nil
}

// Price returns the fare for count.
func (t FareTable) Price(count int) float64 {
	for _, b := range t.brackets {
		if count <= b.MaxCount {
			return b.Price
		}
	}
	return t.brackets[len(t.brackets)-1].Price
}
