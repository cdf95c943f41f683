// Package currency derives the converted-amount display for the trip's
// pocket-money card. The rate is a fixed configuration constant; there is
// no pair selection and no live rate source.
package currency

import (
	"math"
	"strconv"
	"strings"
)

// DefaultRate is the reference rate the app ships with: 1 PHP ≈ 0.56 TWD.
const DefaultRate = 0.56

// Converter turns raw user input into a display amount at a fixed rate.
type Converter struct {
	rate float64
}

// New returns a converter for the given rate. Non-positive rates fall back
// to DefaultRate.
func New(rate float64) *Converter {
	if rate <= 0 {
		rate = DefaultRate
	}
	return &Converter{rate: rate}
}

// Rate returns the configured rate.
func (c *Converter) Rate() float64 { return c.rate }

// Display converts the raw input text to the rounded display string.
// Empty or non-numeric input degrades to "0" instead of an error; the
// converter card never surfaces a failure.
func (c *Converter) Display(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return "0"
	}
	amount, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "0"
	}
	return strconv.FormatInt(int64(math.Round(amount*c.rate)), 10)
}
