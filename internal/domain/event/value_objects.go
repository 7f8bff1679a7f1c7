package event

import (
	"errors"
	"math"
)

var (
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrInvalidPrice  = errors.New("price is not a valid amount")
)

// MaxPrice mirrors the NUMERIC(10,2) column.
const MaxPrice = 99999999.99

// Price is a non-negative amount kept at cent precision.
type Price struct {
	value float64
}

func NewPrice(v float64) (Price, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v > MaxPrice {
		return Price{}, ErrInvalidPrice
	}
	if v < 0 {
		return Price{}, ErrNegativePrice
	}
	return Price{value: math.Round(v*100) / 100}, nil
}

func (p Price) Value() float64 {
	return p.value
}

func (p Price) IsFree() bool {
	return p.value == 0
}
