package pricing

import (
	"math"

	"github.com/pkg/errors"
)

// ErrNotFinite is returned when price or sales is NaN or infinite.
var ErrNotFinite = errors.New("value must be a finite number")

const (
	lowSales  = 500
	highSales = 1200
	lowPrice  = 30
	highPrice = 80
)

// Tier is the adjustment bracket a product falls into.
type Tier int

const (
	TierLow Tier = iota
	TierMid
	TierHigh
)

// Rate returns the relative price change of the tier.
func (t Tier) Rate() float64 {
	switch t {
	case TierLow:
		return 0.10
	case TierMid:
		return 0.15
	default:
		return -0.20
	}
}

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMid:
		return "mid"
	default:
		return "high"
	}
}

// Quote is a computed price adjustment.
type Quote struct {
	Price    float64
	Sales    float64
	Tier     Tier
	NewPrice float64
}

// Classify picks the tier for a product. The checks run in order, so
// the first matching bracket wins.
func Classify(price, sales float64) Tier {
	switch {
	case sales < lowSales || price < lowPrice:
		return TierLow
	case sales < highSales || price < highPrice:
		// sales >= lowSales and price >= lowPrice hold here
		return TierMid
	default:
		return TierHigh
	}
}

// Adjust applies the tier rate to price.
func Adjust(price, sales float64) (Quote, error) {
	if !finite(price) {
		return Quote{}, errors.Wrapf(ErrNotFinite, "price %v", price)
	}
	if !finite(sales) {
		return Quote{}, errors.Wrapf(ErrNotFinite, "sales %v", sales)
	}

	tier := Classify(price, sales)
	return Quote{
		Price:    price,
		Sales:    sales,
		Tier:     tier,
		NewPrice: price + tier.Rate()*price,
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
