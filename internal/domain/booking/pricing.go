package booking

import "github.com/hotel-desk/service-booking/internal/domain"

// PricingStrategy defines the interface for calculating booking prices.
type PricingStrategy interface {
	// Calculate returns the price of the stay in the room's currency.
	Calculate(params PricingParams) (float64, error)
}

// PricingParams holds the inputs for price calculation.
type PricingParams struct {
	Nights        int
	PricePerNight float64
}

// NightlyPricingStrategy charges the room rate for every night of the stay.
type NightlyPricingStrategy struct{}

// NewNightlyPricingStrategy creates a new NightlyPricingStrategy.
func NewNightlyPricingStrategy() *NightlyPricingStrategy {
	return &NightlyPricingStrategy{}
}

// Calculate computes nights × price per night. A non-positive night count is
// rejected; stored records are not guaranteed to satisfy the stay invariant.
func (s *NightlyPricingStrategy) Calculate(params PricingParams) (float64, error) {
	if params.Nights <= 0 {
		return 0, domain.NewValidationErrorf(domain.ErrInvalidDuration,
			"cannot price a stay of %d nights", params.Nights)
	}
	return float64(params.Nights) * params.PricePerNight, nil
}
