package domain

// CatalogItem is a purchasable add-on or insurance tier.
// Items are loaded once at startup and never mutated at runtime.
type CatalogItem struct {
	// ID is the unique identifier within its catalog (e.g., "extra-baggage")
	ID string `json:"id"`

	// Name is the display name (e.g., "Extra Baggage 20kg")
	Name string `json:"name"`

	// Description is a short human-readable description
	Description string `json:"description"`

	// BasePrice is the price denominated in the base currency (USD)
	BasePrice float64 `json:"basePrice"`
}

// Catalog is an immutable list of catalog items.
type Catalog []CatalogItem

// Find returns the item with the given id, or false if no such item exists.
// Callers treat a miss as a zero contribution, not an error.
func (c Catalog) Find(id string) (CatalogItem, bool) {
	for _, item := range c {
		if item.ID == id {
			return item, true
		}
	}
	return CatalogItem{}, false
}

// IDs returns the ids of all items in catalog order.
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for _, item := range c {
		ids = append(ids, item.ID)
	}
	return ids
}

// DefaultAddOns returns the built-in add-on catalog.
// Prices are in the base currency.
func DefaultAddOns() Catalog {
	return Catalog{
		{ID: "extra-baggage", Name: "Extra Baggage 20kg", Description: "One additional checked bag up to 20kg", BasePrice: 35},
		{ID: "seat-selection", Name: "Seat Selection", Description: "Pick your preferred seat before check-in", BasePrice: 12},
		{ID: "priority-boarding", Name: "Priority Boarding", Description: "Board ahead of general boarding groups", BasePrice: 8},
		{ID: "inflight-meal", Name: "In-flight Meal", Description: "Pre-ordered hot meal served on board", BasePrice: 15},
		{ID: "lounge-access", Name: "Airport Lounge Access", Description: "Departure lounge access with refreshments", BasePrice: 40},
	}
}

// DefaultInsurance returns the built-in flight-delay insurance tiers.
// At most one tier can be attached to a booking.
func DefaultInsurance() Catalog {
	return Catalog{
		{ID: "delay-basic", Name: "Basic Delay Cover", Description: "Compensation for delays over 4 hours", BasePrice: 10},
		{ID: "delay-standard", Name: "Standard Delay Cover", Description: "Compensation for delays over 2 hours plus meal vouchers", BasePrice: 20},
		{ID: "delay-premium", Name: "Premium Delay Cover", Description: "Compensation for any delay over 1 hour, hotel included", BasePrice: 35},
	}
}
