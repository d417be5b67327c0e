package domain

// TemporaryBooking is the in-progress, not-yet-confirmed state of a booking
// being assembled across UI steps. AddOnsTotal and TotalPrice are derived
// fields; they are recomputed by every Aggregator mutator before it returns,
// so the invariant TotalPrice == BasePrice + AddOnsTotal holds at all times.
type TemporaryBooking struct {
	Passengers []PassengerInfo `json:"passengers"`

	// SelectedAddOns is the set of chosen add-on ids (insertion order kept
	// for display, but membership is what matters)
	SelectedAddOns []string `json:"selectedAddOns"`

	// SelectedInsurance is the single chosen insurance tier id, nil when none
	SelectedInsurance *string `json:"selectedInsurance"`

	// BasePrice is the fare in Currency before add-ons
	BasePrice float64 `json:"basePrice"`

	// Currency is the ISO 4217 code all monetary fields are expressed in
	Currency string `json:"currency"`

	// AddOnsTotal is the converted sum of selected add-ons and insurance, in Currency
	AddOnsTotal float64 `json:"addOnsTotal"`

	// TotalPrice is BasePrice + AddOnsTotal, in Currency
	TotalPrice float64 `json:"totalPrice"`
}

// NewTemporaryBooking returns the empty initial state.
func NewTemporaryBooking() *TemporaryBooking {
	return &TemporaryBooking{
		Passengers:     []PassengerInfo{},
		SelectedAddOns: []string{},
		Currency:       BaseCurrency,
	}
}

// Aggregator applies booking mutations and keeps derived totals consistent.
// It owns the immutable catalogs and the currency converter; the booking
// state itself is plain data so it can be stored and serialized freely.
// Instantiate one per test or share one process-wide; it holds no per-booking
// state and its methods assume the caller serializes access to any one
// TemporaryBooking (single-writer discipline).
type Aggregator struct {
	addOns    Catalog
	insurance Catalog
	convert   CurrencyConverter
}

// NewAggregator creates an Aggregator over the given catalogs and converter.
func NewAggregator(addOns, insurance Catalog, convert CurrencyConverter) *Aggregator {
	return &Aggregator{
		addOns:    addOns,
		insurance: insurance,
		convert:   convert,
	}
}

// SetBasePrice replaces the base fare and currency, then recomputes totals.
// A negative price degrades to zero rather than erroring; this backs a
// user-facing form and must never abort the flow.
func (a *Aggregator) SetBasePrice(b *TemporaryBooking, price float64, currency string) {
	if price < 0 {
		price = 0
	}
	if currency == "" {
		currency = BaseCurrency
	}
	b.BasePrice = price
	b.Currency = currency
	a.recompute(b)
}

// UpdatePassengers replaces the passenger list verbatim. Passengers have no
// price effect, but totals are recomputed anyway so every mutator follows
// the same discipline.
func (a *Aggregator) UpdatePassengers(b *TemporaryBooking, passengers []PassengerInfo) {
	if passengers == nil {
		passengers = []PassengerInfo{}
	}
	b.Passengers = passengers
	a.recompute(b)
}

// UpdateAddOns replaces the selected add-on id set and recomputes totals.
// Ids not present in the catalog are kept in the selection but contribute
// zero to the total; a repeated id is priced once, membership is what counts.
func (a *Aggregator) UpdateAddOns(b *TemporaryBooking, ids []string) {
	if ids == nil {
		ids = []string{}
	}
	b.SelectedAddOns = ids
	a.recompute(b)
}

// UpdateInsurance replaces the selected insurance tier, or clears it when
// id is nil. At most one tier contributes to the total.
func (a *Aggregator) UpdateInsurance(b *TemporaryBooking, id *string) {
	b.SelectedInsurance = id
	a.recompute(b)
}

// CalculateTotalPrice recomputes the derived totals and returns the new
// total. Calling it with no intervening mutation is a no-op on the state.
func (a *Aggregator) CalculateTotalPrice(b *TemporaryBooking) float64 {
	a.recompute(b)
	return b.TotalPrice
}

// Reset restores the empty initial state in place.
func (a *Aggregator) Reset(b *TemporaryBooking) {
	*b = *NewTemporaryBooking()
}

// recompute rebuilds AddOnsTotal and TotalPrice from the current inputs.
// Catalog prices are converted from the base currency into the booking
// currency per item. The selection is a set: unknown ids are skipped and a
// duplicated id counts once.
func (a *Aggregator) recompute(b *TemporaryBooking) {
	var total float64

	seen := make(map[string]struct{}, len(b.SelectedAddOns))
	for _, id := range b.SelectedAddOns {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if item, ok := a.addOns.Find(id); ok {
			total += a.convert.Convert(item.BasePrice, BaseCurrency, b.Currency)
		}
	}

	if b.SelectedInsurance != nil {
		if item, ok := a.insurance.Find(*b.SelectedInsurance); ok {
			total += a.convert.Convert(item.BasePrice, BaseCurrency, b.Currency)
		}
	}

	b.AddOnsTotal = total
	b.TotalPrice = b.BasePrice + b.AddOnsTotal
}
