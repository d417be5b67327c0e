package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRates is a fixed conversion table for aggregator tests.
// Multipliers are relative to USD; unknown codes behave as USD.
type testRates map[string]float64

func (r testRates) Convert(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}
	mult := func(code string) float64 {
		if m, ok := r[code]; ok && m > 0 {
			return m
		}
		return 1
	}
	return amount * (mult(to) / mult(from))
}

func testAggregator() *Aggregator {
	addOns := Catalog{
		{ID: "extra-baggage", Name: "Extra Baggage", BasePrice: 35},
		{ID: "seat-selection", Name: "Seat Selection", BasePrice: 12},
		{ID: "free-addon", Name: "Free Add-on", BasePrice: 0},
	}
	insurance := Catalog{
		{ID: "delay-basic", Name: "Basic", BasePrice: 10},
		{ID: "delay-premium", Name: "Premium", BasePrice: 35},
	}
	rates := testRates{"USD": 1, "EUR": 0.5, "IDR": 16000}
	return NewAggregator(addOns, insurance, rates)
}

// assertInvariant checks the core pricing invariant: the total is always
// the base price plus the derived add-ons total.
func assertInvariant(t *testing.T, b *TemporaryBooking) {
	t.Helper()
	assert.Equal(t, b.BasePrice+b.AddOnsTotal, b.TotalPrice,
		"totalPrice must equal basePrice + addOnsTotal")
}

func TestNewTemporaryBooking_EmptyState(t *testing.T) {
	b := NewTemporaryBooking()

	assert.Empty(t, b.Passengers)
	assert.Empty(t, b.SelectedAddOns)
	assert.Nil(t, b.SelectedInsurance)
	assert.Equal(t, 0.0, b.BasePrice)
	assert.Equal(t, "USD", b.Currency)
	assert.Equal(t, 0.0, b.AddOnsTotal)
	assert.Equal(t, 0.0, b.TotalPrice)
}

func TestAggregator_SetBasePrice(t *testing.T) {
	tests := []struct {
		name         string
		price        float64
		currency     string
		wantPrice    float64
		wantCurrency string
	}{
		{
			name:         "positive price",
			price:        500,
			currency:     "USD",
			wantPrice:    500,
			wantCurrency: "USD",
		},
		{
			name:         "negative price degrades to zero",
			price:        -100,
			currency:     "USD",
			wantPrice:    0,
			wantCurrency: "USD",
		},
		{
			name:         "empty currency defaults to base",
			price:        250,
			currency:     "",
			wantPrice:    250,
			wantCurrency: "USD",
		},
		{
			name:         "foreign currency",
			price:        8000000,
			currency:     "IDR",
			wantPrice:    8000000,
			wantCurrency: "IDR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := testAggregator()
			b := NewTemporaryBooking()

			agg.SetBasePrice(b, tt.price, tt.currency)

			assert.Equal(t, tt.wantPrice, b.BasePrice)
			assert.Equal(t, tt.wantCurrency, b.Currency)
			assertInvariant(t, b)
		})
	}
}

func TestAggregator_UpdateAddOns(t *testing.T) {
	tests := []struct {
		name       string
		ids        []string
		wantAddOns float64
	}{
		{
			name:       "no add-ons",
			ids:        []string{},
			wantAddOns: 0,
		},
		{
			name:       "single add-on",
			ids:        []string{"extra-baggage"},
			wantAddOns: 35,
		},
		{
			name:       "multiple add-ons",
			ids:        []string{"extra-baggage", "seat-selection"},
			wantAddOns: 47,
		},
		{
			name:       "zero-price add-on",
			ids:        []string{"free-addon"},
			wantAddOns: 0,
		},
		{
			name:       "unknown id contributes zero",
			ids:        []string{"not-a-real-id"},
			wantAddOns: 0,
		},
		{
			name:       "unknown id mixed with known",
			ids:        []string{"extra-baggage", "not-a-real-id"},
			wantAddOns: 35,
		},
		{
			name:       "duplicated id priced once",
			ids:        []string{"extra-baggage", "extra-baggage"},
			wantAddOns: 35,
		},
		{
			name:       "duplicates mixed with distinct ids",
			ids:        []string{"seat-selection", "extra-baggage", "seat-selection"},
			wantAddOns: 47,
		},
		{
			name:       "nil replaces with empty set",
			ids:        nil,
			wantAddOns: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := testAggregator()
			b := NewTemporaryBooking()
			agg.SetBasePrice(b, 100, "USD")

			agg.UpdateAddOns(b, tt.ids)

			assert.Equal(t, tt.wantAddOns, b.AddOnsTotal)
			assert.Equal(t, 100+tt.wantAddOns, b.TotalPrice)
			assertInvariant(t, b)
		})
	}
}

func TestAggregator_UpdateAddOns_ReplacesNotAppends(t *testing.T) {
	agg := testAggregator()
	b := NewTemporaryBooking()
	agg.SetBasePrice(b, 100, "USD")

	agg.UpdateAddOns(b, []string{"extra-baggage", "seat-selection"})
	require.Equal(t, 47.0, b.AddOnsTotal)

	// Shrinking the selection must discard the earlier set entirely.
	agg.UpdateAddOns(b, []string{"seat-selection"})
	assert.Equal(t, 12.0, b.AddOnsTotal)
	assert.Equal(t, []string{"seat-selection"}, b.SelectedAddOns)
	assertInvariant(t, b)
}

func TestAggregator_UpdateInsurance(t *testing.T) {
	basic := "delay-basic"
	premium := "delay-premium"
	unknown := "platinum-cover"

	agg := testAggregator()
	b := NewTemporaryBooking()
	agg.SetBasePrice(b, 200, "USD")

	agg.UpdateInsurance(b, &basic)
	assert.Equal(t, 10.0, b.AddOnsTotal)
	assertInvariant(t, b)

	// Tiers are mutually exclusive: selecting another replaces the first.
	agg.UpdateInsurance(b, &premium)
	assert.Equal(t, 35.0, b.AddOnsTotal)
	assertInvariant(t, b)

	agg.UpdateInsurance(b, &unknown)
	assert.Equal(t, 0.0, b.AddOnsTotal, "unknown tier contributes zero")
	assertInvariant(t, b)

	agg.UpdateInsurance(b, nil)
	assert.Nil(t, b.SelectedInsurance)
	assert.Equal(t, 0.0, b.AddOnsTotal)
	assertInvariant(t, b)
}

func TestAggregator_InsuranceAndAddOnsCombine(t *testing.T) {
	basic := "delay-basic"

	agg := testAggregator()
	b := NewTemporaryBooking()

	agg.SetBasePrice(b, 300, "USD")
	agg.UpdateAddOns(b, []string{"extra-baggage", "seat-selection"})
	agg.UpdateInsurance(b, &basic)

	assert.Equal(t, 57.0, b.AddOnsTotal) // 35 + 12 + 10
	assert.Equal(t, 357.0, b.TotalPrice)
	assertInvariant(t, b)
}

func TestAggregator_CurrencyChangeReconverts(t *testing.T) {
	agg := testAggregator()
	b := NewTemporaryBooking()

	agg.UpdateAddOns(b, []string{"extra-baggage"})
	require.Equal(t, 35.0, b.AddOnsTotal)

	// Switching the booking currency reprices the same selection in the
	// new currency on the very same call.
	agg.SetBasePrice(b, 100, "EUR")
	assert.Equal(t, 17.5, b.AddOnsTotal) // 35 USD at 0.5 EUR/USD
	assert.Equal(t, 117.5, b.TotalPrice)
	assertInvariant(t, b)

	agg.SetBasePrice(b, 1600000, "IDR")
	assert.Equal(t, 560000.0, b.AddOnsTotal) // 35 USD at 16000 IDR/USD
	assertInvariant(t, b)
}

func TestAggregator_UpdatePassengers_NoPriceEffect(t *testing.T) {
	agg := testAggregator()
	b := NewTemporaryBooking()
	agg.SetBasePrice(b, 150, "USD")
	agg.UpdateAddOns(b, []string{"seat-selection"})

	agg.UpdatePassengers(b, []PassengerInfo{
		{FirstName: "Ayu", LastName: "Lestari", Type: PassengerAdult, Gender: GenderFemale},
		{FirstName: "Budi", LastName: "Lestari", Type: PassengerChild, Gender: GenderMale},
	})

	assert.Len(t, b.Passengers, 2)
	assert.Equal(t, 162.0, b.TotalPrice)
	assertInvariant(t, b)

	agg.UpdatePassengers(b, nil)
	assert.Empty(t, b.Passengers)
	assertInvariant(t, b)
}

func TestAggregator_CalculateTotalPrice_Idempotent(t *testing.T) {
	basic := "delay-basic"

	agg := testAggregator()
	b := NewTemporaryBooking()
	agg.SetBasePrice(b, 420, "USD")
	agg.UpdateAddOns(b, []string{"extra-baggage"})
	agg.UpdateInsurance(b, &basic)

	first := agg.CalculateTotalPrice(b)
	second := agg.CalculateTotalPrice(b)

	assert.Equal(t, first, second)
	assert.Equal(t, 465.0, second)
	assert.Equal(t, second, b.TotalPrice)
	assertInvariant(t, b)
}

func TestAggregator_InvariantAfterMutatorSequences(t *testing.T) {
	basic := "delay-basic"
	premium := "delay-premium"

	agg := testAggregator()
	b := NewTemporaryBooking()

	// Any interleaving of mutators must leave the invariant intact.
	steps := []func(){
		func() { agg.SetBasePrice(b, 900, "USD") },
		func() { agg.UpdateAddOns(b, []string{"extra-baggage", "bogus"}) },
		func() { agg.UpdateInsurance(b, &basic) },
		func() { agg.SetBasePrice(b, 450, "EUR") },
		func() { agg.UpdateAddOns(b, []string{"seat-selection"}) },
		func() { agg.UpdateInsurance(b, &premium) },
		func() { agg.UpdateInsurance(b, nil) },
		func() { agg.SetBasePrice(b, 0, "USD") },
	}

	for _, step := range steps {
		step()
		assertInvariant(t, b)
	}
}

func TestAggregator_Reset(t *testing.T) {
	basic := "delay-basic"

	agg := testAggregator()
	b := NewTemporaryBooking()
	agg.SetBasePrice(b, 1000, "EUR")
	agg.UpdateAddOns(b, []string{"extra-baggage"})
	agg.UpdateInsurance(b, &basic)
	agg.UpdatePassengers(b, []PassengerInfo{{FirstName: "Ayu", LastName: "Lestari"}})

	agg.Reset(b)
	first := *b

	agg.Reset(b)
	second := *b

	// Resetting twice in a row yields the identical empty state both times.
	assert.Equal(t, *NewTemporaryBooking(), first)
	assert.Equal(t, first, second)
}
