package domain

// BaseCurrency is the reference currency against which catalog prices and
// the conversion table are denominated.
const BaseCurrency = "USD"

// CurrencyConverter converts an amount between two currency codes.
// Unknown codes are treated as the base currency (multiplier 1); conversion
// never fails.
type CurrencyConverter interface {
	// Convert returns amount expressed in the to currency.
	// Convert(x, a, a) must return x unchanged.
	Convert(amount float64, from, to string) float64
}
