package http

import "regexp"

// currencyPattern matches ISO 4217 currency codes (3 uppercase letters).
var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts the errors to a field -> message map for the response body.
func (v *ValidationErrors) ToMap() map[string]string {
	m := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		if _, ok := m[e.Field]; !ok {
			m[e.Field] = e.Message
		}
	}
	return m
}

// Validate checks the set-price request.
// The pricing core would degrade a negative price to zero on its own, but
// the API rejects it outright so clients learn about the bug.
func (r *SetPriceRequest) Validate() error {
	v := &ValidationErrors{}

	if r.BasePrice < 0 {
		v.Add("basePrice", "basePrice must not be negative")
	}
	if r.Currency != "" && !currencyPattern.MatchString(r.Currency) {
		v.Add("currency", "currency must be a 3-letter ISO 4217 code")
	}

	if v.HasErrors() {
		return v
	}
	return nil
}

// Validate checks the flight selection request. Only shape is validated:
// the engine does not check offer provenance, and malformed clock strings
// degrade to zero-length layovers rather than erroring.
func (r *SelectFlightRequest) Validate() error {
	v := &ValidationErrors{}

	if len(r.Segments) == 0 {
		v.Add("segments", "at least one segment is required")
	}
	if r.Currency != "" && !currencyPattern.MatchString(r.Currency) {
		v.Add("currency", "currency must be a 3-letter ISO 4217 code")
	}

	if v.HasErrors() {
		return v
	}
	return nil
}
