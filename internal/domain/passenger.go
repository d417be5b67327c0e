package domain

import (
	"fmt"
	"regexp"
)

// Gender is the passenger's declared gender.
type Gender string

// Allowed gender values.
const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// IsValid checks if the gender is an allowed value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// PassengerType classifies a passenger for fare purposes.
type PassengerType string

// Allowed passenger types.
const (
	PassengerAdult  PassengerType = "ADULT"
	PassengerChild  PassengerType = "CHILD"
	PassengerInfant PassengerType = "INFANT"
)

// IsValid checks if the passenger type is an allowed value.
func (t PassengerType) IsValid() bool {
	switch t {
	case PassengerAdult, PassengerChild, PassengerInfant:
		return true
	default:
		return false
	}
}

// PassengerInfo holds the details captured by the passenger form.
// It is created once per passenger and only ever replaced wholesale,
// never field-patched, within a single booking flow.
type PassengerInfo struct {
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	DateOfBirth     string        `json:"dateOfBirth"`
	Gender          Gender        `json:"gender"`
	Type            PassengerType `json:"type"`
	PassportNumber  string        `json:"passportNumber,omitempty"`
	Nationality     string        `json:"nationality,omitempty"`
	Email           string        `json:"email,omitempty"`
	Phone           string        `json:"phone,omitempty"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
}

// dobPattern matches dates of birth in YYYY-MM-DD format.
var dobPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Validate checks the passenger details captured at the HTTP boundary.
// Returns a wrapped ErrInvalidRequest error if validation fails.
// The pricing core itself never validates passengers; they have no price effect.
func (p *PassengerInfo) Validate() error {
	if p.FirstName == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidRequest)
	}
	if p.LastName == "" {
		return fmt.Errorf("%w: lastName is required", ErrInvalidRequest)
	}
	if p.DateOfBirth != "" && !dobPattern.MatchString(p.DateOfBirth) {
		return fmt.Errorf("%w: dateOfBirth must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, p.DateOfBirth)
	}
	if p.Gender != "" && !p.Gender.IsValid() {
		return fmt.Errorf("%w: gender must be one of: MALE, FEMALE, OTHER; got %q", ErrInvalidRequest, p.Gender)
	}
	if p.Type != "" && !p.Type.IsValid() {
		return fmt.Errorf("%w: type must be one of: ADULT, CHILD, INFANT; got %q", ErrInvalidRequest, p.Type)
	}
	return nil
}

// ValidatePassengerList validates each passenger and the list-level rule
// that every infant travels with at least one adult.
func ValidatePassengerList(passengers []PassengerInfo) error {
	adults, infants := 0, 0
	for i := range passengers {
		if err := passengers[i].Validate(); err != nil {
			return fmt.Errorf("passenger %d: %w", i+1, err)
		}
		switch passengers[i].Type {
		case PassengerAdult:
			adults++
		case PassengerInfant:
			infants++
		}
	}
	if infants > adults {
		return fmt.Errorf("%w: each infant must be accompanied by an adult", ErrInvalidRequest)
	}
	return nil
}
