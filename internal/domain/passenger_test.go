package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassengerInfo_Validate(t *testing.T) {
	tests := []struct {
		name      string
		passenger PassengerInfo
		wantErr   string
	}{
		{
			name: "valid full passenger",
			passenger: PassengerInfo{
				FirstName:   "Ayu",
				LastName:    "Lestari",
				DateOfBirth: "1990-04-12",
				Gender:      GenderFemale,
				Type:        PassengerAdult,
			},
		},
		{
			name: "optional fields may be empty",
			passenger: PassengerInfo{
				FirstName: "Budi",
				LastName:  "Santoso",
			},
		},
		{
			name:      "missing first name",
			passenger: PassengerInfo{LastName: "Lestari"},
			wantErr:   "firstName is required",
		},
		{
			name:      "missing last name",
			passenger: PassengerInfo{FirstName: "Ayu"},
			wantErr:   "lastName is required",
		},
		{
			name: "bad date of birth",
			passenger: PassengerInfo{
				FirstName:   "Ayu",
				LastName:    "Lestari",
				DateOfBirth: "12/04/1990",
			},
			wantErr: "dateOfBirth",
		},
		{
			name: "bad gender",
			passenger: PassengerInfo{
				FirstName: "Ayu",
				LastName:  "Lestari",
				Gender:    "UNKNOWN",
			},
			wantErr: "gender",
		},
		{
			name: "bad type",
			passenger: PassengerInfo{
				FirstName: "Ayu",
				LastName:  "Lestari",
				Type:      "SENIOR",
			},
			wantErr: "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.passenger.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidRequest)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidatePassengerList(t *testing.T) {
	adult := PassengerInfo{FirstName: "Ayu", LastName: "Lestari", Type: PassengerAdult}
	infant := PassengerInfo{FirstName: "Sari", LastName: "Lestari", Type: PassengerInfant}

	tests := []struct {
		name       string
		passengers []PassengerInfo
		wantErr    bool
	}{
		{
			name:       "empty list is valid",
			passengers: nil,
		},
		{
			name:       "one adult one infant",
			passengers: []PassengerInfo{adult, infant},
		},
		{
			name:       "more infants than adults",
			passengers: []PassengerInfo{adult, infant, infant},
			wantErr:    true,
		},
		{
			name:       "invalid passenger reported with its position",
			passengers: []PassengerInfo{adult, {LastName: "Lestari"}},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassengerList(tt.passengers)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequest)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenderAndTypeEnums(t *testing.T) {
	assert.True(t, GenderMale.IsValid())
	assert.True(t, GenderFemale.IsValid())
	assert.True(t, GenderOther.IsValid())
	assert.False(t, Gender("X").IsValid())

	assert.True(t, PassengerAdult.IsValid())
	assert.True(t, PassengerChild.IsValid())
	assert.True(t, PassengerInfant.IsValid())
	assert.False(t, PassengerType("SENIOR").IsValid())
}
