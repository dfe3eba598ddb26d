package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client, err := NewClient("c-1", "  Ana Silva ", "555-0101", "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", client.Name)
	assert.Equal(t, "AS", client.Initials)
	assert.Equal(t, "555-0101", client.Phone)
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient("c-1", "", "555-0101", "")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewClient("c-1", "Ana Silva", "  ", "")
	assert.ErrorIs(t, err, ErrEmptyPhone)

	_, err = NewClient("c-1", "Ana Silva", "555-0101", "not-an-email")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestEmailIsOptional(t *testing.T) {
	client, err := NewClient("c-1", "Ana Silva", "555-0101", "")
	require.NoError(t, err)
	assert.Empty(t, client.Email)
}

func TestRenameRefreshesInitials(t *testing.T) {
	client, err := NewClient("c-1", "Ana Silva", "555-0101", "")
	require.NoError(t, err)

	require.NoError(t, client.Rename("Bruno Costa"))
	assert.Equal(t, "BC", client.Initials)
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ana Silva", "AS"},
		{"Cher", "C"},
		{"ana silva costa", "AS"},
		{"  Bruno   Costa  ", "BC"},
		{"Ângela Maria", "ÂM"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, Initials(tt.name), "Initials(%q)", tt.name)
	}
}

func TestNewPet(t *testing.T) {
	pet, err := NewPet("p-1", "c-1", " Thor ", GenderMale)
	require.NoError(t, err)
	assert.Equal(t, "Thor", pet.Name)
	assert.Equal(t, "c-1", pet.ClientID)
	assert.Equal(t, GenderMale, pet.Gender)
}

func TestNewPetValidation(t *testing.T) {
	_, err := NewPet("p-1", "", "Thor", GenderMale)
	assert.ErrorIs(t, err, ErrMissingClient)

	_, err = NewPet("p-1", "c-1", "", GenderMale)
	assert.ErrorIs(t, err, ErrEmptyPetName)

	_, err = NewPet("p-1", "c-1", "Thor", Gender("other"))
	assert.ErrorIs(t, err, ErrInvalidGender)
}
