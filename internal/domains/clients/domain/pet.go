package domain

import (
	"errors"
	"strings"
)

// Gender enumerates the pet genders captured by the registration form.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

var (
	ErrEmptyPetName  = errors.New("pet name is required")
	ErrMissingClient = errors.New("pet must belong to a client")
	ErrInvalidGender = errors.New("pet gender must be male or female")
)

// Pet represents an animal owned by exactly one client. Age and weight are
// display strings, not measurements; the console never computes with them.
type Pet struct {
	ID       string
	ClientID string
	Name     string
	Breed    string
	Age      string
	Weight   string
	Gender   Gender
	ImageURL string
}

// NewPet builds a pet bound to its owning client.
func NewPet(id, clientID, name string, gender Gender) (*Pet, error) {
	pet := &Pet{ID: id}
	if err := pet.SetClient(clientID); err != nil {
		return nil, err
	}
	if err := pet.Rename(name); err != nil {
		return nil, err
	}
	if err := pet.SetGender(gender); err != nil {
		return nil, err
	}
	return pet, nil
}

// SetClient binds the pet to its owner. A pet cannot exist without one.
func (p *Pet) SetClient(clientID string) error {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return ErrMissingClient
	}
	p.ClientID = clientID
	return nil
}

// Rename trims and validates the pet name.
func (p *Pet) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyPetName
	}
	p.Name = name
	return nil
}

// SetGender validates against the supported genders.
func (p *Pet) SetGender(gender Gender) error {
	switch gender {
	case GenderMale, GenderFemale:
		p.Gender = gender
		return nil
	default:
		return ErrInvalidGender
	}
}

// Validate enforces invariants on the aggregate.
func (p *Pet) Validate() error {
	if strings.TrimSpace(p.ClientID) == "" {
		return ErrMissingClient
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyPetName
	}
	if p.Gender != GenderMale && p.Gender != GenderFemale {
		return ErrInvalidGender
	}
	return nil
}
