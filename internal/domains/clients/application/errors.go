package application

import (
	"errors"
	"fmt"

	"github.com/patanova/groomer-api/internal/domains/clients/domain"
)

// ErrInvalidInput signals the request violated a domain invariant.
var ErrInvalidInput = errors.New("invalid client input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrEmptyPhone) ||
		errors.Is(err, domain.ErrInvalidEmail) ||
		errors.Is(err, domain.ErrEmptyPetName) ||
		errors.Is(err, domain.ErrMissingClient) ||
		errors.Is(err, domain.ErrInvalidGender) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
