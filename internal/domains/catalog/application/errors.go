package application

import (
	"errors"
	"fmt"

	"github.com/patanova/groomer-api/internal/domains/catalog/domain"
)

// ErrInvalidInput signals the request violated a domain invariant.
var ErrInvalidInput = errors.New("invalid catalog input")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyServiceName) ||
		errors.Is(err, domain.ErrEmptyProductName) ||
		errors.Is(err, domain.ErrNegativePrice) ||
		errors.Is(err, domain.ErrInvalidRating) ||
		errors.Is(err, domain.ErrInvalidTag) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
