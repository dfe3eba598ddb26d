package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyServiceName = errors.New("service name is required")
	ErrNegativePrice    = errors.New("price must be greater or equal to zero")
)

// Service represents a grooming service offered by the shop. Duration is a
// display string ("45 min"); the schedule works in fixed hour slots instead.
type Service struct {
	ID          string
	Name        string
	Category    string
	Description string
	Duration    string
	Price       float64
	ImageURL    string
}

// NewService validates the invariants and builds a catalog service.
func NewService(id, name string, price float64) (*Service, error) {
	service := &Service{ID: id}
	if err := service.Rename(name); err != nil {
		return nil, err
	}
	if err := service.SetPrice(price); err != nil {
		return nil, err
	}
	return service, nil
}

// Rename trims and validates the service name.
func (s *Service) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyServiceName
	}
	s.Name = name
	return nil
}

// SetPrice rejects negative prices.
func (s *Service) SetPrice(price float64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	s.Price = price
	return nil
}

// Validate enforces invariants on the entity.
func (s *Service) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyServiceName
	}
	if s.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}
