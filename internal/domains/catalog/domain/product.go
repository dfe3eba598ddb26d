package domain

import (
	"errors"
	"strings"
)

// ProductTag marks a product card in the storefront grid.
type ProductTag string

const (
	TagNew        ProductTag = "NEW"
	TagOutOfStock ProductTag = "OUT_OF_STOCK"
)

var (
	ErrEmptyProductName = errors.New("product name is required")
	ErrInvalidRating    = errors.New("rating must be between 0 and 5")
	ErrInvalidTag       = errors.New("product tag is invalid")
)

// Product is a retail catalog entry. Products are never linked to
// appointments; they exist only for the shop storefront.
type Product struct {
	ID          string
	Name        string
	Category    string
	Price       float64
	OldPrice    *float64
	DiscountTag string
	Rating      float64
	Reviews     int
	Tag         ProductTag
	ImageURL    string
}

// NewProduct validates the invariants and builds a catalog product.
func NewProduct(id, name string, price float64) (*Product, error) {
	product := &Product{ID: id}
	if err := product.Rename(name); err != nil {
		return nil, err
	}
	if err := product.SetPrice(price); err != nil {
		return nil, err
	}
	return product, nil
}

// Rename trims and validates the product name.
func (p *Product) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyProductName
	}
	p.Name = name
	return nil
}

// SetPrice rejects negative prices.
func (p *Product) SetPrice(price float64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	p.Price = price
	return nil
}

// SetRating bounds the average review score.
func (p *Product) SetRating(rating float64) error {
	if rating < 0 || rating > 5 {
		return ErrInvalidRating
	}
	p.Rating = rating
	return nil
}

// SetTag validates against the known storefront tags; empty clears it.
func (p *Product) SetTag(tag ProductTag) error {
	switch tag {
	case "", TagNew, TagOutOfStock:
		p.Tag = tag
		return nil
	default:
		return ErrInvalidTag
	}
}

// Validate enforces invariants on the entity.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyProductName
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.Rating < 0 || p.Rating > 5 {
		return ErrInvalidRating
	}
	switch p.Tag {
	case "", TagNew, TagOutOfStock:
		return nil
	default:
		return ErrInvalidTag
	}
}
