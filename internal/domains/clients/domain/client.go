package domain

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrEmptyName    = errors.New("client name is required")
	ErrEmptyPhone   = errors.New("client phone is required")
	ErrInvalidEmail = errors.New("client email must contain '@'")
)

// Client represents a shop customer who owns zero or more pets.
type Client struct {
	ID       string
	Name     string
	Initials string
	Phone    string
	Email    string
	TaxID    string
	ImageURL string
}

// NewClient builds a client ensuring the registration invariants.
func NewClient(id, name, phone, email string) (*Client, error) {
	client := &Client{ID: id}
	if err := client.Rename(name); err != nil {
		return nil, err
	}
	if err := client.SetPhone(phone); err != nil {
		return nil, err
	}
	if err := client.SetEmail(email); err != nil {
		return nil, err
	}
	return client, nil
}

// Rename trims and validates the display name and refreshes the derived initials.
func (c *Client) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	c.Initials = Initials(name)
	return nil
}

// SetPhone stores the contact phone.
func (c *Client) SetPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrEmptyPhone
	}
	c.Phone = phone
	return nil
}

// SetEmail validates the minimal email shape used by the console.
func (c *Client) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email != "" && !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	c.Email = email
	return nil
}

// Validate enforces invariants on the aggregate.
func (c *Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(c.Phone) == "" {
		return ErrEmptyPhone
	}
	if c.Email != "" && !strings.Contains(c.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// Initials derives the avatar initials from a display name: first letter
// of the first two words, upper-cased.
func Initials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		runes := []rune(word)
		initials = append(initials, unicode.ToUpper(runes[0]))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}
