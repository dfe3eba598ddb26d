package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/patanova/groomer-api/internal/domains/clients/domain"
	"github.com/patanova/groomer-api/internal/domains/clients/ports"
)

// Service orchestrates the clients bounded context use cases, including the
// cascading removal of a client's pets and their appointments.
type Service struct {
	clients      ports.ClientRepository
	pets         ports.PetRepository
	appointments ports.AppointmentPurger
	newID        func() string
}

// NewService wires the clients service with its dependencies. The purger may
// be nil while the scheduling context is not mounted; cascades then stop at
// the pet level.
func NewService(clients ports.ClientRepository, pets ports.PetRepository, appointments ports.AppointmentPurger) *Service {
	return &Service{
		clients:      clients,
		pets:         pets,
		appointments: appointments,
		newID:        uuid.NewString,
	}
}

// RegisterClientInput carries the registration form fields.
type RegisterClientInput struct {
	Name     string
	Phone    string
	Email    string
	TaxID    string
	ImageURL string
}

// RegisterClient persists a new client.
func (s *Service) RegisterClient(ctx context.Context, in RegisterClientInput) (*domain.Client, error) {
	client, err := domain.NewClient(s.newID(), in.Name, in.Phone, in.Email)
	if err != nil {
		return nil, mapError(err)
	}
	client.TaxID = in.TaxID
	client.ImageURL = in.ImageURL
	saved, err := s.clients.Save(ctx, client)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// UpdateClientInput carries the edit form fields; nil pointers leave the
// current value untouched.
type UpdateClientInput struct {
	Name     *string
	Phone    *string
	Email    *string
	TaxID    *string
	ImageURL *string
}

// UpdateClient applies a partial edit to an existing client.
func (s *Service) UpdateClient(ctx context.Context, id string, in UpdateClientInput) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if err := client.Rename(*in.Name); err != nil {
			return nil, mapError(err)
		}
	}
	if in.Phone != nil {
		if err := client.SetPhone(*in.Phone); err != nil {
			return nil, mapError(err)
		}
	}
	if in.Email != nil {
		if err := client.SetEmail(*in.Email); err != nil {
			return nil, mapError(err)
		}
	}
	if in.TaxID != nil {
		client.TaxID = *in.TaxID
	}
	if in.ImageURL != nil {
		client.ImageURL = *in.ImageURL
	}
	saved, err := s.clients.Save(ctx, client)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// ClientProfile joins a client with its pets for the clients screen.
type ClientProfile struct {
	Client *domain.Client
	Pets   []*domain.Pet
}

// GetClient loads a client and its pets.
func (s *Service) GetClient(ctx context.Context, id string) (*ClientProfile, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pets, err := s.pets.ListByClient(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ClientProfile{Client: client, Pets: pets}, nil
}

// ListClients returns all clients with their pets, ordered by client name.
func (s *Service) ListClients(ctx context.Context) ([]*ClientProfile, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	profiles := make([]*ClientProfile, 0, len(clients))
	for _, client := range clients {
		pets, err := s.pets.ListByClient(ctx, client.ID)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, &ClientProfile{Client: client, Pets: pets})
	}
	return profiles, nil
}

// DeleteClient removes a client and cascades over its pets and their
// appointments. Children go first, the client row last, and the cascade
// stops on the first failure so the client remains present and the whole
// operation can be retried. Child deletes are idempotent, which makes the
// retry safe.
func (s *Service) DeleteClient(ctx context.Context, id string) error {
	if _, err := s.clients.GetByID(ctx, id); err != nil {
		return err
	}
	pets, err := s.pets.ListByClient(ctx, id)
	if err != nil {
		return err
	}
	for _, pet := range pets {
		if err := s.removePet(ctx, pet.ID); err != nil {
			return fmt.Errorf("cascade stopped at pet %s: %w", pet.ID, err)
		}
	}
	return s.clients.Delete(ctx, id)
}

// RegisterPetInput carries the pet registration form fields.
type RegisterPetInput struct {
	ClientID string
	Name     string
	Breed    string
	Age      string
	Weight   string
	Gender   string
	ImageURL string
}

// RegisterPet persists a new pet after verifying the owning client exists.
// A missing owner is a constraint violation, never a dangling insert.
func (s *Service) RegisterPet(ctx context.Context, in RegisterPetInput) (*domain.Pet, error) {
	if _, err := s.clients.GetByID(ctx, in.ClientID); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, fmt.Errorf("%w: client %s does not exist", ports.ErrConstraintViolation, in.ClientID)
		}
		return nil, err
	}
	pet, err := domain.NewPet(s.newID(), in.ClientID, in.Name, domain.Gender(in.Gender))
	if err != nil {
		return nil, mapError(err)
	}
	pet.Breed = in.Breed
	pet.Age = in.Age
	pet.Weight = in.Weight
	pet.ImageURL = in.ImageURL
	saved, err := s.pets.Save(ctx, pet)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// UpdatePetInput carries the pet edit form fields; nil pointers leave the
// current value untouched. Ownership is immutable: re-homing a pet is not a
// console operation.
type UpdatePetInput struct {
	Name     *string
	Breed    *string
	Age      *string
	Weight   *string
	Gender   *string
	ImageURL *string
}

// UpdatePet applies a partial edit to an existing pet.
func (s *Service) UpdatePet(ctx context.Context, id string, in UpdatePetInput) (*domain.Pet, error) {
	pet, err := s.pets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if err := pet.Rename(*in.Name); err != nil {
			return nil, mapError(err)
		}
	}
	if in.Gender != nil {
		if err := pet.SetGender(domain.Gender(*in.Gender)); err != nil {
			return nil, mapError(err)
		}
	}
	if in.Breed != nil {
		pet.Breed = *in.Breed
	}
	if in.Age != nil {
		pet.Age = *in.Age
	}
	if in.Weight != nil {
		pet.Weight = *in.Weight
	}
	if in.ImageURL != nil {
		pet.ImageURL = *in.ImageURL
	}
	saved, err := s.pets.Save(ctx, pet)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// GetPet loads a single pet.
func (s *Service) GetPet(ctx context.Context, id string) (*domain.Pet, error) {
	return s.pets.GetByID(ctx, id)
}

// DeletePet removes a pet and its appointments. The direct call fails with
// ErrNotFound when the pet does not exist.
func (s *Service) DeletePet(ctx context.Context, id string) error {
	if _, err := s.pets.GetByID(ctx, id); err != nil {
		return err
	}
	return s.removePet(ctx, id)
}

// removePet purges the pet's appointments and then the pet row. A pet that
// vanished between cascade steps counts as already removed.
func (s *Service) removePet(ctx context.Context, id string) error {
	if s.appointments != nil {
		if _, err := s.appointments.DeleteByPet(ctx, id); err != nil {
			return err
		}
	}
	if err := s.pets.Delete(ctx, id); err != nil && !errors.Is(err, ports.ErrNotFound) {
		return err
	}
	return nil
}

// PetMatch pairs a pet with its owner's name for the booking form picker.
type PetMatch struct {
	Pet        *domain.Pet
	ClientName string
}

// SearchPets matches the term case-insensitively against pet names and
// resolves each owner's display name.
func (s *Service) SearchPets(ctx context.Context, term string) ([]*PetMatch, error) {
	pets, err := s.pets.SearchByName(ctx, term)
	if err != nil {
		return nil, err
	}
	matches := make([]*PetMatch, 0, len(pets))
	for _, pet := range pets {
		owner, err := s.clients.GetByID(ctx, pet.ClientID)
		if err != nil {
			if errors.Is(err, ports.ErrNotFound) {
				continue
			}
			return nil, err
		}
		matches = append(matches, &PetMatch{Pet: pet, ClientName: owner.Name})
	}
	return matches, nil
}
