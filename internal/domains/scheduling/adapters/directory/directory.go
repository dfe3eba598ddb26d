// Package directory adapts the clients and catalog application services
// into the lookup ports the scheduler consumes.
package directory

import (
	"context"
	"errors"

	catalogapp "github.com/patanova/groomer-api/internal/domains/catalog/application"
	catalogports "github.com/patanova/groomer-api/internal/domains/catalog/ports"
	clientsapp "github.com/patanova/groomer-api/internal/domains/clients/application"
	clientsports "github.com/patanova/groomer-api/internal/domains/clients/ports"
	"github.com/patanova/groomer-api/internal/domains/scheduling/ports"
)

var (
	_ ports.PetDirectory     = (*PetDirectory)(nil)
	_ ports.ServiceDirectory = (*ServiceDirectory)(nil)
)

// PetDirectory resolves pets and their owners through the clients service.
type PetDirectory struct {
	clients *clientsapp.Service
}

// NewPetDirectory wires the pet lookup over the clients context.
func NewPetDirectory(clients *clientsapp.Service) *PetDirectory {
	return &PetDirectory{clients: clients}
}

// Lookup resolves a pet reference with its owner's display name.
func (d *PetDirectory) Lookup(ctx context.Context, id string) (ports.PetRef, error) {
	pet, err := d.clients.GetPet(ctx, id)
	if err != nil {
		if errors.Is(err, clientsports.ErrNotFound) {
			return ports.PetRef{}, ports.ErrNotFound
		}
		return ports.PetRef{}, err
	}
	ref := ports.PetRef{
		ID:       pet.ID,
		Name:     pet.Name,
		ImageURL: pet.ImageURL,
		ClientID: pet.ClientID,
	}
	owner, err := d.clients.GetClient(ctx, pet.ClientID)
	if err != nil {
		if !errors.Is(err, clientsports.ErrNotFound) {
			return ports.PetRef{}, err
		}
		return ref, nil
	}
	ref.ClientName = owner.Client.Name
	return ref, nil
}

// ServiceDirectory resolves grooming services through the catalog service.
type ServiceDirectory struct {
	catalog *catalogapp.Service
}

// NewServiceDirectory wires the service lookup over the catalog context.
func NewServiceDirectory(catalog *catalogapp.Service) *ServiceDirectory {
	return &ServiceDirectory{catalog: catalog}
}

// Lookup resolves a catalog service reference.
func (d *ServiceDirectory) Lookup(ctx context.Context, id string) (ports.ServiceRef, error) {
	service, err := d.catalog.GetService(ctx, id)
	if err != nil {
		if errors.Is(err, catalogports.ErrNotFound) {
			return ports.ServiceRef{}, ports.ErrNotFound
		}
		return ports.ServiceRef{}, err
	}
	return ports.ServiceRef{ID: service.ID, Name: service.Name}, nil
}
