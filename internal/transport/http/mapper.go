package http

import (
	catalogdomain "github.com/patanova/groomer-api/internal/domains/catalog/domain"
	clientsapp "github.com/patanova/groomer-api/internal/domains/clients/application"
	clientsdomain "github.com/patanova/groomer-api/internal/domains/clients/domain"
	"github.com/patanova/groomer-api/internal/domains/scheduling/application/types"
	scheddomain "github.com/patanova/groomer-api/internal/domains/scheduling/domain"
)

type clientDTO struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Initials string   `json:"initials"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email,omitempty"`
	TaxID    string   `json:"taxId,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Pets     []petDTO `json:"pets,omitempty"`
}

type petDTO struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
	Name     string `json:"name"`
	Breed    string `json:"breed,omitempty"`
	Age      string `json:"age,omitempty"`
	Weight   string `json:"weight,omitempty"`
	Gender   string `json:"gender"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type petMatchDTO struct {
	petDTO
	ClientName string `json:"clientName"`
}

type serviceDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
	Duration    string  `json:"duration,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type productDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category,omitempty"`
	Price       float64  `json:"price"`
	OldPrice    *float64 `json:"oldPrice,omitempty"`
	DiscountTag string   `json:"discountTag,omitempty"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Tag         string   `json:"tag,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
}

type appointmentDTO struct {
	ID                   string `json:"id"`
	PetID                string `json:"petId"`
	ServiceID            string `json:"serviceId"`
	Date                 string `json:"date"`
	TimeRange            string `json:"timeRange"`
	Professional         string `json:"professional,omitempty"`
	ProfessionalInitials string `json:"professionalInitials,omitempty"`
	Status               string `json:"status"`
}

type appointmentViewDTO struct {
	appointmentDTO
	PetName     string `json:"petName"`
	PetImageURL string `json:"petImageUrl,omitempty"`
	ClientName  string `json:"clientName"`
	ServiceName string `json:"serviceName,omitempty"`
}

type pageDTO struct {
	Items []appointmentViewDTO `json:"items"`
	Total int                  `json:"total"`
}

func toClientDTO(client *clientsdomain.Client, pets []*clientsdomain.Pet) clientDTO {
	dto := clientDTO{
		ID:       client.ID,
		Name:     client.Name,
		Initials: client.Initials,
		Phone:    client.Phone,
		Email:    client.Email,
		TaxID:    client.TaxID,
		ImageURL: client.ImageURL,
	}
	for _, pet := range pets {
		dto.Pets = append(dto.Pets, toPetDTO(pet))
	}
	return dto
}

func toProfileDTO(profile *clientsapp.ClientProfile) clientDTO {
	return toClientDTO(profile.Client, profile.Pets)
}

func toPetDTO(pet *clientsdomain.Pet) petDTO {
	return petDTO{
		ID:       pet.ID,
		ClientID: pet.ClientID,
		Name:     pet.Name,
		Breed:    pet.Breed,
		Age:      pet.Age,
		Weight:   pet.Weight,
		Gender:   string(pet.Gender),
		ImageURL: pet.ImageURL,
	}
}

func toPetMatchDTO(match *clientsapp.PetMatch) petMatchDTO {
	return petMatchDTO{petDTO: toPetDTO(match.Pet), ClientName: match.ClientName}
}

func toServiceDTO(service *catalogdomain.Service) serviceDTO {
	return serviceDTO{
		ID:          service.ID,
		Name:        service.Name,
		Category:    service.Category,
		Description: service.Description,
		Duration:    service.Duration,
		Price:       service.Price,
		ImageURL:    service.ImageURL,
	}
}

func toProductDTO(product *catalogdomain.Product) productDTO {
	return productDTO{
		ID:          product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Price:       product.Price,
		OldPrice:    product.OldPrice,
		DiscountTag: product.DiscountTag,
		Rating:      product.Rating,
		Reviews:     product.Reviews,
		Tag:         string(product.Tag),
		ImageURL:    product.ImageURL,
	}
}

func toAppointmentDTO(appointment *scheddomain.Appointment) appointmentDTO {
	return appointmentDTO{
		ID:                   appointment.ID,
		PetID:                appointment.PetID,
		ServiceID:            appointment.ServiceID,
		Date:                 appointment.Date,
		TimeRange:            appointment.TimeRange,
		Professional:         appointment.Professional,
		ProfessionalInitials: appointment.ProfessionalInitials,
		Status:               string(appointment.Status),
	}
}

func toPageDTO(page *types.Page) pageDTO {
	dto := pageDTO{Items: make([]appointmentViewDTO, 0, len(page.Items)), Total: page.Total}
	for _, view := range page.Items {
		dto.Items = append(dto.Items, appointmentViewDTO{
			appointmentDTO: toAppointmentDTO(view.Appointment),
			PetName:        view.PetName,
			PetImageURL:    view.PetImageURL,
			ClientName:     view.ClientName,
			ServiceName:    view.ServiceName,
		})
	}
	return dto
}
