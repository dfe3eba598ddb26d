package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clientsapp "github.com/patanova/groomer-api/internal/domains/clients/application"
	sharederrors "github.com/patanova/groomer-api/internal/shared/errors"
)

// ClientsAPI exposes the clients bounded context over HTTP.
type ClientsAPI struct {
	service *clientsapp.Service
}

// NewClientsAPI wires the clients handlers.
func NewClientsAPI(service *clientsapp.Service) *ClientsAPI {
	return &ClientsAPI{service: service}
}

type registerClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email"`
	TaxID    string `json:"taxId"`
	ImageURL string `json:"imageUrl"`
}

// RegisterClient handles POST /clients.
func (a *ClientsAPI) RegisterClient(c *gin.Context) {
	var req registerClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.DefaultResponder.BadRequest(c, err.Error())
		return
	}
	client, err := a.service.RegisterClient(c.Request.Context(), clientsapp.RegisterClientInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		TaxID:    req.TaxID,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toClientDTO(client, nil))
}

type updateClientRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	TaxID    *string `json:"taxId"`
	ImageURL *string `json:"imageUrl"`
}

// UpdateClient handles PUT /clients/:id.
func (a *ClientsAPI) UpdateClient(c *gin.Context) {
	var req updateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.DefaultResponder.BadRequest(c, err.Error())
		return
	}
	client, err := a.service.UpdateClient(c.Request.Context(), c.Param("id"), clientsapp.UpdateClientInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		TaxID:    req.TaxID,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toClientDTO(client, nil))
}

// GetClient handles GET /clients/:id.
func (a *ClientsAPI) GetClient(c *gin.Context) {
	profile, err := a.service.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileDTO(profile))
}

// ListClients handles GET /clients.
func (a *ClientsAPI) ListClients(c *gin.Context) {
	profiles, err := a.service.ListClients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	dtos := make([]clientDTO, 0, len(profiles))
	for _, profile := range profiles {
		dtos = append(dtos, toProfileDTO(profile))
	}
	c.JSON(http.StatusOK, dtos)
}

// DeleteClient handles DELETE /clients/:id. The cascade removes the client's
// pets and their appointments before the client row.
func (a *ClientsAPI) DeleteClient(c *gin.Context) {
	if err := a.service.DeleteClient(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type registerPetRequest struct {
	ClientID string `json:"clientId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Breed    string `json:"breed"`
	Age      string `json:"age"`
	Weight   string `json:"weight"`
	Gender   string `json:"gender" binding:"required"`
	ImageURL string `json:"imageUrl"`
}

// RegisterPet handles POST /pets.
func (a *ClientsAPI) RegisterPet(c *gin.Context) {
	var req registerPetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.DefaultResponder.BadRequest(c, err.Error())
		return
	}
	pet, err := a.service.RegisterPet(c.Request.Context(), clientsapp.RegisterPetInput{
		ClientID: req.ClientID,
		Name:     req.Name,
		Breed:    req.Breed,
		Age:      req.Age,
		Weight:   req.Weight,
		Gender:   req.Gender,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPetDTO(pet))
}

type updatePetRequest struct {
	Name     *string `json:"name"`
	Breed    *string `json:"breed"`
	Age      *string `json:"age"`
	Weight   *string `json:"weight"`
	Gender   *string `json:"gender"`
	ImageURL *string `json:"imageUrl"`
}

// UpdatePet handles PUT /pets/:id.
func (a *ClientsAPI) UpdatePet(c *gin.Context) {
	var req updatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.DefaultResponder.BadRequest(c, err.Error())
		return
	}
	pet, err := a.service.UpdatePet(c.Request.Context(), c.Param("id"), clientsapp.UpdatePetInput{
		Name:     req.Name,
		Breed:    req.Breed,
		Age:      req.Age,
		Weight:   req.Weight,
		Gender:   req.Gender,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPetDTO(pet))
}

// GetPet handles GET /pets/:id.
func (a *ClientsAPI) GetPet(c *gin.Context) {
	pet, err := a.service.GetPet(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPetDTO(pet))
}

// DeletePet handles DELETE /pets/:id. Appointments referencing the pet are
// purged first.
func (a *ClientsAPI) DeletePet(c *gin.Context) {
	if err := a.service.DeletePet(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchPets handles GET /pets/search?q=. Backs the booking form picker.
func (a *ClientsAPI) SearchPets(c *gin.Context) {
	matches, err := a.service.SearchPets(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	dtos := make([]petMatchDTO, 0, len(matches))
	for _, match := range matches {
		dtos = append(dtos, toPetMatchDTO(match))
	}
	c.JSON(http.StatusOK, dtos)
}
