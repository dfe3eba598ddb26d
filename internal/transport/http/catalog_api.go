package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/patanova/groomer-api/internal/domains/catalog/application"
	sharederrors "github.com/patanova/groomer-api/internal/shared/errors"
)

// CatalogAPI exposes grooming services and retail products over HTTP.
type CatalogAPI struct {
	service *catalogapp.Service
}

// NewCatalogAPI wires the catalog handlers.
func NewCatalogAPI(service *catalogapp.Service) *CatalogAPI {
	return &CatalogAPI{service: service}
}

type createServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

// CreateService handles POST /services.
func (a *CatalogAPI) CreateService(c *gin.Context) {
	var req createServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.DefaultResponder.BadRequest(c, err.Error())
		return
	}
	service, err := a.service.CreateService(c.Request.Context(), catalogapp.CreateServiceInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toServiceDTO(service))
}

type updateServiceRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Duration    *string  `json:"duration"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"imageUrl"`
}

// UpdateService handles PUT /services/:id.
func (a *CatalogAPI) UpdateService(c *gin.Context) {
	var req updateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.DefaultResponder.BadRequest(c, err.Error())
		return
	}
	service, err := a.service.UpdateService(c.Request.Context(), c.Param("id"), catalogapp.UpdateServiceInput{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toServiceDTO(service))
}

// GetService handles GET /services/:id.
func (a *CatalogAPI) GetService(c *gin.Context) {
	service, err := a.service.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toServiceDTO(service))
}

// ListServices handles GET /services.
func (a *CatalogAPI) ListServices(c *gin.Context) {
	services, err := a.service.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	dtos := make([]serviceDTO, 0, len(services))
	for _, service := range services {
		dtos = append(dtos, toServiceDTO(service))
	}
	c.JSON(http.StatusOK, dtos)
}

// DeleteService handles DELETE /services/:id.
func (a *CatalogAPI) DeleteService(c *gin.Context) {
	if err := a.service.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type createProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	OldPrice    *float64 `json:"oldPrice"`
	DiscountTag string   `json:"discountTag"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Tag         string   `json:"tag"`
	ImageURL    string   `json:"imageUrl"`
}

// CreateProduct handles POST /products.
func (a *CatalogAPI) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.DefaultResponder.BadRequest(c, err.Error())
		return
	}
	product, err := a.service.CreateProduct(c.Request.Context(), catalogapp.CreateProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		OldPrice:    req.OldPrice,
		DiscountTag: req.DiscountTag,
		Rating:      req.Rating,
		Reviews:     req.Reviews,
		Tag:         req.Tag,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductDTO(product))
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	OldPrice    *float64 `json:"oldPrice"`
	DiscountTag *string  `json:"discountTag"`
	Rating      *float64 `json:"rating"`
	Reviews     *int     `json:"reviews"`
	Tag         *string  `json:"tag"`
	ImageURL    *string  `json:"imageUrl"`
}

// UpdateProduct handles PUT /products/:id.
func (a *CatalogAPI) UpdateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.DefaultResponder.BadRequest(c, err.Error())
		return
	}
	product, err := a.service.UpdateProduct(c.Request.Context(), c.Param("id"), catalogapp.UpdateProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		OldPrice:    req.OldPrice,
		DiscountTag: req.DiscountTag,
		Rating:      req.Rating,
		Reviews:     req.Reviews,
		Tag:         req.Tag,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductDTO(product))
}

// GetProduct handles GET /products/:id.
func (a *CatalogAPI) GetProduct(c *gin.Context) {
	product, err := a.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductDTO(product))
}

// ListProducts handles GET /products.
func (a *CatalogAPI) ListProducts(c *gin.Context) {
	products, err := a.service.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	dtos := make([]productDTO, 0, len(products))
	for _, product := range products {
		dtos = append(dtos, toProductDTO(product))
	}
	c.JSON(http.StatusOK, dtos)
}

// DeleteProduct handles DELETE /products/:id.
func (a *CatalogAPI) DeleteProduct(c *gin.Context) {
	if err := a.service.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
