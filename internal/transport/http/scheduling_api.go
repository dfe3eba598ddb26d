package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/patanova/groomer-api/internal/domains/scheduling/application/types"
	scheddomain "github.com/patanova/groomer-api/internal/domains/scheduling/domain"
	schedports "github.com/patanova/groomer-api/internal/domains/scheduling/ports"
	"github.com/patanova/groomer-api/internal/platform/identity"
	sharederrors "github.com/patanova/groomer-api/internal/shared/errors"
)

// SchedulingAPI exposes the appointment book over HTTP.
type SchedulingAPI struct {
	service schedports.Service
}

// NewSchedulingAPI wires the scheduling handlers.
func NewSchedulingAPI(service schedports.Service) *SchedulingAPI {
	return &SchedulingAPI{service: service}
}

type bookRequest struct {
	PetID     string `json:"petId" binding:"required"`
	ServiceID string `json:"serviceId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	TimeRange string `json:"timeRange" binding:"required"`
}

// Book handles POST /appointments. The professional comes from the session
// identity, never from the request body.
func (a *SchedulingAPI) Book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.DefaultResponder.BadRequest(c, err.Error())
		return
	}
	actor := identity.FromContext(c.Request.Context())
	appointment, err := a.service.Book(c.Request.Context(), types.BookInput{
		PetID:                req.PetID,
		ServiceID:            req.ServiceID,
		Date:                 req.Date,
		TimeRange:            req.TimeRange,
		Professional:         actor.Name,
		ProfessionalInitials: actor.Initials,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAppointmentDTO(appointment))
}

type rescheduleRequest struct {
	PetID     string `json:"petId" binding:"required"`
	ServiceID string `json:"serviceId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	TimeRange string `json:"timeRange" binding:"required"`
}

// Reschedule handles PUT /appointments/:id. Status and professional stay as
// they were.
func (a *SchedulingAPI) Reschedule(c *gin.Context) {
	var req rescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.DefaultResponder.BadRequest(c, err.Error())
		return
	}
	appointment, err := a.service.Reschedule(c.Request.Context(), types.RescheduleInput{
		ID:        c.Param("id"),
		PetID:     req.PetID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		TimeRange: req.TimeRange,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAppointmentDTO(appointment))
}

type transitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// Transition handles PATCH /appointments/:id/status.
func (a *SchedulingAPI) Transition(c *gin.Context) {
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sharederrors.DefaultResponder.BadRequest(c, err.Error())
		return
	}
	appointment, err := a.service.Transition(c.Request.Context(), types.TransitionInput{
		ID:     c.Param("id"),
		Status: req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAppointmentDTO(appointment))
}

// GetAppointment handles GET /appointments/:id.
func (a *SchedulingAPI) GetAppointment(c *gin.Context) {
	appointment, err := a.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAppointmentDTO(appointment))
}

// DeleteAppointment handles DELETE /appointments/:id.
func (a *SchedulingAPI) DeleteAppointment(c *gin.Context) {
	if err := a.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAppointments handles GET /appointments with tab, search, and paging
// query parameters.
func (a *SchedulingAPI) ListAppointments(c *gin.Context) {
	input := types.ListInput{
		Tab:    parseTab(c.Query("tab")),
		Search: c.Query("q"),
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			input.Limit = limit
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil {
			input.Offset = offset
		}
	}
	page, err := a.service.List(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPageDTO(page))
}

// ListSlots handles GET /appointments/slots, the fixed hour grid the booking
// form renders.
func (a *SchedulingAPI) ListSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": scheddomain.Slots()})
}

func parseTab(raw string) types.Tab {
	switch raw {
	case "pending":
		return types.TabPending
	case "closed":
		return types.TabClosed
	default:
		return types.TabAll
	}
}
