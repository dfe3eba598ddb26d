package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/patanova/groomer-api/internal/domains/catalog/application"
	catalogports "github.com/patanova/groomer-api/internal/domains/catalog/ports"
	clientsapp "github.com/patanova/groomer-api/internal/domains/clients/application"
	clientsports "github.com/patanova/groomer-api/internal/domains/clients/ports"
	schedapp "github.com/patanova/groomer-api/internal/domains/scheduling/application"
	scheddomain "github.com/patanova/groomer-api/internal/domains/scheduling/domain"
	schedports "github.com/patanova/groomer-api/internal/domains/scheduling/ports"
	"github.com/patanova/groomer-api/internal/platform/blob"
	sharederrors "github.com/patanova/groomer-api/internal/shared/errors"
)

// respondError translates application and port errors into RFC 7807
// responses. Unknown errors surface as 500s.
func respondError(c *gin.Context, err error) {
	sharederrors.Respond(c, problemFromError(err))
}

func problemFromError(err error) sharederrors.ProblemDetail {
	var slotConflict *schedports.SlotConflictError
	switch {
	case errors.As(err, &slotConflict):
		return sharederrors.NewSlotConflictProblem(slotConflict.AppointmentID)
	case errors.Is(err, scheddomain.ErrInvalidTransition):
		return sharederrors.ErrInvalidTransition.WithDetail(err.Error())
	case errors.Is(err, clientsapp.ErrInvalidInput),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, schedapp.ErrInvalidInput):
		return sharederrors.ErrValidation.WithDetail(err.Error())
	case errors.Is(err, clientsports.ErrNotFound),
		errors.Is(err, catalogports.ErrNotFound),
		errors.Is(err, schedports.ErrNotFound),
		errors.Is(err, blob.ErrNotFound):
		return sharederrors.ErrNotFound.WithDetail(err.Error())
	case errors.Is(err, clientsports.ErrConstraintViolation),
		errors.Is(err, schedports.ErrConstraintViolation):
		return sharederrors.ErrConflict.WithDetail(err.Error())
	default:
		return sharederrors.ErrInternal.WithDetail(err.Error())
	}
}
