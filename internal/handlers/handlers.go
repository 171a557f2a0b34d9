package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pfportal/employer-api/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Return    *ReturnHandler
	Challan   *ChallanHandler
	Annexure  *AnnexureHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(),
		Auth:      NewAuthHandler(svcs.Auth),
		Dashboard: NewDashboardHandler(svcs.Dashboard, svcs.Notification),
		Return:    NewReturnHandler(svcs.Return, svcs.Statement),
		Challan:   NewChallanHandler(svcs.Challan, svcs.Receipt),
		Annexure:  NewAnnexureHandler(svcs.Annexure),
	}
}

// respondServiceError maps service errors onto the API's status code
// taxonomy. The frontend reads the "message" key of error payloads.
func respondServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrFileValidation),
		errors.Is(err, services.ErrOpenReturn),
		errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrContextExpired),
		errors.Is(err, services.ErrBankNotSupported):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"message": err.Error()})
}
