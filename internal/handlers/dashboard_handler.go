package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pfportal/employer-api/internal/middleware"
	"github.com/pfportal/employer-api/internal/services"
)

type DashboardHandler struct {
	dashboardService    *services.DashboardService
	notificationService *services.NotificationService
}

func NewDashboardHandler(dashboardService *services.DashboardService, notificationService *services.NotificationService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService:    dashboardService,
		notificationService: notificationService,
	}
}

// @Summary Dashboard
// @Description Landing-page aggregate: profile, account summary, return counts, due amount and notifications
// @Tags Dashboard
// @Produce json
// @Success 200 {object} services.DashboardData
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Index(c *gin.Context) {
	employerID := middleware.GetEmployerID(c)

	data, err := h.dashboardService.Build(c.Request.Context(), employerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// @Summary Mark Notifications Read
// @Description Marks all of the employer's notifications as read
// @Tags Dashboard
// @Produce json
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /notifications/mark-read [post]
func (h *DashboardHandler) MarkNotificationsRead(c *gin.Context) {
	employerID := middleware.GetEmployerID(c)

	if err := h.notificationService.MarkAllAsRead(c.Request.Context(), employerID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notifications marked as read"})
}
