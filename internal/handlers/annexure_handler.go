package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pfportal/employer-api/internal/middleware"
	"github.com/pfportal/employer-api/internal/services"
)

type AnnexureHandler struct {
	annexureService *services.AnnexureService
}

func NewAnnexureHandler(annexureService *services.AnnexureService) *AnnexureHandler {
	return &AnnexureHandler{annexureService: annexureService}
}

// @Summary Member Roster
// @Description Lists the active members of the establishment
// @Tags Annexures
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /annexures/members [get]
func (h *AnnexureHandler) Members(c *gin.Context) {
	employerID := middleware.GetEmployerID(c)

	members, err := h.annexureService.Members(c.Request.Context(), employerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}

// @Summary Export Member Roster
// @Description Exports the active member roster as CSV or XLSX
// @Tags Annexures
// @Produce application/octet-stream
// @Param format query string false "Export format (csv or xlsx)" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /annexures/members/export [get]
func (h *AnnexureHandler) ExportMembers(c *gin.Context) {
	employerID := middleware.GetEmployerID(c)

	var (
		data        []byte
		filename    string
		contentType string
		err         error
	)

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		data, filename, err = h.annexureService.ExportMembersCSV(c.Request.Context(), employerID)
		contentType = "text/csv"
	case "xlsx":
		data, filename, err = h.annexureService.ExportMembersXLSX(c.Request.Context(), employerID)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unsupported export format"})
		return
	}

	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// @Summary Payment Banks
// @Description Lists the banks available on the challan payment page
// @Tags Annexures
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /annexures/banks [get]
func (h *AnnexureHandler) Banks(c *gin.Context) {
	banks, err := h.annexureService.Banks(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"banks": banks})
}
