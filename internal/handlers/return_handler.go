package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pfportal/employer-api/internal/middleware"
	"github.com/pfportal/employer-api/internal/services"
)

type ReturnHandler struct {
	returnService    *services.ReturnService
	statementService *services.StatementService
}

func NewReturnHandler(returnService *services.ReturnService, statementService *services.StatementService) *ReturnHandler {
	return &ReturnHandler{
		returnService:    returnService,
		statementService: statementService,
	}
}

// @Summary Monthly Return Status
// @Description Lists the last 12 wage months with the status of each month's latest return
// @Tags Returns
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /returns/monthly [get]
func (h *ReturnHandler) Monthly(c *gin.Context) {
	employerID := middleware.GetEmployerID(c)

	statuses, err := h.returnService.MonthlyDashboard(c.Request.Context(), employerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"months": statuses})
}

// @Summary Upload Return
// @Description Uploads a plain-text monthly contribution return for a wage month
// @Tags Returns
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Return file (.txt)"
// @Param wageMonth formData string true "Wage month (YYYY-MM)"
// @Param returnType formData string false "Return type" default(Regular Return)
// @Param contributionRate formData int false "Contribution rate" default(12)
// @Param remark formData string false "Remark"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /returns/upload [post]
func (h *ReturnHandler) Upload(c *gin.Context) {
	employerID := middleware.GetEmployerID(c)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": services.ErrFileValidation.Error()})
		return
	}
	defer file.Close()

	rate, _ := strconv.Atoi(c.PostForm("contributionRate"))
	input := services.UploadInput{
		File:             file,
		Header:           header,
		WageMonth:        c.PostForm("wageMonth"),
		ReturnType:       c.PostForm("returnType"),
		ContributionRate: rate,
		Remark:           c.PostForm("remark"),
	}

	rf, err := h.returnService.Upload(c.Request.Context(), employerID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Return file uploaded successfully. TRRN %s.", rf.TRRN),
		"return":  rf.ToResponse(),
	})
}

// @Summary List Return Files
// @Description Lists in-process and recently concluded returns, optionally filtered by wage month
// @Tags Returns
// @Produce json
// @Param wageMonth query string false "Wage month (YYYY-MM)"
// @Success 200 {object} services.FileList
// @Security BearerAuth
// @Router /returns/files [get]
func (h *ReturnHandler) Files(c *gin.Context) {
	employerID := middleware.GetEmployerID(c)

	list, err := h.returnService.ListFiles(c.Request.Context(), employerID, c.Query("wageMonth"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// @Summary Get Return
// @Description Gets one return with statement totals and challan linkage
// @Tags Returns
// @Produce json
// @Param id path int true "Return ID"
// @Success 200 {object} services.ReturnDetail
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /returns/{id} [get]
func (h *ReturnHandler) Show(c *gin.Context) {
	employerID := middleware.GetEmployerID(c)
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	detail, err := h.returnService.Detail(c.Request.Context(), employerID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// @Summary Approve Return
// @Description Approves an in-process return and generates its challan
// @Tags Returns
// @Produce json
// @Param id path int true "Return ID"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /returns/{id}/approve [post]
func (h *ReturnHandler) Approve(c *gin.Context) {
	employerID := middleware.GetEmployerID(c)
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	rf, err := h.returnService.Approve(c.Request.Context(), employerID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Return File Id %s approved.", rf.TRRN),
		"return":  rf.ToResponse(),
	})
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// @Summary Reject Return
// @Description Rejects an in-process return with a scrutiny reason, reopening the wage month
// @Tags Returns
// @Accept json
// @Produce json
// @Param id path int true "Return ID"
// @Param request body RejectRequest true "Rejection reason"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /returns/{id}/reject [post]
func (h *ReturnHandler) Reject(c *gin.Context) {
	employerID := middleware.GetEmployerID(c)
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Rejection reason is required"})
		return
	}

	rf, err := h.returnService.Reject(c.Request.Context(), employerID, id, req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Return File Id %s rejected.", rf.TRRN),
		"return":  rf.ToResponse(),
	})
}

// @Summary Download Return File
// @Description Downloads the original uploaded return file
// @Tags Returns
// @Produce text/plain
// @Param id path int true "Return ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /returns/{id}/file [get]
func (h *ReturnHandler) File(c *gin.Context) {
	employerID := middleware.GetEmployerID(c)
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	f, filename, err := h.returnService.File(c.Request.Context(), employerID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "text/plain")
	c.File(f.Name())
}

// @Summary Return Statement PDF
// @Description Renders the return statement as a PDF document
// @Tags Returns
// @Produce application/pdf
// @Param id path int true "Return ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /returns/{id}/statement.pdf [get]
func (h *ReturnHandler) Statement(c *gin.Context) {
	employerID := middleware.GetEmployerID(c)
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	buf, filename, err := h.statementService.GenerateReturnStatement(c.Request.Context(), employerID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// @Summary Prepare Full Payment
// @Description Computes the composite remittance (return amount plus 7Q interest and 14B damages) for the return's due challan
// @Tags Returns
// @Produce json
// @Param id path int true "Return ID"
// @Success 200 {object} models.FullPaymentContext
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /returns/{id}/full-payment [post]
func (h *ReturnHandler) FullPayment(c *gin.Context) {
	employerID := middleware.GetEmployerID(c)
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	paymentCtx, err := h.returnService.PrepareFullPayment(c.Request.Context(), employerID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, paymentCtx)
}

// @Summary Finalize Challan
// @Description Freezes the prepared full-payment context so payment uses the composite grand total
// @Tags Returns
// @Produce json
// @Param id path int true "Return ID"
// @Success 200 {object} services.FinalizeResult
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /returns/{id}/finalize [post]
func (h *ReturnHandler) Finalize(c *gin.Context) {
	employerID := middleware.GetEmployerID(c)
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	result, err := h.returnService.FinalizeChallan(c.Request.Context(), employerID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// parseIDParam parses the :id path parameter, writing the error
// response itself so callers can simply return
func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, err
	}
	return uint(id), nil
}
