package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pfportal/employer-api/internal/middleware"
	"github.com/pfportal/employer-api/internal/services"
)

type ChallanHandler struct {
	challanService *services.ChallanService
	receiptService *services.ReceiptService
}

func NewChallanHandler(challanService *services.ChallanService, receiptService *services.ReceiptService) *ChallanHandler {
	return &ChallanHandler{
		challanService: challanService,
		receiptService: receiptService,
	}
}

// @Summary List Challans
// @Description Lists all challans for the employer, newest first
// @Tags Challans
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /challans [get]
func (h *ChallanHandler) Index(c *gin.Context) {
	employerID := middleware.GetEmployerID(c)

	challans, err := h.challanService.List(c.Request.Context(), employerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"challans": challans})
}

// @Summary Get Challan
// @Description Gets one challan with its live full-payment context when present
// @Tags Challans
// @Produce json
// @Param id path int true "Challan ID"
// @Success 200 {object} models.ChallanResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /challans/{id} [get]
func (h *ChallanHandler) Show(c *gin.Context) {
	employerID := middleware.GetEmployerID(c)
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	challan, err := h.challanService.Show(c.Request.Context(), employerID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, challan)
}

// @Summary Cancel Challan
// @Description Voids a due challan; paid and cancelled challans are terminal
// @Tags Challans
// @Produce json
// @Param id path int true "Challan ID"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /challans/{id}/cancel [post]
func (h *ChallanHandler) Cancel(c *gin.Context) {
	employerID := middleware.GetEmployerID(c)
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	challan, err := h.challanService.Cancel(c.Request.Context(), employerID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Challan for Return File Id %s cancelled.", challan.TRRN),
		"challan": challan.ToResponse(),
	})
}

type ValidateBankRequest struct {
	BankName  string `json:"bankName" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	ChallanID uint   `json:"challanId" binding:"required"`
}

// @Summary Validate Bank
// @Description Mock internet-banking handshake: checks the selected bank participates in the scheme
// @Tags Challans
// @Accept json
// @Produce json
// @Param request body ValidateBankRequest true "Bank selection and net-banking credentials"
// @Success 200 {object} services.BankValidation
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /challans/validate-bank [post]
func (h *ChallanHandler) ValidateBank(c *gin.Context) {
	var req ValidateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bank, credentials and challan are required"})
		return
	}

	validation, err := h.challanService.ValidateBank(c.Request.Context(), req.BankName)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, validation)
}

type PayRequest struct {
	BankName string `json:"bankName" binding:"required"`
}

// @Summary Pay Challan
// @Description Records a successful mock payment against a due challan and returns the CRN
// @Tags Challans
// @Accept json
// @Produce json
// @Param id path int true "Challan ID"
// @Param request body PayRequest true "Bank selection"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /challans/{id}/pay [post]
func (h *ChallanHandler) Pay(c *gin.Context) {
	employerID := middleware.GetEmployerID(c)
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bank is required"})
		return
	}

	challan, err := h.challanService.Pay(c.Request.Context(), employerID, id, req.BankName)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Payment successful. CRN %s.", *challan.PaymentCRN),
		"challan": challan.ToResponse(),
	})
}

// @Summary Challan Receipt PDF
// @Description Renders the payment receipt for a paid challan
// @Tags Challans
// @Produce application/pdf
// @Param id path int true "Challan ID"
// @Success 200 {file} file
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /challans/{id}/receipt.pdf [get]
func (h *ChallanHandler) Receipt(c *gin.Context) {
	employerID := middleware.GetEmployerID(c)
	id, err := parseIDParam(c)
	if err != nil {
		return
	}

	buf, filename, err := h.receiptService.GenerateReceipt(c.Request.Context(), employerID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
