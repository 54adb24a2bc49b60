package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gymflow/internal/models/db_models"
	"gymflow/internal/models/request_models"
	"gymflow/internal/services"
	"gymflow/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// RecordPaymentHandler godoc
// @Summary Record a payment for a member
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreatePaymentRequest true "Payment payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /payments [post]
func (pc *PaymentController) RecordPaymentHandler(c *gin.Context) {
	var req request_models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	payment, err := pc.paymentService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, payment, "Payment recorded successfully")
}

// ListPaymentsHandler lists payments, optionally filtered by
// ?member_id= and ?method=.
func (pc *PaymentController) ListPaymentsHandler(c *gin.Context) {
	var memberID *uuid.UUID
	if memberIDStr := c.Query("member_id"); memberIDStr != "" {
		id, err := uuid.Parse(memberIDStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid member id")
			return
		}
		memberID = &id
	}

	payments, err := pc.paymentService.ListPayments(c.Request.Context(), memberID, c.Query("method"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payments, "Fetched payments successfully")
}

func (pc *PaymentController) UpdateStatusHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid payment id")
		return
	}

	var req request_models.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	payment, err := pc.paymentService.UpdateStatus(c.Request.Context(), id, db_models.TxnStatus(req.Status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payment, "Payment status updated successfully")
}

func (pc *PaymentController) RevenueStatsHandler(c *gin.Context) {
	stats, err := pc.paymentService.RevenueStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Fetched revenue stats successfully")
}
