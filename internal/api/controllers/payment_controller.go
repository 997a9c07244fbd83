package controllers

import (
	"errors"
	"github.com/gin-gonic/gin"
	"io"
	"juarapay/internal/config"
	"juarapay/internal/models/request_models"
	"juarapay/internal/models/response_models"
	"juarapay/internal/services"
	"juarapay/pkg/utils"
	"log"
	"net/http"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
	midtransCfg    config.MidtransConfig
	paymentCfg     config.PaymentConfig
}

func NewPaymentController(paymentService services.PaymentServiceInterface, cfg config.Config) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		midtransCfg:    cfg.Midtrans,
		paymentCfg:     cfg.Payment,
	}
}

// CreateTransaction godoc
// @Summary Create a hosted checkout transaction
// @Description Create a hosted checkout transaction with the payment gateway and store a pending record
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreateTransactionRequest true "Create Transaction Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payments/create-transaction [post]
func (p *PaymentController) CreateTransaction(c *gin.Context) {

	var request request_models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	userID := c.GetString("user_id")

	if userID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "User must be logged in")
		return
	}

	response, err := p.paymentService.CreateTransaction(userID, request, c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response, "Transaction created successfully")
}

// GetClientConfig godoc
// @Summary Browser-side checkout settings
// @Description Publishable gateway key, environment flag and the redirect URLs the checkout returns the customer to
// @Tags Payments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /payments/client-config [get]
func (p *PaymentController) GetClientConfig(c *gin.Context) {
	utils.RespondSuccess(c, response_models.ClientConfigResponse{
		ClientKey:  p.midtransCfg.ClientKey,
		Production: p.midtransCfg.Production,
		FinishURL:  p.paymentCfg.FinishURL,
		ErrorURL:   p.paymentCfg.ErrorURL,
		PendingURL: p.paymentCfg.PendingURL,
	}, "Client configuration")
}

// HandleNotification is the gateway-facing webhook. It is reachable without
// caller authentication; trust comes entirely from the verification step
// inside the service. Responses are plain text, which is what the gateway's
// retry logic reads.
func (p *PaymentController) HandleNotification(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("read notification body: %v", err)
		c.String(http.StatusInternalServerError, "Error processing notification")
		return
	}

	if err := p.paymentService.ProcessNotification(payload, c.Request.Context()); err != nil {
		if errors.Is(err, utils.ErrTransactionNotFound) {
			c.String(http.StatusNotFound, "Transaction not found")
			return
		}
		// Any other failure answers 500 so the gateway redelivers instead of
		// treating a lost update as acknowledged.
		log.Printf("process notification: %v", err)
		c.String(http.StatusInternalServerError, "Error processing notification")
		return
	}

	c.String(http.StatusOK, "OK")
}
