package handler

import (
	"io"

	"github.com/chatchaiw/apparel-api/internal/application/service"
	"github.com/chatchaiw/apparel-api/internal/domain/enum"
	"github.com/chatchaiw/apparel-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PublicHandler serves the unauthenticated customer order page
type PublicHandler struct {
	publicService *service.PublicOrderService
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(publicService *service.PublicOrderService) *PublicHandler {
	return &PublicHandler{publicService: publicService}
}

// GetOrder handles the customer order view by public UUID
func (h *PublicHandler) GetOrder(c *gin.Context) {
	publicID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		response.BadRequest(c, "Invalid order reference")
		return
	}

	view, err := h.publicService.GetOrder(c.Request.Context(), publicID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", response.NewPublicOrderResponse(view))
}

// UploadSlip handles a payment slip upload for one installment
func (h *PublicHandler) UploadSlip(c *gin.Context) {
	publicID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		response.BadRequest(c, "Invalid order reference")
		return
	}

	installment := c.PostForm("installment")
	if installment == "" {
		installment = c.Query("installment")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing slip file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Unable to read slip file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, "Unable to read slip file")
		return
	}

	order, err := h.publicService.UploadSlip(c.Request.Context(), &service.UploadSlipInput{
		PublicID:    publicID,
		Installment: enum.Installment(installment),
		Data:        data,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Slip uploaded successfully", gin.H{
		"order_no":         order.OrderNo,
		"status":           string(order.Status),
		"slip_booking_url": order.SlipBookingURL,
		"slip_deposit_url": order.SlipDepositURL,
		"slip_balance_url": order.SlipBalanceURL,
	})
}
