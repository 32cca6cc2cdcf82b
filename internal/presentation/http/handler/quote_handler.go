package handler

import (
	"github.com/chatchaiw/apparel-api/internal/application/service"
	"github.com/chatchaiw/apparel-api/internal/config"
	"github.com/chatchaiw/apparel-api/internal/presentation/http/dto/request"
	"github.com/chatchaiw/apparel-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// QuoteHandler prices orders without saving them
type QuoteHandler struct {
	quoteService *service.QuoteService
	vatDefault   bool
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService, pricingCfg config.PricingConfig) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
		vatDefault:   pricingCfg.VATIncludedDefault,
	}
}

// Calculate handles a quote calculation
func (h *QuoteHandler) Calculate(c *gin.Context) {
	var req request.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	vatIncluded := h.vatDefault
	if req.IsVATIncluded != nil {
		vatIncluded = *req.IsVATIncluded
	}

	input := &service.QuoteInput{
		ShippingCost:   req.ShippingCost,
		AddOnCost:      req.AddOnCost,
		DiscountAmount: req.DiscountAmount,
		DesignFee:      req.DesignFee,
		VATIncluded:    vatIncluded,
		Deposit1:       req.Deposit1,
		Deposit2:       req.Deposit2,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.OrderLineInput{
			ProductName:    item.ProductName,
			ProductClass:   item.ProductClass,
			FabricType:     item.FabricType,
			NeckType:       item.NeckType,
			SleeveType:     item.SleeveType,
			QuantityBySize: item.QuantityMatrix,
			SelectedAddOns: item.SelectedAddOns,
			IsOversize:     item.IsOversize,
			UnitCost:       item.CostPerUnit,
			UnitPrice:      item.PricePerUnit,
		})
	}

	result, err := h.quoteService.Calculate(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote calculated successfully",
		response.NewQuoteResponse(result.Lines, result.Totals, result.ShippingEstimated))
}
