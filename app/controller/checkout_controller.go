package controller

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"gemrock-store/checkout"
	"gemrock-store/models"
	"gemrock-store/products"
)

// CheckoutController handles HTTP requests for the checkout flow
type CheckoutController struct {
	service *checkout.Service
	logger  *zap.SugaredLogger
}

// NewCheckoutController creates a new CheckoutController
func NewCheckoutController(service *checkout.Service, logger *zap.SugaredLogger) *CheckoutController {
	return &CheckoutController{service: service, logger: logger}
}

// Quote handles GET /checkout/{id}?quantity=&shipping=
// Returns the product with the derived order summary
func (c *CheckoutController) Quote(w http.ResponseWriter, r *http.Request) {
	raw, id, ok := productID(r)
	if !ok {
		sendProductNotFound(w, raw)
		return
	}

	quote, err := c.service.Prepare(id, queryInt(r, "quantity", 1), r.URL.Query().Get("shipping"))
	if err != nil {
		c.handleError(w, raw, err)
		return
	}
	writeJSON(w, c.logger, http.StatusOK, quote)
}

// PlaceOrder handles POST /checkout/{id}
// Example request body:
// {"quantity": 2, "shippingMethod": "express", "buyer": {"fullName": "Jane Doe", "email": "jane@example.com", ...}}
func (c *CheckoutController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	c.logger.Infof("📥 PlaceOrder: Received %s request to %s", r.Method, r.URL.Path)

	raw, id, ok := productID(r)
	if !ok {
		sendProductNotFound(w, raw)
		return
	}

	var req models.PlaceOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		c.logger.Errorf("❌ PlaceOrder: Failed to decode request body: %v", err)
		sendError(w, http.StatusBadRequest, "INVALID_INPUT", "Invalid JSON format", err.Error())
		return
	}

	order, err := c.service.PlaceOrder(r.Context(), id, req)
	if err != nil {
		c.handleError(w, raw, err)
		return
	}
	writeJSON(w, c.logger, http.StatusCreated, order)
}

func (c *CheckoutController) handleError(w http.ResponseWriter, rawID string, err error) {
	switch {
	case errors.Is(err, products.ErrNotFound):
		c.logger.Warnf("⚠️ Checkout: %v", err)
		sendProductNotFound(w, rawID)
	case errors.Is(err, checkout.ErrInvalidQuantity),
		errors.Is(err, checkout.ErrMissingField),
		errors.Is(err, checkout.ErrInvalidShipping):
		c.logger.Warnf("⚠️ Checkout: rejected: %v", err)
		sendError(w, http.StatusBadRequest, "INVALID_INPUT", "Invalid order", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		sendError(w, http.StatusServiceUnavailable, "CANCELLED", "Order processing was interrupted", err.Error())
	default:
		c.logger.Errorf("❌ Checkout: %v", err)
		sendError(w, http.StatusInternalServerError, "INTERNAL", "Failed to process order", err.Error())
	}
}
