package controller

import (
	"net/http"

	"go.uber.org/zap"

	"gemrock-store/appstate"
	"gemrock-store/models"
	"gemrock-store/products"
)

// CartController handles HTTP requests for the cart counter
type CartController struct {
	state  *appstate.Container
	store  *products.Store
	logger *zap.SugaredLogger
}

// NewCartController creates a new CartController
func NewCartController(state *appstate.Container, store *products.Store, logger *zap.SugaredLogger) *CartController {
	return &CartController{state: state, store: store, logger: logger}
}

// GetCart handles GET /cart
func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	id, _ := sessionID(r)
	w.Header().Set(SessionHeader, id)
	writeJSON(w, c.logger, http.StatusOK, models.CartResponse{SessionID: id, Count: c.state.CartCount(id)})
}

// AddItem handles POST /cart/items
// Example request body: {"productId": 51, "quantity": 2}
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_INPUT", "Invalid JSON format", err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if _, found := c.store.ProductByID(req.ProductID); !found {
		sendError(w, http.StatusNotFound, "NOT_FOUND", "Product not found", "")
		return
	}

	id, _ := sessionID(r)
	count, err := c.state.AddToCart(id, req.Quantity)
	if err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_INPUT", "Invalid cart item", err.Error())
		return
	}

	c.logger.Infof("✅ AddItem: session=%s product=%d qty=%d count=%d", id, req.ProductID, req.Quantity, count)
	w.Header().Set(SessionHeader, id)
	writeJSON(w, c.logger, http.StatusOK, models.CartResponse{SessionID: id, Count: count})
}

// ClearCart handles DELETE /cart
func (c *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	id, _ := sessionID(r)
	c.state.ClearCart(id)
	w.Header().Set(SessionHeader, id)
	writeJSON(w, c.logger, http.StatusOK, models.CartResponse{SessionID: id})
}
