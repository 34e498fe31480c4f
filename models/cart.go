package models

// AddToCartRequest represents the request body for POST /cart/items
type AddToCartRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// CartResponse represents the cart counter of a client session
type CartResponse struct {
	SessionID string `json:"sessionId"`
	Count     int    `json:"count"`
}
