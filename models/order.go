package models

// OrderTotals represents the derived checkout figures, rendered to 2 decimal places
type OrderTotals struct {
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
	Shipping  string `json:"shipping"`
	Tax       string `json:"tax"`
	Total     string `json:"total"`
}

// BuyerDetails represents the shipping and payment form of the checkout
type BuyerDetails struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	City           string `json:"city"`
	ZipCode        string `json:"zipCode"`
	Country        string `json:"country"`
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVC            string `json:"cvc"`
	CardHolderName string `json:"cardHolderName"`
}

// PlaceOrderRequest represents the request body for placing an order
// Example: {"quantity": 2, "shippingMethod": "standard", "buyer": {"fullName": "Jane Doe", ...}}
type PlaceOrderRequest struct {
	Quantity       int          `json:"quantity"`
	ShippingMethod string       `json:"shippingMethod"` // "standard" or "express"
	Buyer          BuyerDetails `json:"buyer"`
}

// CheckoutQuote represents the order summary shown before submission
type CheckoutQuote struct {
	Product        CatalogItem `json:"product"`
	ShippingMethod string      `json:"shippingMethod"`
	DeliveryTime   string      `json:"deliveryTime"`
	Totals         OrderTotals `json:"totals"`
}

// Order represents a placed order confirmation. Orders are not persisted.
// Example response:
//
//	{
//	  "orderNumber": "ORD-12345678",
//	  "status": "confirmed",
//	  "product": { "id": 51, ... },
//	  "quantity": 2,
//	  "shippingMethod": "standard",
//	  "estimatedDelivery": "5-7 days",
//	  "totals": { "subtotal": "99.98", "shipping": "5.99", "tax": "10.00", "total": "115.97", ... },
//	  "placedAt": "2026-10-16T10:30:00Z"
//	}
type Order struct {
	OrderNumber       string       `json:"orderNumber"`
	Status            string       `json:"status"`
	Product           CatalogItem  `json:"product"`
	Quantity          int          `json:"quantity"`
	ShippingMethod    string       `json:"shippingMethod"`
	EstimatedDelivery string       `json:"estimatedDelivery"`
	Buyer             BuyerDetails `json:"buyer"`
	Totals            OrderTotals  `json:"totals"`
	PlacedAt          string       `json:"placedAt"`
}
