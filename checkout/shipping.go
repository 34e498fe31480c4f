package checkout

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ShippingMethod is the delivery option chosen at checkout
type ShippingMethod string

const (
	Standard ShippingMethod = "standard"
	Express  ShippingMethod = "express"
)

var shippingCosts = map[ShippingMethod]decimal.Decimal{
	Standard: decimal.RequireFromString("5.99"),
	Express:  decimal.RequireFromString("14.99"),
}

var deliveryTimes = map[ShippingMethod]string{
	Standard: "5-7 days",
	Express:  "1-2 days",
}

// ParseShippingMethod resolves a shipping method, defaulting blank input to standard
func ParseShippingMethod(value string) (ShippingMethod, error) {
	v := ShippingMethod(strings.ToLower(strings.TrimSpace(value)))
	if v == "" {
		return Standard, nil
	}
	if _, ok := shippingCosts[v]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidShipping, value)
	}
	return v, nil
}

// Cost returns the flat shipping cost of the method
func (m ShippingMethod) Cost() decimal.Decimal {
	return shippingCosts[m]
}

// DeliveryTime returns the estimated delivery window shown to the buyer
func (m ShippingMethod) DeliveryTime() string {
	return deliveryTimes[m]
}
