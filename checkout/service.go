package checkout

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"gemrock-store/models"
	"gemrock-store/products"
	"gemrock-store/utils"
)

// OrderStatusConfirmed is the status of every successfully placed order
const OrderStatusConfirmed = "confirmed"

// ProductLookup resolves a product by id
type ProductLookup interface {
	ProductByID(id int) (models.CatalogItem, bool)
}

// Service computes checkout quotes and places simulated orders.
// Orders are not persisted and no payment is taken.
type Service struct {
	products ProductLookup
	delay    time.Duration
	now      func() time.Time
	logger   *zap.SugaredLogger
}

// NewService creates a new checkout Service. delay simulates order processing.
func NewService(lookup ProductLookup, delay time.Duration, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{
		products: lookup,
		delay:    delay,
		now:      time.Now,
		logger:   logger,
	}
}

// WithClock replaces the clock used for order numbers and timestamps
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Prepare resolves the product and computes the order summary for a quantity and
// shipping method. Quantities below 1 are raised to 1, as the quantity control does.
func (s *Service) Prepare(productID, quantity int, shipping string) (models.CheckoutQuote, error) {
	item, totals, method, err := s.price(productID, max(quantity, 1), shipping)
	if err != nil {
		return models.CheckoutQuote{}, err
	}

	return models.CheckoutQuote{
		Product:        item,
		ShippingMethod: string(method),
		DeliveryTime:   method.DeliveryTime(),
		Totals:         totals.Display(),
	}, nil
}

// PlaceOrder validates the request, waits out the processing delay and returns the
// confirmation. Every call yields a fresh order number.
func (s *Service) PlaceOrder(ctx context.Context, productID int, req models.PlaceOrderRequest) (models.Order, error) {
	if req.Quantity < 1 {
		return models.Order{}, ErrInvalidQuantity
	}
	if err := ValidateBuyer(req.Buyer); err != nil {
		return models.Order{}, err
	}

	item, totals, method, err := s.price(productID, req.Quantity, req.ShippingMethod)
	if err != nil {
		return models.Order{}, err
	}

	s.logger.Infof("📥 Processing order for product %d (qty %d, %s)", productID, req.Quantity, method)
	if err := wait(ctx, s.delay); err != nil {
		s.logger.Warnf("⚠️ Order for product %d cancelled: %v", productID, err)
		return models.Order{}, fmt.Errorf("order processing interrupted: %w", err)
	}

	placedAt := s.now()
	order := models.Order{
		OrderNumber:       OrderNumber(placedAt),
		Status:            OrderStatusConfirmed,
		Product:           item,
		Quantity:          req.Quantity,
		ShippingMethod:    string(method),
		EstimatedDelivery: method.DeliveryTime(),
		Buyer:             req.Buyer,
		Totals:            totals.Display(),
		PlacedAt:          placedAt.UTC().Format(time.RFC3339),
	}
	s.logger.Infof("✅ Order %s confirmed, total %s", order.OrderNumber, order.Totals.Total)
	return order, nil
}

func (s *Service) price(productID, quantity int, shipping string) (models.CatalogItem, Totals, ShippingMethod, error) {
	item, ok := s.products.ProductByID(productID)
	if !ok {
		return models.CatalogItem{}, Totals{}, "", fmt.Errorf("product %d: %w", productID, products.ErrNotFound)
	}

	method, err := ParseShippingMethod(shipping)
	if err != nil {
		return models.CatalogItem{}, Totals{}, "", err
	}

	unitPrice, err := utils.ParseUSD(item.Price)
	if err != nil {
		return models.CatalogItem{}, Totals{}, "", fmt.Errorf("product %d: %w", productID, err)
	}

	return item, ComputeTotals(unitPrice, quantity, method), method, nil
}

// OrderNumber formats "ORD-" followed by the last 8 digits of the millisecond timestamp
func OrderNumber(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "ORD-" + ms
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
