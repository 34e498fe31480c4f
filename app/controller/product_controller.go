package controller

import (
	"net/http"

	"go.uber.org/zap"

	"gemrock-store/products"
	"gemrock-store/service"
)

// ProductController handles HTTP requests for single products
type ProductController struct {
	store  *products.Store
	images *service.ImageService
	logger *zap.SugaredLogger
}

// NewProductController creates a new ProductController
func NewProductController(store *products.Store, images *service.ImageService, logger *zap.SugaredLogger) *ProductController {
	return &ProductController{store: store, images: images, logger: logger}
}

// GetProduct handles GET /products/{id}
func (c *ProductController) GetProduct(w http.ResponseWriter, r *http.Request) {
	raw, id, ok := productID(r)
	if !ok {
		sendProductNotFound(w, raw)
		return
	}

	item, found := c.store.ProductByID(id)
	if !found {
		c.logger.Warnf("⚠️ GetProduct: product %d not found", id)
		sendProductNotFound(w, raw)
		return
	}
	writeJSON(w, c.logger, http.StatusOK, item)
}

// GetImage handles GET /products/{id}/image?size=thumb|medium
// Returns the product image as an optimized JPEG
func (c *ProductController) GetImage(w http.ResponseWriter, r *http.Request) {
	raw, id, ok := productID(r)
	if !ok {
		sendProductNotFound(w, raw)
		return
	}
	item, found := c.store.ProductByID(id)
	if !found {
		sendProductNotFound(w, raw)
		return
	}

	size := r.URL.Query().Get("size")
	data, err := c.images.Thumbnail(r.Context(), item, size)
	if err != nil {
		c.logger.Errorf("❌ GetImage: product %d: %v", id, err)
		sendError(w, http.StatusBadGateway, "IMAGE_UNAVAILABLE", "Failed to load product image", err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		c.logger.Errorf("❌ GetImage: Error writing image response: %v", err)
	}
}
