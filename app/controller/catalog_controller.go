package controller

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gemrock-store/catalog"
	"gemrock-store/models"
	"gemrock-store/products"
	"gemrock-store/service"
)

// featuredPerCategory is how many items of each category the index shows
const featuredPerCategory = 4

// CatalogController handles HTTP requests for category listings and exports
type CatalogController struct {
	store   *products.Store
	querier *catalog.Querier
	export  *service.ExportService
	logger  *zap.SugaredLogger
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(store *products.Store, export *service.ExportService, logger *zap.SugaredLogger) *CatalogController {
	return &CatalogController{
		store:   store,
		querier: catalog.NewQuerier(store),
		export:  export,
		logger:  logger,
	}
}

// Index handles GET /catalog
// Returns the categories with their item counts and a few featured items of each
func (c *CatalogController) Index(w http.ResponseWriter, r *http.Request) {
	var summaries []models.CategorySummary
	for _, category := range c.store.Categories() {
		summaries = append(summaries, models.CategorySummary{
			Key:   string(category),
			Title: category.Title(),
			Path:  "/catalog/" + category.Slug(),
			Count: len(c.store.ProductsByCategory(category)),
		})
	}

	writeJSON(w, c.logger, http.StatusOK, models.CatalogIndexResponse{
		Categories: summaries,
		Featured:   c.store.Featured(featuredPerCategory),
	})
}

// ListCategory handles GET /catalog/{category}?q=&page=
// Filters the category by search text and returns one page with its pager
func (c *CatalogController) ListCategory(w http.ResponseWriter, r *http.Request) {
	category, ok := c.category(w, r)
	if !ok {
		return
	}

	state := catalog.NewQueryState(category)
	state.SetSearch(r.URL.Query().Get("q"))
	state.SetPage(queryInt(r, "page", 1))

	result := c.querier.Run(state)
	c.logger.Infof("🔍 ListCategory: category=%s q=%q page=%d/%d matches=%d",
		category, result.Search, result.Page, result.TotalPages, result.TotalCount)

	writeJSON(w, c.logger, http.StatusOK, result)
}

// Sheet handles GET /catalog/{category}/sheet
// Returns the printable HTML sheet (loaded by the headless browser for PDF export)
func (c *CatalogController) Sheet(w http.ResponseWriter, r *http.Request) {
	category, ok := c.category(w, r)
	if !ok {
		return
	}

	html, err := c.export.RenderCategorySheet(category)
	if err != nil {
		c.logger.Errorf("❌ Sheet: Error rendering %s: %v", category, err)
		sendError(w, http.StatusInternalServerError, "RENDER_FAILED", "Failed to render catalog sheet", err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		c.logger.Errorf("❌ Sheet: Error writing HTML response: %v", err)
	}
}

// PDF handles GET /catalog/{category}/pdf
func (c *CatalogController) PDF(w http.ResponseWriter, r *http.Request) {
	category, ok := c.category(w, r)
	if !ok {
		return
	}

	pdfData, err := c.export.CategoryPDF(r.Context(), category)
	if err != nil {
		c.logger.Errorf("❌ PDF: Error generating PDF for %s: %v", category, err)
		sendError(w, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to generate PDF", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"catalog_%s.pdf\"", category.Slug()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfData); err != nil {
		c.logger.Errorf("❌ PDF: Error writing PDF response: %v", err)
	}
}

func (c *CatalogController) category(w http.ResponseWriter, r *http.Request) (products.Category, bool) {
	raw := mux.Vars(r)["category"]
	category, ok := products.ParseCategory(raw)
	if !ok {
		c.logger.Warnf("⚠️ Unknown category: %q", raw)
		sendError(w, http.StatusNotFound, "NOT_FOUND", "Category not found", raw)
		return "", false
	}
	return category, true
}
