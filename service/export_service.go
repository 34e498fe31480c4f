package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"gemrock-store/catalog"
	"gemrock-store/models"
	"gemrock-store/products"
	"gemrock-store/templates"
)

// ExportService renders printable catalog sheets and turns them into PDFs
type ExportService struct {
	source     catalog.ProductSource
	baseURL    string // Base URL the headless browser loads sheets from (e.g., "http://localhost:8080")
	chromePath string
	tmpl       *template.Template
	logger     *zap.SugaredLogger
}

// NewExportService creates a new ExportService
func NewExportService(source catalog.ProductSource, baseURL, chromePath string, logger *zap.SugaredLogger) (*ExportService, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	tmpl, err := template.New("catalog.html").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(templates.FS, "catalog.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	return &ExportService{
		source:     source,
		baseURL:    baseURL,
		chromePath: chromePath,
		tmpl:       tmpl,
		logger:     logger,
	}, nil
}

// detectChromePath returns the configured Chrome path if it exists, then the first
// common installation path found
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// paginateItems splits items into catalog pages of catalog.ItemsPerPage
func paginateItems(items []models.CatalogItem) [][]models.CatalogItem {
	total := catalog.TotalPages(len(items))
	pages := make([][]models.CatalogItem, 0, total)
	for p := 1; p <= total; p++ {
		pages = append(pages, catalog.PageWindow(items, p))
	}
	return pages
}

// RenderCategorySheet renders every item of a category as a printable HTML sheet
func (s *ExportService) RenderCategorySheet(category products.Category) (string, error) {
	items := s.source.ProductsByCategory(category)
	if len(items) == 0 {
		return "", fmt.Errorf("category %s: %w", category, products.ErrNotFound)
	}

	data := struct {
		Title       string
		TotalCount  int
		Pages       [][]models.CatalogItem
		GeneratedAt string
	}{
		Title:       category.Title(),
		TotalCount:  len(items),
		Pages:       paginateItems(items),
		GeneratedAt: time.Now().UTC().Format("2006-01-02"),
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// CategoryPDF loads the category sheet in headless Chrome and prints it to A4 PDF
func (s *ExportService) CategoryPDF(ctx context.Context, category products.Category) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("enable-print-preview", true),
	)
	if chromePath := detectChromePath(s.chromePath); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()
	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/catalog/%s/sheet", s.baseURL, category.Slug())
	s.logger.Infof("📄 Generating PDF for %s from %s", category, renderURL)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // 210mm x 297mm at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(`
			Promise.all(Array.from(document.querySelectorAll('img')).map(img => new Promise(resolve => {
				if (img.complete) { resolve(); return; }
				const timeout = setTimeout(resolve, 5000);
				img.onload = img.onerror = () => { clearTimeout(timeout); resolve(); };
			})));
		`, nil, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).   // 210mm in inches
				WithPaperHeight(11.69). // 297mm in inches
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		s.logger.Errorf("❌ PDF generation failed for %s: %v", category, err)
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	s.logger.Infof("✅ PDF generated for %s (%d bytes)", category, len(pdfBuf))
	return pdfBuf, nil
}
