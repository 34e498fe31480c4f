package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gemrock-store/config"
	"gemrock-store/db"
	"gemrock-store/models"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Env:                "development",
		Port:               "8080",
		BaseURL:            "http://localhost:8080",
		APIURL:             "http://127.0.0.1:1/api/v1",
		DataSource:         config.DataSourceStub,
		APITimeout:         time.Second,
		AdminEmail:         "admin@gmail.com",
		AdminPassword:      "123456",
		SuperAdminEmail:    "superadmin@gmail.com",
		SuperAdminPassword: "superpassword123",
		SessionKey:         "user",
		SessionStore:       config.SessionStoreSQLite,
		SQLitePath:         ":memory:",
		JWTSecret:          "test-secret",
		JWTTTL:             time.Hour,
		ImageCacheDir:      t.TempDir(),
	}
}

func newTestApp(t *testing.T) http.Handler {
	t.Helper()
	return newTestAppWith(t, testConfig(t))
}

func newTestAppWith(t *testing.T, cfg config.Config) http.Handler {
	t.Helper()
	application, err := Initialize(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.CloseDB() })
	return application.Handler
}

func do(t *testing.T, h http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func login(t *testing.T, h http.Handler, profile, email, password string) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/auth/login", models.LoginRequest{Email: email, Password: password},
		map[string]string{"X-Session-ID": profile})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[models.SessionResponse](t, rec)
	require.NotNil(t, resp.User)
	require.NotEmpty(t, resp.User.Token)
	return resp.User.Token
}

func TestCatalogRoutes(t *testing.T) {
	h := newTestApp(t)

	t.Run("index lists eight categories", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/catalog", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		index := decode[models.CatalogIndexResponse](t, rec)
		assert.Len(t, index.Categories, 8)
		for _, c := range index.Categories {
			assert.Equal(t, 50, c.Count)
		}
	})

	t.Run("category page by slug", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/catalog/bead-strings?page=2", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		page := decode[models.CategoryPage](t, rec)
		assert.Equal(t, "beadStrings", page.Category)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 50, page.TotalCount)
		assert.True(t, page.Pager.Visible)
	})

	t.Run("search without matches", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/catalog/rocks?q=zzzzzz", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		page := decode[models.CategoryPage](t, rec)
		assert.Zero(t, page.TotalCount)
		assert.Empty(t, page.Items)
		assert.False(t, page.Pager.Visible)
	})

	t.Run("unknown category", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/catalog/fossils", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("printable sheet", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/catalog/jewellery/sheet", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "Jewellery")
	})
}

func TestProductRoutes(t *testing.T) {
	h := newTestApp(t)

	rec := do(t, h, http.MethodGet, "/products/51", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	item := decode[models.CatalogItem](t, rec)
	assert.Equal(t, 51, item.ID)
	assert.Equal(t, "jewellery", item.Category)
	assert.Equal(t, "$49.99", item.Price)

	for _, path := range []string{"/products/0", "/products/401", "/products/abc"} {
		rec := do(t, h, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		errResp := decode[models.ErrorResponse](t, rec)
		assert.Equal(t, "/catalog/findings", errResp.Redirect, path)
	}
}

func TestCheckoutRoutes(t *testing.T) {
	h := newTestApp(t)

	t.Run("quote", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/checkout/51?quantity=2&shipping=standard", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		quote := decode[models.CheckoutQuote](t, rec)
		assert.Equal(t, "99.98", quote.Totals.Subtotal)
		assert.Equal(t, "5.99", quote.Totals.Shipping)
		assert.Equal(t, "10.00", quote.Totals.Tax)
		assert.Equal(t, "115.97", quote.Totals.Total)
		assert.Equal(t, "5-7 days", quote.DeliveryTime)
	})

	t.Run("quote clamps quantity", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/checkout/51?quantity=0", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, decode[models.CheckoutQuote](t, rec).Totals.Quantity)
	})

	t.Run("place order", func(t *testing.T) {
		req := models.PlaceOrderRequest{
			Quantity:       1,
			ShippingMethod: "express",
			Buyer: models.BuyerDetails{
				FullName: "Jane Doe", Email: "jane@example.com", Phone: "555-0100",
				Address: "1 Main St", City: "Springfield", ZipCode: "12345", Country: "US",
				CardNumber: "4111111111111111", ExpiryDate: "12/30", CVC: "123", CardHolderName: "Jane Doe",
			},
		}
		rec := do(t, h, http.MethodPost, "/checkout/51", req, nil)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		order := decode[models.Order](t, rec)
		assert.Regexp(t, `^ORD-\d{8}$`, order.OrderNumber)
		assert.Equal(t, "confirmed", order.Status)
		assert.Equal(t, "1-2 days", order.EstimatedDelivery)
	})

	t.Run("missing buyer fields", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/checkout/51", models.PlaceOrderRequest{Quantity: 1}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown product", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/checkout/999", nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCartRoutes(t *testing.T) {
	h := newTestApp(t)
	headers := map[string]string{"X-Session-ID": "tab-1"}

	rec := do(t, h, http.MethodPost, "/cart/items", models.AddToCartRequest{ProductID: 51, Quantity: 2}, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decode[models.CartResponse](t, rec).Count)

	rec = do(t, h, http.MethodPost, "/cart/items", models.AddToCartRequest{ProductID: 52}, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, decode[models.CartResponse](t, rec).Count)

	rec = do(t, h, http.MethodGet, "/cart", nil, map[string]string{"X-Session-ID": "tab-2"})
	assert.Zero(t, decode[models.CartResponse](t, rec).Count)

	rec = do(t, h, http.MethodDelete, "/cart", nil, headers)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, http.MethodGet, "/cart", nil, headers)
	assert.Zero(t, decode[models.CartResponse](t, rec).Count)

	rec = do(t, h, http.MethodPost, "/cart/items", models.AddToCartRequest{ProductID: 9999}, headers)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/cart/items", models.AddToCartRequest{ProductID: 51, Quantity: 1 << 62}, headers)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, h, http.MethodGet, "/cart", nil, headers)
	assert.Zero(t, decode[models.CartResponse](t, rec).Count)
}

func TestAuthAndAdminGating(t *testing.T) {
	h := newTestApp(t)
	bearer := func(token string) map[string]string {
		return map[string]string{"Authorization": "Bearer " + token}
	}

	rec := do(t, h, http.MethodGet, "/admin/overview", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	userToken := login(t, h, "shopper", "someone@example.com", "whatever")
	rec = do(t, h, http.MethodGet, "/account", nil, bearer(userToken))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RoleUser, decode[models.SessionResponse](t, rec).User.Role)

	rec = do(t, h, http.MethodGet, "/admin/overview", nil, bearer(userToken))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := login(t, h, "", "admin@gmail.com", "123456")
	rec = do(t, h, http.MethodGet, "/admin/overview", nil, bearer(adminToken))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	stats := decode[models.OverviewStats](t, rec)
	assert.Equal(t, "stub", stats.DataSource)
	assert.Equal(t, 2, stats.TaxExperts)
	assert.Positive(t, stats.TotalUsers)
	assert.Positive(t, stats.TotalReports)

	t.Run("jobs", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/admin/jobs", models.CreateJobRequest{Title: "Gem Appraiser", Company: "GemRock"}, bearer(adminToken))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		job := decode[models.Job](t, rec)

		rec = do(t, h, http.MethodDelete, "/admin/jobs/"+job.ID, nil, bearer(adminToken))
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = do(t, h, http.MethodDelete, "/admin/jobs/"+job.ID, nil, bearer(adminToken))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("reports", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/admin/reports", models.CreateReportRequest{Title: "Q3 Royalties", Country: "AU"}, bearer(adminToken))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		report := decode[models.Report](t, rec)
		assert.Equal(t, "draft", report.Status)

		rec = do(t, h, http.MethodGet, "/admin/reports", nil, bearer(adminToken))
		require.Equal(t, http.StatusOK, rec.Code)
		reports := decode[[]models.Report](t, rec)
		require.NotEmpty(t, reports)
		assert.Equal(t, report.ID, reports[0].ID)
	})

	t.Run("invalid report", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/admin/reports", models.CreateReportRequest{Title: "Q4", Status: "archived"}, bearer(adminToken))
		assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	})

	t.Run("cancelled request", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := httptest.NewRequest(http.MethodGet, "/admin/reports", nil).WithContext(ctx)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, rec.Body.String())
	})

	t.Run("admin email is case sensitive", func(t *testing.T) {
		token := login(t, h, "caps", "ADMIN@gmail.com", "123456")
		rec := do(t, h, http.MethodGet, "/admin/overview", nil, bearer(token))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("logout invalidates the token", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/auth/logout", nil, map[string]string{"X-Session-ID": "shopper"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = do(t, h, http.MethodGet, "/account", nil, bearer(userToken))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = do(t, h, http.MethodGet, "/admin/overview", nil, bearer(adminToken))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLiveSourceForwardsCallerToken(t *testing.T) {
	var mu sync.Mutex
	var forwarded []string
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		forwarded = append(forwarded, r.Header.Get("Authorization"))
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer remote.Close()

	cfg := testConfig(t)
	cfg.DataSource = config.DataSourceLive
	cfg.APIURL = remote.URL + "/api/v1"
	h := newTestAppWith(t, cfg)

	shopperToken := login(t, h, "", "someone@example.com", "whatever")
	adminToken := login(t, h, "boss", "admin@gmail.com", "123456")
	require.NotEqual(t, shopperToken, adminToken)

	rec := do(t, h, http.MethodGet, "/admin/jobs", nil, map[string]string{"Authorization": "Bearer " + adminToken})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/auth/logout", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/admin/users", nil, map[string]string{"Authorization": "Bearer " + adminToken})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Bearer " + adminToken, "Bearer " + adminToken}, forwarded)
}

func TestUnknownRoute(t *testing.T) {
	h := newTestApp(t)
	rec := do(t, h, http.MethodGet, "/nowhere", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
