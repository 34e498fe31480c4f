package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gemrock-store/app/controller"
	"gemrock-store/auth"
	"gemrock-store/models"
)

type Controllers struct {
	Catalog  *controller.CatalogController
	Product  *controller.ProductController
	Checkout *controller.CheckoutController
	Cart     *controller.CartController
	Auth     *controller.AuthController
	Admin    *controller.AdminController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes builds the route table. /account needs any session; /admin needs
// an admin or superadmin session.
func SetupRoutes(controllers *Controllers, gate *auth.Gate, logger *zap.SugaredLogger) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger(logger))
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	r.HandleFunc("/ping", pingHandler).Methods(http.MethodGet)

	// Catalog
	r.HandleFunc("/catalog", controllers.Catalog.Index).Methods(http.MethodGet)
	r.HandleFunc("/catalog/{category}", controllers.Catalog.ListCategory).Methods(http.MethodGet)
	r.HandleFunc("/catalog/{category}/sheet", controllers.Catalog.Sheet).Methods(http.MethodGet)
	r.HandleFunc("/catalog/{category}/pdf", controllers.Catalog.PDF).Methods(http.MethodGet)

	// Products
	r.HandleFunc("/products/{id}", controllers.Product.GetProduct).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}/image", controllers.Product.GetImage).Methods(http.MethodGet)

	// Checkout
	r.HandleFunc("/checkout/{id}", controllers.Checkout.Quote).Methods(http.MethodGet)
	r.HandleFunc("/checkout/{id}", controllers.Checkout.PlaceOrder).Methods(http.MethodPost)

	// Cart
	r.HandleFunc("/cart", controllers.Cart.GetCart).Methods(http.MethodGet)
	r.HandleFunc("/cart", controllers.Cart.ClearCart).Methods(http.MethodDelete)
	r.HandleFunc("/cart/items", controllers.Cart.AddItem).Methods(http.MethodPost)

	// Auth
	r.HandleFunc("/auth/login", controllers.Auth.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/signup", controllers.Auth.Signup).Methods(http.MethodPost)
	r.HandleFunc("/auth/logout", controllers.Auth.Logout).Methods(http.MethodPost)
	r.Handle("/account", gate.RequireAuthenticated(http.HandlerFunc(controllers.Auth.Account))).Methods(http.MethodGet)

	// Admin area
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(gate.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))
	admin.HandleFunc("/overview", controllers.Admin.Overview).Methods(http.MethodGet)
	admin.HandleFunc("/jobs", controllers.Admin.ListJobs).Methods(http.MethodGet)
	admin.HandleFunc("/jobs", controllers.Admin.CreateJob).Methods(http.MethodPost)
	admin.HandleFunc("/jobs/{id}", controllers.Admin.DeleteJob).Methods(http.MethodDelete)
	admin.HandleFunc("/users", controllers.Admin.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users", controllers.Admin.RegisterUser).Methods(http.MethodPost)
	admin.HandleFunc("/reports", controllers.Admin.ListReports).Methods(http.MethodGet)
	admin.HandleFunc("/reports", controllers.Admin.CreateReport).Methods(http.MethodPost)
	admin.HandleFunc("/reports/{id}", controllers.Admin.DeleteReport).Methods(http.MethodDelete)

	return r
}
