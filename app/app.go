package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"gemrock-store/apiclient"
	"gemrock-store/app/controller"
	"gemrock-store/app/router"
	"gemrock-store/appstate"
	"gemrock-store/auth"
	"gemrock-store/checkout"
	"gemrock-store/config"
	"gemrock-store/datasource"
	"gemrock-store/db"
	"gemrock-store/products"
	"gemrock-store/repository"
	"gemrock-store/service"
)

// App is the wired service
type App struct {
	Handler http.Handler
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	log := logger.Sugar()

	// Initialize session store
	dialect, err := db.InitDB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	log.Infof("✅ Session store ready (%s)", dialect)

	sessionRepo := repository.NewSessionRepository(db.DB, dialect, log)
	if err := sessionRepo.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	store := products.NewStore()
	log.Infof("✅ Catalog generated: %d items in %d categories", len(store.All()), len(store.Categories()))

	log.Warn("⚠️ Auth is a simulation and NOT for production: any credentials sign in, passwords are compared in clear text")
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)
	sessions := auth.NewSessions(cfg.SessionKey, auth.PolicyFromConfig(cfg), tokens, sessionRepo, cfg.AuthDelay, log)
	gate := auth.NewGate(sessions, log)

	client := apiclient.New(cfg.APIURL, cfg.APITimeout, apiclient.NewSessionTokenSource(sessionRepo, sessions.KeyFromContext))
	source, err := datasource.New(cfg.DataSource, client, log)
	if err != nil {
		return nil, err
	}
	log.Infof("✅ Admin data source: %s (%s)", source.Name(), client.BaseURL())
	reports := service.NewReportService(source, repository.NewReportRepository(), log)

	images := service.NewImageService(cfg.ImageCacheDir, cfg.APITimeout, log)
	if err := images.EnsureCacheDir(); err != nil {
		return nil, err
	}
	export, err := service.NewExportService(store, cfg.BaseURL, cfg.ChromePath, log)
	if err != nil {
		return nil, err
	}

	controllers := &router.Controllers{
		Catalog:  controller.NewCatalogController(store, export, log),
		Product:  controller.NewProductController(store, images, log),
		Checkout: controller.NewCheckoutController(checkout.NewService(store, cfg.CheckoutDelay, log), log),
		Cart:     controller.NewCartController(appstate.NewContainer(), store, log),
		Auth:     controller.NewAuthController(sessions, log),
		Admin:    controller.NewAdminController(source, reports, log),
	}

	return &App{Handler: router.SetupRoutes(controllers, gate, log)}, nil
}
