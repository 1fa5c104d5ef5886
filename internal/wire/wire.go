package wire

import (
	"fmt"
	"net/http"

	"sunainscent-api/internal/adaptor"
	"sunainscent-api/internal/auth"
	"sunainscent-api/internal/data/repository"
	"sunainscent-api/internal/usecase"
	"sunainscent-api/pkg/middleware"
	"sunainscent-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the assembled HTTP surface.
type App struct {
	Router *chi.Mux
}

// guards are the access gates shared by every route group.
type guards struct {
	user       func(http.Handler) http.Handler
	adminToken func(http.Handler) http.Handler
	adminFlag  func(http.Handler) http.Handler
	loginLimit func(http.Handler) http.Handler
}

// Wiring builds the auth core, services, handlers and routes.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	tokens, err := auth.NewTokenService(config.JWT.Secret, config.JWT.Algorithm, config.JWT.Expiration)
	if err != nil {
		return nil, fmt.Errorf("token service: %w", err)
	}
	hasher := auth.NewHasher(config.JWT.BcryptCost)
	resolver := auth.NewResolver(tokens, repo.User, config.Admin.Email, logger)

	service := usecase.NewService(repo, hasher, tokens, config, logger)
	handler := adaptor.NewHandler(service, logger)

	gateLog := logger.With(zap.String("component", "gate"))
	g := guards{
		user:       middleware.RequireUser(resolver, gateLog),
		adminToken: middleware.RequireAdminToken(resolver, gateLog),
		adminFlag:  middleware.RequireAdminFlag(gateLog),
		loginLimit: middleware.RateLimit(config.RateLimit.LoginRPS, config.RateLimit.LoginBurst, gateLog),
	}

	return &App{
		Router: setupRouter(handler, g, config, logger),
	}, nil
}

func setupRouter(handler *adaptor.Handler, g guards, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	api := func(r chi.Router) {
		wireAuth(r, handler.Auth, g)
		wireProduct(r, handler.Product, g)
		wireOrder(r, handler.Order, g)
		wireContact(r, handler.Contact, g)
		wireAdmin(r, handler.Admin, handler.Auth, g)
	}
	if config.App.APIPrefix == "" {
		api(r)
	} else {
		r.Route(config.App.APIPrefix, api)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, fmt.Sprintf("Welcome to %s", config.App.Name), map[string]string{
			"api": config.App.APIPrefix,
		})
	})

	return r
}
