package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ansj1105/coin-csms-sub001/internal/auth"
	"github.com/ansj1105/coin-csms-sub001/internal/domain"
	"github.com/ansj1105/coin-csms-sub001/internal/service"
	"github.com/ansj1105/coin-csms-sub001/pkg/health"
	"github.com/ansj1105/coin-csms-sub001/pkg/middleware"
)

// RouterConfig holds the dependencies and settings for the HTTP router.
type RouterConfig struct {
	UserService     *service.UserService
	CurrencyService *service.CurrencyService
	TokenManager    *auth.TokenManager
	HealthHandler   *health.Handler
	Logger          *slog.Logger
	CORS            CORSConfig
	RateLimitRPS    int
	RateLimitBurst  int
}

// NewRouter creates a chi router with all routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(CORS(cfg.CORS))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("coin-csms"))
	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.Logger))
	}

	// Health check endpoints
	r.Get("/health/live", cfg.HealthHandler.LivenessHandler())
	r.Get("/health/ready", cfg.HealthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	authHandler := NewAuthHandler(cfg.UserService, cfg.Logger)
	userHandler := NewUserHandler(cfg.UserService, cfg.Logger)
	currencyHandler := NewCurrencyHandler(cfg.CurrencyService, cfg.Logger)

	requireAuth := Auth(cfg.TokenManager)
	requireAdmin := RequireRole(domain.RoleAdmin, domain.RoleSuperAdmin)

	// Auth endpoints
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/admin/login", authHandler.AdminLogin)
		r.Post("/refresh", authHandler.RefreshToken)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/change-password", authHandler.ChangePassword)
		})
	})

	// Profile endpoints (auth required)
	r.Route("/api/v1/users", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(requireAuth)

		r.Get("/me", userHandler.GetProfile)
		r.Put("/me", userHandler.UpdateProfile)
	})

	// Public currency catalog
	r.Route("/api/v1/currencies", func(r chi.Router) {
		r.Get("/", currencyHandler.List)
		r.Get("/{code}", currencyHandler.Get)
	})

	// Admin endpoints (admin role required)
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(requireAuth)
		r.Use(requireAdmin)

		r.Get("/users", userHandler.ListUsers)
		r.Get("/users/{id}", userHandler.GetUser)
		r.Put("/users/{id}/role", userHandler.SetRole)
		r.Delete("/users/{id}", userHandler.DeactivateUser)

		r.Post("/currencies", currencyHandler.Create)
		r.Put("/currencies/{code}", currencyHandler.Update)
	})

	return r
}
