package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xomware/xomware-backend/api/controllers"
	"github.com/xomware/xomware-backend/api/middleware"
	"github.com/xomware/xomware-backend/internal/auth"
	"github.com/xomware/xomware-backend/internal/users"
	"github.com/xomware/xomware-backend/pkg/config"
	"github.com/xomware/xomware-backend/pkg/db"
	"github.com/xomware/xomware-backend/pkg/logger"
	"github.com/xomware/xomware-backend/pkg/metrics"
	"github.com/xomware/xomware-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface depends on.
type RouterParams struct {
	Config       *config.Config
	Logger       *logger.Logger
	DB           db.Pinger
	Redis        *redis.Client
	AuthService  auth.Service
	UsersService users.Service
	Registry     *prometheus.Registry
	HTTPMetrics  *metrics.HTTPMetrics
}

func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(params.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	var cache redis.Pinger
	if params.Redis != nil {
		cache = params.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, params.DB, cache, logg))
	})

	if params.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(params.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
		r.Post("/validate", controllers.PublicValidate(logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(middleware.Idempotency(params.Redis, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, params.Redis, logg)).Post("/login", controllers.AuthLogin(params.AuthService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, params.Redis, logg)).Post("/register", controllers.AuthRegister(params.AuthService, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.Idempotency(params.Redis, logg))

		r.Get("/ping", controllers.PrivatePing())

		r.Route("/v1/users", func(r chi.Router) {
			r.Get("/", controllers.UsersList(params.UsersService, logg))
			r.Get("/me", controllers.UsersMe(params.UsersService, logg))
		})
	})

	return r
}
