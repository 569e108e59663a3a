package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"ecommerce-api/internal/auth"
	"ecommerce-api/internal/catalog"
	"ecommerce-api/internal/orders"
	"ecommerce-api/pkg/metrics"
)

type Deps struct {
	Log     zerolog.Logger
	Auth    *auth.Service
	Catalog *catalog.Service
	Orders  *orders.Service
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func NewRouter(d *Deps) http.Handler {
	authH := &AuthHandlers{Svc: d.Auth, Log: d.Log}
	productH := &ProductHandlers{Svc: d.Catalog, Log: d.Log}
	orderH := &OrderHandlers{Svc: d.Orders, Log: d.Log}

	requireAuth := AuthMiddleware(d.Auth, d.Log)
	requireAdmin := RequireAdmin(d.Log)

	r := chi.NewRouter()
	r.Use(metrics.Middleware("api"))
	r.Use(LangMiddleware)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authH.Register)
			r.Post("/verify-email", authH.VerifyEmail)
			r.Post("/login", authH.Login)
			r.Post("/forgot-password", authH.ForgotPassword)
			r.Post("/reset-password", authH.ResetPassword)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/profile", authH.Profile)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productH.List)
			r.Get("/{id}", productH.Get)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", productH.Create)
				// Owner-or-admin is enforced in the service, not by an
				// admin gate here.
				r.Put("/{id}", productH.Update)
				r.Delete("/{id}", productH.Delete)
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", orderH.Create)
			r.Get("/my", orderH.ListMine)
			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Get("/", orderH.ListAll)
				r.Delete("/{id}", orderH.Delete)
			})
		})
	})
	return r
}
