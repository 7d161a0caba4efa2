package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Pranav212nair/xeno/internal/auth"
	"github.com/Pranav212nair/xeno/internal/metrics"
)

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(metrics.Instrument)
	r.Use(a.recoverer)

	// Public
	r.Get("/", a.Index)
	r.Get("/api/health", a.Health)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", a.Register)
		r.Post("/auth/login", a.Login)

		// Secured
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(a.Issuer))

			r.Get("/auth/me", a.Me)
			r.Get("/dashboard/stats", a.DashboardStats)

			r.Get("/campaigns", a.ListCampaigns)
			r.Post("/campaigns", a.CreateCampaign)
			r.Put("/campaigns/{id}", a.UpdateCampaign)
			r.Delete("/campaigns/{id}", a.DeleteCampaign)

			r.Get("/customers", a.ListCustomers)
			r.Get("/customers/top", a.TopCustomers)

			r.Get("/segments", a.ListSegments)
			r.Post("/segments", a.CreateSegment)

			r.Get("/orders", a.ListOrders)
			r.Get("/analytics", a.Analytics)

			r.Post("/shopify/sync", a.ShopifySync)
		})
	})

	return r
}

// recoverer maps panics to the uniform 500 body instead of chi's plain-text
// default.
func (a *API) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				a.writeError(w, r, http.StatusInternalServerError, "internal server error", recoveredError(rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
