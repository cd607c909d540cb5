package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/samdazain/forumapi-v2/backend/internal/handler"
	"github.com/samdazain/forumapi-v2/shared/config"
	mw "github.com/samdazain/forumapi-v2/shared/middleware"
	"github.com/samdazain/forumapi-v2/shared/middleware/metrics"
	"github.com/samdazain/forumapi-v2/shared/middleware/ratelimiter"
)

// New creates and configures a chi router with all the routes.
// Every write endpoint shares one limiter keyed by user id, or by IP for
// anonymous requests.
func New(h *handler.Handler, authMw *mw.Auth, writeLimiter *ratelimiter.UserRateLimiter, cfg *config.Public) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(metrics.Middleware)
	r.Use(mw.SecurityHeaders(false))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	limitWrites := mw.RateLimit(writeLimiter, mw.GetIdentity)

	r.Group(func(r chi.Router) {
		r.Use(limitWrites)
		r.Post("/users", h.RegisterUser)
		r.Post("/authentications", h.Login)
		r.Put("/authentications", h.RefreshToken)
		r.Delete("/authentications", h.Logout)
	})

	r.Route("/threads", func(r chi.Router) {
		r.Get("/{threadId}", h.GetThread)

		r.Group(func(r chi.Router) {
			r.Use(authMw.OptionalAuth())
			r.Use(limitWrites)
			r.Post("/", h.CreateThread)
			r.Post("/{threadId}/comments", h.CreateComment)
			r.Delete("/{threadId}/comments/{commentId}", h.DeleteComment)
			r.Put("/{threadId}/comments/{commentId}/likes", h.ToggleCommentLike)
			r.Post("/{threadId}/comments/{commentId}/replies", h.CreateReply)
			r.Delete("/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
		})
	})

	return r
}
