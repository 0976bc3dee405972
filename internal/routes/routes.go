package routes

import (
	"net/http"

	"github.com/AnshRaj112/tgprofile-forwarder/internal/handlers"
	"github.com/AnshRaj112/tgprofile-forwarder/internal/middleware"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	MiniApp *handlers.MiniAppHandler
	Submit  *handlers.SubmitHandler // nil leaves /submit unmounted

	// RateLimit guards the activation entry point only. The server forwards
	// profiles to its own /submit from loopback, so that route stays unlimited.
	RateLimit func(http.Handler) http.Handler
}

// SetupRoutes mounts the routes on r. It adds middleware, so r must not have routes yet.
func SetupRoutes(r chi.Router, h Handlers) {
	// The page carries unescaped init data; CSP applies in every environment.
	r.Use(middleware.SecurityHeaders)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Mini-app entry point
	if h.RateLimit != nil {
		r.With(h.RateLimit).Get("/", h.MiniApp.Page)
	} else {
		r.Get("/", h.MiniApp.Page)
	}

	// Development acceptor for forwarded profiles
	if h.Submit != nil {
		r.Post("/submit", h.Submit.Submit)
	}
}
