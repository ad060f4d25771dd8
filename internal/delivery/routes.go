package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

type RouteOptions struct {
	// RateLimitRPM limits /api requests per client IP per minute; 0 disables it.
	RateLimitRPM int
	StaticDir    string
}

func RegisterRoutes(
	r chi.Router,
	hGateway *GatewayHandler,
	hSession *SessionHandler,
	opts RouteOptions,
) {
	r.Route("/api", func(api chi.Router) {
		api.Use(httputil.RecoverMiddleware)
		if opts.RateLimitRPM > 0 {
			api.Use(httprate.LimitByIP(opts.RateLimitRPM, time.Minute))
		}

		// --- gateway ---
		api.Post("/translate", hGateway.Translate)
		api.Post("/speech-to-text", hGateway.SpeechToText)
		api.Post("/suggest", hGateway.Suggest)

		// --- sessions ---
		api.Post("/sessions", hSession.Create)
		api.Route("/sessions/{id}", func(sr chi.Router) {
			sr.Get("/", hSession.Get)
			sr.Delete("/", hSession.Delete)
			sr.Post("/reset", hSession.Reset)
			sr.Post("/primary", hSession.SubmitPrimary)
			sr.Post("/secondary", hSession.SubmitSecondary)
			sr.Post("/select", hSession.SelectSuggestion)
			sr.Post("/capture/{side}/start", hSession.StartCapture)
			sr.Post("/capture/{side}/stop", hSession.StopCapture)
		})
	})

	if opts.StaticDir != "" {
		r.With(httputil.RecoverMiddleware).Get("/*", StaticHandler(opts.StaticDir))
	}
}
