package ipc

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/viv/pkg/server"
)

// NewRouter returns the HTTP handler for host.
func NewRouter(host *server.Server, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	h := &handlers{host: host, logger: logger}

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		requestLogger(logger),
		middleware.Recoverer,
	)

	r.Get("/healthz", h.health)
	r.Route("/workspaces", func(r chi.Router) {
		r.Get("/", h.listWorkspaces)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", h.getWorkspace)
			r.Post("/actions/{action}", h.dispatch)
			r.Post("/layouts/next", h.nextLayout)
			r.Put("/layout", h.setLayout)
		})
	})
	r.Post("/outputs/{name}/resize", h.resizeOutput)

	return r
}

func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("Request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
