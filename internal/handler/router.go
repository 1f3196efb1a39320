package handler

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// NewRouter wires the roster API routes.
func NewRouter(h *RosterHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /survivors", h.ListSurvivors)
	mux.HandleFunc("POST /survivors", h.AddSurvivor)
	mux.HandleFunc("DELETE /survivors", h.ClearSurvivors)
	mux.HandleFunc("DELETE /survivors/{index}", h.RemoveSurvivor)
	mux.HandleFunc("POST /party", h.BestParty)
	mux.HandleFunc("POST /parties", h.QualifyingParties)

	return requestLogger(mux)
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogger logs method, path, status and duration of each request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("Request completed")
	})
}
