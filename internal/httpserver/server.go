// apps/go-cli/internal/httpserver/server.go
//
// HTTP service publishing the word of the day.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health".
//   - GET /svc/wordle/v2/{date}.json: the dated solution document that
//     solution.HTTP consumes.
//
// Notes:
//   - The archive is consulted first so a published word never changes.
//   - Unpublished dates are computed from the answer list and archived.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/go-cli/internal/store"
)

// Server bundles router, archive and the answer list.
type Server struct {
	r       *chi.Mux
	archive store.Archive
	answers []string
	salt    string
}

// New constructs a Server, installs middleware, and registers routes.
func New(archive store.Archive, answers []string, salt string) *Server {
	s := &Server{r: chi.NewRouter(), archive: archive, answers: answers, salt: salt}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger))     // request-scoped zerolog logger
	s.r.Use(accessLog)                       // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solutions","endpoints":["/health","GET /svc/wordle/v2/{date}.json"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Get("/svc/wordle/v2/{date}.json", s.handleSolution)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// accessLog logs method, path, status and duration through the request logger.
var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("requestId", chimw.GetReqID(r.Context())).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
})

// ------------------------------ SOLUTION -----------------------------------

// solutionRes mirrors the public daily document.
type solutionRes struct {
	ID              int    `json:"id"`
	Solution        string `json:"solution"`
	PrintDate       string `json:"print_date"`
	DaysSinceLaunch int    `json:"days_since_launch"`
}

// handleSolution returns the archived word for a date, publishing it first
// if this is the first request for that date.
func (s *Server) handleSolution(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "date")
	date, err := daily.ParseDateKey(key)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_date")
		return
	}
	key = daily.DateKey(date)

	e, err := s.archive.Get(r.Context(), key)
	if errors.Is(err, store.ErrNotFound) {
		e, err = s.publish(r, date)
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("date", key).Msg("resolve solution")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}

	_ = json.NewEncoder(w).Encode(solutionRes{
		ID:              e.DaysSinceLaunch,
		Solution:        e.Word,
		PrintDate:       e.Date,
		DaysSinceLaunch: e.DaysSinceLaunch,
	})
}

// errNoAnswers is returned when the server has no answer list to pick from.
var errNoAnswers = errors.New("no answers loaded")

// publish picks the word for date and records it in the archive.
// The archive keeps the first write, so the stored entry is re-read.
func (s *Server) publish(r *http.Request, date time.Time) (store.Entry, error) {
	if len(s.answers) == 0 {
		return store.Entry{}, errNoAnswers
	}
	idx := daily.WordIndex(date, s.salt, len(s.answers))
	e := store.Entry{
		Date:            daily.DateKey(date),
		WordIndex:       idx,
		Word:            s.answers[idx],
		DaysSinceLaunch: daily.DaysSinceLaunch(date),
	}
	if err := s.archive.Put(r.Context(), e); err != nil {
		return store.Entry{}, err
	}
	hlog.FromRequest(r).Info().Str("date", e.Date).Int("wordIndex", idx).Msg("published solution")
	return s.archive.Get(r.Context(), e.Date)
}

// writeError writes a small JSON error body.
func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
