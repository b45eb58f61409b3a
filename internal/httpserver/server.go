// internal/httpserver/server.go
//
// HTTP API for the word hunter.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Solve endpoints (bearer auth when JWT_SECRET is configured): POST /solve, GET /daily.
//   - Holding the current dictionary so it can be swapped on reload.
//
// Notes:
//   - Scans honour the request context: the Timeout middleware stops a scan between words.
//   - Results are cached in memory per (dictionary fingerprint, grid letters).

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordhunt/internal/grid"
	"github.com/robalobadob/wordhunt/internal/hunt"
	"github.com/robalobadob/wordhunt/internal/letters"
	"github.com/robalobadob/wordhunt/internal/store"
	"github.com/robalobadob/wordhunt/internal/words"
)

// Config carries the server settings that main reads from the environment.
type Config struct {
	JWTSecret string        // empty disables auth
	DailySalt string        // HMAC salt for the daily grid
	Timeout   time.Duration // per-request budget; 0 means 10s
}

// dictState is one loaded dictionary plus values derived from it once.
type dictState struct {
	dict        *words.Dictionary
	fingerprint string
	pool        []rune
}

// Server bundles router, current dictionary, and solve cache.
type Server struct {
	r     *chi.Mux
	cfg   Config
	cache store.Store
	dict  atomic.Pointer[dictState]
}

// New constructs a Server, installs middleware, and registers routes.
func New(dict *words.Dictionary, cache store.Store, cfg Config) *Server {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.DailySalt == "" {
		cfg.DailySalt = "local_dev_salt"
	}
	s := &Server{r: chi.NewRouter(), cfg: cfg, cache: cache}
	s.SetDictionary(dict)

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(cfg.Timeout))
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordhunt","endpoints":["/health","POST /solve","GET /daily","/debug/words"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		st := s.dict.Load()
		writeJSON(w, http.StatusOK, map[string]any{
			"words":       st.dict.Len(),
			"fingerprint": st.fingerprint,
			"cached":      s.cache.Len(),
		})
	})

	// --- solving ---
	s.r.Group(func(r chi.Router) {
		if cfg.JWTSecret != "" {
			r.Use(s.requireAuth())
		}
		r.Post("/solve", s.handleSolve)
		s.mountDaily(r)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// SetDictionary atomically replaces the dictionary used by new requests.
func (s *Server) SetDictionary(d *words.Dictionary) {
	st := &dictState{dict: d, fingerprint: d.Fingerprint(), pool: d.Letters()}
	s.dict.Store(st)
	log.Info().Int("words", d.Len()).Str("fingerprint", st.fingerprint[:12]).Msg("dictionary active")
}

// Dictionary returns the dictionary currently in use.
func (s *Server) Dictionary() *words.Dictionary { return s.dict.Load().dict }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables CORS for a single origin from CLIENT_ORIGIN (default http://localhost:5173).
func corsFromEnv(next http.Handler) http.Handler {
	origin := getEnv("CLIENT_ORIGIN", "http://localhost:5173")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- SOLVE -------------------------------------

type solveReq struct {
	Letters string `json:"letters"`
}

// solveRes is shared by /solve and /daily.
type solveRes struct {
	Date    string     `json:"date,omitempty"`
	Letters string     `json:"letters"`
	Grid    [][]string `json:"grid"`
	Found   hunt.Found `json:"found"`
	Total   int        `json:"total"`
	Cached  bool       `json:"cached"`
}

// handleSolve builds a grid from the posted letters and returns every dictionary word in it.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_json"})
		return
	}
	g, err := grid.New(req.Letters)
	if errors.Is(err, grid.ErrInvalidLetterCount) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": "invalid_letter_count",
			"count": letters.Count(req.Letters),
			"want":  grid.Cells,
		})
		return
	}
	res, ok := s.solve(r, g)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// solve scans g against the current dictionary, going through the cache.
// It reports false when the request context ended before the scan finished.
func (s *Server) solve(r *http.Request, g *grid.Grid) (*solveRes, bool) {
	st := s.dict.Load()
	res := &solveRes{Letters: g.Letters(), Grid: gridStrings(g)}

	if found, err := s.cache.Get(r.Context(), st.fingerprint, res.Letters); err == nil {
		res.Found, res.Total, res.Cached = found, found.Total(), true
		return res, true
	}

	start := time.Now()
	found, err := hunt.ScanContext(r.Context(), g, st.dict)
	if err != nil {
		// Deadline: the Timeout middleware answers 504. Cancel: the client is gone.
		log.Warn().Err(err).Str("letters", res.Letters).Int("partial", found.Total()).Msg("scan aborted")
		return nil, false
	}
	found = found.Sorted()
	if err := s.cache.Save(r.Context(), st.fingerprint, res.Letters, found); err != nil {
		log.Warn().Err(err).Msg("cache save")
	}
	log.Debug().
		Str("letters", res.Letters).
		Str("sub", Subject(r.Context())).
		Int("found", found.Total()).
		Dur("took", time.Since(start)).
		Msg("solved")

	res.Found, res.Total = found, found.Total()
	return res, true
}

// gridStrings renders the grid rows as one-letter strings for JSON.
func gridStrings(g *grid.Grid) [][]string {
	rows := g.Rows()
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, c := range row {
			out[i][j] = string(c)
		}
	}
	return out
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
