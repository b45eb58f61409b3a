// internal/httpserver/routes_daily.go
//
// GET /daily returns the grid of the day and its solutions.
// An optional ?date=YYYY-MM-DD selects another day; the default is today in UTC.
// The grid is derived from the date, the salt, and the current dictionary's letters.

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordhunt/internal/daily"
	"github.com/robalobadob/wordhunt/internal/grid"
)

// mountDaily registers the /daily route.
func (s *Server) mountDaily(r chi.Router) {
	r.Get("/daily", s.handleDaily)
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	date := time.Now().UTC()
	if q := r.URL.Query().Get("date"); q != "" {
		d, err := daily.ParseDateKey(q)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_date"})
			return
		}
		date = d
	}

	st := s.dict.Load()
	g, err := grid.New(daily.Letters(date, s.cfg.DailySalt, st.pool))
	if err != nil {
		// Only possible with an empty letter pool.
		log.Error().Err(err).Msg("daily grid")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "no_dictionary"})
		return
	}

	res, ok := s.solve(r, g)
	if !ok {
		return
	}
	res.Date = daily.DateKey(date)
	writeJSON(w, http.StatusOK, res)
}
