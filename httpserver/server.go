// Package httpserver exposes the solver over HTTP.
//
// Endpoints:
//   - GET /health                               word count
//   - GET /suggest?guess=crane:*y**g&max=10     ranked candidates for the guesses
//   - GET /entropy/{word}                       entropy of one dictionary word
//
// Every response is JSON, errors are {"error": "..."}.
package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/powellquiring/wordle-solver/solver"
	"github.com/powellquiring/wordle-solver/wordle"
)

type Server struct {
	r        *chi.Mux
	solver   *solver.Solver
	logger   zerolog.Logger
	maxWords int
}

// New installs middleware and routes, maxWords is the default for /suggest.
func New(s *solver.Solver, logger zerolog.Logger, maxWords int) *Server {
	srv := &Server{r: chi.NewRouter(), solver: s, logger: logger, maxWords: maxWords}

	srv.r.Use(chimw.RequestID)
	srv.r.Use(chimw.RealIP)
	srv.r.Use(srv.requestLog)
	srv.r.Use(chimw.Recoverer)
	srv.r.Use(jsonContentType)

	srv.r.Get("/health", srv.handleHealth)
	srv.r.Get("/suggest", srv.handleSuggest)
	srv.r.Get("/entropy/{word}", srv.handleEntropy)
	srv.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found: "+r.URL.Path)
	})
	return srv
}

// Router exposes the router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("serving")
		errc <- hs.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// ----------------------------- middleware ----------------------------------

func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// ------------------------------ handlers -----------------------------------

type healthRes struct {
	OK    bool `json:"ok"`
	Words int  `json:"words"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthRes{OK: true, Words: s.solver.Dictionary().Len()})
}

type scoredWord struct {
	Word    string  `json:"word"`
	Entropy float64 `json:"entropy"`
}

type suggestRes struct {
	Outcome    string       `json:"outcome"`
	Candidates int          `json:"candidates"`
	Words      []scoredWord `json:"words"`
}

// handleSuggest reads repeated guess=word:feedback parameters and an optional max.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := s.maxWords
	if m := query.Get("max"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "max must be a non negative integer")
			return
		}
		limit = n
	}
	records := make([]wordle.GuessRecord, 0, len(query["guess"]))
	for _, pair := range query["guess"] {
		record, err := wordle.ParseGuessPair(pair)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		records = append(records, record)
	}

	result, err := s.solver.Suggest(records, limit)
	if err != nil {
		s.logger.Error().Err(err).Msg("suggest")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	res := suggestRes{
		Outcome:    result.Outcome.String(),
		Candidates: result.Candidates,
		Words:      make([]scoredWord, len(result.Words)),
	}
	for i, scored := range result.Words {
		res.Words[i] = scoredWord{Word: scored.Word.String(), Entropy: scored.Score}
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleEntropy(w http.ResponseWriter, r *http.Request) {
	word, err := wordle.ParseWord(chi.URLParam(r, "word"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	score, ok := s.solver.Table().Score(word)
	if !ok {
		writeError(w, http.StatusNotFound, "not in dictionary: "+word.String())
		return
	}
	writeJSON(w, http.StatusOK, scoredWord{Word: word.String(), Entropy: score})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
