// Package server exposes the planner over HTTP.
package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/julianstephens/koffee/internal/logger"
	"github.com/julianstephens/koffee/internal/models"
	"github.com/julianstephens/koffee/internal/planner"
	"github.com/julianstephens/koffee/internal/validation"
)

type Options struct {
	Planner   *planner.Planner
	Beverages []models.Beverage
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewRouter(opts Options) http.Handler {
	p := opts.Planner
	if p == nil {
		p = planner.New()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/beverages", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, opts.Beverages)
	})

	r.Get("/plan", func(w http.ResponseWriter, req *http.Request) {
		profile, err := profileFromQuery(req)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		plan, err := p.PlanProfile(profile)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, plan)
	})

	return r
}

func profileFromQuery(req *http.Request) (models.Profile, error) {
	q := req.URL.Query()

	weight, err := validation.ParseWeight(q.Get("weight"))
	if err != nil {
		return models.Profile{}, err
	}
	level, err := validation.ParseSensitivity(q.Get("sensitivity"))
	if err != nil {
		return models.Profile{}, err
	}
	return models.Profile{
		WeightKg:    weight,
		WakeTime:    strings.TrimSpace(q.Get("wake")),
		SleepTime:   strings.TrimSpace(q.Get("sleep")),
		Sensitivity: level,
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Failed to encode response", "error", err)
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}
