package server

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"magis-backend/internal/config"
	"magis-backend/internal/models"
	"magis-backend/internal/notify"
	"magis-backend/internal/store"
)

// Registry appends one row per submission to the tabular store.
type Registry interface {
	AppendSubmission(ctx context.Context, s models.Submission, notifyStatus, assetLocator, submittedAt string) error
}

type Server struct {
	cfg      config.Config
	notifier notify.Notifier
	registry Registry
	store    store.Store
	local    *store.Local // backs the read-side download endpoints
	validate *validator.Validate
}

// NewRouter wires the HTTP surface. The local store serves the download
// endpoints regardless of which backend receives new uploads.
func NewRouter(cfg config.Config, n notify.Notifier, reg Registry, st store.Store, local *store.Local) *mux.Router {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if tag := f.Tag.Get("form"); tag != "" {
			return tag
		}
		return f.Name
	})

	s := &Server{
		cfg:      cfg,
		notifier: n,
		registry: reg,
		store:    st,
		local:    local,
		validate: v,
	}

	r := mux.NewRouter()
	r.HandleFunc("/", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/submit", s.handleSubmit).Methods(http.MethodPost)
	r.HandleFunc("/download/{regno}", s.handleDownload).Methods(http.MethodGet)
	r.HandleFunc("/download-all", s.handleDownloadAll).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return r
}

func New(cfg config.Config, n notify.Notifier, reg Registry, st store.Store, local *store.Local) *http.Server {
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: corsMiddleware.Handler(NewRouter(cfg, n, reg, st, local)),
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "Backend running successfully"})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
