package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/assetbook/assetbook-backend/internal/domain"
	"github.com/assetbook/assetbook-backend/internal/usecase/asset"
	"github.com/assetbook/assetbook-backend/internal/usecase/category"
	"github.com/assetbook/assetbook-backend/internal/usecase/dashboard"
)

// Config carries the transport-level settings
type Config struct {
	APIToken  string
	JWTSecret string // when set, bearer tokens must be valid HS256 JWTs
}

// Server wires the use case services into the HTTP surface
type Server struct {
	AssetService     *asset.AssetService
	CategoryService  *category.CategoryService
	DashboardService *dashboard.DashboardService
	TaskRepo         domain.ReplacementTaskRepository

	config Config
	logger *logrus.Logger
}

// NewServer creates a new HTTP server instance
func NewServer(
	assetService *asset.AssetService,
	categoryService *category.CategoryService,
	dashboardService *dashboard.DashboardService,
	taskRepo domain.ReplacementTaskRepository,
	config Config,
	logger *logrus.Logger,
) *Server {
	return &Server{
		AssetService:     assetService,
		CategoryService:  categoryService,
		DashboardService: dashboardService,
		TaskRepo:         taskRepo,
		config:           config,
		logger:           logger,
	}
}

// Router builds the full route table
// /healthz and /metrics are unauthenticated; everything under /v1 requires a
// valid token
func (s *Server) Router() *mux.Router {
	root := mux.NewRouter()
	root.Use(LoggingMiddleware(s.logger))
	root.Use(MetricsMiddleware())

	root.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	root.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := root.PathPrefix("/v1").Subrouter()
	api.Use(AuthMiddleware(s.config.APIToken, s.config.JWTSecret))

	api.HandleFunc("/assets", s.handleCreateAsset).Methods(http.MethodPost)
	api.HandleFunc("/assets", s.handleListAssets).Methods(http.MethodGet)
	api.HandleFunc("/assets/{id}", s.handleGetAsset).Methods(http.MethodGet)
	api.HandleFunc("/assets/{id}", s.handleUpdateAsset).Methods(http.MethodPut)
	api.HandleFunc("/assets/{id}", s.handleDisposeAsset).Methods(http.MethodDelete)
	api.HandleFunc("/assets/{id}/valuation", s.handleGetAssetValuation).Methods(http.MethodGet)
	api.HandleFunc("/assets/{id}/maintenance", s.handleRecordMaintenance).Methods(http.MethodPost)
	api.HandleFunc("/assets/{id}/maintenance", s.handleListMaintenance).Methods(http.MethodGet)

	api.HandleFunc("/categories", s.handleCreateCategory).Methods(http.MethodPost)
	api.HandleFunc("/categories", s.handleListCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id}", s.handleGetCategory).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id}", s.handleUpdateCategory).Methods(http.MethodPut)

	api.HandleFunc("/portfolio/summary", s.handlePortfolioSummary).Methods(http.MethodGet)

	api.HandleFunc("/replacement-tasks", s.handleListReplacementTasks).Methods(http.MethodGet)
	api.HandleFunc("/replacement-tasks/generate", s.handleGenerateReplacementTasks).Methods(http.MethodPost)
	api.HandleFunc("/replacement-tasks/{id}/complete", s.handleCompleteReplacementTask).Methods(http.MethodPost)

	return root
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
