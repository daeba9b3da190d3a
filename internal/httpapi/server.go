// Package httpapi exposes the grocery session over a JSON HTTP surface.
// Handlers stay thin: bind the request, call the service, translate domain
// errors to statuses. No HTML is rendered here; the UI shell consumes the
// JSON directly.
package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"pantrycore/docs/openapi"
	"pantrycore/internal/config"
	"pantrycore/internal/core"
	"pantrycore/internal/export"
	"pantrycore/pkg/domain"
)

// Config wires the server's collaborators.
type Config struct {
	// Service handles every catalog, preference, and cart operation.
	Service *core.Service
	// Exports runs asynchronous export jobs. Required for the /api/exports
	// routes; the inline export endpoints work without it.
	Exports *export.Worker
	// Logger receives access logs and panic reports. Defaults to a plain
	// logrus logger.
	Logger *logrus.Logger
	// Metrics is gathered for /metrics. Defaults to the global registry.
	Metrics prometheus.Gatherer
	// Timezone stamps inline export titles and filenames. Defaults to the
	// export worker's convention.
	Timezone *time.Location
}

// Server owns the route table and its handlers.
type Server struct {
	service *core.Service
	exports *export.Worker
	logger  *logrus.Logger
	metrics prometheus.Gatherer
	loc     *time.Location
	nowFn   func() time.Time
}

// New builds a Server from cfg, filling defaults for optional fields.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}
	if cfg.Timezone == nil {
		cfg.Timezone = export.DefaultLocation()
	}
	return &Server{
		service: cfg.Service,
		exports: cfg.Exports,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		loc:     cfg.Timezone,
		nowFn:   time.Now,
	}
}

// Router assembles the gin engine with middleware and the full route table.
// The engine runs in release mode unless PANTRYCORE_HTTP_DEBUG is set.
func (s *Server) Router() *gin.Engine {
	if config.GetEnvBool("PANTRYCORE_HTTP_DEBUG", false) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(RequestID(), AccessLog(s.logger), Recovery(s.logger))

	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", s.metricsHandler())
	router.GET("/openapi.yaml", s.handleOpenAPISpec)

	api := router.Group("/api")
	{
		api.GET("/catalog", s.handleCatalog)
		api.GET("/catalog/search", s.handleCatalogSearch)
		api.GET("/items/:item/options", s.handleItemOptions)

		api.GET("/preferences", s.handlePreferenceList)
		api.PUT("/preferences/:item", s.handlePreferenceSave)
		api.DELETE("/preferences/:item", s.handlePreferenceDelete)

		api.GET("/hidden", s.handleHiddenList)
		api.POST("/hidden/:item", s.handleHideItem)
		api.DELETE("/hidden/:item", s.handleRestoreItem)

		api.POST("/custom-items", s.handleCustomItemAdd)
		api.DELETE("/custom-items/:category/:item", s.handleCustomItemDelete)

		api.POST("/custom-brands", s.handleCustomBrandAdd)
		api.DELETE("/custom-brands/:group/:brand", s.handleCustomBrandDelete)

		api.GET("/cart", s.handleCartView)
		api.POST("/cart", s.handleCartAdd)
		api.POST("/cart/:id/adjust", s.handleCartAdjust)
		api.DELETE("/cart/:id", s.handleCartRemove)
		api.DELETE("/cart", s.handleCartClear)

		api.GET("/export/list.txt", s.handleExportText)
		api.GET("/export/backup", s.handleExportBackup)
		api.POST("/import", s.handleImport)

		api.POST("/exports", s.handleExportEnqueue)
		api.GET("/exports", s.handleExportIndex)
		api.GET("/exports/:id", s.handleExportGet)
	}

	return router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "pantrycore"})
}

func (s *Server) handleOpenAPISpec(c *gin.Context) {
	c.Data(http.StatusOK, "application/yaml", openapi.Spec())
}

func (s *Server) metricsHandler() gin.HandlerFunc {
	handler := promhttp.Handler()
	if s.metrics != nil {
		handler = promhttp.HandlerFor(s.metrics, promhttp.HandlerOpts{})
	}
	return gin.WrapH(handler)
}

// renderError maps domain errors onto HTTP statuses: rejected imports to 400,
// blocked transactions to 422, missing records to 404, everything else 500.
func renderError(c *gin.Context, err error) {
	var importErr *domain.ImportError
	var ruleErr domain.RuleViolationError
	switch {
	case errors.As(err, &importErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": importErr.Error(), "reason": importErr.Reason})
	case errors.As(err, &ruleErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      ruleErr.Error(),
			"violations": violationViews(ruleErr.Result.Violations),
		})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// violationView mirrors domain.Violation with wire-friendly field names.
type violationView struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Entity   string `json:"entity"`
	EntityID string `json:"entity_id,omitempty"`
}

func violationViews(violations []domain.Violation) []violationView {
	out := make([]violationView, 0, len(violations))
	for _, v := range violations {
		out = append(out, violationView{
			Rule:     v.Rule,
			Severity: string(v.Severity),
			Message:  v.Message,
			Entity:   string(v.Entity),
			EntityID: v.EntityID,
		})
	}
	return out
}

// respond writes payload, attaching non-blocking rule violations as warnings
// when the transaction produced any.
func respond(c *gin.Context, status int, payload gin.H, res domain.Result) {
	if len(res.Violations) > 0 {
		payload["warnings"] = violationViews(res.Violations)
	}
	c.JSON(status, payload)
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
}
