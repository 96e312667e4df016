package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"logistics-guide/backend/internal/catalog"
	"logistics-guide/backend/internal/export"
	"logistics-guide/backend/internal/guide"
	"logistics-guide/backend/internal/scoring"
	"logistics-guide/backend/internal/util"
)

// Config defines server dependencies.
type Config struct {
	AllowedOrigins []string
	Weights        scoring.Weights
	WeightsPreset  string
	// WeightsNotice is shown on every guide built with the configured weights,
	// e.g. after a zero-sum weights file fell back to the balanced preset.
	WeightsNotice    string
	MetricsNamespace string
}

// Server wires HTTP handlers with the scoring engine.
type Server struct {
	engine         *scoring.Engine
	preset         string
	notice         string
	allowedOrigins []string
	metrics        *Metrics
}

const (
	headerRequestID     = "X-Request-ID"
	contextKeyRequestID = "request_id"
	exportFilename      = "guia-logistica.xlsx"
)

// NewServer constructs the API server.
func NewServer(cfg Config) (*Server, error) {
	engine, notice, err := scoring.NewEngine(cfg.Weights)
	if err != nil {
		return nil, fmt.Errorf("scoring engine: %w", err)
	}
	if notice == "" {
		notice = cfg.WeightsNotice
	}

	preset := cfg.WeightsPreset
	if preset == "" {
		preset = "custom"
	}
	namespace := cfg.MetricsNamespace
	if namespace == "" {
		namespace = "logistics_guide"
	}

	logrus.WithFields(logrus.Fields{
		"preset":   preset,
		"cost":     engine.Weights().Cost,
		"speed":    engine.Weights().Speed,
		"control":  engine.Weights().Control,
		"coverage": engine.Weights().Coverage,
	}).Info("scoring weights configured")
	if notice != "" {
		logrus.Warn(notice)
	}

	registerTagNames()

	return &Server{
		engine:         engine,
		preset:         preset,
		notice:         notice,
		allowedOrigins: cfg.AllowedOrigins,
		metrics:        NewMetrics(namespace),
	}, nil
}

// Router configures gin routes.
func (s *Server) Router() (*gin.Engine, error) {
	r := gin.Default()

	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	corsCfg := cors.DefaultConfig()
	if len(s.allowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.allowedOrigins
	}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", headerRequestID}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	r.Use(cors.New(corsCfg))
	r.Use(requestID())
	r.Use(s.metrics.Middleware())

	r.GET("/", s.handleForm)
	r.POST("/", s.handleFormSubmit)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	r.GET("/api/healthz", s.handleHealth)
	r.GET("/api/config", s.handleConfig)

	api := r.Group("/api")
	{
		api.GET("/tariffs", s.handleTariffs)
		api.POST("/recommendations", s.handleRecommend)
		api.POST("/recommendations/export.xlsx", s.handleExport)
	}

	return r, nil
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(headerRequestID))
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(contextKeyRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigResponse{
		Preset:      s.preset,
		Presets:     scoring.PresetNames(),
		Weights:     s.engine.Weights(),
		Notice:      s.notice,
		SizeClasses: sizeClassDTOs(),
		Regions:     regionDTOs(),
		Modalities:  modalityDTOs(),
	})
}

func (s *Server) handleTariffs(c *gin.Context) {
	c.JSON(http.StatusOK, tariffsResponse())
}

func (s *Server) handleRecommend(c *gin.Context) {
	g, ok := s.bindGuide(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, RecommendationResponse{RequestID: c.GetString(contextKeyRequestID), Guide: g})
}

func (s *Server) handleExport(c *gin.Context) {
	g, ok := s.bindGuide(c)
	if !ok {
		return
	}
	f, err := export.Workbook(g)
	if err != nil {
		logrus.WithError(err).WithField("request_id", c.GetString(contextKeyRequestID)).Error("render workbook failed")
		s.renderError(c, http.StatusInternalServerError, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+exportFilename)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		logrus.WithError(err).WithField("request_id", c.GetString(contextKeyRequestID)).Error("write workbook failed")
		return
	}
	s.metrics.ExportsTotal.Inc()
}

// bindGuide decodes a JSON request and builds its guide. On failure it has
// already written the error response.
func (s *Server) bindGuide(c *gin.Context) (guide.Guide, bool) {
	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderValidation(c, bindingErrors(err))
		return guide.Guide{}, false
	}
	g, fields := s.buildGuide(c, req)
	if len(fields) > 0 {
		s.renderValidation(c, fields)
		return guide.Guide{}, false
	}
	return g, true
}

// buildGuide validates the request and ranks the scenario, using request
// weights when supplied.
func (s *Server) buildGuide(c *gin.Context, req RecommendationRequest) (guide.Guide, map[string]string) {
	timer := util.StartTimer()
	scenario, fields := req.Scenario()
	if len(fields) > 0 {
		return guide.Guide{}, fields
	}

	engine, notice := s.engine, s.notice
	if req.Weights != nil {
		custom, customNotice, err := scoring.NewEngine(*req.Weights)
		if err != nil {
			return guide.Guide{}, map[string]string{"weights": err.Error()}
		}
		engine, notice = custom, customNotice
	}

	g := guide.Build(engine, scenario, notice)
	s.observe(c, scenario, g, timer)
	return g, nil
}

func (s *Server) observe(c *gin.Context, scenario catalog.Scenario, g guide.Guide, timer util.Timer) {
	top := g.Top()
	s.metrics.RecommendationsTotal.WithLabelValues(top.Modality.Code(), string(scenario.Region)).Inc()
	logrus.WithFields(logrus.Fields{
		"request_id":   c.GetString(contextKeyRequestID),
		"size_class":   scenario.SizeClass,
		"region":       scenario.Region,
		"top_modality": top.Modality.Code(),
		"top_score":    top.Score,
		"adjustments":  g.Applied,
		"elapsed_ms":   timer.ElapsedMs(),
	}).Info("ranked modalities")
}

func (s *Server) renderValidation(c *gin.Context, fields map[string]string) {
	for field := range fields {
		s.metrics.ValidationFailures.WithLabelValues(field).Inc()
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  validationMessage(fields),
		"fields": fields,
	})
}

func (s *Server) renderError(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"error": err.Error()})
}

var errInvalidInput = errors.New("invalid input")

func validationMessage(fields map[string]string) string {
	names := sortedKeys(fields)
	return fmt.Sprintf("%v: %s", errInvalidInput, strings.Join(names, ", "))
}
