package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/diapredict/diapredict/api/handlers"
	"github.com/diapredict/diapredict/api/middleware"
	"github.com/diapredict/diapredict/internal/predictor"
	"github.com/diapredict/diapredict/pkg/config"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     config.ServerConfig
	svc        *predictor.Service
}

// NewServer wires the prediction service into the HTTP surface. The service
// is loaded before the server is constructed and shared read-only by every
// handler.
func NewServer(appCfg config.AppConfig, cfg config.ServerConfig, svc *predictor.Service) *Server {
	if appCfg.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()

	s := &Server{
		router: router,
		config: cfg,
		svc:    svc,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.CORS(s.config.CORS))
	s.router.Use(middleware.RequestLogger())
	s.router.Use(middleware.RequestID())
}

func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(s.svc)
	metricsHandler := handlers.NewMetricsHandler(s.svc)
	predictHandler := handlers.NewPredictHandler(s.svc)

	s.router.GET("/", s.root)
	s.router.GET("/health", healthHandler.Health)
	s.router.GET("/metrics", metricsHandler.Metrics)
	s.router.POST("/predict", predictHandler.Predict)
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Diabetes Prediction API",
		"endpoints": gin.H{
			"health":  "/health - Check API health and best model",
			"metrics": "/metrics - Get model evaluation metrics",
			"predict": "/predict - Make diabetes prediction (POST)",
		},
	})
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.config.Port)

	idleTimeout := s.config.IdleTimeout
	if idleTimeout == 0 {
		idleTimeout = 60 * time.Second
	}

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  idleTimeout,
	}

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Router() *gin.Engine {
	return s.router
}
