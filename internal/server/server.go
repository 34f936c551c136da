// Package server exposes the generated table, its aggregations and exports
// over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/pgEdge/pgedge-agrigen/internal/asset"
	"github.com/pgEdge/pgedge-agrigen/internal/export"
	"github.com/pgEdge/pgedge-agrigen/internal/logging"
	"github.com/pgEdge/pgedge-agrigen/internal/report"
	"github.com/pgEdge/pgedge-agrigen/internal/session"
)

// Config holds server settings.
type Config struct {
	Addr string

	// Report configures the PDF export.
	Report report.Options

	// Debug enables gin's debug mode.
	Debug bool
}

// Server serves one session's table to every client.
type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	session    *session.Session
	fetcher    *asset.Fetcher
	pdf        export.Exporter
	metrics    *Metrics
	log        zerolog.Logger

	assetOnce sync.Once
	asset     json.RawMessage
	assetOK   bool
}

// New creates a server with all routes registered. fetcher may be nil, in
// which case the asset endpoint always reports no asset.
func New(cfg Config, sess *session.Session, fetcher *asset.Fetcher, metrics *Metrics) *Server {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	s := &Server{
		engine:  engine,
		session: sess,
		fetcher: fetcher,
		pdf:     export.NewPDF(report.NewRenderer(cfg.Report)),
		metrics: metrics,
		log:     logging.Component("http"),
		httpServer: &http.Server{
			Addr:         cfg.Addr,
			Handler:      engine,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	engine.Use(gin.Recovery(), s.observe)
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.engine.GET("/healthz", s.getHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.engine.Group("/api")
	api.GET("/records", s.getRecords)
	api.GET("/summary", s.getSummary)
	api.GET("/map", s.getMap)
	api.GET("/analytics", s.getAnalytics)
	api.GET("/charts/:name", s.getChart)
	api.GET("/ticker", s.getTicker)
	api.GET("/options", s.getOptions)
	api.GET("/export/:format", s.getExport)
	api.GET("/asset", s.getAsset)
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.httpServer.Addr).Msg("HTTP server starting")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the router, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// observe records metrics and a debug log line for every request.
func (s *Server) observe(c *gin.Context) {
	start := time.Now()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	status := c.Writer.Status()
	elapsed := time.Since(start)

	s.metrics.Requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	s.metrics.RequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())

	s.log.Debug().
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Dur("elapsed", elapsed).
		Msg("Request")
}

// loadAsset fetches the animation once per server.
func (s *Server) loadAsset(ctx context.Context) (json.RawMessage, bool) {
	s.assetOnce.Do(func() {
		if s.fetcher != nil {
			s.asset, s.assetOK = s.fetcher.Load(context.WithoutCancel(ctx))
		}
		if s.assetOK {
			s.metrics.AssetAvailable.Set(1)
		} else {
			s.metrics.AssetAvailable.Set(0)
		}
	})
	return s.asset, s.assetOK
}
