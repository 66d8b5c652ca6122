package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cosmossdk.io/log"
	"github.com/gorilla/mux"

	"github.com/Uchechukwu-Ekezie/mini-ajo/api/handlers"
	"github.com/Uchechukwu-Ekezie/mini-ajo/api/middleware"
	"github.com/Uchechukwu-Ekezie/mini-ajo/metrics"
	"github.com/Uchechukwu-Ekezie/mini-ajo/x/ajo/keeper"
)

// Server represents the API server
type Server struct {
	httpServer *http.Server
	config     *Config
	logger     log.Logger

	node        *LocalNode
	poolHandler *handlers.PoolHandler
	collector   *metrics.Collector
	rateLimiter *middleware.RateLimiter
}

// NewServer creates an API server over a fresh local node. collector may be
// nil, in which case nothing is recorded.
func NewServer(config *Config, collector *metrics.Collector, logger log.Logger) (*Server, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var recorder keeper.Recorder
	if collector != nil {
		recorder = collector
	}
	node, err := NewLocalNode(config.Node, recorder, logger)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:      config,
		logger:      logger.With("module", "api"),
		node:        node,
		poolHandler: handlers.NewPoolHandler(node),
		collector:   collector,
	}
	if config.RateLimit.Enabled {
		var hits middleware.HitRecorder
		if collector != nil {
			hits = collector
		}
		s.rateLimiter = middleware.NewRateLimiter(middleware.RateLimitConfig{
			RequestsPerSecond: config.RateLimit.RequestsPerSecond,
			Burst:             config.RateLimit.Burst,
			TxPerSecond:       config.RateLimit.TxPerSecond,
			TxBurst:           config.RateLimit.TxBurst,
			IdleTTL:           config.RateLimit.IdleTTL,
		}, hits)
	}

	s.httpServer = &http.Server{
		Addr:         config.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}
	return s, nil
}

// Node returns the local node behind the server
func (s *Server) Node() *LocalNode {
	return s.node
}

// Handler builds the router and middleware chain:
// RequestID -> CORS -> RateLimit -> router (Logging) -> handler
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Logging(s.logger, s.collector))

	r.HandleFunc("/health", s.handleHealth).Methods("GET")
	if s.collector != nil {
		r.Handle("/metrics", metrics.Handler()).Methods("GET")
	}
	s.poolHandler.RegisterRoutes(r)

	var handler http.Handler = r
	if s.rateLimiter != nil {
		handler = s.rateLimiter.Middleware(handler)
	}
	return middleware.RequestID(middleware.CORS(handler))
}

// Start starts the API server and blocks until it stops
func (s *Server) Start() error {
	s.logger.Info("API server starting",
		"addr", s.config.Addr(),
		"chain_id", s.config.Node.ChainID,
		"rate_limit", s.config.RateLimit.Enabled,
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully shuts down the server
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	chainID, height, blockTime := s.node.Status()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":     "healthy",
		"timestamp":  time.Now().Unix(),
		"chain_id":   chainID,
		"height":     height,
		"block_time": blockTime.Unix(),
		"warning":    "This API uses in-memory storage and trusts the signer in each tx body.",
	})
}
