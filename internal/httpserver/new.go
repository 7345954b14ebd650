package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"study-copilot/config"
	"study-copilot/internal/capability"
	"study-copilot/internal/intent"
	"study-copilot/internal/metering"
	"study-copilot/internal/snapshot"
	"study-copilot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Intent domain
	registry *capability.Registry
	builder  *snapshot.Builder
	budget   metering.BudgetOracle
	oracle   intent.Oracle
	recorder *metering.Recorder
	usage    config.UsageConfig

	rateLimit config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	Registry *capability.Registry
	Builder  *snapshot.Builder
	Budget   metering.BudgetOracle
	Oracle   intent.Oracle
	Recorder *metering.Recorder
	Usage    config.UsageConfig

	RateLimit config.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		registry:    cfg.Registry,
		builder:     cfg.Builder,
		budget:      cfg.Budget,
		oracle:      cfg.Oracle,
		recorder:    cfg.Recorder,
		usage:       cfg.Usage,
		rateLimit:   cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.registry == nil {
		return errors.New("capability registry is required")
	}
	if srv.builder == nil {
		return errors.New("snapshot builder is required")
	}
	if srv.budget == nil {
		return errors.New("budget oracle is required")
	}
	if srv.oracle == nil {
		return errors.New("selection oracle is required")
	}
	if srv.recorder == nil {
		return errors.New("usage recorder is required")
	}
	return nil
}
