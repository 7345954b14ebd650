package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"study-copilot/config"
	_ "study-copilot/docs" // Swagger docs
	"study-copilot/internal/capability"
	"study-copilot/internal/httpserver"
	intentOracle "study-copilot/internal/intent/oracle"
	"study-copilot/internal/metering"
	"study-copilot/internal/profile"
	"study-copilot/internal/snapshot"
	"study-copilot/pkg/llmprovider"
	"study-copilot/pkg/log"
)

// @title       Study Copilot API
// @description Intent classification and capability dispatch for the study assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Study Copilot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Capability registry
	registry, err := capability.DefaultRegistry()
	if err != nil {
		logger.Error(ctx, "Failed to build capability registry: ", err)
		return
	}

	// 4. Profile source + snapshot builder
	var profileSource snapshot.ProfileSource
	if cfg.Profile.URL != "" {
		client, pErr := profile.NewClient(profile.Config{
			URL:         cfg.Profile.URL,
			AccessToken: cfg.Profile.AccessToken,
		})
		if pErr != nil {
			logger.Error(ctx, "Failed to create profile client: ", pErr)
			return
		}
		profileSource = client
		logger.Infof(ctx, "Profile service: %s", cfg.Profile.URL)
	} else {
		profileSource = profile.Static{Profile: snapshot.Profile{
			Plan:            "free",
			RemainingTokens: cfg.Usage.DefaultMonthlyTokens,
		}}
		logger.Warn(ctx, "No profile service configured, using static free-plan profiles")
	}

	builder := snapshot.NewBuilder(logger, profileSource, snapshot.BuilderConfig{
		CacheSize: cfg.Profile.CacheSize,
		CacheTTL:  cfg.Profile.CacheTTL,
	})

	// 5. Budget ledger + async usage recorder
	ledger := metering.NewLedger(metering.LedgerConfig{
		DefaultLimit: cfg.Usage.DefaultMonthlyTokens,
		Limits:       cfg.Usage.MonthlyTokens,
	})
	recorder := metering.NewRecorder(logger, ledger, cfg.Usage.RecorderBuffer)

	// 6. LLM providers and selection oracle
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
	maxTotalTimeout, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotalTimeout,
	}, logger)

	oracle := intentOracle.NewLLM(logger, manager, cfg.Usage.OracleTimeout)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Registry:    registry,
		Builder:     builder,
		Budget:      ledger,
		Oracle:      oracle,
		Recorder:    recorder,
		Usage:       cfg.Usage,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
