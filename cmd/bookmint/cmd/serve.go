package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/bookmint/bookmint/internal/api/handlers"
	"github.com/bookmint/bookmint/internal/api/middleware"
	"github.com/bookmint/bookmint/internal/catalog"
	"github.com/bookmint/bookmint/internal/config"
	"github.com/bookmint/bookmint/internal/ebay"
	"github.com/bookmint/bookmint/internal/engine"
	"github.com/bookmint/bookmint/internal/store"
	"github.com/bookmint/bookmint/internal/telemetry"
	"github.com/bookmint/bookmint/internal/webhook"
	"github.com/bookmint/bookmint/pkg/logger"
)

// staleSyncThreshold is how old a started sync run must be before startup
// recovery marks it failed.
const staleSyncThreshold = time.Hour

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and sync scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTelemetry, err := telemetry.Init(ctx, cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	// Runs that died before completion stay at started forever. Mark
	// them failed so the history is honest.
	recovered, err := st.RecoverStaleSyncRuns(ctx, staleSyncThreshold)
	if err != nil {
		return fmt.Errorf("recovering stale sync runs: %w", err)
	}
	if recovered > 0 {
		log.Warn("recovered stale sync runs", "count", recovered)
	}

	rl := ebay.NewRateLimiter(
		cfg.Ebay.RateLimit.PerSecond,
		cfg.Ebay.RateLimit.Burst,
		cfg.Ebay.RateLimit.DailyLimit,
	)

	tokens := ebay.NewTokenManager(
		st,
		cfg.Ebay.ClientID,
		cfg.Ebay.ClientSecret,
		cfg.Ebay.RedirectURI,
		ebay.WithTokenURL(cfg.Ebay.TokenURL),
		ebay.WithAuthorizeURL(cfg.Ebay.AuthorizeURL),
		ebay.WithScopes(cfg.Ebay.Scopes),
	)

	sell := ebay.NewSellClient(
		tokens,
		ebay.WithAPIURL(cfg.Ebay.APIURL),
		ebay.WithMarketplace(cfg.Ebay.Marketplace),
		ebay.WithSellHTTPClient(&http.Client{Timeout: cfg.Ebay.Timeout}),
		ebay.WithRateLimiter(rl),
	)

	publisher := engine.NewPublisher(st, sell, engine.ListingDefaults{
		CategoryID:          cfg.Ebay.CategoryID,
		FulfillmentPolicyID: cfg.Ebay.FulfillmentPolicy,
		PaymentPolicyID:     cfg.Ebay.PaymentPolicy,
		ReturnPolicyID:      cfg.Ebay.ReturnPolicy,
		MerchantLocationKey: cfg.Ebay.MerchantLocation,
	}, engine.WithPublisherLogger(log))

	syncer := engine.NewSyncer(st, sell,
		engine.WithSyncPageSize(cfg.Sync.PageSize),
		engine.WithSyncerLogger(log),
	)

	books := catalog.NewClient(
		catalog.WithBaseURL(cfg.Catalog.URL),
		catalog.WithAPIKey(cfg.Catalog.APIKey),
		catalog.WithTimeout(cfg.Catalog.Timeout),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	healthH := handlers.NewHealthHandler(st)
	e.GET("/healthz", healthH.Healthz)
	e.GET("/readyz", healthH.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	webhook.NewHandler(
		st,
		cfg.Ebay.WebhookSecret,
		cfg.Ebay.VerificationToken,
		cfg.Ebay.WebhookEndpoint,
		log,
	).Register(e)

	api := humaecho.New(e, huma.DefaultConfig("bookmint API", Version))
	handlers.RegisterBookRoutes(api, handlers.NewBooksHandler(st, books))
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(st, publisher))
	handlers.RegisterConnectionRoutes(api, handlers.NewConnectionHandler(st, tokens, rl))
	handlers.RegisterSyncRoutes(api, handlers.NewSyncHandler(st, syncer))

	var sched *engine.Scheduler
	if cfg.Sync.Enabled {
		sched, err = engine.NewScheduler(syncer, cfg.Sync.Interval, log)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.Start()
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if sched != nil {
		<-sched.Stop().Done()
	}

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	if err := shutdownTelemetry(shutdownCtx); err != nil {
		log.Error("telemetry shutdown", "error", err)
	}

	log.Info("server stopped")
	return nil
}
