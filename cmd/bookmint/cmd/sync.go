package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/bookmint/bookmint/internal/config"
	"github.com/bookmint/bookmint/internal/ebay"
	"github.com/bookmint/bookmint/internal/engine"
	"github.com/bookmint/bookmint/internal/store"
	"github.com/bookmint/bookmint/pkg/logger"
)

var syncUserID string

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run a one-off inventory sync",
	Long: "Reconciles eBay inventory with local book records outside the " +
		"scheduler, for every connected user or a single one.",
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncUserID, "user", "", "sync only this user id")
	rootCmd.AddCommand(syncCmd)
}

func runSync(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx := context.Background()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	tokens := ebay.NewTokenManager(
		st,
		cfg.Ebay.ClientID,
		cfg.Ebay.ClientSecret,
		cfg.Ebay.RedirectURI,
		ebay.WithTokenURL(cfg.Ebay.TokenURL),
		ebay.WithScopes(cfg.Ebay.Scopes),
	)

	sell := ebay.NewSellClient(
		tokens,
		ebay.WithAPIURL(cfg.Ebay.APIURL),
		ebay.WithMarketplace(cfg.Ebay.Marketplace),
		ebay.WithSellHTTPClient(&http.Client{Timeout: cfg.Ebay.Timeout}),
	)

	syncer := engine.NewSyncer(st, sell,
		engine.WithSyncPageSize(cfg.Sync.PageSize),
		engine.WithSyncerLogger(log),
	)

	if syncUserID != "" {
		run, err := syncer.Run(ctx, syncUserID)
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		log.Info("sync finished",
			"status", run.Status,
			"items_synced", run.ItemsSynced,
			"items_failed", run.ItemsFailed,
		)
		return nil
	}

	if err := syncer.RunAll(ctx); err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	log.Info("sync finished for all connected users")
	return nil
}
