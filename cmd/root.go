package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/maplist-cli/internal/config"
	"github.com/sells-group/maplist-cli/internal/store"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "maplist-cli",
	Short: "Export shared Google Maps place lists",
	Long:  "Fetches a shared Google Maps list page, decodes the place data embedded in its initialization payload, and writes it as KML, CSV, GeoJSON, XLSX or SHP.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// openStore opens and migrates the local cache/history database.
func openStore(ctx context.Context) (*store.Store, error) {
	st, err := store.Open(cfg.Cache.Path)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}
	return st, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
