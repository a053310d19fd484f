package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/sells-group/maplist-cli/internal/export"
	"github.com/sells-group/maplist-cli/internal/fetch"
	"github.com/sells-group/maplist-cli/internal/pipeline"
	"github.com/sells-group/maplist-cli/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export <list-url>...",
	Short: "Export one or more shared lists",
	Long: `Export one or more shared Google Maps list URLs.

Each list is written to the output directory as <slug-of-list-name>.<ext>.
Fetched pages are cached locally; use --no-cache to force a refetch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		formatStr, _ := cmd.Flags().GetString("format")
		if formatStr == "" {
			formatStr = cfg.Export.Format
		}
		format, err := export.ParseFormat(formatStr)
		if err != nil {
			return err
		}

		outDir, _ := cmd.Flags().GetString("out")
		if outDir == "" {
			outDir = cfg.Export.Dir
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return eris.Wrapf(err, "export: create output dir %s", outDir)
		}

		client := fetch.NewClient(fetchOptions())

		var st *store.Store
		var fetcher pipeline.Fetcher = client
		if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
			st, err = openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck
			fetcher = &pipeline.CachedFetcher{Client: client, Store: st, TTL: cfg.Cache.TTL()}
		}

		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Export.Concurrency)

		for _, listURL := range args {
			g.Go(func() error {
				list, err := pipeline.Convert(ctx, fetcher, listURL)
				if err != nil {
					return err
				}

				path := export.OutputPath(outDir, list, format)
				if err := export.Write(list, format, path); err != nil {
					return err
				}

				if st != nil {
					if _, err := st.RecordExport(ctx, store.ExportRecord{
						URL:        listURL,
						ListName:   list.Name,
						PlaceCount: len(list.Places),
						Format:     string(format),
						Path:       path,
					}); err != nil {
						zap.L().Warn("recording export history failed", zap.Error(err))
					}
				}

				zap.L().Info("exported list",
					zap.String("list", list.Name),
					zap.Int("places", len(list.Places)),
					zap.String("path", path),
				)
				return nil
			})
		}

		return g.Wait()
	},
}

// fetchOptions translates the fetch config into client options.
func fetchOptions() fetch.Options {
	return fetch.Options{
		UserAgent:   cfg.Fetch.UserAgent,
		Timeout:     cfg.Fetch.Timeout(),
		MaxAttempts: cfg.Fetch.MaxAttempts,
		RateLimit:   rate.Limit(cfg.Fetch.RateLimit),
	}
}

func init() {
	exportCmd.Flags().String("format", "", "output format: kml, csv, geojson, xlsx, shp (default from config)")
	exportCmd.Flags().String("out", "", "output directory (default from config)")
	exportCmd.Flags().Bool("no-cache", false, "bypass the local page cache")
	rootCmd.AddCommand(exportCmd)
}
