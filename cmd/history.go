package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent exports",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		recs, err := st.ListExports(ctx, limit)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tLIST\tPLACES\tFORMAT\tPATH")
		for _, rec := range recs {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
				rec.CreatedAt.Format("2006-01-02 15:04"),
				rec.ListName, rec.PlaceCount, rec.Format, rec.Path,
			)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum rows to show")
	rootCmd.AddCommand(historyCmd)
}
