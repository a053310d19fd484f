package main

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/maplist-cli/internal/fetch"
	"github.com/sells-group/maplist-cli/internal/pipeline"
)

var showCmd = &cobra.Command{
	Use:   "show <list-url>",
	Short: "Decode a list and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		client := fetch.NewClient(fetchOptions())
		list, err := pipeline.Convert(ctx, client, args[0])
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return eris.Wrap(err, "show: marshal list")
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
