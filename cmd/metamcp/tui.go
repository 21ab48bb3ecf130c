package main

import (
	"github.com/MKhiriev/buildmcp/internal/logger"
	"github.com/MKhiriev/buildmcp/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse servers and namespaces interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Stdout is the UI surface here, so logs go to a file beside the
		// executable instead.
		log := logger.NewFileLogger("metamcp", flagVerbose)

		api, err := newAPI(log)
		if err != nil {
			return err
		}

		ui, err := tui.New(api, buildInfo(), log)
		if err != nil {
			return err
		}
		return ui.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
