package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/MKhiriev/buildmcp/internal/logger"
	"github.com/spf13/cobra"
)

var (
	flagDeployFile   string
	flagDeployDryRun bool
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Push an mcpServers document into MetaMCP",
	Long: `Push an mcpServers document into MetaMCP.

Reads a composed document (file or stdin) and registers every server it
names in one bulk-import call. Designed to sit behind the builder:

  buildmcp -profile work | metamcp deploy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(flagDeployFile)
		if err != nil {
			return err
		}
		servers, err := extractServers(raw)
		if err != nil {
			return err
		}

		if err := printDeployPreview(servers); err != nil {
			return err
		}

		if flagDeployDryRun {
			payload, err := json.MarshalIndent(map[string]any{"mcpServers": servers}, "", "  ")
			if err != nil {
				return fmt.Errorf("encode payload: %w", err)
			}
			fmt.Printf("\nDry run, bulk-import payload:\n%s\n", payload)
			return nil
		}

		api, err := newAPI(logger.NewLogger("metamcp", flagVerbose))
		if err != nil {
			return err
		}

		imported, err := api.BulkImport(cmd.Context(), servers)
		if err != nil {
			return err
		}

		fmt.Printf("\nImported %d servers\n", imported)
		return nil
	},
}

func init() {
	deployCmd.Flags().StringVarP(&flagDeployFile, "file", "f", "-", "mcpServers JSON document (- for stdin)")
	deployCmd.Flags().BoolVar(&flagDeployDryRun, "dry-run", false, "preview the bulk-import payload without sending it")

	rootCmd.AddCommand(deployCmd)
}

// printDeployPreview lists the servers about to be imported, in name order.
func printDeployPreview(servers map[string]any) error {
	names := make([]string, 0, len(servers))
	for name := range servers {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tURL/COMMAND")
	for _, name := range names {
		entry, _ := servers[name].(map[string]any)
		endpoint := serverEndpoint(stringField(entry, "url"), stringField(entry, "command"))
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, orDash(stringField(entry, "type")), fitCell(endpoint, 60))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nTotal: %d servers\n", len(servers))
	return nil
}

func stringField(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}
