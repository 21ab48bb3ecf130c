package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/buildmcp/internal/adapter"
	"github.com/MKhiriev/buildmcp/internal/config"
	"github.com/MKhiriev/buildmcp/internal/logger"
	"github.com/MKhiriev/buildmcp/internal/utils"
	"github.com/MKhiriev/buildmcp/models"
	"github.com/spf13/cobra"
)

var (
	flagBaseURL      string
	flagSessionToken string
	flagCookieFile   string
	flagTimeout      time.Duration
	flagVerbose      bool

	// flagJSON switches list/get commands from tables to raw JSON output.
	// Registered as a local flag on each command that supports it.
	flagJSON bool
)

var rootCmd = &cobra.Command{
	Use:           "metamcp",
	Short:         "Manage MCP servers and namespaces in a MetaMCP deployment",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "MetaMCP base URL (overrides METAMCP_BASE_URL)")
	rootCmd.PersistentFlags().StringVar(&flagSessionToken, "session-token", "", "session token for API calls (overrides METAMCP_SESSION_TOKEN)")
	rootCmd.PersistentFlags().StringVar(&flagCookieFile, "cookie-file", "", "file holding the session token")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "per-request timeout (overrides METAMCP_TIMEOUT)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
}

// execute runs the root command and maps any failure to exit code 1.
func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("metamcp " + buildInfo().String())
	},
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

// newAPI assembles the MetaMCP client shared by all subcommands. Environment
// and settings-file values come from [config.GetMetaMCPConfig]; non-zero
// command-line flags override them.
func newAPI(log *logger.Logger) (adapter.MetaMCP, error) {
	cfg, err := config.GetMetaMCPConfig()
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}
	applyFlags(cfg)

	return adapter.NewMetaMCP(*cfg, log)
}

func applyFlags(cfg *config.MetaMCPConfig) {
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if flagSessionToken != "" {
		cfg.SessionToken = flagSessionToken
	}
	if flagCookieFile != "" {
		cfg.CookieFile = flagCookieFile
	}
	if flagTimeout > 0 {
		cfg.RequestTimeout = flagTimeout
	}
}

// readInput loads raw JSON bytes from path, or from stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	resolved, err := utils.ResolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// extractServers pulls the server definitions out of a bulk-import document.
// Both bare documents and ones wrapped in an mcpServers key are accepted.
func extractServers(raw []byte) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}

	if wrapped, ok := doc["mcpServers"].(map[string]any); ok {
		doc = wrapped
	}
	if len(doc) == 0 {
		return nil, fmt.Errorf("no servers found in document")
	}
	return doc, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// fitCell truncates long table cells the way the list views do.
func fitCell(v string, max int) string {
	if len(v) <= max {
		return v
	}
	return v[:max-3] + "..."
}

// orDash substitutes a dash for empty optional cells.
func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
