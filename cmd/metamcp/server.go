package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/MKhiriev/buildmcp/internal/logger"
	"github.com/MKhiriev/buildmcp/models"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagServerName        string
	flagServerType        string
	flagServerDescription string
	flagServerCommand     string
	flagServerArgs        []string
	flagServerEnv         map[string]string
	flagServerURL         string
	flagServerBearerToken string
	flagServerFile        string
	flagImportFile        string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Manage MCP servers",
}

func init() {
	serverListCmd.Flags().BoolVar(&flagJSON, "json", false, "print raw JSON instead of a table")

	serverCreateCmd.Flags().StringVar(&flagServerName, "name", "", "server name")
	serverCreateCmd.Flags().StringVar(&flagServerType, "type", "", "server type (STDIO, SSE, STREAMABLE_HTTP)")
	serverCreateCmd.Flags().StringVar(&flagServerDescription, "description", "", "server description")
	serverCreateCmd.Flags().StringVar(&flagServerCommand, "command", "", "command to execute (STDIO)")
	serverCreateCmd.Flags().StringArrayVar(&flagServerArgs, "arg", nil, "command argument, repeatable (STDIO)")
	serverCreateCmd.Flags().StringToStringVar(&flagServerEnv, "env", nil, "environment variable KEY=value, repeatable (STDIO)")
	serverCreateCmd.Flags().StringVar(&flagServerURL, "url", "", "server URL (SSE, STREAMABLE_HTTP)")
	serverCreateCmd.Flags().StringVar(&flagServerBearerToken, "bearer-token", "", "bearer token for URL servers")
	serverCreateCmd.Flags().StringVarP(&flagServerFile, "file", "f", "", "JSON file with the server definition (- for stdin)")

	serverBulkImportCmd.Flags().StringVarP(&flagImportFile, "file", "f", "-", "JSON file with an mcpServers document (- for stdin)")

	serverCmd.AddCommand(serverListCmd, serverCreateCmd, serverDeleteCmd, serverBulkImportCmd)
	rootCmd.AddCommand(serverCmd)
}

var serverListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all MCP servers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPI(logger.NewLogger("metamcp", flagVerbose))
		if err != nil {
			return err
		}

		servers, err := api.ListServers(cmd.Context())
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(servers)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "UUID\tNAME\tTYPE\tURL/COMMAND")
		for _, s := range servers {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.UUID, s.Name, s.Type, fitCell(serverEndpoint(s.URL, s.Command), 60))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\nTotal: %d servers\n", len(servers))
		return nil
	},
}

var serverCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an MCP server from flags or a JSON definition",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := serverFromInput()
		if err != nil {
			return err
		}

		api, err := newAPI(logger.NewLogger("metamcp", flagVerbose))
		if err != nil {
			return err
		}

		created, err := api.CreateServer(cmd.Context(), server)
		if err != nil {
			return err
		}

		fmt.Printf("Created server: %s\n", created.Name)
		fmt.Printf("  UUID: %s\n", created.UUID)
		return nil
	},
}

// serverFromInput assembles the server definition either from the JSON file
// flag or from the individual flags. Flags require at least name and type.
func serverFromInput() (models.MCPServer, error) {
	var server models.MCPServer

	if flagServerFile != "" {
		raw, err := readInput(flagServerFile)
		if err != nil {
			return server, err
		}
		if err := json.Unmarshal(raw, &server); err != nil {
			return server, fmt.Errorf("parse server definition: %w", err)
		}
	} else {
		server = models.MCPServer{
			Name:        flagServerName,
			Type:        flagServerType,
			Description: flagServerDescription,
			Command:     flagServerCommand,
			Args:        flagServerArgs,
			Env:         flagServerEnv,
			URL:         flagServerURL,
			BearerToken: flagServerBearerToken,
		}
	}

	if server.Name == "" || server.Type == "" {
		return server, fmt.Errorf("name and type are required (flags or JSON input)")
	}
	if !models.ValidServerType(server.Type) {
		return server, fmt.Errorf("unknown server type %q (want STDIO, SSE or STREAMABLE_HTTP)", server.Type)
	}
	return server, nil
}

var serverDeleteCmd = &cobra.Command{
	Use:   "delete <uuid>",
	Short: "Delete an MCP server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := uuid.Parse(args[0]); err != nil {
			return fmt.Errorf("invalid server UUID %q: %w", args[0], err)
		}

		api, err := newAPI(logger.NewLogger("metamcp", flagVerbose))
		if err != nil {
			return err
		}

		if err := api.DeleteServer(cmd.Context(), args[0]); err != nil {
			return err
		}

		fmt.Printf("Deleted server: %s\n", args[0])
		return nil
	},
}

var serverBulkImportCmd = &cobra.Command{
	Use:   "bulk-import",
	Short: "Bulk import MCP servers from an mcpServers JSON document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(flagImportFile)
		if err != nil {
			return err
		}
		servers, err := extractServers(raw)
		if err != nil {
			return err
		}

		api, err := newAPI(logger.NewLogger("metamcp", flagVerbose))
		if err != nil {
			return err
		}

		imported, err := api.BulkImport(cmd.Context(), servers)
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d servers\n", imported)
		return nil
	},
}

// serverEndpoint picks the value shown in the URL/COMMAND table column.
func serverEndpoint(url, command string) string {
	if url != "" {
		return url
	}
	return command
}
