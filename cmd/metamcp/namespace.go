// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/buildmcp/internal/logger"
	"github.com/MKhiriev/buildmcp/models"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagShowTools bool
	flagStatus    string
)

var namespaceCmd = &cobra.Command{
	Use:   "namespace",
	Short: "Manage MetaMCP namespaces",
}

func init() {
	namespaceListCmd.Flags().BoolVar(&flagJSON, "json", false, "print raw JSON instead of a table")
	namespaceGetCmd.Flags().BoolVar(&flagJSON, "json", false, "print the namespace as raw JSON")
	namespaceGetCmd.Flags().BoolVar(&flagShowTools, "tools", false, "also list the namespace tools")
	namespaceToolsCmd.Flags().BoolVar(&flagJSON, "json", false, "print raw JSON instead of a table")
	namespaceUpdateToolStatusCmd.Flags().StringVar(&flagStatus, "status", "", "new status (ACTIVE or INACTIVE)")
	namespaceUpdateServerStatusCmd.Flags().StringVar(&flagStatus, "status", "", "new status (ACTIVE or INACTIVE)")

	namespaceCmd.AddCommand(
		namespaceListCmd,
		namespaceGetCmd,
		namespaceToolsCmd,
		namespaceUpdateToolStatusCmd,
		namespaceUpdateServerStatusCmd,
	)
	rootCmd.AddCommand(namespaceCmd)
}

var namespaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all namespaces",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newAPI(logger.NewLogger("metamcp", flagVerbose))
		if err != nil {
			return err
		}

		namespaces, err := api.ListNamespaces(cmd.Context())
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(namespaces)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "UUID\tNAME\tDESCRIPTION")
		for _, ns := range namespaces {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ns.UUID, ns.Name, fitCell(ns.Description, 60))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Printf("\nTotal: %d namespaces\n", len(namespaces))
		return nil
	},
}

var namespaceGetCmd = &cobra.Command{
	Use:   "get <uuid>",
	Short: "Show a namespace with its servers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := uuid.Parse(args[0]); err != nil {
			return fmt.Errorf("invalid namespace UUID %q: %w", args[0], err)
		}

		api, err := newAPI(logger.NewLogger("metamcp", flagVerbose))
		if err != nil {
			return err
		}

		ns, err := api.GetNamespace(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(ns)
		}

		fmt.Printf("Namespace: %s\n", ns.Name)
		fmt.Printf("Description: %s\n", orDash(ns.Description))
		fmt.Printf("UUID: %s\n\n", ns.UUID)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTYPE\tSTATUS\tURL/COMMAND")
		for _, s := range ns.Servers {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Name, s.Type, s.Status, fitCell(serverEndpoint(s.URL, s.Command), 50))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if !flagShowTools {
			return nil
		}

		tools, err := api.GetNamespaceTools(cmd.Context(), ns.UUID)
		if err != nil {
			return err
		}
		fmt.Println()
		return printToolsTable(tools)
	},
}

var namespaceToolsCmd = &cobra.Command{
	Use:   "tools <uuid>",
	Short: "List the tools of a namespace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := uuid.Parse(args[0]); err != nil {
			return fmt.Errorf("invalid namespace UUID %q: %w", args[0], err)
		}

		api, err := newAPI(logger.NewLogger("metamcp", flagVerbose))
		if err != nil {
			return err
		}

		tools, err := api.GetNamespaceTools(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(tools)
		}

		return printToolsTable(tools)
	},
}

func printToolsTable(tools []models.NamespaceTool) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "UUID\tNAME\tSERVER\tSTATUS\tOVERRIDE")
	for _, t := range tools {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.UUID, t.Name, t.ServerName, t.Status, orDash(t.OverrideName))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nTotal: %d tools\n", len(tools))
	return nil
}

var namespaceUpdateToolStatusCmd = &cobra.Command{
	Use:   "update-tool-status <namespace-uuid> <tool>...",
	Short: "Switch namespace tools between ACTIVE and INACTIVE",
	Long: `Switch namespace tools between ACTIVE and INACTIVE.

Tools are addressed by UUID, name, or override name. Every selector must
resolve before the first update runs, so a typo never leaves the namespace
half-switched.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.ValidStatus(flagStatus) {
			return fmt.Errorf("status must be ACTIVE or INACTIVE")
		}
		if _, err := uuid.Parse(args[0]); err != nil {
			return fmt.Errorf("invalid namespace UUID %q: %w", args[0], err)
		}

		api, err := newAPI(logger.NewLogger("metamcp", flagVerbose))
		if err != nil {
			return err
		}

		tools, err := api.GetNamespaceTools(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		picked, err := resolveTools(tools, args[1:])
		if err != nil {
			return err
		}

		for _, t := range picked {
			if err := api.UpdateToolStatus(cmd.Context(), args[0], t.UUID, t.ServerUUID, flagStatus); err != nil {
				return fmt.Errorf("update tool %s: %w", t.DisplayName(), err)
			}
			fmt.Printf("Tool status updated to %s: %s\n", flagStatus, t.DisplayName())
		}
		return nil
	},
}

var namespaceUpdateServerStatusCmd = &cobra.Command{
	Use:   "update-server-status <namespace-uuid> <server-uuid>",
	Short: "Switch a namespace server between ACTIVE and INACTIVE",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.ValidStatus(flagStatus) {
			return fmt.Errorf("status must be ACTIVE or INACTIVE")
		}
		for _, arg := range args {
			if _, err := uuid.Parse(arg); err != nil {
				return fmt.Errorf("invalid UUID %q: %w", arg, err)
			}
		}

		api, err := newAPI(logger.NewLogger("metamcp", flagVerbose))
		if err != nil {
			return err
		}

		if err := api.UpdateServerStatus(cmd.Context(), args[0], args[1], flagStatus); err != nil {
			return err
		}

		fmt.Printf("Server status updated to %s\n", flagStatus)
		return nil
	},
}

// resolveTools maps each selector (tool UUID, name, or override name) to the
// namespace tools it addresses. A name shared by several servers selects all
// of them; duplicates collapse by tool UUID.
func resolveTools(tools []models.NamespaceTool, selectors []string) ([]models.NamespaceTool, error) {
	var picked []models.NamespaceTool
	seen := make(map[string]bool)
	var unknown []string

	for _, sel := range selectors {
		matched := false
		for _, t := range tools {
			if t.UUID != sel && t.Name != sel && t.DisplayName() != sel {
				continue
			}
			matched = true
			if !seen[t.UUID] {
				seen[t.UUID] = true
				picked = append(picked, t)
			}
		}
		if !matched {
			unknown = append(unknown, sel)
		}
	}

	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown tools in namespace: %s", strings.Join(unknown, ", "))
	}
	return picked, nil
}
