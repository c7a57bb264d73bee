package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/itemalias/internal/core/ports"
	"github.com/AntonioJCosta/itemalias/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(aliasService ports.AliasService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [prefix]",
		Short: "List the registered alias names.",
		Long:  `Displays every name of the expanded dictionary with its value, optionally only names starting with prefix.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, aliasService)
		},
	}
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(cmd *cobra.Command, args []string, aliasService ports.AliasService) error {
	prefix := ""
	if len(args) == 1 {
		prefix = alias.Normalize(args[0])
	}

	var entries []alias.Entry
	for _, e := range aliasService.Aliases() {
		if strings.HasPrefix(e.Name, prefix) {
			entries = append(entries, e)
		}
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No aliases found."))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Registered Aliases (%d):", len(entries))))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Alias Name", "Value"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, e := range entries {
		table.Append([]string{e.Name, e.Type.ValueString()})
	}
	table.Render()
	return nil
}
