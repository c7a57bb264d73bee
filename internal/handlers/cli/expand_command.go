package cli

import (
	"fmt"

	"github.com/AntonioJCosta/itemalias/internal/core/ports"
	"github.com/AntonioJCosta/itemalias/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewExpandCommand creates the 'expand' subcommand.
func NewExpandCommand(aliasService ports.AliasService) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "expand <pattern>",
		Short: "Show the names an alias pattern expands to.",
		Long: `Expands an alias pattern such as "[dark ]{wood} (log|trunk)¦s" against the
variations of the loaded definition file, without registering anything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := aliasService.Expand(args[0], value)
			if err != nil {
				return fmt.Errorf("could not expand '%s': %w", args[0], err)
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.InfoColor("The pattern expands to no names."))
				return nil
			}

			table := tablewriter.NewWriter(out)
			table.SetHeader([]string{"Name", "Value"})
			table.SetBorder(true)
			table.SetAutoWrapText(false)
			table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
			for _, e := range entries {
				table.Append([]string{e.Name, e.Type.ValueString()})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "*", "Alias value the pattern is expanded with.")
	return cmd
}
