package cli

import (
	"fmt"

	"github.com/AntonioJCosta/itemalias/internal/core/ports"
	"github.com/AntonioJCosta/itemalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewNameCommand creates the 'name' subcommand.
func NewNameCommand(aliasService ports.AliasService) *cobra.Command {
	var plural, debug bool

	cmd := &cobra.Command{
		Use:   "name <id[:data[-data]]>",
		Short: "Print the display name of a material id and data range.",
		Long: `Prints the name used when showing a material id, for example "17:1" or
"35:0-15". With --debug the name carries the data range when it has no name of its own.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseIDRange(args[0])
			if err != nil {
				return err
			}
			name := aliasService.DisplayName
			if debug {
				name = aliasService.DebugName
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.AliasNameColor(name(target.id, target.subMin, target.subMax, plural)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&plural, "plural", "p", false, "Print the plural form.")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Print the debug name including the data range.")
	return cmd
}
