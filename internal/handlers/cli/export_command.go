package cli

import (
	"fmt"

	"github.com/AntonioJCosta/itemalias/internal/core/ports"
	"github.com/AntonioJCosta/itemalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewExportCommand creates the 'export' subcommand.
func NewExportCommand(aliasService ports.AliasService, newDictionary func(path string) (ports.DictionaryStore, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Write the expanded dictionary to a file.",
		Long: `Writes one "name = value" line per registered name, sorted by name. Every
value can be read back as an alias value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if newDictionary == nil {
				return fmt.Errorf("dictionary export is not available")
			}
			store, err := newDictionary(args[0])
			if err != nil {
				return fmt.Errorf("could not open dictionary file: %w", err)
			}
			entries := aliasService.Aliases()
			if err := store.Export(entries); err != nil {
				return fmt.Errorf("could not export aliases: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor(fmt.Sprintf("Exported %d aliases to %s.", len(entries), store.Location())))
			return nil
		},
	}
	return cmd
}
