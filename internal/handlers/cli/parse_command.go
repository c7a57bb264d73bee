package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/AntonioJCosta/itemalias/internal/core/domain/itemtype"
	"github.com/AntonioJCosta/itemalias/internal/core/ports"
	"github.com/AntonioJCosta/itemalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewParseCommand creates the 'parse' subcommand.
func NewParseCommand(aliasService ports.AliasService) *cobra.Command {
	var asAlias bool

	cmd := &cobra.Command{
		Use:   "parse <text>...",
		Short: "Parse an item query against the loaded aliases.",
		Long: `Parses free-form item text such as "5 of every oak log" or
"a diamond sword of sharpness 5" and prints the resolved type. With --alias the
text is read as an alias value ("17:1, 5") instead of a query.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			parse := aliasService.ParseQuery
			if asAlias {
				parse = aliasService.ParseAliasValue
			}
			t, err := parse(text)
			if err != nil {
				return fmt.Errorf("could not parse '%s': %w", text, err)
			}
			printType(cmd.OutOrStdout(), aliasService, t)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asAlias, "alias", false, "Parse the text as an alias value instead of a query.")
	return cmd
}

func printType(out io.Writer, aliasService ports.AliasService, t *itemtype.TypeSet) {
	fmt.Fprintln(out, ui.HeaderColor(aliasService.Describe(t)))
	fmt.Fprintf(out, "  %s %s\n", ui.KeywordColor("value"), ui.AliasValueColor(t.ValueString()))
	fmt.Fprintf(out, "  %s %d\n", ui.KeywordColor("amount"), t.Amount)
	fmt.Fprintf(out, "  %s %t\n", ui.KeywordColor("every"), t.All)
	if len(t.Enchantments) > 0 {
		kinds := make([]string, 0, len(t.Enchantments))
		for k, level := range t.Enchantments {
			kinds = append(kinds, fmt.Sprintf("%s %d", k, level))
		}
		sort.Strings(kinds)
		fmt.Fprintf(out, "  %s %s\n", ui.KeywordColor("enchantments"), strings.Join(kinds, ", "))
	}
	if t.HasItem() {
		fmt.Fprintf(out, "  %s %s\n", ui.KeywordColor("item form"), ui.AliasValueColor(t.Item().ValueString()))
	}
	if t.HasBlock() {
		fmt.Fprintf(out, "  %s %s\n", ui.KeywordColor("block form"), ui.AliasValueColor(t.Block().ValueString()))
	}
}
