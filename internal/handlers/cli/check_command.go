package cli

import (
	"fmt"
	"strconv"

	"github.com/AntonioJCosta/itemalias/internal/core/ports"
	"github.com/AntonioJCosta/itemalias/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the 'check' subcommand.
func NewCheckCommand(aliasService ports.AliasService, diagnostics DiagnosticCounter) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Load the definition file and report what it registers.",
		Long: `Loads the alias definition file, prints the number of names each section
registered and fails when the file cannot be read. Problems inside the file are
logged as they are found; with --strict any reported error fails the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckCmd(cmd, aliasService, diagnostics, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the definitions produced any error diagnostics.")
	return cmd
}

func runCheckCmd(cmd *cobra.Command, aliasService ports.AliasService, diagnostics DiagnosticCounter, strict bool) error {
	out := cmd.OutOrStdout()

	result, err := aliasService.Reload()
	if err != nil {
		return fmt.Errorf("could not load aliases: %w", err)
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Loaded %d aliases from %s", result.Aliases, result.Source)))
	if len(result.Sections) > 0 {
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{"Section", "Names"})
		table.SetBorder(true)
		table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
		for _, s := range result.Sections {
			table.Append([]string{s.Name, strconv.Itoa(s.Count)})
		}
		table.Render()
	}
	if n := len(result.MissingNames); n > 0 {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("%d material ids have no alias and use their default name.", n)))
	}
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("(Snapshot: %s)", result.SnapshotID)))

	if diagnostics == nil {
		return nil
	}
	warnings, errs := diagnostics.Counts()
	if warnings > 0 || errs > 0 {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("%d warnings, %d errors reported.", warnings, errs)))
	}
	if strict && errs > 0 {
		return fmt.Errorf("definitions produced %d errors", errs)
	}
	return nil
}
