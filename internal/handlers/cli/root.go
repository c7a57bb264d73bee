package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/AntonioJCosta/itemalias/internal/core/ports"
	"github.com/spf13/cobra"
)

// DiagnosticCounter reports how many warnings and errors were reported.
type DiagnosticCounter interface {
	Counts() (warnings, errors int)
}

// WatchFunc starts watching path and calls onChange after each burst of changes.
type WatchFunc func(path string, debounce time.Duration, onChange func()) (io.Closer, error)

// Options carries the collaborators of commands that go beyond the alias service.
type Options struct {
	Version        string
	DefinitionFile string
	WatchDebounce  time.Duration
	Diagnostics    DiagnosticCounter
	NewDictionary  func(path string) (ports.DictionaryStore, error)
	Watch          WatchFunc
}

// commands that load the definitions themselves
var selfLoading = map[string]bool{"check": true, "watch": true}

func NewRootCommand(aliasService ports.AliasService, opts Options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "itemalias",
		Short: "itemalias expands item alias definitions and resolves item queries.",
		Long: `itemalias loads an alias definition file, expands every pattern into a
dictionary of item names and parses free-form item queries against it.`,
		Version:      opts.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if aliasService == nil {
				return fmt.Errorf("alias service not initialized for command %s", cmd.Name())
			}
			if selfLoading[cmd.Name()] || cmd == cmd.Root() {
				return nil
			}
			if _, err := aliasService.Reload(); err != nil {
				return fmt.Errorf("could not load aliases: %w", err)
			}
			return nil
		},
	}

	rootCmd.AddCommand(NewCheckCommand(aliasService, opts.Diagnostics))
	rootCmd.AddCommand(NewParseCommand(aliasService))
	rootCmd.AddCommand(NewExpandCommand(aliasService))
	rootCmd.AddCommand(NewListCommand(aliasService))
	rootCmd.AddCommand(NewNameCommand(aliasService))
	rootCmd.AddCommand(NewExportCommand(aliasService, opts.NewDictionary))
	rootCmd.AddCommand(NewWatchCommand(aliasService, opts))

	return rootCmd
}
