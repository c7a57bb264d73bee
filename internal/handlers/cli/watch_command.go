package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/AntonioJCosta/itemalias/internal/core/ports"
	"github.com/AntonioJCosta/itemalias/internal/handlers/ui"
	"github.com/spf13/cobra"
)

const watchHelp = `Type an item query to resolve it, or one of:
  :define <pattern> = <value>   register an alias until the next reload
  :reload                       reload the definition file
  :quit                         leave`

// NewWatchCommand creates the 'watch' subcommand.
func NewWatchCommand(aliasService ports.AliasService, opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Resolve queries interactively while reloading the definition file on change.",
		Long: `Loads the definition file, reloads it whenever it changes on disk and
resolves every line read from standard input as an item query.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatchCmd(cmd, aliasService, opts)
		},
	}
	return cmd
}

// syncWriter serializes writes from the watcher and the prompt loop.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func runWatchCmd(cmd *cobra.Command, aliasService ports.AliasService, opts Options) error {
	out := &syncWriter{w: cmd.OutOrStdout()}

	reload := func() {
		result, err := aliasService.Reload()
		if err != nil {
			fmt.Fprintln(out, ui.ErrorColor(fmt.Sprintf("Reload failed, keeping previous aliases: %v", err)))
			return
		}
		fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Loaded %d aliases from %s.", result.Aliases, result.Source)))
	}
	reload()

	if opts.Watch != nil && opts.DefinitionFile != "" {
		closer, err := opts.Watch(opts.DefinitionFile, opts.WatchDebounce, reload)
		if err != nil {
			return fmt.Errorf("could not watch %s: %w", opts.DefinitionFile, err)
		}
		defer closer.Close()
	}

	fmt.Fprintln(out, ui.DetailColor(watchHelp))

	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()

	ctx := cmd.Context()
	for {
		fmt.Fprint(out, ui.PromptColor("> "))
		var line string
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(out)
			return nil
		}
		if quit := handleWatchLine(out, aliasService, strings.TrimSpace(line), reload); quit {
			return nil
		}
	}
}

// handleWatchLine runs one prompt line and reports whether the loop should end.
func handleWatchLine(out io.Writer, aliasService ports.AliasService, line string, reload func()) bool {
	switch {
	case line == "":
	case line == ":quit" || line == ":q":
		return true
	case line == ":reload":
		reload()
	case line == ":help":
		fmt.Fprintln(out, ui.DetailColor(watchHelp))
	case strings.HasPrefix(line, ":define "):
		pattern, value, found := strings.Cut(strings.TrimPrefix(line, ":define "), "=")
		pattern, value = strings.TrimSpace(pattern), strings.TrimSpace(value)
		if !found || pattern == "" || value == "" {
			fmt.Fprintln(out, ui.ErrorColor("usage: :define <pattern> = <value>"))
			return false
		}
		n := aliasService.RegisterAliasDefinition(pattern, value, nil)
		fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Registered %d names.", n)))
	case strings.HasPrefix(line, ":"):
		fmt.Fprintln(out, ui.ErrorColor(fmt.Sprintf("unknown command %s", line)))
	default:
		t, err := aliasService.ParseQuery(line)
		if err != nil {
			fmt.Fprintln(out, ui.ErrorColor(err.Error()))
			return false
		}
		printType(out, aliasService, t)
	}
	return false
}
