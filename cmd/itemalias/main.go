package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AntonioJCosta/itemalias/internal/adapters/definitionfile"
	"github.com/AntonioJCosta/itemalias/internal/adapters/diaglog"
	"github.com/AntonioJCosta/itemalias/internal/adapters/enchantments"
	"github.com/AntonioJCosta/itemalias/internal/adapters/english"
	"github.com/AntonioJCosta/itemalias/internal/adapters/filewatch"
	"github.com/AntonioJCosta/itemalias/internal/adapters/materials"
	"github.com/AntonioJCosta/itemalias/internal/config"
	"github.com/AntonioJCosta/itemalias/internal/core/services/aliasengine"
	"github.com/AntonioJCosta/itemalias/internal/core/services/typeresolution"
	"github.com/AntonioJCosta/itemalias/internal/handlers/cli"
	"github.com/AntonioJCosta/itemalias/internal/logger"
	"github.com/AntonioJCosta/itemalias/internal/repositories/dictionary"
)

// Version is set at build time
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.Version == config.DefaultVersion {
		cfg.Version = Version
	}

	addSource := cfg.Environment == logger.EnvironmentDev && cfg.LogLevel == logger.LogLevelDebug
	logger.Init(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, logger.DefaultServiceName, cfg.Version, cfg.Environment, addSource))

	registry, err := materials.NewDefaultRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing material registry: %v\n", err)
		os.Exit(1)
	}

	source, err := definitionfile.NewYAMLSource(cfg.DefinitionFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing definition source: %v\n", err)
		os.Exit(1)
	}

	reporter := diaglog.NewReporter(nil)
	env := typeresolution.Env{
		Materials:    registry,
		Language:     english.New(nil),
		Enchantments: enchantments.NewParser(nil),
		Reporter:     reporter,
	}
	aliasSvc := aliasengine.NewService(source, env, cfg.QueryCacheSize)

	rootCmd := cli.NewRootCommand(aliasSvc, cli.Options{
		Version:        cfg.Version,
		DefinitionFile: cfg.DefinitionFile,
		WatchDebounce:  cfg.WatchDebounce,
		Diagnostics:    reporter,
		NewDictionary:  dictionary.NewDictionaryFile,
		Watch:          filewatch.Watch,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
