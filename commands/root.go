// Package commands provides the ontograph CLI subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontograph/config"
	"github.com/c360studio/ontograph/query"
	"github.com/c360studio/ontograph/snapshot"
	"github.com/c360studio/ontograph/vocabulary"
)

// app carries the state shared by all subcommands: flags, the resolved
// configuration, and the logger.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

// Root builds the ontograph root command with all subcommands attached.
func Root(version string) *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "ontograph",
		Short: "Ontology triple store and query engine",
		Long: `Ontograph loads RDF ontologies from Turtle files into an in-memory
triple store and answers structural queries over them: descriptions,
class membership, connecting paths, and keyword-based fact retrieval.

It can also serve queries over NATS request-reply, reloading the
ontology when the source files change.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		versionCmd(version),
		a.statsCmd(),
		a.describeCmd(),
		a.instancesCmd(),
		a.pathCmd(),
		a.retrieveCmd(),
		a.exportCmd(),
		a.serveCmd(),
	)
	return cmd
}

func (a *app) setup() error {
	level := slog.LevelInfo
	switch strings.ToLower(a.logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	var cfg *config.Config
	var err error
	if a.configPath != "" {
		cfg, err = config.LoadFromFile(a.configPath)
	} else {
		cfg, err = config.NewLoader(a.logger).Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg
	return nil
}

// loadSnapshot loads the configured ontology sources.
func (a *app) loadSnapshot() (*snapshot.Snapshot, error) {
	snap, err := snapshot.Load(a.cfg.Ontology.Paths)
	if err != nil {
		return nil, fmt.Errorf("load ontology: %w", err)
	}
	a.logger.Debug("Ontology loaded",
		slog.Int("triples", snap.Store.Len()),
		slog.Int("sources", len(snap.Sources)))
	return snap, nil
}

// resolveResource turns a user-supplied name into a full IRI. It accepts a
// full IRI, a prefixed name like "hpc:FalseSharing", an exact label, or a
// bare local name in the default namespace.
func resolveResource(engine *query.Engine, arg string) string {
	if strings.Contains(arg, "://") {
		return arg
	}
	if prefix, local, ok := strings.Cut(arg, ":"); ok {
		if ns, known := vocabulary.DefaultPrefixes()[prefix]; known {
			return ns + local
		}
	}
	if iri, ok := engine.ResourceByLabel(arg); ok {
		return iri
	}
	return vocabulary.HPCNamespace + arg
}

func versionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ontograph version %s\n", version)
		},
	}
}
