package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/marijnvanwezel/reflection-file/inspector/graph"
	"github.com/marijnvanwezel/reflection-file/inspector/php"
	"github.com/marijnvanwezel/reflection-file/reflectfile"
	"github.com/marijnvanwezel/reflection-file/reflection"
	"github.com/spf13/cobra"
	"github.com/viant/afs"
)

type options struct {
	format    string
	strategy  string
	config    string
	recursive bool
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "reflectfile <path>...",
		Short: "Report the names a PHP file declares",
		Long: `Report the fully qualified names of the classes, traits, interfaces, enums,
functions and constants declared at the top level of PHP files, without executing them.

Directories are inspected as packages of PHP files.

Examples:
  reflectfile src/User.php
  reflectfile --format=json --strategy=resolved src/
  reflectfile --recursive --config=reflectfile.yaml .`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.format, "format", "yaml", "Output format (yaml, json)")
	flags.StringVar(&opts.strategy, "strategy", "lexical", "Naming strategy (lexical, resolved)")
	flags.StringVar(&opts.config, "config", "", "YAML configuration file")
	flags.BoolVarP(&opts.recursive, "recursive", "r", false, "Inspect directories recursively")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")
	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	fs := afs.New()

	config, err := loadConfig(ctx, fs, opts.config)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("strategy") || opts.config == "" {
		config.Strategy = opts.strategy
	}
	if cmd.Flags().Changed("recursive") {
		config.RecursivePackages = opts.recursive
	} else if opts.config == "" {
		config.RecursivePackages = false
	}
	strategy, err := reflection.StrategyByName(config.Strategy)
	if err != nil {
		return err
	}
	emitter, err := graph.NewEmitter(opts.format)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", "strategy", config.Strategy, "recursive", config.RecursivePackages, "format", opts.format)

	inspector, err := php.NewInspector(config)
	if err != nil {
		return err
	}
	var files []*graph.File
	for _, location := range args {
		info, err := os.Stat(location)
		if err == nil && info.IsDir() {
			inspected, err := inspectDirectory(inspector, config, location)
			if err != nil {
				return err
			}
			logger.Debug("directory inspected", "path", location, "files", len(inspected))
			files = append(files, inspected...)
			continue
		}
		file, err := reflectfile.Open(location, reflectfile.WithFS(fs), reflectfile.WithContext(ctx), reflectfile.WithStrategy(strategy))
		if err != nil {
			return err
		}
		report, err := file.Report()
		if err != nil {
			return err
		}
		logger.Debug("file reflected", "path", location, "declarations", file.Declarations().Len(), "hash", file.Hash())
		files = append(files, report)
	}
	return emit(cmd.OutOrStdout(), emitter, opts.format, files)
}

func inspectDirectory(inspector *php.Inspector, config *graph.Config, location string) ([]*graph.File, error) {
	if !config.RecursivePackages {
		pkg, err := inspector.InspectPackage(location)
		if err != nil {
			return nil, err
		}
		return pkg.FileSet, nil
	}
	packages, err := inspector.InspectPackages(location)
	if err != nil {
		return nil, err
	}
	var files []*graph.File
	for _, pkg := range packages {
		files = append(files, pkg.FileSet...)
	}
	return files, nil
}

// emit writes YAML files as a multi-document stream and JSON files as one array
func emit(w io.Writer, emitter graph.Emitter, format string, files []*graph.File) error {
	asJSON := strings.EqualFold(format, "json")
	var separator, closing string
	if asJSON {
		separator, closing = ",\n", "\n]\n"
		if _, err := io.WriteString(w, "[\n"); err != nil {
			return err
		}
	} else {
		separator = "---\n"
	}
	for i, file := range files {
		data, err := file.Content(emitter)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", file.Path, err)
		}
		if i > 0 {
			if _, err := io.WriteString(w, separator); err != nil {
				return err
			}
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, closing)
	return err
}
