package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360/owldoc/config"
	"github.com/c360/owldoc/graphstore"
	"github.com/c360/owldoc/pipeline"
)

type extractFlags struct {
	input      string
	configPath string
	languages  []string
	output     string
	pretty     bool
	logLevel   string
	logFormat  string
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Extract documentation models from OWL ontology graphs",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newExtractCommand())
	return root
}

func newExtractCommand() *cobra.Command {
	flags := &extractFlags{}
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract a documentation model from a graph snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExtract(cmd, flags)
		},
	}
	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "graph snapshot file (JSON)")
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "extraction config file (JSON or YAML)")
	cmd.Flags().StringSliceVarP(&flags.languages, "lang", "l", nil, "language tags to extract (repeatable)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "indent the JSON output")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&flags.logFormat, "log-format", "text", "log format (text, json)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runExtract(cmd *cobra.Command, flags *extractFlags) error {
	logger := setupLogger(flags.logLevel, flags.logFormat)
	slog.SetDefault(logger)

	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	store, err := loadStore(flags.input)
	if err != nil {
		return err
	}
	logger.Info("graph snapshot loaded", "path", flags.input, "triples", store.Len())

	p := pipeline.New(pipeline.WithLogger(logger))

	var result any
	if len(flags.languages) > 1 {
		docs, err := p.RunLanguages(cmd.Context(), store, cfg, flags.languages)
		if err != nil {
			return fmt.Errorf("extract: %w", err)
		}
		result = docs
	} else {
		if len(flags.languages) == 1 {
			cfg.PrimaryLanguage = flags.languages[0]
		}
		doc, err := p.Run(cmd.Context(), store, cfg)
		if err != nil {
			return fmt.Errorf("extract: %w", err)
		}
		result = doc
	}

	return writeResult(result, flags.output, flags.pretty)
}

func loadStore(path string) (*graphstore.Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	store, err := graphstore.LoadSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return store, nil
}

func writeResult(result any, path string, pretty bool) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
