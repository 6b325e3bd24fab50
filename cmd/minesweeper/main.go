// Package main provides the CLI entry point for minesweeper-annotate.
package main

import (
	"fmt"
	"os"

	"github.com/di-void/minesweeper-annotate-go/internal/config"
	"github.com/di-void/minesweeper-annotate-go/pkg/annotate"
	"github.com/di-void/minesweeper-annotate-go/pkg/annotate/models"
	"github.com/di-void/minesweeper-annotate-go/pkg/annotate/output"
	"github.com/di-void/minesweeper-annotate-go/pkg/annotate/parser"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type flags struct {
	configPath string
	outputPath string
	format     string
	mode       string
	mine       string
	blank      string
	pretty     bool
	strict     bool
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "minesweeper [board.txt]",
		Short: "Annotate minesweeper boards with adjacent mine counts",
		Long: `minesweeper reads a board of mine markers and blanks (one row per line,
from a file or stdin) and replaces each blank with the number of adjacent mines.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	rootCmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&f.configPath, "config", "", "YAML config file (default: $MINESWEEPER_CONFIG)")
	rootCmd.Flags().StringVar(&f.format, "format", "text", "Output format: text, json, xlsx")
	rootCmd.Flags().StringVar(&f.mode, "mode", "standard", "Result detail: light, standard, verbose")
	rootCmd.Flags().StringVar(&f.mine, "mine", "*", "Mine marker")
	rootCmd.Flags().StringVar(&f.blank, "blank", " ", "Blank marker")
	rootCmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&f.strict, "strict", false, "Reject ragged rows and unknown cells")
	rootCmd.Flags().BoolVar(&f.debug, "debug", false, "Enable debug logging")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(level)

	if cfg.Output.Format == "xlsx" && f.outputPath == "" {
		return fmt.Errorf("xlsx output requires --output")
	}

	rows, err := readBoard(cmd, args)
	if err != nil {
		return err
	}
	log.WithField("rows", len(rows)).Debug("board read")

	res, err := annotate.Summarize(rows, cfg.Options())
	if err != nil {
		return fmt.Errorf("annotation failed: %w", err)
	}
	log.WithFields(log.Fields{
		"width":  res.Width,
		"height": res.Height,
		"mines":  res.Mines,
	}).Debug("board annotated")

	return writeResult(cmd, res, cfg, f.outputPath)
}

// loadConfig reads the config file, if any, and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	path := f.configPath
	if path == "" {
		path = os.Getenv("MINESWEEPER_CONFIG")
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if changed("mode") {
		cfg.Output.Mode = f.mode
	}
	if changed("pretty") {
		cfg.Output.Pretty = f.pretty
	}
	if changed("mine") {
		cfg.Board.Mine = f.mine
	}
	if changed("blank") {
		cfg.Board.Blank = f.blank
	}
	if changed("strict") {
		cfg.Board.Strict = f.strict
	}
	if f.debug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readBoard(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) == 0 || args[0] == "-" {
		return parser.ReadRows(cmd.InOrStdin())
	}

	file, err := os.Open(args[0])
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", args[0])
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parser.ReadRows(file)
}

func writeResult(cmd *cobra.Command, res *models.Result, cfg *config.Config, outputPath string) error {
	if cfg.Output.Format == "xlsx" {
		if err := output.SaveXLSX(res, outputPath); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		log.Infof("wrote %s", outputPath)
		return nil
	}

	var data []byte
	if cfg.Output.Format == "json" {
		jsonData, err := output.ToJSON(res, cfg.Output.Pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		data = append(jsonData, '\n')
	} else {
		data = output.ToText(res.Rows)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		log.Infof("wrote %s", outputPath)
		return nil
	}

	_, err := cmd.OutOrStdout().Write(data)
	return err
}
