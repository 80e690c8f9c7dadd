package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/eriklarko/truth-table/src/compiler"
	"github.com/eriklarko/truth-table/src/config"
	"github.com/eriklarko/truth-table/src/environment"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	verbose    bool
	output     string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "truthtable <file>",
		Short: "Print truth tables for boolean expressions",
		Long: `truthtable compiles a program of variable declarations, boolean
expressions and show instructions, and prints the requested truth tables.

Example program:

  var x y;          # two inputs
  z = x and y;
  show z;           # prints every row
  show_ones z;      # prints the rows where z is 1`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: ./"+config.DefaultPath+" if it exists)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every compilation step to stderr")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the truth tables to this file instead of stdout")

	return cmd
}

func run(cmd *cobra.Command, opts *options, path string) error {
	conf, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		conf.Verbose = opts.verbose
	}
	if cmd.Flags().Changed("output") {
		conf.Output = opts.output
	}

	setupLogging(cmd.ErrOrStderr(), conf.Verbose)
	if conf.Path != "" {
		slog.Debug("loaded config", "path", conf.Path)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	program, err := compiler.Compile(string(source))
	if err != nil {
		return fmt.Errorf("failed to compile %s: %w", path, err)
	}

	if conf.Output == "" {
		return program.Run(cmd.OutOrStdout())
	}

	file, err := os.Create(conf.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", conf.Output, err)
	}
	if err := program.Run(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// loadConfig reads the config file at path, or the default config file if
// path is empty. Only the default file is allowed to be missing.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		conf, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return conf, nil
	}

	conf, err := config.LoadConfig(config.DefaultPath)
	if os.IsNotExist(err) {
		return &config.Config{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return conf, nil
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func printError(w *os.File, err error) {
	color.NoColor = !environment.IsInteractive(w)
	color.New(color.FgRed).Fprintf(w, "error: %v\n", err)
}
