package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"jsfront/internal"
	"jsfront/internal/config"
)

var (
	cfgFile string
	verbose bool
	noColor bool

	cfg *config.Config
	log *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "jsfront",
	Short: "Lexer and parser front end for a JavaScript subset",
	Long: `jsfront tokenizes and parses a JavaScript-like source file.

Commands:
  tokens  - print the token stream
  ast     - print the syntax tree`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && err != errParseFailed {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $JSFRONT_CONFIG or ./jsfront.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log parser diagnostics")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}
	if noColor {
		cfg.Output.NoColor = true
	}
	if verbose {
		cfg.Log.Level = logrus.DebugLevel.String()
	}
	if cfg.Output.NoColor {
		color.Disable()
	}

	log, err = cfg.Logger(os.Stderr)
	return err
}

// readSource loads the file named by the single positional argument
func readSource(args []string) (string, string, error) {
	absPath, err := filepath.Abs(args[0])
	if err != nil {
		return "", "", errors.WithStack(err)
	}
	b, err := os.ReadFile(absPath)
	if err != nil {
		return "", "", errors.Wrapf(err, "read %s", args[0])
	}
	return absPath, string(b), nil
}

func options() internal.Options {
	return internal.Options{
		Logger:   log.WithField("component", "frontend"),
		MaxDepth: cfg.Parser.MaxDepth,
	}
}

// reportParseError prints the error followed by the offending source line and a caret
func reportParseError(w io.Writer, path, source string, err error) {
	fmt.Fprintf(w, "%s: %s\n", path, color.Red(err.Error()))

	var parseErr *internal.ParseError
	if !errors.As(err, &parseErr) {
		return
	}
	pos := parseErr.Span().Start
	lines := strings.Split(source, "\n")
	if pos.Line >= len(lines) {
		return
	}
	fmt.Fprintf(w, "  %s\n  %s%s\n", lines[pos.Line], strings.Repeat(" ", pos.Col), color.Yellow("^"))
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", color.Red("error:", color.B), err)
}
