package cmd

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/labstack/gommon/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"jsfront/internal"
	"jsfront/internal/config"
)

// errParseFailed is returned once the parse error itself has been reported
var errParseFailed = errors.New("parse failed")

var (
	astFormat string
	astTime   bool
)

var astCmd = &cobra.Command{
	Use:   "ast FILE",
	Short: "Print the syntax tree of a source file",
	Long: `Parses a source file and prints every top-level node.

When parsing halts early the nodes completed before the error are still
printed, the error goes to stderr and the command exits non-zero.`,
	Args: cobra.ExactArgs(1),
	RunE: runAst,
}

func init() {
	astCmd.Flags().StringVarP(&astFormat, "format", "f", "", "output format: sexpr, json or yaml (default from config)")
	astCmd.Flags().BoolVar(&astTime, "time", false, "report the time spent parsing")
	rootCmd.AddCommand(astCmd)
}

func runAst(cmd *cobra.Command, args []string) error {
	path, source, err := readSource(args)
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if astFormat != "" {
		format = astFormat
	}

	start := time.Now()
	nodes, parseErr := internal.ParseSource(source, options())
	elapsed := time.Since(start)

	if err := writeTree(os.Stdout, format, nodes); err != nil {
		return err
	}
	if astTime {
		log.WithField("nodes", len(nodes)).Infof("parsed in %s", elapsed)
		os.Stderr.WriteString(color.Grey("time elapsed: "+elapsed.String()) + "\n")
	}
	if parseErr != nil {
		reportParseError(os.Stderr, path, source, parseErr)
		return errParseFailed
	}
	return nil
}

func writeTree(w io.Writer, format string, nodes []internal.Node) error {
	switch strings.ToLower(format) {
	case config.FormatSexpr:
		return internal.PrintTree(w, nodes)
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.WithStack(enc.Encode(internal.DumpAll(nodes)))
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(internal.DumpAll(nodes)); err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(enc.Close())
	}
	return errors.Errorf("unknown output format %q", format)
}
