package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"jsfront/internal"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the token stream of a source file",
	Long: `Prints one token per line as "line:col kind lexeme".

Lines and columns are 1-based. Scanning stops after the first invalid token.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	path, source, err := readSource(args)
	if err != nil {
		return err
	}

	tokens := internal.Tokenize(source, options())
	invalid := writeTokens(os.Stdout, tokens)
	if invalid != nil {
		pos := invalid.Span.Start
		return errors.Errorf("%s:%d:%d: invalid token %q", path, pos.Line+1, pos.Col+1, invalid.Lexeme)
	}
	return nil
}

// writeTokens prints tokens up to and including the first invalid one, which it returns
func writeTokens(w io.Writer, tokens []internal.Token) *internal.Token {
	for i := range tokens {
		tok := tokens[i]
		pos := tok.Span.Start
		fmt.Fprintf(w, "%d:%d %s %s\n", pos.Line+1, pos.Col+1, kindColor(tok.Kind), tok.Lexeme)
		if tok.Kind == internal.Invalid {
			return &tokens[i]
		}
	}
	return nil
}

func kindColor(kind internal.TokenKind) string {
	name := kind.String()
	switch kind {
	case internal.Invalid:
		return color.Red(name)
	case internal.KeywordToken:
		return color.Magenta(name)
	case internal.IntegerLiteral, internal.DoubleLiteral, internal.StringLiteral, internal.BooleanLiteral:
		return color.Green(name)
	case internal.BinaryOperator, internal.UnaryOperator:
		return color.Yellow(name)
	case internal.Punctuator, internal.EOF:
		return color.Grey(name)
	}
	return color.Cyan(name)
}
