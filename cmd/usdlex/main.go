package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/usd-tools/usdlex/pkgs/highlight"
	"github.com/usd-tools/usdlex/pkgs/lexer"
	"github.com/usd-tools/usdlex/pkgs/registry"
	"github.com/usd-tools/usdlex/pkgs/usd"
)

func main() {
	var (
		lexerName string
		tokens    bool
		noColor   bool
		watch     bool
	)

	rootCmd := &cobra.Command{
		Use:   "usdlex [file]",
		Short: "Syntax-highlight USD ASCII files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			opts := renderOptions{
				lexerName: lexerName,
				tokens:    tokens,
				useColor:  shouldUseColor(noColor),
			}
			if watch {
				if path == "-" {
					return fmt.Errorf("--watch requires a file argument")
				}
				return watchAndRender(path, opts)
			}
			return renderPath(path, opts)
		},
	}

	rootCmd.Flags().StringVar(&lexerName, "lexer", "", "Lexer name or alias (default: match by filename)")
	rootCmd.Flags().BoolVar(&tokens, "tokens", false, "Dump classified spans instead of highlighted text")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "Re-render whenever the file changes")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type renderOptions struct {
	lexerName string
	tokens    bool
	useColor  bool
}

func renderPath(path string, opts renderOptions) error {
	source, err := readInput(path)
	if err != nil {
		return err
	}
	newLexer, err := selectLexer(path, opts.lexerName)
	if err != nil {
		return err
	}
	lx := newLexer(source)
	if opts.tokens {
		return dumpSpans(os.Stdout, lx)
	}
	return highlight.Write(os.Stdout, lx, opts.useColor)
}

// selectLexer picks a constructor: an explicit --lexer name wins, then the
// registry's filename match, then the USD lexer as the default.
func selectLexer(path, name string) (func(string) *lexer.Lexer, error) {
	if name != "" {
		entry, err := registry.Lookup(name)
		if err != nil {
			return nil, err
		}
		return entry.New, nil
	}
	if entry, ok := registry.Match(path); ok {
		return entry.New, nil
	}
	return usd.New, nil
}

// dumpSpans writes one "start..end CATEGORY text" line per span.
func dumpSpans(w io.Writer, lx *lexer.Lexer) error {
	for s, ok := lx.Next(); ok; s, ok = lx.Next() {
		if _, err := fmt.Fprintf(w, "%d..%d\t%s\t%q\n", s.Start, s.End, s.Category, s.Text); err != nil {
			return err
		}
	}
	return nil
}

// readInput handles the two input modes: explicit stdin with "-", or a
// named file read whole (the lexer needs the full buffer anyway).
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading file %s: %w", path, err)
	}
	return string(data), nil
}

// shouldUseColor determines if color output should be used. Respects the
// --no-color flag, the NO_COLOR environment variable, and whether stdout is
// a terminal.
func shouldUseColor(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
