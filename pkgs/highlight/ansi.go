// Package highlight renders classified spans as ANSI-colored terminal
// text. It consumes what the lexer produces; it never re-tokenizes.
package highlight

import (
	"io"

	"github.com/usd-tools/usdlex/pkgs/lexer"
	"github.com/usd-tools/usdlex/pkgs/token"
)

// ANSI color codes
const (
	ColorReset   = "\033[0m"
	ColorRed     = "\033[31m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorGray    = "\033[90m"
)

// styles maps categories to colors. StyleFor falls back through
// Category.Parent, so the String entry covers String.Doc and
// String.Interpol without their own rows.
var styles = map[token.Category]string{
	token.Keyword:       ColorBlue,
	token.KeywordType:   ColorCyan,
	token.NameAttribute: ColorYellow,
	token.NameBuiltin:   ColorMagenta,
	token.NameNamespace: ColorGreen,
	token.Operator:      ColorYellow,
	token.Comment:       ColorGray,
	token.String:        ColorGreen,
	token.Number:        ColorMagenta,
	token.Error:         ColorRed,
}

// StyleFor returns the ANSI color for a category, walking up the category
// hierarchy. An empty string means unstyled.
func StyleFor(c token.Category) string {
	for {
		if color, ok := styles[c]; ok {
			return color
		}
		parent := c.Parent()
		if parent == c {
			return ""
		}
		c = parent
	}
}

// Colorize wraps text in ANSI color codes if color is enabled.
func Colorize(text, color string, useColor bool) string {
	if !useColor || color == "" {
		return text
	}
	return color + text + ColorReset
}

// Write renders every remaining span from l to w. With useColor false the
// output is byte-for-byte the lexer's input: spans cover the buffer exactly.
func Write(w io.Writer, l *lexer.Lexer, useColor bool) error {
	for s, ok := l.Next(); ok; s, ok = l.Next() {
		if _, err := io.WriteString(w, Colorize(s.Text, StyleFor(s.Category), useColor)); err != nil {
			return err
		}
	}
	return nil
}
