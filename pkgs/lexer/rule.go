package lexer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/usd-tools/usdlex/pkgs/token"
)

// Rule matches input anchored at the lexer cursor and assigns categories to
// what it consumed. A rule is one of three variants: a whole-word vocabulary
// alternation, a simple pattern carrying a single category, or a grouped
// pattern carrying one category per capture group.
type Rule struct {
	re        *regexp.Regexp
	whole     token.Category
	groups    []token.Category
	startOnly bool
	wordBound bool // a leading \b: the byte before the cursor must not be a word byte
}

// Pattern builds a rule whose entire match gets one category.
//
// The engine matches against the input sliced at the cursor, so a leading
// \b in expr cannot see the preceding character on its own; such rules are
// flagged and the engine checks the left boundary before trying them.
func Pattern(cat token.Category, expr string) Rule {
	return Rule{
		re:        mustAnchor(expr),
		whole:     cat,
		wordBound: strings.HasPrefix(expr, `\b`),
	}
}

// Words builds a whole-word rule from a vocabulary list: the match must be
// bounded by non-word characters or buffer edges on both sides, so
// "timeSamples" never matches inside "timeSamplesExtra". Alternation order
// is list order; matching is exact and case-sensitive.
func Words(cat token.Category, words ...string) Rule {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return Pattern(cat, `\b(?:`+strings.Join(quoted, `|`)+`)\b`)
}

// ByGroups builds a rule that slices its match into per-group spans, one
// category per capture group in capture order. The category count must
// equal the pattern's capture group count.
func ByGroups(expr string, cats ...token.Category) Rule {
	re := mustAnchor(expr)
	if re.NumSubexp() != len(cats) {
		panic(fmt.Sprintf("lexer: pattern %q has %d groups, %d categories given",
			expr, re.NumSubexp(), len(cats)))
	}
	return Rule{re: re, groups: cats, wordBound: strings.HasPrefix(expr, `\b`)}
}

// AtStart restricts a rule to offset zero, for file-header constructs like
// the "#usda" hashbang line.
func AtStart(r Rule) Rule {
	r.startOnly = true
	return r
}

// mustAnchor compiles expr anchored at the beginning of the slice the
// engine hands it, so matches always begin exactly at the cursor. The
// non-capturing wrapper keeps capture group numbering intact.
func mustAnchor(expr string) *regexp.Regexp {
	return regexp.MustCompile(`\A(?:` + expr + `)`)
}

// RuleTable is an ordered rule sequence. Order encodes precedence: the
// first rule that matches at the cursor wins. Tables are immutable once
// built and safe to share across goroutines.
type RuleTable struct {
	rules []Rule
}

// NewTable builds an immutable rule table from rules in precedence order.
func NewTable(rules ...Rule) *RuleTable {
	return &RuleTable{rules: rules}
}
