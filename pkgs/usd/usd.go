// Package usd provides the rule table for lexing Pixar's Universal Scene
// Description ASCII format (.usd/.usda) for syntax highlighting. It is a
// lexical classifier only: it assigns categories to runs of text and does
// not validate document structure or resolve compositions.
package usd

import (
	"regexp"
	"strings"

	"github.com/usd-tools/usdlex/pkgs/lexer"
	"github.com/usd-tools/usdlex/pkgs/registry"
	"github.com/usd-tools/usdlex/pkgs/token"
)

// Pattern fragments shared by the declaration header rules. A type is a
// word with an optional [] array marker; an attribute is an identifier with
// optional colon-namespaced segments and an optional .timeSamples suffix.
const (
	typePat    = `(\w+(?:\[\])?)`
	attrPat    = `([\w_]+(?:\:[\w_]+)*)(?:(\.)(timeSamples))?`
	inlineWS   = `([ \t]+)`
	trailerPat = `(\s*)(=)`
)

// declarationRule builds one composite header rule. Headers such as
// "custom uniform double3 xformOp:translate.timeSamples =" are matched as a
// unit so the type and attribute name are distinguished from the same words
// appearing bare in an expression. keywords holds the leading "custom" /
// "uniform" modifiers; the table lists the most specific combination first.
func declarationRule(keywords ...string) lexer.Rule {
	var expr strings.Builder
	cats := make([]token.Category, 0, 2*len(keywords)+7)
	for i, kw := range keywords {
		expr.WriteString(`(` + kw + `)`)
		cats = append(cats, token.KeywordToken)
		if i == 0 {
			expr.WriteString(inlineWS)
		} else {
			expr.WriteString(`(\s+)`)
		}
		cats = append(cats, token.Whitespace)
	}
	typeAttrWS := `(\s+)`
	if len(keywords) == 0 {
		typeAttrWS = inlineWS
	}
	expr.WriteString(typePat + typeAttrWS + attrPat + trailerPat)
	cats = append(cats,
		token.KeywordType,
		token.Whitespace,
		token.NameAttribute,
		token.Generic,      // the dot before timeSamples
		token.KeywordToken, // the timeSamples suffix itself
		token.Whitespace,
		token.Operator,
	)
	return lexer.ByGroups(expr.String(), cats...)
}

// Vocabulary bundles the word lists a rule table is built from. Hosts
// tracking a newer schema can extend a copy of DefaultVocabulary and build
// their own table; the matching engine never changes for that.
type Vocabulary struct {
	Keywords         []string
	SpecialNames     []string
	CommonAttributes []string
	Operators        []string
	Types            []string
}

// DefaultVocabulary returns the word lists shipped with this package.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Keywords:         Keywords,
		SpecialNames:     SpecialNames,
		CommonAttributes: CommonAttributes,
		Operators:        Operators,
		Types:            Types,
	}
}

// arrayTypeExpr matches any declared type immediately followed by the []
// array marker, as one token.
func arrayTypeExpr(types []string) string {
	quoted := make([]string, len(types))
	for i, t := range types {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return `(?:` + strings.Join(quoted, `|`) + `)\[\]`
}

// BuildTable assembles a USD rule table over the given vocabulary.
//
// Order is precedence: composite declaration headers first so type and
// attribute tokens are classified in context, then the vocabulary rules,
// then punctuation, literals, and fallbacks. The start-anchored hashbang
// rule sits ahead of the generic comment rule or it could never win.
func BuildTable(v Vocabulary) *lexer.RuleTable {
	return lexer.NewTable(
		declarationRule("custom", "uniform"),
		declarationRule("custom"),
		declarationRule("uniform"),
		declarationRule(),

		lexer.AtStart(lexer.Pattern(token.CommentHashbang, `#usda [^\n]+`)),

		lexer.Words(token.KeywordToken, v.Keywords...),
		lexer.Words(token.NameBuiltin, v.SpecialNames...),
		lexer.Words(token.NameAttribute, v.CommonAttributes...),
		lexer.Pattern(token.NameAttribute, `\b\w+:[\w:]+\b`),
		lexer.Words(token.Operator, v.Operators...),

		lexer.Pattern(token.KeywordType, arrayTypeExpr(v.Types)),
		lexer.Words(token.KeywordType, v.Types...),

		lexer.Pattern(token.Punctuation, `[()\[\]{}]`),
		lexer.Pattern(token.CommentSingle, `#[^\n]*`),

		// Commas and semicolons stay Generic: semicolons only join
		// metadata lines, they are not statement terminators.
		lexer.Pattern(token.Generic, `,`),
		lexer.Pattern(token.Generic, `;`),
		lexer.Pattern(token.Operator, `=`),

		lexer.Pattern(token.Number, `-?(?:[0-9]*[.])?[0-9]+`),

		lexer.Pattern(token.String, `'''(?:.|\n)*?'''`),
		lexer.Pattern(token.String, `"""(?:.|\n)*?"""`),
		// Deliberately greedy to the last same-line quote: stray interior
		// quotes merge into one span instead of closing the string early.
		lexer.Pattern(token.String, `'.*'`),
		lexer.Pattern(token.String, `".*"`),

		lexer.Pattern(token.NameNamespace, `<(?:\.\./)*(?:[\w/]+|[\w/]+\.\w+[\w:]*)>`),
		lexer.Pattern(token.StringInterpol, `@.*@`),
		lexer.Pattern(token.StringDoc, `\(.*"[.\n]*".*\)`),

		lexer.Pattern(token.Text, `\s+`),
		lexer.Pattern(token.Generic, `[\w_:.]+`),
	)
}

// table is built once at init and shared, read-only, by every lexer.
var table = BuildTable(DefaultVocabulary())

// Rules returns the default USD rule table.
func Rules() *lexer.RuleTable {
	return table
}

// New returns a lexer over input using the USD rule table.
func New(input string) *lexer.Lexer {
	return lexer.New(table, input)
}

func init() {
	registry.Register(registry.Entry{
		Name:      "USD",
		Aliases:   []string{"usd", "usda"},
		Filenames: []string{"*.usd", "*.usda"},
		New:       New,
	})
}
