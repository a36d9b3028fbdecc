package token

// Category classifies one span of USD source text. Categories form a
// shallow hierarchy (Keyword.Type under Keyword, Comment.Single under
// Comment, ...) that renderers use for style fallback; the lexer itself
// only assigns values, it never consults the hierarchy.
type Category int

const (
	// Error marks a byte no rule recognized. It is informational, not a
	// failure: lexing never aborts.
	Error Category = iota

	Text       // plain text, including whitespace runs between tokens
	Whitespace // whitespace captured inside a declaration header
	Generic    // identifier-ish text with no better classification

	Comment
	CommentSingle   // "#" to end of line
	CommentHashbang // "#usda ..." at the very start of a file

	Keyword
	KeywordToken // def, over, custom, uniform, ...
	KeywordType  // double, float3, token[], ...

	Name
	NameAttribute // declared or well-known attribute names
	NameBuiltin   // special prim/layer metadata names
	NameNamespace // </World/Geo.points> style target paths

	Operator
	Punctuation
	Number

	String
	StringDoc      // parenthesized documentation string
	StringInterpol // @./asset.usda@ references
)

// Span is one classified run of input text. Start and End are byte offsets
// into the original buffer; Text is the covered substring. A zero-length
// span (Start == End) comes from an empty optional capture group and is a
// no-op for consumers.
type Span struct {
	Start    int
	End      int
	Category Category
	Text     string
}

// Parent returns the enclosing category, or the category itself at the top
// of the hierarchy. Renderers walk this chain until they find a style.
func (c Category) Parent() Category {
	switch c {
	case Whitespace:
		return Text
	case CommentSingle, CommentHashbang:
		return Comment
	case KeywordToken, KeywordType:
		return Keyword
	case NameAttribute, NameBuiltin, NameNamespace:
		return Name
	case StringDoc, StringInterpol:
		return String
	default:
		return c
	}
}

// String returns the dotted hierarchical form, e.g. "Keyword.Type".
func (c Category) String() string {
	switch c {
	case Error:
		return "Error"
	case Text:
		return "Text"
	case Whitespace:
		return "Text.Whitespace"
	case Generic:
		return "Generic"
	case Comment:
		return "Comment"
	case CommentSingle:
		return "Comment.Single"
	case CommentHashbang:
		return "Comment.Hashbang"
	case Keyword:
		return "Keyword"
	case KeywordToken:
		return "Keyword.Token"
	case KeywordType:
		return "Keyword.Type"
	case Name:
		return "Name"
	case NameAttribute:
		return "Name.Attribute"
	case NameBuiltin:
		return "Name.Builtin"
	case NameNamespace:
		return "Name.Namespace"
	case Operator:
		return "Operator"
	case Punctuation:
		return "Punctuation"
	case Number:
		return "Number"
	case String:
		return "String"
	case StringDoc:
		return "String.Doc"
	case StringInterpol:
		return "String.Interpol"
	default:
		return "Unknown"
	}
}
