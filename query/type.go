package query

// TokenKind defines the different token forms the lexer can produce.
type TokenKind int

const (
	TokenBlock         TokenKind = iota // bare or namespaced identifier
	TokenTypeTag                        // %name
	TokenStrictTypeTag                  // $name
	TokenMaterial                       // ~name
	TokenQueryRef                       // @name
	TokenPropertyGroup                  // [name=value, ...]
	TokenEOF                            // end of input
)

func (k TokenKind) String() string {
	switch k {
	case TokenBlock:
		return "block"
	case TokenTypeTag:
		return "type-tag"
	case TokenStrictTypeTag:
		return "strict-type-tag"
	case TokenMaterial:
		return "material"
	case TokenQueryRef:
		return "query-ref"
	case TokenPropertyGroup:
		return "property-group"
	case TokenEOF:
		return "eof"
	default:
		return "invalid"
	}
}

// Token is a classified fragment of a query segment. Text is the token body
// with its sigil stripped; for property groups it is the bracket interior.
// Tokens are transient and discarded once compilation finishes.
type Token struct {
	Kind     TokenKind
	Text     string
	Negated  bool
	Position int // starting position within the segment
}
