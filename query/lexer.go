package query

// Lexer scans one query segment (an AND-group, already split on top-level
// commas) and produces its tokens one at a time.
type Lexer struct {
	input    string
	position int
}

// NewLexer returns a new Lexer over the given segment.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Next returns the next token from the front of the remaining input, or a
// TokenEOF token once the segment is exhausted. Input that matches no valid
// token form yields a syntax error carrying the unparsed remainder.
func (l *Lexer) Next() (Token, error) {
	l.skipSpaces()
	if l.position >= len(l.input) {
		return Token{Kind: TokenEOF, Position: l.position}, nil
	}

	start := l.position
	negated := false
	if l.input[l.position] == '!' {
		negated = true
		l.position++
	}
	if l.position >= len(l.input) {
		return Token{}, l.syntaxError(start)
	}

	switch c := l.input[l.position]; {
	case c == '%':
		return l.lexSigil(TokenTypeTag, start, negated)
	case c == '$':
		return l.lexSigil(TokenStrictTypeTag, start, negated)
	case c == '~':
		return l.lexSigil(TokenMaterial, start, negated)
	case c == '@':
		return l.lexSigil(TokenQueryRef, start, negated)
	case c == '[':
		return l.lexGroup(start, negated)
	case isIdentChar(c):
		return l.lexIdent(start, negated)
	default:
		return Token{}, l.syntaxError(start)
	}
}

// lexSigil scans the word following a one-character sigil.
func (l *Lexer) lexSigil(kind TokenKind, start int, negated bool) (Token, error) {
	l.position++
	wordStart := l.position
	for l.position < len(l.input) && isWordChar(l.input[l.position]) {
		l.position++
	}
	if l.position == wordStart {
		return Token{}, l.syntaxError(start)
	}
	return Token{
		Kind:     kind,
		Text:     l.input[wordStart:l.position],
		Negated:  negated,
		Position: start,
	}, nil
}

// lexGroup scans a bracketed property group up to the first closing bracket.
// The interior must be non-empty.
func (l *Lexer) lexGroup(start int, negated bool) (Token, error) {
	for i := l.position + 1; i < len(l.input); i++ {
		if l.input[i] == ']' {
			if i == l.position+1 {
				return Token{}, l.syntaxError(start)
			}
			body := l.input[l.position+1 : i]
			l.position = i + 1
			return Token{
				Kind:     TokenPropertyGroup,
				Text:     body,
				Negated:  negated,
				Position: start,
			}, nil
		}
	}
	return Token{}, l.syntaxError(start)
}

// lexIdent scans a bare or namespaced ("minecraft:stone") identifier.
func (l *Lexer) lexIdent(start int, negated bool) (Token, error) {
	wordStart := l.position
	for l.position < len(l.input) && isIdentChar(l.input[l.position]) {
		l.position++
	}
	return Token{
		Kind:     TokenBlock,
		Text:     l.input[wordStart:l.position],
		Negated:  negated,
		Position: start,
	}, nil
}

func (l *Lexer) skipSpaces() {
	for l.position < len(l.input) && isSpace(l.input[l.position]) {
		l.position++
	}
}

// syntaxError reports the remainder from the token start so the author can
// see exactly where scanning stopped. The compiler fills in the full spec.
func (l *Lexer) syntaxError(start int) error {
	return &ParseError{Kind: ErrSyntax, Fragment: l.input[start:]}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isWordChar(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

func isIdentChar(c byte) bool {
	return isWordChar(c) || c == ':'
}
