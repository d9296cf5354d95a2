package query

import (
	"errors"
	"regexp"
	"strings"
)

// DefaultProperty is the property name a bare bracket value tests against
// ("[red]" means "[variant=red]"). Tied to a legacy state-property scheme, so
// it is overridable per compiler via WithDefaultProperty.
const DefaultProperty = "variant"

// propertyRegex matches one bracket-group item: an optional "name =" part
// followed by one or more values joined with '|'.
var propertyRegex = regexp.MustCompile(`^\s*(?:(\w+)\s*=\s*)?([\w|]+)\s*$`)

// Compiler turns query spec strings into Predicates. A Compiler is stateless
// apart from its configuration and may be shared across goroutines, provided
// the resolver and store are no longer being mutated.
type Compiler struct {
	resolver        Resolver
	store           *Store
	defaultProperty string
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithDefaultProperty sets the property name bare bracket values test.
func WithDefaultProperty(name string) Option {
	return func(c *Compiler) {
		c.defaultProperty = name
	}
}

// NewCompiler returns a Compiler resolving names through resolver and @name
// references through store. A nil store makes every @name reference fail
// with an unknown-query error.
func NewCompiler(resolver Resolver, store *Store, opts ...Option) *Compiler {
	c := &Compiler{
		resolver:        resolver,
		store:           store,
		defaultProperty: DefaultProperty,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile parses a query spec into a Predicate. Comma is the lowest-
// precedence operator: each comma-delimited segment compiles to a
// conjunction of its tokens and the segments combine into a disjunction.
// Compilation fails fast on the first bad token and returns a *ParseError.
func (c *Compiler) Compile(spec string) (Predicate, error) {
	or := &OrBuilder{}
	for _, segment := range splitSegments(spec) {
		p, err := c.compileSegment(segment)
		if err != nil {
			var parseErr *ParseError
			if errors.As(err, &parseErr) && parseErr.Spec == "" {
				parseErr.Spec = spec
			}
			return nil, err
		}
		or.Add(p)
	}
	return or.Build(), nil
}

// compileSegment compiles one AND-group of juxtaposed tokens.
func (c *Compiler) compileSegment(segment string) (Predicate, error) {
	and := &AndBuilder{}
	lexer := NewLexer(segment)
	for {
		token, err := lexer.Next()
		if err != nil {
			return nil, err
		}
		if token.Kind == TokenEOF {
			break
		}
		p, err := c.resolveToken(token)
		if err != nil {
			return nil, err
		}
		and.Add(p)
	}
	return and.Build(), nil
}

// resolveToken resolves one token into a predicate, applying the token's
// negation flag. Negation binds to exactly this token.
func (c *Compiler) resolveToken(token Token) (Predicate, error) {
	switch token.Kind {
	case TokenTypeTag, TokenStrictTypeTag:
		tag, ok := c.resolver.ResolveTypeTag(token.Text)
		if !ok {
			return nil, &ParseError{Kind: ErrUnknownTypeTag, Fragment: token.Text}
		}
		strict := token.Kind == TokenStrictTypeTag
		var p Predicate
		if strict {
			p = TypeTag(tag, true)
		} else {
			p = TypeTag(tag, false, c.resolver.DerivedTags(tag)...)
		}
		return negate(p, token.Negated), nil

	case TokenMaterial:
		m, ok := c.resolver.ResolveMaterial(token.Text)
		if !ok {
			return nil, &ParseError{Kind: ErrUnknownMaterial, Fragment: token.Text}
		}
		return negate(Material(m), token.Negated), nil

	case TokenQueryRef:
		if c.store != nil {
			if p, ok := c.store.Lookup(token.Text); ok {
				// Reused by reference, never copied: the stored tree is
				// immutable so sharing it is safe.
				return negate(p, token.Negated), nil
			}
		}
		return nil, &ParseError{Kind: ErrUnknownQuery, Fragment: token.Text}

	case TokenPropertyGroup:
		return c.compileGroup(token.Text, token.Negated)

	default:
		id, ok := c.resolver.ResolveBlock(token.Text)
		if !ok {
			return nil, &ParseError{Kind: ErrUnknownBlock, Fragment: token.Text}
		}
		return negate(Block(id), token.Negated), nil
	}
}

// compileGroup compiles a bracket interior: comma-delimited property items
// combined with AND. Negation applies to each item individually, so
// "![a=1,b=2]" demands both properties miss.
func (c *Compiler) compileGroup(body string, negated bool) (Predicate, error) {
	and := &AndBuilder{}
	for _, item := range strings.Split(body, ",") {
		match := propertyRegex.FindStringSubmatch(item)
		if match == nil {
			return nil, &ParseError{Kind: ErrSyntax, Fragment: item}
		}
		name := match[1]
		if name == "" {
			name = c.defaultProperty
		}
		values := strings.Split(match[2], "|")
		and.Add(negate(Property(name, values...), negated))
	}
	return and.Build(), nil
}

func negate(p Predicate, negated bool) Predicate {
	if negated {
		return Not(p)
	}
	return p
}

// splitSegments splits a spec on top-level commas; commas inside bracket
// groups delimit property items, not segments.
func splitSegments(spec string) []string {
	var segments []string
	depth := 0
	start := 0
	for i := 0; i < len(spec); i++ {
		switch spec[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				segments = append(segments, spec[start:i])
				start = i + 1
			}
		}
	}
	return append(segments, spec[start:])
}
