package query

import "fmt"

// ErrorKind classifies why a query spec failed to compile.
type ErrorKind int

const (
	// ErrSyntax means the input matched no valid token form.
	ErrSyntax ErrorKind = iota
	// ErrUnknownBlock means a bare identifier did not resolve to a block.
	ErrUnknownBlock
	// ErrUnknownTypeTag means a %name or $name did not resolve on the search path.
	ErrUnknownTypeTag
	// ErrUnknownMaterial means a ~name did not resolve to a material.
	ErrUnknownMaterial
	// ErrUnknownQuery means an @name had no entry in the predefined-query store.
	ErrUnknownQuery
)

func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax"
	case ErrUnknownBlock:
		return "unknown-block"
	case ErrUnknownTypeTag:
		return "unknown-type-tag"
	case ErrUnknownMaterial:
		return "unknown-material"
	case ErrUnknownQuery:
		return "unknown-query"
	default:
		return "unknown"
	}
}

// ParseError is the error returned by Compile. Compilation is all-or-nothing:
// the first bad token aborts the whole call and no partial predicate is
// returned. Fragment carries the token (or unparsed remainder, for syntax
// errors) that caused the failure; Spec is the full query string it came from.
type ParseError struct {
	Kind     ErrorKind
	Spec     string
	Fragment string
}

func (e *ParseError) Error() string {
	var msg string
	switch e.Kind {
	case ErrSyntax:
		msg = fmt.Sprintf("syntax error in %q", e.Fragment)
	case ErrUnknownBlock:
		msg = fmt.Sprintf("no block called %q", e.Fragment)
	case ErrUnknownTypeTag:
		msg = fmt.Sprintf("no type tag called %q", e.Fragment)
	case ErrUnknownMaterial:
		msg = fmt.Sprintf("no material called %q", e.Fragment)
	case ErrUnknownQuery:
		msg = fmt.Sprintf("no predefined query named %q", e.Fragment)
	default:
		msg = fmt.Sprintf("invalid token %q", e.Fragment)
	}
	if e.Spec != "" && e.Spec != e.Fragment {
		msg += fmt.Sprintf(" (in query %q)", e.Spec)
	}
	return msg
}
