package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/voxelforge/blockquery/query"
)

// QueryFileExt is the extension of query files the engine processes.
const QueryFileExt = ".bq"

// Engine checks query files against a configured vocabulary. A query file
// holds one query per line; blank lines and lines starting with '#' are
// skipped.
type Engine struct {
	compiler *query.Compiler
	store    *query.Store

	watcher    *fsnotify.Watcher
	watchPaths []string
	isWatching bool
}

// NewEngine returns an engine compiling against resolver and store.
func NewEngine(resolver query.Resolver, store *query.Store, opts ...query.Option) *Engine {
	return &Engine{
		compiler: query.NewCompiler(resolver, store, opts...),
		store:    store,
	}
}

// Compiler exposes the engine's compiler for direct use (eval, scan, explain).
func (e *Engine) Compiler() *query.Compiler { return e.compiler }

// Store exposes the engine's predefined-query store.
func (e *Engine) Store() *query.Store { return e.store }

// CheckFile compiles every query in the file and returns a diagnostic per
// failing line.
func (e *Engine) CheckFile(path string) ([]Diagnostic, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return e.CheckSource(path, src), nil
}

// CheckSource compiles every query in src, reporting failures against
// filename.
func (e *Engine) CheckSource(filename string, src []byte) []Diagnostic {
	var diagnostics []Diagnostic
	for i, line := range strings.Split(string(src), "\n") {
		text := strings.TrimSpace(line)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if _, err := e.compiler.Compile(text); err != nil {
			var parseErr *query.ParseError
			if !errors.As(err, &parseErr) {
				parseErr = &query.ParseError{Kind: query.ErrSyntax, Spec: text, Fragment: text}
			}
			diagnostics = append(diagnostics, Diagnostic{
				Filename: filename,
				Line:     i + 1,
				Query:    text,
				Err:      parseErr,
			})
		}
	}
	return diagnostics
}
