package internal

import "github.com/voxelforge/blockquery/query"

// Diagnostic reports one query in a query file that failed to compile.
type Diagnostic struct {
	Filename string
	Line     int // 1-based line number in the query file
	Query    string
	Err      *query.ParseError
}
