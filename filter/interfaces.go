package filter

import "context"

// Filter decides whether a list entry is kept
type Filter interface {
	// Evaluate reports whether entry matches
	Evaluate(entry Entry) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the source expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

// EntryEvaluator applies a filter to a slice of entries
type EntryEvaluator interface {
	Evaluate(ctx context.Context, filter Filter, entries []Entry) ([]Entry, error)
}
