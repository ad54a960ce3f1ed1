package filter

import (
	"maps"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache
}

// Compile compiles an expression into an executable filter. The expression
// sees Name, URL and ID of each entry plus the helper functions and must
// evaluate to a bool.
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.compileEnvironment()),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// compileEnvironment declares every name an expression may use so typos
// fail at compile time instead of silently never matching.
func (c *exprCompiler) compileEnvironment() map[string]any {
	return createRuntimeEnvironment(Entry{}, c.helperFuncs)
}

// Evaluate evaluates the filter against an entry. Runtime errors count as
// no match.
func (f *exprFilter) Evaluate(entry Entry) bool {
	result, err := expr.Run(f.program, createRuntimeEnvironment(entry, f.helpers))
	if err != nil {
		return false
	}

	// AsBool guarantees the type
	return result.(bool)
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// createHelperFunctions creates the static helper functions. Names avoid
// the expr builtins and operators (contains, startsWith, lower, ...), which
// remain available as usual.
func createHelperFunctions() map[string]any {
	return map[string]any{
		"between": func(v, lo, hi int) bool {
			return v >= lo && v <= hi
		},
	}
}

// createRuntimeEnvironment creates the environment for one entry
func createRuntimeEnvironment(entry Entry, helpers map[string]any) map[string]any {
	env := make(map[string]any, len(helpers)+9)
	maps.Copy(env, helpers)

	env["Entry"] = entry
	env["Name"] = entry.Name
	env["URL"] = entry.URL
	env["ID"] = entry.ID
	env["isAlternateForm"] = entry.IsAlternateForm
	env["hasWord"] = createHasWordFunc(entry.Name)
	env["nameContains"] = createNameMatchFunc(entry.Name, strings.Contains)
	env["nameStartsWith"] = createNameMatchFunc(entry.Name, strings.HasPrefix)
	env["nameEndsWith"] = createNameMatchFunc(entry.Name, strings.HasSuffix)

	return env
}

// createHasWordFunc matches one '-'-separated segment of a name, so
// hasWord("mega") matches charizard-mega-x but not meganium.
func createHasWordFunc(name string) func(string) bool {
	words := strings.Split(strings.ToLower(name), "-")
	return func(word string) bool {
		return slices.Contains(words, strings.ToLower(word))
	}
}

// createNameMatchFunc applies match case-insensitively to the entry name
func createNameMatchFunc(name string, match func(s, substr string) bool) func(string) bool {
	lowerName := strings.ToLower(name)
	return func(substr string) bool {
		return match(lowerName, strings.ToLower(substr))
	}
}
