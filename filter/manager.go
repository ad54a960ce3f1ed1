package filter

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/s0up4200/dexarr/pokeapi"
)

// Manager holds named preset filters and applies ad-hoc or preset filters
// to list results
type Manager struct {
	compiler  Compiler
	evaluator EntryEvaluator
	presets   map[string]CompiledFilter
	mu        sync.RWMutex
}

// ManagerOption configures a filter manager
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// WithEvaluator sets a custom evaluator
func WithEvaluator(evaluator EntryEvaluator) ManagerOption {
	return func(m *Manager) {
		m.evaluator = evaluator
	}
}

// NewManager creates a new filter manager
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler:  NewExprCompiler(WithCache(100)),
		evaluator: NewConcurrentEvaluator(),
		presets:   make(map[string]CompiledFilter),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RegisterPresets compiles and registers named filters. Nothing is
// registered unless all of them compile.
func (m *Manager) RegisterPresets(presets map[string]string) error {
	compiled := make(map[string]CompiledFilter, len(presets))

	for _, name := range slices.Sorted(maps.Keys(presets)) {
		filter, err := m.compiler.Compile(presets[name])
		if err != nil {
			return &PresetError{Name: name, Reason: "failed to compile", Err: err}
		}
		compiled[name] = filter
	}

	m.mu.Lock()
	maps.Copy(m.presets, compiled)
	m.mu.Unlock()

	return nil
}

// Preset returns a registered filter by name
func (m *Manager) Preset(name string) (CompiledFilter, bool) {
	m.mu.RLock()
	filter, exists := m.presets[name]
	m.mu.RUnlock()
	return filter, exists
}

// Presets returns the registered preset names, sorted
func (m *Manager) Presets() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.presets))
}

// Resolve picks the filter to apply: an explicit expression wins over a
// preset name. Both empty means no filter (nil, nil).
func (m *Manager) Resolve(expression, preset string) (CompiledFilter, error) {
	if expression != "" {
		return m.compiler.Compile(expression)
	}

	if preset != "" {
		filter, ok := m.Preset(preset)
		if !ok {
			return nil, &PresetError{Name: preset, Reason: "not found in config"}
		}
		return filter, nil
	}

	return nil, nil
}

// Apply converts resources to entries and keeps those matching filter. A
// nil filter keeps everything.
func (m *Manager) Apply(ctx context.Context, filter Filter, resources []pokeapi.NamedAPIResource) ([]Entry, error) {
	entries := NewEntries(resources)
	if filter == nil {
		return entries, nil
	}
	return m.evaluator.Evaluate(ctx, filter, entries)
}
