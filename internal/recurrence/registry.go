package recurrence

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// Params carries the per-run parameters a policy creator may need.
type Params struct {
	// Interval is the checkpoint interval. Ignored by policies without one.
	Interval int
}

// Creator builds a core policy from its parameters.
type Creator func(Params) (Policy, error)

// Factory is a registry of storage policies. Policies it creates are
// wrapped with Instrument, so every run is traced, measured and logged.
// A Factory is safe for concurrent use.
type Factory struct {
	mu       sync.RWMutex
	creators map[string]Creator
	logger   zerolog.Logger
}

// NewFactory creates a Factory with the standard policies pre-registered.
//
// Pre-registered policies:
//   - "storage": StoragePolicy (O(depth) memory)
//   - "checkpoint": CheckpointPolicy (O(depth/interval) memory, requires Params.Interval)
//   - "recompute": RecomputePolicy (O(1) memory)
func NewFactory(logger zerolog.Logger) *Factory {
	f := &Factory{
		creators: make(map[string]Creator),
		logger:   logger,
	}

	_ = f.Register(PolicyStorage, func(Params) (Policy, error) { return &StoragePolicy{}, nil })
	_ = f.Register(PolicyCheckpoint, func(p Params) (Policy, error) {
		if err := validateInterval(p.Interval); err != nil {
			return nil, err
		}
		return &CheckpointPolicy{Interval: p.Interval}, nil
	})
	_ = f.Register(PolicyRecompute, func(Params) (Policy, error) { return &RecomputePolicy{}, nil })

	return f
}

// Register adds a policy creator under name, replacing any previous one.
func (f *Factory) Register(name string, creator Creator) error {
	if name == "" {
		return fmt.Errorf("policy name cannot be empty")
	}
	if creator == nil {
		return fmt.Errorf("creator for policy %q cannot be nil", name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creators[name] = creator
	return nil
}

// Create builds a fresh instrumented policy by name.
//
// Returns:
//   - Policy: The instrumented policy.
//   - error: An error if the name is unknown or the parameters are invalid.
func (f *Factory) Create(name string, params Params) (Policy, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown policy: %s", name)
	}
	core, err := creator(params)
	if err != nil {
		return nil, err
	}
	return Instrument(core, f.logger), nil
}

// List returns the registered policy names in alphabetical order.
func (f *Factory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a policy is registered under name.
func (f *Factory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, exists := f.creators[name]
	return exists
}
