package grpy

import (
	"fmt"

	"github.com/t73fde/grpy/policy"
	"github.com/t73fde/grpy/types"
)

// PolicyInfo describes one registry entry.
type PolicyInfo struct {
	// Code is the identifier stored in a grouping's Policy field (e.g. "RD").
	Code string

	// Name is the host-facing display name of the policy.
	Name string

	// Policy is the allocation algorithm.
	Policy types.Policy
}

// Registry maps policy codes to allocation policies.
//
// A registry is immutable after construction: the set of known policies is
// fixed configuration per deployment, not runtime-mutable global state.
type Registry struct {
	entries map[string]PolicyInfo
	codes   []string
}

// NewRegistry creates a registry from the given entries.
//
// Parameters:
//   - entries: Policy entries; codes must be non-empty and unique, policies
//     must be non-nil
//
// Returns:
//   - *Registry: Immutable registry in entry order
//   - error: ErrInvalidConfig (wrapped) for empty codes, duplicates or nil
//     policies
func NewRegistry(entries ...PolicyInfo) (*Registry, error) {
	r := &Registry{
		entries: make(map[string]PolicyInfo, len(entries)),
		codes:   make([]string, 0, len(entries)),
	}
	for _, entry := range entries {
		if entry.Code == "" {
			return nil, fmt.Errorf("%w: policy code must not be empty", ErrInvalidConfig)
		}
		if entry.Policy == nil {
			return nil, fmt.Errorf("%w: policy %q must not be nil", ErrInvalidConfig, entry.Code)
		}
		if _, ok := r.entries[entry.Code]; ok {
			return nil, fmt.Errorf("%w: duplicate policy code %q", ErrInvalidConfig, entry.Code)
		}
		r.entries[entry.Code] = entry
		r.codes = append(r.codes, entry.Code)
	}

	return r, nil
}

// DefaultRegistry returns the registry with the built-in policy catalog:
//
//	RD  Random             seed-deterministic shuffle
//	ID  Identity           order by user key
//	P1  Single Preference  genetic search, 1 preference honored
//	P2  Double Preference  genetic search, 2 preferences honored
//	P3  Triple Preference  genetic search, 3 preferences honored
func DefaultRegistry() *Registry {
	r, err := NewRegistry(
		PolicyInfo{Code: "RD", Name: "Random", Policy: policy.NewRandom()},
		PolicyInfo{Code: "ID", Name: "Identity", Policy: policy.NewIdentity()},
		PolicyInfo{Code: "P1", Name: "Single Preference", Policy: policy.NewPreferred(1)},
		PolicyInfo{Code: "P2", Name: "Double Preference", Policy: policy.NewPreferred(2)},
		PolicyInfo{Code: "P3", Name: "Triple Preference", Policy: policy.NewPreferred(3)},
	)
	if err != nil {
		// The built-in catalog is statically well-formed.
		panic(err)
	}

	return r
}

// Get returns the policy registered under the given code.
//
// Returns:
//   - types.Policy: The allocation policy
//   - error: ErrUnknownPolicy (wrapped with the code) if not registered
func (r *Registry) Get(code string) (types.Policy, error) {
	entry, ok := r.entries[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, code)
	}

	return entry.Policy, nil
}

// Name returns the display name for the given code, or "" if unknown.
func (r *Registry) Name(code string) string {
	return r.entries[code].Name
}

// Codes returns all registered policy codes in registration order.
//
// The returned slice is a copy; mutating it does not affect the registry.
func (r *Registry) Codes() []string {
	codes := make([]string, len(r.codes))
	copy(codes, r.codes)

	return codes
}
