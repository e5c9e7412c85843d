package grpy

import "github.com/t73fde/grpy/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing subpackages
// (policy, source, store) to depend on `types` without depending on the root
// `grpy` package, while still providing convenient `grpy.Grouping`,
// `grpy.Partition`, etc. for users.
type (
	GroupingKey   = types.GroupingKey
	UserKey       = types.UserKey
	Grouping      = types.Grouping
	Registration  = types.Registration
	Group         = types.Group
	Partition     = types.Partition
	GroupingState = types.GroupingState
)

// Re-export interfaces from the types subpackage for convenience.
type (
	Policy             = types.Policy
	RegistrationSource = types.RegistrationSource
	PartitionStore     = types.PartitionStore
	MetricsCollector   = types.MetricsCollector
	Logger             = types.Logger
)

// Re-export GroupingState constants from the types subpackage.
const (
	StateUnassigned = types.StateUnassigned
	StateAssigned   = types.StateAssigned
	StateLocked     = types.StateLocked
)
