package types

// GroupingState represents the assignment lifecycle state of a grouping.
//
// States follow a small state machine:
//
//	StateUnassigned → StateAssigned ⇄ StateLocked
//	StateAssigned/StateLocked → StateUnassigned (remove groups)
//
// Assigning is valid from StateUnassigned and StateAssigned (a re-run
// replaces the prior partition wholesale). Locking reservations is valid
// only from StateAssigned, unlocking only from StateLocked. No other
// transitions exist.
type GroupingState int

const (
	// StateUnassigned indicates no partition exists (never assigned, or
	// explicitly cleared).
	StateUnassigned GroupingState = iota

	// StateAssigned indicates a partition exists and reserve seats are
	// still held back.
	StateAssigned

	// StateLocked indicates a partition exists and its reserve seats are
	// released for manual filling by the host.
	StateLocked
)

// String returns the string representation of the state.
func (s GroupingState) String() string {
	switch s {
	case StateUnassigned:
		return "Unassigned"
	case StateAssigned:
		return "Assigned"
	case StateLocked:
		return "Locked"
	default:
		return "Unknown"
	}
}
