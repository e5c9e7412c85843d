package types

// Policy calculates a group partition for a set of registrations.
//
// Policies implement different allocation algorithms:
//   - Random: seed-deterministic shuffle, no preference handling
//   - Identity: stable ordering by user key
//   - Preferred: genetic search honoring co-member preferences
//
// The assignment engine calls Assign once per assignment run, after the
// capacity planner has produced the group size targets.
//
// Policy implementations must:
//   - Place every registered participant into exactly one group
//   - Treat each target size as a hard upper bound, never exceeded
//   - Be deterministic: the same registrations, sizes and seed must yield
//     the same result (enables reproducible tests and preview-before-commit)
//   - Treat unsatisfiable preferences (dangling keys, full groups) as a
//     fallback situation, never as an error
//   - Be stateless (no side effects between calls)
type Policy interface {
	// Assign distributes the registered participants over the planned groups.
	//
	// Parameters:
	//   - registrations: Registered participants with their preferences
	//   - sizes: Target size per group, ascending group-number order;
	//     hard upper bounds produced by the capacity planner
	//   - seed: Caller-supplied seed; all randomness must derive from it
	//
	// Returns:
	//   - [][]UserKey: Member lists, one per planned group, index i holding
	//     the members of group number i+1
	//   - error: Assignment error; policies must not fail for preference
	//     reasons, only for violated preconditions
	Assign(registrations []Registration, sizes []int, seed uint64) ([][]UserKey, error)
}
