// Package policy provides the built-in allocation policies for the grpy
// assignment engine.
//
// Each policy implements the types.Policy contract: it receives the
// registration set and the capacity planner's group size targets and returns
// one member list per group, never exceeding a target. All policies are pure
// functions of (registrations, sizes, seed), so re-running an assignment
// with the same seed reproduces the identical partition.
//
// Available policies:
//   - Random ("RD"): seed-keyed shuffle, ignores preferences
//   - Identity ("ID"): stable ordering by user key, ignores preferences
//   - Preferred ("P1"/"P2"/"P3"): genetic search that co-locates preferred
//     participants, honoring the first 1, 2 or 3 preference entries
//
// The registry in the root package wires these to their policy codes.
package policy
