// Package grpy provides the group-assignment engine of the grpy user
// grouping system: it partitions the registered participants of a grouping
// into numbered, capacity-bounded groups under a selectable allocation
// policy.
//
// The engine is a pure, synchronous computation. Web UI, authentication and
// SQL persistence are the host application's concern; the library consumes
// plain groupings and registrations and produces plain partitions.
//
// # Quick Start
//
// The Engine works on explicit snapshots and never touches storage:
//
//	engine := grpy.NewEngine()
//
//	snap, err := engine.Assign(grpy.Snapshot{}, grouping, registrations, seed)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// snap.State == grpy.StateAssigned, snap.Partition holds the groups
//
// The Manager adds the host-side plumbing: it loads the grouping and its
// registrations from a RegistrationSource, persists partitions in a
// PartitionStore, and serializes operations per grouping:
//
//	src := source.NewStatic([]grpy.Grouping{grouping}, registrations)
//	mgr, err := grpy.NewManager(nil, src, memory.NewStore())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	partition, err := mgr.Assign(ctx, grouping.Key, seed)
//
// # Lifecycle
//
// Groupings progress through a small state machine:
//
//	Unassigned → Assigned ⇄ Locked
//
// Assign replaces any prior partition wholesale, RemoveGroups returns the
// grouping to Unassigned, and LockReservations/UnlockReservations toggle
// whether reserve seats are released for manual filling. Invalid transitions
// fail with ErrInvalidState and mutate nothing.
//
// # Policies
//
// Allocation policies are selected by code ("RD", "ID", "P1", "P2", "P3")
// through an immutable Registry built at startup. All policies are
// deterministic for a fixed seed, enabling reproducible previews. See the
// policy package for the catalog and the contract for custom policies.
package grpy
