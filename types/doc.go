// Package types contains the shared domain types and contracts of the grpy
// library.
//
// It defines the data model (Grouping, Registration, Group, Partition), the
// grouping lifecycle states, the Policy contract implemented by allocation
// policies, the collaborator interfaces supplied by host applications
// (RegistrationSource, PartitionStore), and the sentinel errors used across
// all components.
//
// The root grpy package re-exports the public pieces via type aliases, so
// most users never import this package directly. Internal packages depend on
// types instead of the root package to avoid import cycles.
package types
