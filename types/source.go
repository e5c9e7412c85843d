package types

import "context"

// RegistrationSource supplies the engine's input snapshot: the grouping's
// capacity parameters and its registration set.
//
// Host applications back this with their persistence layer (typically SQL
// rows). The source package provides a fixed in-memory implementation for
// tests and simple deployments.
//
// Implementations must return stable snapshots: the registration order
// returned by ListRegistrations, combined with the caller's seed, determines
// the assignment result.
type RegistrationSource interface {
	// Grouping returns the grouping identified by key.
	//
	// Returns:
	//   - Grouping: The grouping's configured parameters
	//   - error: ErrGroupingNotFound (wrapped) if the grouping does not
	//     exist, any other non-nil error if loading failed
	Grouping(ctx context.Context, key GroupingKey) (Grouping, error)

	// ListRegistrations returns the registrations of the grouping in a
	// stable order.
	//
	// Returns:
	//   - []Registration: Registered participants (possibly empty)
	//   - error: Non-nil if loading failed
	ListRegistrations(ctx context.Context, key GroupingKey) ([]Registration, error)
}
