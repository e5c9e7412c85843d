package types

import (
	"fmt"
	"time"
)

// GroupingKey uniquely identifies a grouping (a hosted event whose
// participants are split into groups).
type GroupingKey string

// UserKey uniquely identifies a participant.
type UserKey string

// Grouping holds the host-configured parameters of one grouping.
//
// The capacity parameters (MaxGroupSize, MemberReserve) and the policy code
// are read by the assignment engine. The lifecycle dates ride along for the
// host application; the engine itself never reads clocks, it is the host's
// decision when an assignment run is permitted.
type Grouping struct {
	// Key uniquely identifies the grouping.
	Key GroupingKey `json:"key"`

	// Name is the host-facing title of the grouping.
	Name string `json:"name"`

	// BeginDate is when participant registration opens.
	BeginDate time.Time `json:"begin_date"`

	// FinalDate is when registration closes; assignment is meant to run
	// after this date has passed.
	FinalDate time.Time `json:"final_date"`

	// CloseDate is when the grouping is archived (nil if never).
	CloseDate *time.Time `json:"close_date,omitempty"`

	// MaxGroupSize is the hard upper bound on group size (>= 1).
	MaxGroupSize int `json:"max_group_size"`

	// MemberReserve is the number of seats per group deliberately left
	// empty for later manual additions (>= 0, < MaxGroupSize).
	MemberReserve int `json:"member_reserve"`

	// Policy selects the allocation policy by its registry code (e.g. "RD").
	Policy string `json:"policy"`
}

// Validate checks the capacity parameters and date ordering.
//
// Returns:
//   - error: ErrInvalidConfig (wrapped with detail) if any constraint is
//     violated, nil otherwise
func (g Grouping) Validate() error {
	if g.Key == "" {
		return fmt.Errorf("%w: grouping key must not be empty", ErrInvalidConfig)
	}
	if g.MaxGroupSize < 1 {
		return fmt.Errorf("%w: max group size must be >= 1, got %d", ErrInvalidConfig, g.MaxGroupSize)
	}
	if g.MemberReserve < 0 {
		return fmt.Errorf("%w: member reserve must be >= 0, got %d", ErrInvalidConfig, g.MemberReserve)
	}
	if g.MemberReserve >= g.MaxGroupSize {
		return fmt.Errorf("%w: member reserve %d must be smaller than max group size %d",
			ErrInvalidConfig, g.MemberReserve, g.MaxGroupSize)
	}
	if g.Policy == "" {
		return fmt.Errorf("%w: policy code must not be empty", ErrInvalidConfig)
	}
	if !g.BeginDate.IsZero() && !g.FinalDate.IsZero() && !g.BeginDate.Before(g.FinalDate) {
		return fmt.Errorf("%w: begin date must be before final date", ErrInvalidConfig)
	}
	if g.CloseDate != nil && g.CloseDate.Before(g.FinalDate) {
		return fmt.Errorf("%w: close date must not be before final date", ErrInvalidConfig)
	}

	return nil
}

// Registration is a participant's enrollment in a grouping.
//
// Registrations are created by participants and immutable to the engine;
// the engine only reads them.
type Registration struct {
	// GroupingKey identifies the grouping the participant enrolled in.
	GroupingKey GroupingKey `json:"grouping_key"`

	// UserKey identifies the participant.
	UserKey UserKey `json:"user_key"`

	// Preferences lists the keys of other participants this participant
	// wants to be grouped with, most-preferred first. The list may be empty
	// and may contain keys without a matching registration (dangling);
	// dangling entries are unsatisfiable but never an error.
	Preferences []UserKey `json:"preferences,omitempty"`
}
