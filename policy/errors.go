package policy

import "errors"

// ErrSizeMismatch is returned when the planned group sizes cannot hold all
// registrations. The capacity planner never produces such targets; seeing
// this error means the caller bypassed the planner.
var ErrSizeMismatch = errors.New("planned group sizes do not cover all registrations")
