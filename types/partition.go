package types

import "slices"

// Group is one numbered group of a partition.
type Group struct {
	// Number is the dense, 1-based group number, unique within the
	// grouping's partition.
	Number int `json:"number"`

	// Members are the participants assigned to this group.
	Members []UserKey `json:"members"`
}

// Size returns the number of members in the group.
func (g Group) Size() int {
	return len(g.Members)
}

// Contains reports whether the given participant is a member of the group.
func (g Group) Contains(user UserKey) bool {
	return slices.Contains(g.Members, user)
}

// Partition is the full assignment of a grouping's participants into
// numbered, disjoint groups.
//
// A partition is an immutable value: a new assignment run replaces it
// wholesale, it is never mutated incrementally. At most one partition exists
// per grouping at a time.
type Partition struct {
	// GroupingKey identifies the grouping this partition belongs to.
	GroupingKey GroupingKey `json:"grouping_key"`

	// State is the lifecycle state of the partition (Assigned or Locked;
	// an Unassigned grouping has no partition at all).
	State GroupingState `json:"state"`

	// Groups holds the numbered groups in ascending group-number order.
	Groups []Group `json:"groups"`
}

// GroupCount returns the number of groups in the partition.
func (p *Partition) GroupCount() int {
	if p == nil {
		return 0
	}

	return len(p.Groups)
}

// MemberCount returns the total number of assigned participants.
func (p *Partition) MemberCount() int {
	if p == nil {
		return 0
	}

	count := 0
	for _, g := range p.Groups {
		count += len(g.Members)
	}

	return count
}

// GroupOf returns the group number the given participant is assigned to,
// or 0 if the participant is not part of the partition.
func (p *Partition) GroupOf(user UserKey) int {
	if p == nil {
		return 0
	}

	for _, g := range p.Groups {
		if g.Contains(user) {
			return g.Number
		}
	}

	return 0
}

// Members returns the keys of all assigned participants in group order.
func (p *Partition) Members() []UserKey {
	if p == nil {
		return nil
	}

	members := make([]UserKey, 0, p.MemberCount())
	for _, g := range p.Groups {
		members = append(members, g.Members...)
	}

	return members
}

// Clone returns a deep copy of the partition.
//
// Stores hand out clones so that callers can never mutate persisted state
// in place.
func (p *Partition) Clone() *Partition {
	if p == nil {
		return nil
	}

	clone := &Partition{
		GroupingKey: p.GroupingKey,
		State:       p.State,
		Groups:      make([]Group, len(p.Groups)),
	}
	for i, g := range p.Groups {
		clone.Groups[i] = Group{
			Number:  g.Number,
			Members: slices.Clone(g.Members),
		}
	}

	return clone
}
