package policy

import (
	"math/rand/v2"

	"github.com/t73fde/grpy/types"
)

// Preferred implements the preference-aware policies "P1", "P2" and "P3".
//
// It runs a genetic search over candidate partitions, rating each candidate
// by how many honored preferences are not co-located: for every participant
// the number of their preferred co-members missing from their group is
// squared and summed over all groups. Lower is better; a rating of 0 means
// every honored preference is satisfied and stops the search early.
//
// Unsatisfiable preferences (dangling user keys, entries beyond the honored
// count) simply cannot contribute to the rating; they never fail a run.
// Ties between equally rated candidates resolve by generation order, which
// is fully determined by the seed.
type Preferred struct {
	maxPreferred int
	cfg          geneticConfig
}

var _ types.Policy = (*Preferred)(nil)

// PreferredOption configures a Preferred policy.
type PreferredOption func(*Preferred)

// NewPreferred creates a preference-aware policy honoring the first
// maxPreferred entries of each participant's preference list.
//
// Parameters:
//   - maxPreferred: Number of leading preference entries to honor
//     (1 for "P1", 2 for "P2", 3 for "P3"; values < 0 count as 0)
//   - opts: Optional search tuning (WithMaxRounds, WithStableRounds,
//     WithMaxPopulation)
//
// Returns:
//   - *Preferred: Initialized preference policy
func NewPreferred(maxPreferred int, opts ...PreferredOption) *Preferred {
	p := &Preferred{
		maxPreferred: max(maxPreferred, 0),
		cfg:          defaultGeneticConfig(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// WithMaxRounds sets the overall round budget of the genetic search.
func WithMaxRounds(rounds int) PreferredOption {
	return func(p *Preferred) {
		p.cfg.maxRounds = rounds
	}
}

// WithStableRounds sets how many rounds without improvement end the search.
func WithStableRounds(rounds int) PreferredOption {
	return func(p *Preferred) {
		p.cfg.maxStableRounds = rounds
	}
}

// WithMaxPopulation caps the population size of the genetic search.
func WithMaxPopulation(size int) PreferredOption {
	return func(p *Preferred) {
		p.cfg.maxPopulation = size
	}
}

// Assign distributes registrations over the planned groups, biasing the
// result toward co-locating preferred participants.
//
// Parameters:
//   - registrations: Registered participants with their preference lists
//   - sizes: Group size targets from the capacity planner; hard upper bounds
//   - seed: Search seed; the same seed reproduces the identical partition
//
// Returns:
//   - [][]types.UserKey: Member lists per planned group
//   - error: ErrSizeMismatch if the targets cannot hold all registrations
func (p *Preferred) Assign(registrations []types.Registration, sizes []int, seed uint64) ([][]types.UserKey, error) {
	users := userKeys(registrations)
	total := 0
	for _, size := range sizes {
		total += size
	}
	if total < len(users) {
		return nil, ErrSizeMismatch
	}
	if len(users) == 0 {
		empty := make([][]types.UserKey, len(sizes))
		for i := range empty {
			empty[i] = []types.UserKey{}
		}

		return empty, nil
	}

	wanted := p.buildWanted(registrations)
	rate := func(g genome) float64 {
		return ratePreferences(g, wanted)
	}

	rng := rand.New(rand.NewPCG(seed, uint64(p.maxPreferred)+1))
	best := geneticSearch(rng, users, sizes, rate, p.cfg)

	return best, nil
}

// buildWanted resolves each participant's honored preferences against the
// registration set. Dangling references are dropped here, which makes them
// unsatisfiable without ever being an error.
func (p *Preferred) buildWanted(registrations []types.Registration) map[types.UserKey]map[types.UserKey]struct{} {
	registered := make(map[types.UserKey]struct{}, len(registrations))
	for _, reg := range registrations {
		registered[reg.UserKey] = struct{}{}
	}

	wanted := make(map[types.UserKey]map[types.UserKey]struct{}, len(registrations))
	for _, reg := range registrations {
		honored := make(map[types.UserKey]struct{})
		for _, pref := range reg.Preferences[:min(p.maxPreferred, len(reg.Preferences))] {
			if pref == reg.UserKey {
				continue
			}
			if _, ok := registered[pref]; ok {
				honored[pref] = struct{}{}
			}
		}
		wanted[reg.UserKey] = honored
	}

	return wanted
}

// ratePreferences sums, over all groups and members, the squared count of a
// member's honored preferences missing from their group.
func ratePreferences(g genome, wanted map[types.UserKey]map[types.UserKey]struct{}) float64 {
	rating := 0.0
	for _, group := range g {
		members := make(map[types.UserKey]struct{}, len(group))
		for _, member := range group {
			members[member] = struct{}{}
		}
		for _, member := range group {
			missing := 0
			for pref := range wanted[member] {
				if _, ok := members[pref]; !ok {
					missing++
				}
			}
			rating += float64(missing * missing)
		}
	}

	return rating
}
