package policy

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/t73fde/grpy/types"
)

// genome is one candidate partition: one member list per planned group.
type genome [][]types.UserKey

// ratingFunc rates a genome. Lower is better, 0 is a perfect fit.
type ratingFunc func(genome) float64

// ratedGenome pairs a genome with its rating.
type ratedGenome struct {
	rating float64
	genome genome
}

// geneticConfig bounds the genetic search.
//
// The search stops on round counts only; a wall-clock bound would make the
// result depend on machine speed and break seed determinism.
type geneticConfig struct {
	// maxRounds is the overall round budget.
	maxRounds int

	// maxStableRounds stops the search after this many rounds without
	// improvement of the best rating.
	maxStableRounds int

	// maxPopulation caps the population size.
	maxPopulation int
}

func defaultGeneticConfig() geneticConfig {
	return geneticConfig{
		maxRounds:       500,
		maxStableRounds: 50,
		maxPopulation:   100,
	}
}

// stopStrategy decides when the search ends.
type stopStrategy struct {
	maxRounds       int
	maxStableRounds int

	bestRating   float64
	stableRounds int
	rounds       int
}

func newStopStrategy(cfg geneticConfig) *stopStrategy {
	return &stopStrategy{
		maxRounds:       cfg.maxRounds,
		maxStableRounds: cfg.maxStableRounds,
		bestRating:      math.Inf(1),
	}
}

// shouldContinue reports whether another round is worth running, given the
// current best rating.
func (s *stopStrategy) shouldContinue(rating float64) bool {
	s.rounds++
	if s.rounds >= s.maxRounds {
		return false
	}
	if rating == 0 {
		return false
	}
	if rating < s.bestRating {
		s.bestRating = rating
		s.stableRounds = 0
	} else {
		s.stableRounds++
		if s.stableRounds > s.maxStableRounds {
			return false
		}
	}

	return true
}

// buildGenome slices the user list into groups of the given sizes.
func buildGenome(users []types.UserKey, sizes []int) genome {
	g := make(genome, len(sizes))
	pos := 0
	for i, size := range sizes {
		g[i] = slices.Clone(users[pos : pos+size])
		pos += size
	}

	return g
}

func genomesEqual(a, b genome) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !slices.Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}

// flattenPrefix returns the first count members of the genome in group order.
func flattenPrefix(g genome, count int) []types.UserKey {
	users := make([]types.UserKey, 0, count)
	for _, group := range g {
		for _, member := range group {
			if len(users) >= count {
				return users
			}
			users = append(users, member)
		}
	}

	return users
}

// flattenExcluding returns all members of the genome that are not in skip,
// in group order.
func flattenExcluding(g genome, skip map[types.UserKey]struct{}) []types.UserKey {
	var users []types.UserKey
	for _, group := range g {
		for _, member := range group {
			if _, ok := skip[member]; !ok {
				users = append(users, member)
			}
		}
	}

	return users
}

// crossoverGenomes combines two genomes into a child: a random-length prefix
// of the first parent, completed with the remaining members in the second
// parent's order, re-sliced to the first parent's group sizes.
//
// Returns false when the parents are identical or too small to recombine.
func crossoverGenomes(rng *rand.Rand, first, second genome, userCount int) (genome, bool) {
	if userCount < 2 || len(first) < 2 || genomesEqual(first, second) {
		return nil, false
	}

	splitPos := rng.IntN(userCount-1) + 1
	users := flattenPrefix(first, splitPos)
	taken := make(map[types.UserKey]struct{}, len(users))
	for _, member := range users {
		taken[member] = struct{}{}
	}
	users = append(users, flattenExcluding(second, taken)...)

	sizes := make([]int, len(first))
	for i, group := range first {
		sizes[i] = len(group)
	}

	return buildGenome(users, sizes), true
}

// mutateGenome returns a copy of the genome with one member of one group
// swapped against one member of another group.
//
// Empty groups cannot take part in a swap; a genome with fewer than two
// occupied groups is returned unchanged.
func mutateGenome(rng *rand.Rand, g genome) genome {
	occupied := make([]int, 0, len(g))
	for i, group := range g {
		if len(group) > 0 {
			occupied = append(occupied, i)
		}
	}
	if len(occupied) < 2 {
		return g
	}

	idxA := rng.IntN(len(occupied))
	idxB := rng.IntN(len(occupied))
	if idxA == idxB {
		idxB = (idxA + 1) % len(occupied)
	}
	groupA, groupB := occupied[idxA], occupied[idxB]

	posA := rng.IntN(len(g[groupA]))
	posB := rng.IntN(len(g[groupB]))

	mutated := make(genome, len(g))
	for i, group := range g {
		switch i {
		case groupA, groupB:
			mutated[i] = slices.Clone(group)
		default:
			mutated[i] = group
		}
	}
	mutated[groupA][posA], mutated[groupB][posB] = mutated[groupB][posB], mutated[groupA][posA]

	return mutated
}

// buildInitialPopulation creates rated genomes from shuffled user orders,
// sorted best-first.
func buildInitialPopulation(
	rng *rand.Rand,
	size int,
	users []types.UserKey,
	sizes []int,
	rate ratingFunc,
) []ratedGenome {
	order := slices.Clone(users)
	population := make([]ratedGenome, 0, size)
	for range size {
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		g := buildGenome(order, sizes)
		population = append(population, ratedGenome{rating: rate(g), genome: g})
	}
	sortPopulation(population)

	return population
}

func sortPopulation(population []ratedGenome) {
	slices.SortStableFunc(population, func(a, b ratedGenome) int {
		switch {
		case a.rating < b.rating:
			return -1
		case a.rating > b.rating:
			return 1
		default:
			return 0
		}
	})
}

// reducePopulation shrinks the population back to size via random pairwise
// tournaments, keeping the better genome of each pair. This preserves more
// diversity than plain truncation.
func reducePopulation(rng *rand.Rand, population []ratedGenome, size int) []ratedGenome {
	for len(population) > size {
		posA := rng.IntN(len(population))
		posB := rng.IntN(len(population))
		if posA == posB {
			continue
		}

		drop := posB
		if population[posA].rating >= population[posB].rating {
			drop = posA
		}
		population = slices.Delete(population, drop, drop+1)
	}

	return population
}

// effectiveSizes caps the planned sizes at the available user count. The
// targets are hard upper bounds, not exact fills: when they carry slack,
// groups fill in ascending order and trailing slack collapses to zero-size
// groups, matching how fillGroups leaves trailing seats empty.
func effectiveSizes(sizes []int, userCount int) []int {
	effective := make([]int, len(sizes))
	remaining := userCount
	for i, size := range sizes {
		effective[i] = min(size, remaining)
		remaining -= effective[i]
	}

	return effective
}

// trivialGenome covers the degenerate case of fewer than two groups: all
// users land in the first group, remaining groups stay empty.
func trivialGenome(users []types.UserKey, numGroups int) genome {
	g := make(genome, max(numGroups, 1))
	g[0] = slices.Clone(users)
	for i := 1; i < len(g); i++ {
		g[i] = []types.UserKey{}
	}

	return g
}

// geneticSearch runs the genetic algorithm: it evolves a population of
// candidate partitions through crossover and mutation until the rating stops
// improving or the round budget is spent, and returns the best genome found.
//
// All randomness flows through rng, so the result is a pure function of
// (users, sizes, rate, cfg, rng seed).
func geneticSearch(
	rng *rand.Rand,
	users []types.UserKey,
	sizes []int,
	rate ratingFunc,
	cfg geneticConfig,
) genome {
	numGroups := len(sizes)
	sizes = effectiveSizes(sizes, len(users))
	for len(sizes) > 0 && sizes[len(sizes)-1] < 1 {
		sizes = sizes[:len(sizes)-1]
	}
	if len(sizes) < 2 {
		return trivialGenome(users, numGroups)
	}

	populationSize := min(cfg.maxPopulation, len(sizes)*len(users)*2)
	population := buildInitialPopulation(rng, populationSize, users, sizes, rate)

	numCrossover := len(users)
	numMutation := len(users) + populationSize

	stop := newStopStrategy(cfg)
	for stop.shouldContinue(population[0].rating) {
		for range numCrossover {
			parentA := population[rng.IntN(len(population))]
			parentB := population[rng.IntN(len(population))]
			if child, ok := crossoverGenomes(rng, parentA.genome, parentB.genome, len(users)); ok {
				population = append(population, ratedGenome{rating: rate(child), genome: child})
			}
		}

		for range numMutation {
			parent := population[rng.IntN(len(population))]
			mutated := mutateGenome(rng, parent.genome)
			population = append(population, ratedGenome{rating: rate(mutated), genome: mutated})
		}

		population = reducePopulation(rng, population, populationSize)
		sortPopulation(population)
	}

	best := population[0].genome
	for len(best) < numGroups {
		best = append(best, []types.UserKey{})
	}

	return best
}
