package party

import (
	"sort"

	"btd_party/internal/app"
)

// MaxPartySize is the largest party that may attack together
const MaxPartySize = 5

// Result is the winning party and its combined attack
type Result struct {
	Party  []app.Survivor
	Attack int
}

// FindBestParty returns the party with the smallest combined attack that
// still exceeds threshold. The boolean is false when no party of up to
// MaxPartySize survivors can beat the threshold.
//
// The roster is expected to be sorted by attack, highest first.
// Pure function: the search state is local to this call.
func FindBestParty(roster []app.Survivor, threshold int) (Result, bool) {
	found := FindQualifyingParties(roster, threshold)
	if len(found) == 0 {
		return Result{}, false
	}

	best := 0
	first := true
	for sum := range found {
		if first || sum < best {
			best = sum
			first = false
		}
	}

	return Result{Party: found[best], Attack: best}, true
}

// FindQualifyingParties returns every distinct qualifying sum reached by the
// search, mapped to the first party that reached it.
func FindQualifyingParties(roster []app.Survivor, threshold int) map[int][]app.Survivor {
	found := make(map[int][]app.Survivor)
	search(nil, roster, threshold, found)
	return found
}

// search extends current with each survivor of pool in turn. A party whose
// sum beats threshold for the first time is recorded and not extended;
// anything else keeps growing until it holds MaxPartySize survivors.
// After the survivor at index i is tried, the pool handed down is pool[i+1:].
func search(current, pool []app.Survivor, threshold int, found map[int][]app.Survivor) {
	if len(current) >= MaxPartySize {
		return
	}

	remaining := pool
	for _, survivor := range pool {
		next := make([]app.Survivor, len(current), len(current)+1)
		copy(next, current)
		next = append(next, survivor)
		remaining = remaining[1:]

		sum := SumAttack(next)
		if _, recorded := found[sum]; sum > threshold && !recorded {
			found[sum] = next
		} else if len(next) < MaxPartySize {
			search(next, remaining, threshold, found)
		}
	}
}

// SumAttack totals the attack of every survivor in the party
func SumAttack(party []app.Survivor) int {
	total := 0
	for _, survivor := range party {
		total += survivor.Attack
	}
	return total
}

// SortedSums returns the keys of a qualifying-party map in ascending order
func SortedSums(found map[int][]app.Survivor) []int {
	sums := make([]int, 0, len(found))
	for sum := range found {
		sums = append(sums, sum)
	}
	sort.Ints(sums)
	return sums
}
