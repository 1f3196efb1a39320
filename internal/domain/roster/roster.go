package roster

import (
	"errors"
	"fmt"
	"sort"

	"btd_party/internal/app"
)

// ErrIndexOutOfRange is returned when removing a position the roster does not have
var ErrIndexOutOfRange = errors.New("survivor index out of range")

// SortDescending returns a new slice with survivors ordered by attack, highest first.
// Survivors with equal attack keep their relative order.
// Pure function: Does not modify input slice, returns new sorted slice
func SortDescending(survivors []app.Survivor) []app.Survivor {
	sorted := make([]app.Survivor, len(survivors))
	copy(sorted, survivors)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Attack > sorted[j].Attack
	})

	return sorted
}

// IsSortedDescending reports whether survivors are ordered highest attack first
func IsSortedDescending(survivors []app.Survivor) bool {
	return sort.SliceIsSorted(survivors, func(i, j int) bool {
		return survivors[i].Attack > survivors[j].Attack
	})
}

// Add returns a new roster with a survivor of the given attack added.
// A zero attack is not a survivor; the roster comes back unchanged and false.
func Add(survivors []app.Survivor, attack int) ([]app.Survivor, bool) {
	if attack == 0 {
		return SortDescending(survivors), false
	}

	next := make([]app.Survivor, 0, len(survivors)+1)
	next = append(next, survivors...)
	next = append(next, app.Survivor{Attack: attack})

	return SortDescending(next), true
}

// Remove returns a new roster without the survivor at index
func Remove(survivors []app.Survivor, index int) ([]app.Survivor, error) {
	if index < 0 || index >= len(survivors) {
		return nil, fmt.Errorf("remove survivor %d of %d: %w", index, len(survivors), ErrIndexOutOfRange)
	}

	next := make([]app.Survivor, 0, len(survivors)-1)
	next = append(next, survivors[:index]...)
	next = append(next, survivors[index+1:]...)

	return SortDescending(next), nil
}

// TotalAttack sums the attack of the whole roster
func TotalAttack(survivors []app.Survivor) int {
	total := 0
	for _, survivor := range survivors {
		total += survivor.Attack
	}
	return total
}
