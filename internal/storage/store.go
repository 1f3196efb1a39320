// Package storage persists the survivor roster between runs.
//
// The roster is small and always written whole, so every backend stores a
// single blob or column and replaces it on each save.
package storage

import (
	"context"

	"btd_party/internal/app"
)

// RosterStore loads and saves the full roster
type RosterStore interface {
	// Load returns the saved roster. A roster that was never saved loads as empty.
	Load(ctx context.Context) ([]app.Survivor, error)

	// Save replaces the saved roster
	Save(ctx context.Context, survivors []app.Survivor) error
}
