package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"btd_party/internal/app"
	"btd_party/internal/domain/input"
	"btd_party/internal/domain/party"
	"btd_party/internal/domain/roster"
	"btd_party/internal/storage"
)

// ErrInvalidAttack is returned when added text does not normalize to an attack value
var ErrInvalidAttack = errors.New("attack value must be a non-zero number")

// RosterService owns the survivor roster for the lifetime of the process.
// The roster is loaded once, kept sorted highest attack first, and saved
// after every change.
type RosterService struct {
	store storage.RosterStore

	mu        sync.RWMutex
	survivors []app.Survivor
}

// NewRosterService loads the saved roster from store
func NewRosterService(ctx context.Context, store storage.RosterStore) (*RosterService, error) {
	survivors, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	log.Debug().Int("survivors", len(survivors)).Msg("Loaded roster")

	return &RosterService{
		store:     store,
		survivors: roster.SortDescending(survivors),
	}, nil
}

// List returns a copy of the roster
func (s *RosterService) List() []app.Survivor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// AddSurvivor normalizes raw (e.g. "1,200") and adds a survivor with that attack
func (s *RosterService) AddSurvivor(ctx context.Context, raw string) ([]app.Survivor, error) {
	attack := input.ParseValue(raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	next, added := roster.Add(s.survivors, attack)
	if !added {
		return s.snapshot(), fmt.Errorf("add survivor %q: %w", raw, ErrInvalidAttack)
	}

	if err := s.commit(ctx, next); err != nil {
		return s.snapshot(), err
	}

	log.Debug().Int("attack", attack).Int("survivors", len(next)).Msg("Added survivor")
	return s.snapshot(), nil
}

// RemoveSurvivor removes the survivor at index in the current roster order
func (s *RosterService) RemoveSurvivor(ctx context.Context, index int) ([]app.Survivor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := roster.Remove(s.survivors, index)
	if err != nil {
		return s.snapshot(), err
	}

	if err := s.commit(ctx, next); err != nil {
		return s.snapshot(), err
	}

	log.Debug().Int("index", index).Int("survivors", len(next)).Msg("Removed survivor")
	return s.snapshot(), nil
}

// Clear removes every survivor
func (s *RosterService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commit(ctx, []app.Survivor{})
}

// CalculateParty normalizes rawDefense and finds the weakest party that beats it
func (s *RosterService) CalculateParty(rawDefense string) app.PartyReport {
	defense := input.ParseValue(rawDefense)
	report := app.PartyReport{Defense: defense}

	result, found := party.FindBestParty(s.List(), defense)
	if found {
		report.Found = true
		report.PartyAttack = result.Attack
		report.Survivors = result.Party
	}

	log.Debug().
		Int("defense", defense).
		Bool("found", found).
		Int("party_attack", report.PartyAttack).
		Msg("Calculated party")

	return report
}

// QualifyingParties lists every distinct qualifying sum against rawDefense,
// weakest first, with the first party found for each.
func (s *RosterService) QualifyingParties(rawDefense string) (int, []app.QualifyingParty) {
	defense := input.ParseValue(rawDefense)
	found := party.FindQualifyingParties(s.List(), defense)

	parties := make([]app.QualifyingParty, 0, len(found))
	for _, sum := range party.SortedSums(found) {
		parties = append(parties, app.QualifyingParty{PartyAttack: sum, Survivors: found[sum]})
	}
	return defense, parties
}

// commit saves next and only then makes it the current roster. Callers hold mu.
func (s *RosterService) commit(ctx context.Context, next []app.Survivor) error {
	if err := s.store.Save(ctx, next); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	s.survivors = next
	return nil
}

// snapshot copies the roster. Callers hold mu.
func (s *RosterService) snapshot() []app.Survivor {
	out := make([]app.Survivor, len(s.survivors))
	copy(out, s.survivors)
	return out
}
