package service

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"sync"
	"testing"

	"btd_party/internal/app"
	"btd_party/internal/domain/roster"
)

// memoryStore is an in-memory RosterStore that counts saves
type memoryStore struct {
	mu        sync.Mutex
	survivors []app.Survivor
	saves     int
	loadErr   error
	saveErr   error
}

func (m *memoryStore) Load(ctx context.Context) ([]app.Survivor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]app.Survivor(nil), m.survivors...), nil
}

func (m *memoryStore) Save(ctx context.Context, survivors []app.Survivor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.survivors = append([]app.Survivor(nil), survivors...)
	return nil
}

func survivors(attacks ...int) []app.Survivor {
	out := make([]app.Survivor, len(attacks))
	for i, attack := range attacks {
		out[i] = app.Survivor{Attack: attack}
	}
	return out
}

func newService(t *testing.T, store *memoryStore) *RosterService {
	t.Helper()
	svc, err := NewRosterService(context.Background(), store)
	if err != nil {
		t.Fatalf("Expected no error creating service, got %v", err)
	}
	return svc
}

func TestNewRosterService(t *testing.T) {
	t.Run("SortsLoadedRoster", func(t *testing.T) {
		svc := newService(t, &memoryStore{survivors: survivors(2, 10, 6)})

		if !reflect.DeepEqual(svc.List(), survivors(10, 6, 2)) {
			t.Errorf("Expected [10 6 2], got %v", svc.List())
		}
	})

	t.Run("LoadError", func(t *testing.T) {
		_, err := NewRosterService(context.Background(), &memoryStore{loadErr: errors.New("disk gone")})

		if err == nil {
			t.Fatal("Expected error, got nil")
		}
	})
}

func TestAddSurvivor(t *testing.T) {
	ctx := context.Background()

	t.Run("NormalizesAndPersists", func(t *testing.T) {
		store := &memoryStore{survivors: survivors(500)}
		svc := newService(t, store)

		result, err := svc.AddSurvivor(ctx, "1,200")

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if !reflect.DeepEqual(result, survivors(1200, 500)) {
			t.Errorf("Expected [1200 500], got %v", result)
		}

		if store.saves != 1 || !reflect.DeepEqual(store.survivors, survivors(1200, 500)) {
			t.Errorf("Expected roster saved once, got %d saves of %v", store.saves, store.survivors)
		}
	})

	t.Run("RejectsNonNumeric", func(t *testing.T) {
		store := &memoryStore{}
		svc := newService(t, store)

		_, err := svc.AddSurvivor(ctx, "abc")

		if !errors.Is(err, ErrInvalidAttack) {
			t.Errorf("Expected ErrInvalidAttack, got %v", err)
		}

		if store.saves != 0 {
			t.Errorf("Expected no save, got %d", store.saves)
		}
	})

	t.Run("SaveFailureKeepsRoster", func(t *testing.T) {
		store := &memoryStore{survivors: survivors(3)}
		svc := newService(t, store)
		store.saveErr = errors.New("read-only")

		_, err := svc.AddSurvivor(ctx, "9")

		if err == nil {
			t.Fatal("Expected error, got nil")
		}

		if !reflect.DeepEqual(svc.List(), survivors(3)) {
			t.Errorf("Expected roster unchanged after failed save, got %v", svc.List())
		}
	})
}

func TestRemoveSurvivor(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{survivors: survivors(10, 8, 6)}
	svc := newService(t, store)

	result, err := svc.RemoveSurvivor(ctx, 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !reflect.DeepEqual(result, survivors(10, 6)) {
		t.Errorf("Expected [10 6], got %v", result)
	}

	_, err = svc.RemoveSurvivor(ctx, 5)
	if !errors.Is(err, roster.ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}

	if store.saves != 1 {
		t.Errorf("Expected one save, got %d", store.saves)
	}
}

func TestClear(t *testing.T) {
	store := &memoryStore{survivors: survivors(4, 2)}
	svc := newService(t, store)

	if err := svc.Clear(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(svc.List()) != 0 || len(store.survivors) != 0 {
		t.Errorf("Expected empty roster, got %v / %v", svc.List(), store.survivors)
	}
}

func TestCalculateParty(t *testing.T) {
	svc := newService(t, &memoryStore{survivors: survivors(10, 8, 6, 4, 2)})

	testCases := []struct {
		name     string
		defense  string
		expected app.PartyReport
	}{
		{"BestParty", "15", app.PartyReport{Defense: 15, Found: true, PartyAttack: 16, Survivors: survivors(10, 6)}},
		{"ThousandsMarkers", "0,015", app.PartyReport{Defense: 15, Found: true, PartyAttack: 16, Survivors: survivors(10, 6)}},
		{"NonNumericIsZero", "abc", app.PartyReport{Defense: 0, Found: true, PartyAttack: 2, Survivors: survivors(2)}},
		{"Unbeatable", "30", app.PartyReport{Defense: 30}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			report := svc.CalculateParty(tc.defense)

			if !reflect.DeepEqual(report, tc.expected) {
				t.Errorf("Expected %+v, got %+v", tc.expected, report)
			}
		})
	}
}

func TestQualifyingParties(t *testing.T) {
	svc := newService(t, &memoryStore{survivors: survivors(10, 8, 6, 4, 2)})

	defense, parties := svc.QualifyingParties("15")

	if defense != 15 {
		t.Errorf("Expected defense 15, got %d", defense)
	}

	sums := make([]int, len(parties))
	for i, p := range parties {
		sums[i] = p.PartyAttack
	}

	if !reflect.DeepEqual(sums, []int{16, 18, 20}) {
		t.Errorf("Expected sums [16 18 20], got %v", sums)
	}
}

func TestConcurrentAddAndCalculate(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{}
	svc := newService(t, store)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(2)
		go func(attack int) {
			defer wg.Done()
			if _, err := svc.AddSurvivor(ctx, strconv.Itoa(attack)); err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		}(i)
		go func() {
			defer wg.Done()
			svc.CalculateParty("50")
		}()
	}
	wg.Wait()

	if len(svc.List()) != 20 {
		t.Errorf("Expected 20 survivors, got %d", len(svc.List()))
	}

	if !roster.IsSortedDescending(svc.List()) {
		t.Errorf("Expected roster sorted highest first, got %v", svc.List())
	}
}
