package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"btd_party/internal/app"
	"btd_party/internal/domain/roster"
	"btd_party/internal/service"
)

type memoryStore struct {
	survivors []app.Survivor
}

func (m *memoryStore) Load(ctx context.Context) ([]app.Survivor, error) {
	return append([]app.Survivor(nil), m.survivors...), nil
}

func (m *memoryStore) Save(ctx context.Context, survivors []app.Survivor) error {
	m.survivors = append([]app.Survivor(nil), survivors...)
	return nil
}

func newRoster(t *testing.T, attacks ...int) (*service.RosterService, *memoryStore) {
	t.Helper()
	store := &memoryStore{}
	for _, a := range attacks {
		store.survivors = append(store.survivors, app.Survivor{Attack: a})
	}
	svc, err := service.NewRosterService(context.Background(), store)
	if err != nil {
		t.Fatalf("Expected no error creating roster, got %v", err)
	}
	return svc, store
}

func TestRunCommandOutput(t *testing.T) {
	testCases := []struct {
		name     string
		roster   []int
		args     []string
		expected string
	}{
		{
			name:     "list",
			roster:   []int{10, 8},
			args:     []string{"list"},
			expected: "0: 10\n1: 8\nTotal attack: 18\n",
		},
		{
			name:     "list empty",
			args:     []string{"list"},
			expected: "roster is empty\n",
		},
		{
			name:     "add normalizes thousands",
			roster:   []int{10},
			args:     []string{"add", "1,200"},
			expected: "0: 1200\n1: 10\nTotal attack: 1210\n",
		},
		{
			name:     "remove",
			roster:   []int{10, 8, 6},
			args:     []string{"remove", "0"},
			expected: "0: 8\n1: 6\nTotal attack: 14\n",
		},
		{
			name:     "clear",
			roster:   []int{3},
			args:     []string{"clear"},
			expected: "roster cleared\n",
		},
		{
			name:     "party",
			roster:   []int{10, 8, 6, 4, 2},
			args:     []string{"party", "15"},
			expected: "Defense: 15\nParty attack: 16\nSurvivors: 10, 6\n",
		},
		{
			name:     "party not found",
			roster:   []int{3, 2},
			args:     []string{"party", "1.000"},
			expected: "no party can beat defense 1000\n",
		},
		{
			name:     "parties",
			roster:   []int{10, 8, 6, 4, 2},
			args:     []string{"parties", "15"},
			expected: "Defense: 15\n16: 10, 6\n18: 10, 8\n20: 8, 6, 4, 2\n",
		},
		{
			name:     "parties not found",
			args:     []string{"parties", "5"},
			expected: "no party can beat defense 5\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newRoster(t, tc.roster...)
			var out bytes.Buffer

			if err := runCommand(context.Background(), svc, tc.args, &out); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if out.String() != tc.expected {
				t.Errorf("Expected output %q, got %q", tc.expected, out.String())
			}
		})
	}
}

func TestRunCommandPersists(t *testing.T) {
	svc, store := newRoster(t)
	var out bytes.Buffer

	if err := runCommand(context.Background(), svc, []string{"add", "7"}, &out); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(store.survivors) != 1 || store.survivors[0].Attack != 7 {
		t.Errorf("Expected store to hold [7], got %v", store.survivors)
	}
}

func TestRunCommandErrors(t *testing.T) {
	testCases := []struct {
		name   string
		args   []string
		target error
	}{
		{"no command", nil, errUsage},
		{"unknown command", []string{"explode"}, errUsage},
		{"add without value", []string{"add"}, errUsage},
		{"party without defense", []string{"party"}, errUsage},
		{"add zero", []string{"add", "0"}, service.ErrInvalidAttack},
		{"remove out of range", []string{"remove", "3"}, roster.ErrIndexOutOfRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newRoster(t, 5)
			err := runCommand(context.Background(), svc, tc.args, &bytes.Buffer{})
			if !errors.Is(err, tc.target) {
				t.Errorf("Expected error %v, got %v", tc.target, err)
			}
		})
	}

	t.Run("remove non-integer", func(t *testing.T) {
		svc, _ := newRoster(t, 5)
		if err := runCommand(context.Background(), svc, []string{"remove", "x"}, &bytes.Buffer{}); err == nil {
			t.Error("Expected error for non-integer index, got nil")
		}
	})
}
