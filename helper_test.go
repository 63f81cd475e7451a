package badbets

import (
	"testing"

	"github.com/etnz/badbets/date"
	"github.com/shopspring/decimal"
)

// team is a helper for tests to resolve a team that must exist.
func team(t *testing.T, name string) Team {
	t.Helper()
	tm, ok := ResolveTeam(name)
	if !ok {
		t.Fatalf("unknown team %q", name)
	}
	return tm
}

// game is a helper for tests to create a valid head to head bet settling on a given day.
func game(t *testing.T, settles string) Bet {
	t.Helper()
	b, err := NewBet(HeadToHead, team(t, "Lakers"), team(t, "Celtics"), -110, decimal.NewFromInt(20), date.MustParse("2024-01-01"), date.MustParse(settles))
	if err != nil {
		t.Fatalf("invalid test bet: %v", err)
	}
	return b
}

// insert is a helper for tests to insert a bet that must be valid.
func insert(t *testing.T, l *Ledger, b Bet) Bet {
	t.Helper()
	b, err := l.Insert(b)
	if err != nil {
		t.Fatalf("Insert() unexpected error: %v", err)
	}
	return b
}

func ptr[T any](v T) *T { return &v }
