package badbets

import (
	"errors"
	"slices"
	"testing"
)

func TestLedgerOrder(t *testing.T) {
	l := NewLedger("Jane")
	for _, day := range []string{"2024-02-15", "2024-02-14", "2024-02-16"} {
		insert(t, l, game(t, day))
	}

	b, ok := l.PeekOutstanding()
	if !ok || b.Settles.String() != "2024-02-14" {
		t.Fatalf("PeekOutstanding() = %v, %v, want 2024-02-14", b.Settles, ok)
	}
	if got := l.OutstandingLen(); got != 3 {
		t.Errorf("OutstandingLen() = %d after peek, want 3", got)
	}

	var got []string
	for {
		b, ok := l.PopOutstanding()
		if !ok {
			break
		}
		got = append(got, b.Settles.String())
	}
	want := []string{"2024-02-14", "2024-02-15", "2024-02-16"}
	if !slices.Equal(got, want) {
		t.Errorf("PopOutstanding() sequence = %v, want %v", got, want)
	}
	if _, ok := l.PeekOutstanding(); ok {
		t.Error("PeekOutstanding() on empty ledger returned a bet")
	}
}

func TestLedgerInsert(t *testing.T) {
	l := NewLedger("Jane")

	open := insert(t, l, game(t, "2024-02-14"))
	if open.ID == "" {
		t.Error("Insert() did not assign an id")
	}

	won := game(t, "2024-02-10")
	won.ID = "w"
	won.Won = ptr(true)
	insert(t, l, won)

	if l.OutstandingLen() != 1 || l.SettledLen() != 1 {
		t.Fatalf("got %d outstanding, %d settled, want 1 and 1", l.OutstandingLen(), l.SettledLen())
	}
	if b, ok := l.Bet("w"); !ok || !b.IsSettled() {
		t.Errorf("Bet(w) = %v, %v, want a settled bet", b, ok)
	}
	if b, ok := l.Bet(open.ID); !ok || !b.IsOutstanding() {
		t.Errorf("Bet(%s) = %v, %v, want an outstanding bet", open.ID, b, ok)
	}

	// the ledger keeps its own copy of the result
	*won.Won = false
	if b, _ := l.Bet("w"); !*b.Won {
		t.Error("changing the caller's result changed the stored bet")
	}

	if _, err := l.Insert(won); err == nil {
		t.Error("Insert() with a duplicate id want error")
	}

	bad := game(t, "2024-02-14")
	bad.Odds = 50
	if _, err := l.Insert(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("Insert() invalid bet error = %v, want ErrInvalid", err)
	}
	if l.OutstandingLen() != 1 || l.SettledLen() != 1 {
		t.Errorf("failed inserts changed the ledger: %d outstanding, %d settled", l.OutstandingLen(), l.SettledLen())
	}
}

func TestLedgerSettle(t *testing.T) {
	l := NewLedger("Jane")
	a := insert(t, l, game(t, "2024-02-15"))
	b := insert(t, l, game(t, "2024-02-14"))

	settled, err := l.Settle(a.ID, false)
	if err != nil {
		t.Fatalf("Settle() unexpected error: %v", err)
	}
	if settled.Won == nil || *settled.Won {
		t.Errorf("Settle() returned Won = %v, want false", settled.Won)
	}
	if l.OutstandingLen() != 1 || l.SettledLen() != 1 {
		t.Fatalf("got %d outstanding, %d settled, want 1 and 1", l.OutstandingLen(), l.SettledLen())
	}
	// the remaining bet is still reachable at the top
	if top, _ := l.PeekOutstanding(); top.ID != b.ID {
		t.Errorf("PeekOutstanding() = %s, want %s", top.ID, b.ID)
	}

	if _, err := l.Settle(a.ID, true); !errors.Is(err, ErrNotOutstanding) {
		t.Errorf("second Settle() error = %v, want ErrNotOutstanding", err)
	}
	if _, err := l.Settle("nope", true); !errors.Is(err, ErrNotOutstanding) {
		t.Errorf("Settle(unknown) error = %v, want ErrNotOutstanding", err)
	}
	if got, _ := l.Bet(a.ID); *got.Won {
		t.Error("a failed Settle() changed the result of a settled bet")
	}
}

func TestLedgerIterators(t *testing.T) {
	l := NewLedger("Jane")
	for _, day := range []string{"2024-03-01", "2024-01-01", "2024-02-01"} {
		b := game(t, day)
		b.Placed = b.Settles
		insert(t, l, b)
	}
	var got []string
	for b := range l.Outstanding() {
		got = append(got, b.Settles.String())
	}
	want := []string{"2024-01-01", "2024-02-01", "2024-03-01"}
	if !slices.Equal(got, want) {
		t.Errorf("Outstanding() = %v, want %v", got, want)
	}
	// iterating does not consume
	if l.OutstandingLen() != 3 {
		t.Errorf("OutstandingLen() = %d after iteration, want 3", l.OutstandingLen())
	}
	if got := slices.Collect(l.Settled()); len(got) != 0 {
		t.Errorf("Settled() = %v, want none", got)
	}
}

func TestLedgerLookup(t *testing.T) {
	l := NewLedger("Jane")
	for _, id := range []string{"abc123", "abd456", "xyz"} {
		b := game(t, "2024-02-14")
		b.ID = id
		insert(t, l, b)
	}
	if _, err := l.Settle("xyz", true); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		prefix  string
		want    string
		wantErr bool
	}{
		{prefix: "abc", want: "abc123"},
		{prefix: "abd456", want: "abd456"},
		{prefix: "x", want: "xyz"},
		{prefix: "ab", wantErr: true},
		{prefix: "q", wantErr: true},
		{prefix: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := l.Lookup(tc.prefix)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Lookup(%q) = %s, want error", tc.prefix, got.ID)
			}
			continue
		}
		if err != nil || got.ID != tc.want {
			t.Errorf("Lookup(%q) = %s, %v, want %s", tc.prefix, got.ID, err, tc.want)
		}
	}
}
