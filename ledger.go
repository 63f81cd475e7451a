package badbets

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/google/uuid"
)

// ErrNotOutstanding is returned when settling a bet that is not outstanding,
// either because it is unknown or because it was already settled.
var ErrNotOutstanding = errors.New("bet is not outstanding")

// Ledger is the betting record of one person.
//
// It keeps two collections ordered by settlement date: the outstanding bets,
// which have no result yet, and the settled ones. A bet is in exactly one of
// them, depending on its Won field.
type Ledger struct {
	name        string
	outstanding betQueue
	settled     betQueue
}

// NewLedger creates an empty ledger.
func NewLedger(name string) *Ledger {
	return &Ledger{name: name}
}

// Name returns the owner's name.
func (l *Ledger) Name() string { return l.name }

// Insert validates b and adds it to the collection matching its result.
// A bet without an id gets a new one.
func (l *Ledger) Insert(b Bet) (Bet, error) {
	if err := b.Validate(); err != nil {
		return Bet{}, err
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if _, exists := l.Bet(b.ID); exists {
		return Bet{}, fmt.Errorf("duplicate bet id %q", b.ID)
	}
	if b.Won != nil {
		won := *b.Won // do not share the result with the caller
		b.Won = &won
		l.settled.insert(b)
	} else {
		l.outstanding.insert(b)
	}
	return b, nil
}

// PeekOutstanding returns the outstanding bet that settles first, without removing it.
func (l *Ledger) PeekOutstanding() (Bet, bool) { return l.outstanding.peek() }

// PopOutstanding removes and returns the outstanding bet that settles first.
func (l *Ledger) PopOutstanding() (Bet, bool) { return l.outstanding.pop() }

// Settle records the result of the outstanding bet id and moves it to the settled bets.
func (l *Ledger) Settle(id string, won bool) (Bet, error) {
	b, ok := l.outstanding.remove(id)
	if !ok {
		return Bet{}, fmt.Errorf("cannot settle %q: %w", id, ErrNotOutstanding)
	}
	stored := won
	b.Won = &stored
	l.settled.insert(b)
	b.Won = &won
	return b, nil
}

// Bet returns the bet with that id, whether outstanding or settled.
func (l *Ledger) Bet(id string) (Bet, bool) {
	if b, ok := l.outstanding.get(id); ok {
		return b, true
	}
	return l.settled.get(id)
}

// Lookup returns the bet whose id starts with prefix, whether outstanding or
// settled. The prefix must match exactly one bet.
func (l *Ledger) Lookup(prefix string) (Bet, error) {
	if prefix == "" {
		return Bet{}, errors.New("empty bet id")
	}
	if b, ok := l.Bet(prefix); ok {
		return b, nil
	}
	var found []Bet
	for _, q := range []*betQueue{&l.outstanding, &l.settled} {
		for _, b := range q.bets {
			if strings.HasPrefix(b.ID, prefix) {
				found = append(found, b)
			}
		}
	}
	switch len(found) {
	case 0:
		return Bet{}, fmt.Errorf("no bet with id %q", prefix)
	case 1:
		return found[0], nil
	default:
		return Bet{}, fmt.Errorf("%d bets with an id starting with %q", len(found), prefix)
	}
}

// Outstanding iterates over the outstanding bets in settlement order.
func (l *Ledger) Outstanding() iter.Seq[Bet] { return l.outstanding.sorted() }

// Settled iterates over the settled bets in settlement order.
func (l *Ledger) Settled() iter.Seq[Bet] { return l.settled.sorted() }

// OutstandingLen returns the number of outstanding bets.
func (l *Ledger) OutstandingLen() int { return l.outstanding.Len() }

// SettledLen returns the number of settled bets.
func (l *Ledger) SettledLen() int { return l.settled.Len() }
