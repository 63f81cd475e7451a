package badbets

import (
	"fmt"
	"time"

	"github.com/etnz/badbets/date"
)

// Readiness tells whether a bet can be settled.
type Readiness int

const (
	// NotDue bets settle in the future.
	NotDue Readiness = iota
	// SettlingToday bets settle today: the event may not be over yet.
	SettlingToday
	// Overdue bets settled more than a day ago.
	Overdue
)

func (r Readiness) String() string {
	switch r {
	case NotDue:
		return "not due"
	case SettlingToday:
		return "settling today"
	case Overdue:
		return "overdue"
	default:
		return fmt.Sprintf("Readiness(%d)", int(r))
	}
}

// Classify tells how ready b is to be settled at now. The settlement day
// starts at midnight in now's location.
func Classify(b Bet, now time.Time) Readiness {
	dif := now.Sub(b.Settles.Midnight(now.Location()))
	switch {
	case dif > date.Day:
		return Overdue
	case dif > 0:
		return SettlingToday
	default:
		return NotDue
	}
}

// Due is an outstanding bet ready to be settled.
type Due struct {
	Bet
	Readiness Readiness
}

// Due returns the outstanding bets that are ready to be settled at now,
// earliest first. The ledger is not modified.
//
// Only the due bets and their heap children are visited: the cost grows with
// the number of due bets, not with the number of outstanding ones.
func (l *Ledger) Due(now time.Time) []Due {
	var dues []Due
	isDue := func(b Bet) bool { return Classify(b, now) != NotDue }
	for b := range l.outstanding.ascend(isDue) {
		dues = append(dues, Due{Bet: b, Readiness: Classify(b, now)})
	}
	return dues
}

// Settler decides the result of due bets, typically by asking the user.
type Settler interface {
	// Concluded asks whether the event of a bet settling today is over.
	Concluded(b Bet) (bool, error)
	// Won asks whether the bet won.
	Won(b Bet) (bool, error)
}

// SettleOptions tunes a settlement pass.
type SettleOptions struct {
	// StopOnDecline ends the pass as soon as a bet settling today is declared
	// not concluded yet. By default the pass moves on to the next due bet.
	StopOnDecline bool
}

// SettleDue settles the bets due at now, earliest first, with results given
// by s. It returns the number of bets settled. Bets settled before an error
// stay settled.
//
// The pass works on the outstanding heap itself: it peeks the earliest bet and
// stops at the first one not due. Bets of the day declined as not concluded
// are set aside during the pass and put back at the end.
func (l *Ledger) SettleDue(now time.Time, s Settler, opts SettleOptions) (int, error) {
	var held []Bet
	defer func() {
		for _, b := range held {
			l.outstanding.insert(b)
		}
	}()

	settled := 0
	for {
		b, ok := l.outstanding.peek()
		if !ok {
			return settled, nil
		}
		r := Classify(b, now)
		if r == NotDue {
			return settled, nil
		}
		if r == SettlingToday {
			concluded, err := s.Concluded(b)
			if err != nil {
				return settled, err
			}
			if !concluded {
				if opts.StopOnDecline {
					return settled, nil
				}
				l.outstanding.pop()
				held = append(held, b)
				continue
			}
		}
		won, err := s.Won(b)
		if err != nil {
			return settled, err
		}
		if _, err := l.Settle(b.ID, won); err != nil {
			return settled, err
		}
		settled++
	}
}
