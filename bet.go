package badbets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/badbets/date"
	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// ErrInvalid is wrapped by every validation error, whether it comes from a
// parse function or from Bet.Validate.
var ErrInvalid = errors.New("invalid")

// BetType tells which teams a bet involves.
type BetType int

const (
	// HeadToHead is a bet on team_for beating team_against in a single game.
	HeadToHead BetType = iota
	// FutureOver is a season long bet on team_for finishing over a line.
	FutureOver
	// FutureUnder is a season long bet on team_against finishing under a line.
	FutureUnder
)

func (t BetType) String() string {
	switch t {
	case HeadToHead:
		return "HeadToHead"
	case FutureOver:
		return "FutureOver"
	case FutureUnder:
		return "FutureUnder"
	default:
		return fmt.Sprintf("BetType(%d)", int(t))
	}
}

// MarshalJSON writes the bet type by name.
func (t BetType) MarshalJSON() ([]byte, error) {
	switch t {
	case HeadToHead, FutureOver, FutureUnder:
		return json.Marshal(t.String())
	}
	return nil, fmt.Errorf("unknown bet type %d", int(t))
}

// UnmarshalJSON reads a bet type by name.
func (t *BetType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for _, c := range []BetType{HeadToHead, FutureOver, FutureUnder} {
		if c.String() == name {
			*t = c
			return nil
		}
	}
	return fmt.Errorf("unknown bet type %q", name)
}

// Bet is a single wager.
//
// A bet is outstanding while Won is nil, and settled once Won is set. Bets are
// ordered by their settlement date only, see Compare.
type Bet struct {
	ID          string
	Type        BetType
	TeamFor     *Team
	TeamAgainst *Team
	Odds        int             // American odds, magnitude of at least 100
	Amount      decimal.Decimal // stake
	Placed      date.Date
	Settles     date.Date // day on which the outcome is known
	Won         *bool
}

// NewBet returns a validated outstanding bet. Teams that the bet type does not
// use must be the zero Team.
func NewBet(typ BetType, teamFor, teamAgainst Team, odds int, amount decimal.Decimal, placed, settles date.Date) (Bet, error) {
	b := Bet{
		Type:    typ,
		Odds:    odds,
		Amount:  amount,
		Placed:  placed,
		Settles: settles,
	}
	if !teamFor.IsZero() {
		b.TeamFor = &teamFor
	}
	if !teamAgainst.IsZero() {
		b.TeamAgainst = &teamAgainst
	}
	if err := b.Validate(); err != nil {
		return Bet{}, err
	}
	return b, nil
}

// Compare orders bets by settlement date: it returns -1 when a settles
// earlier than b, +1 when later, and 0 on the same day whatever the other
// fields are.
func Compare(a, b Bet) int { return a.Settles.Compare(b.Settles) }

// IsOutstanding reports whether the bet still awaits a result.
func (b Bet) IsOutstanding() bool { return b.Won == nil }

// IsSettled reports whether the bet has a result.
func (b Bet) IsSettled() bool { return b.Won != nil }

// Validate checks the bet for consistency and returns all the failures found.
func (b Bet) Validate() error {
	var errs []error
	switch b.Type {
	case HeadToHead:
		if b.TeamFor == nil || b.TeamAgainst == nil {
			errs = append(errs, fmt.Errorf("%w: head to head bet needs two teams", ErrInvalid))
		} else if !Comparable(*b.TeamFor, *b.TeamAgainst) {
			errs = append(errs, fmt.Errorf("%w: teams must be in same league for head to head games, got %v and %v", ErrInvalid, *b.TeamFor, *b.TeamAgainst))
		}
	case FutureOver:
		if b.TeamFor == nil || b.TeamAgainst != nil {
			errs = append(errs, fmt.Errorf("%w: over bet needs only a team for", ErrInvalid))
		}
	case FutureUnder:
		if b.TeamFor != nil || b.TeamAgainst == nil {
			errs = append(errs, fmt.Errorf("%w: under bet needs only a team against", ErrInvalid))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown bet type %d", ErrInvalid, int(b.Type)))
	}
	if err := validateOdds(b.Odds); err != nil {
		errs = append(errs, err)
	}
	if b.Amount.IsNegative() {
		errs = append(errs, fmt.Errorf("%w: bet amount %s is negative", ErrInvalid, b.Amount))
	}
	if b.Settles.IsZero() {
		errs = append(errs, fmt.Errorf("%w: missing settlement date", ErrInvalid))
	} else if !b.Placed.IsZero() && b.Settles.Before(b.Placed) {
		errs = append(errs, fmt.Errorf("%w: settlement date %v is before placement date %v", ErrInvalid, b.Settles, b.Placed))
	}
	return errors.Join(errs...)
}

func validateOdds(odds int) error {
	if odds > -100 && odds < 100 {
		return fmt.Errorf("%w: odds cannot be between -99 and 99, got %d", ErrInvalid, odds)
	}
	return nil
}

// Profit returns what a winning ticket earns on top of the stake.
//
// Positive odds tell the profit on a 100 stake, negative odds the stake
// needed to make 100.
func (b Bet) Profit() decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	odds := decimal.NewFromInt(int64(b.Odds))
	if b.Odds > 0 {
		return b.Amount.Mul(odds).Div(hundred)
	}
	return b.Amount.Mul(hundred).Div(odds.Abs())
}

// Result returns the net result of a settled bet: the profit when won, minus
// the stake when lost, and zero while outstanding.
func (b Bet) Result() decimal.Decimal {
	switch {
	case b.Won == nil:
		return decimal.Zero
	case *b.Won:
		return b.Profit()
	default:
		return b.Amount.Neg()
	}
}

// Description is a one line, human readable account of the bet.
func (b Bet) Description() string {
	var s strings.Builder
	switch b.Type {
	case HeadToHead:
		fmt.Fprintf(&s, "%s over %s", teamName(b.TeamFor), teamName(b.TeamAgainst))
	case FutureOver:
		fmt.Fprintf(&s, "%s to go over", teamName(b.TeamFor))
	case FutureUnder:
		fmt.Fprintf(&s, "%s to go under", teamName(b.TeamAgainst))
	}
	fmt.Fprintf(&s, " at %+d, %s staked on %v, settles %v", b.Odds, b.Amount.StringFixed(2), b.Placed, b.Settles)
	return s.String()
}

func teamName(t *Team) string {
	if t == nil {
		return "?"
	}
	return t.String()
}

// betJSON is the persisted shape of a Bet.
type betJSON struct {
	ID          string          `json:"id,omitempty"`
	Type        BetType         `json:"bet_type"`
	TeamFor     *Team           `json:"team_for"`
	TeamAgainst *Team           `json:"team_against"`
	Odds        int             `json:"odds"`
	Amount      decimal.Decimal `json:"bet_amount"`
	Placed      date.Date       `json:"date_placed"`
	Settles     date.Date       `json:"date_settled"`
	Won         *bool           `json:"won"`
}

// MarshalJSON writes the bet with a stable key order.
func (b Bet) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", b.ID).
		Append("bet_type", b.Type).
		Append("team_for", b.TeamFor).
		Append("team_against", b.TeamAgainst).
		Append("odds", b.Odds).
		Append("bet_amount", b.Amount).
		Append("date_placed", b.Placed).
		Append("date_settled", b.Settles).
		Append("won", b.Won)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a bet. It does not validate it, Ledger.Insert does.
func (b *Bet) UnmarshalJSON(data []byte) error {
	var v betJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = Bet(v)
	return nil
}
