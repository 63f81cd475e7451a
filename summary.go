package badbets

import (
	"github.com/etnz/badbets/date"
	"github.com/shopspring/decimal"
)

// Record is the win/loss record of a group of settled bets.
type Record struct {
	Wins   int
	Losses int
	Staked Money
	Net    Money // sum of the results
}

// add accounts for a settled bet.
func (r *Record) add(b Bet) {
	if *b.Won {
		r.Wins++
	} else {
		r.Losses++
	}
	r.Staked = r.Staked.Add(b.Amount)
	r.Net = r.Net.Add(b.Result())
}

// Count returns the number of bets in the record.
func (r Record) Count() int { return r.Wins + r.Losses }

// WinRate returns the share of winning bets, in percent. Zero without bets.
func (r Record) WinRate() decimal.Decimal {
	if r.Count() == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(r.Wins * 100)).Div(decimal.NewFromInt(int64(r.Count())))
}

// ROI returns the net result over the amount staked, in percent. Zero without stakes.
func (r Record) ROI() decimal.Decimal {
	if r.Staked.IsZero() {
		return decimal.Zero
	}
	return r.Net.Value().Mul(decimal.NewFromInt(100)).Div(r.Staked.Value())
}

// Summary is an overview of a ledger: the record of the bets settled in a
// date range, and the exposure of the outstanding ones.
type Summary struct {
	Name        string
	Range       date.Range // on settlement dates, zero for all time
	Currency    string
	Total       Record
	ByType      map[BetType]Record
	Outstanding int
	AtRisk      Money // sum of outstanding stakes
	ToWin       Money // sum of outstanding potential profits
}

// NewSummary computes the summary of l for bets settling within r.
// Outstanding exposure ignores r.
func NewSummary(l *Ledger, r date.Range, currency string) *Summary {
	zero := M(decimal.Zero, currency)
	s := &Summary{
		Name:     l.Name(),
		Range:    r,
		Currency: currency,
		Total:    Record{Staked: zero, Net: zero},
		ByType:   make(map[BetType]Record),
		AtRisk:   zero,
		ToWin:    zero,
	}
	for b := range l.Settled() {
		if !r.Contains(b.Settles) {
			continue
		}
		s.Total.add(b)
		rec, ok := s.ByType[b.Type]
		if !ok {
			rec = Record{Staked: zero, Net: zero}
		}
		rec.add(b)
		s.ByType[b.Type] = rec
	}
	for b := range l.Outstanding() {
		s.Outstanding++
		s.AtRisk = s.AtRisk.Add(b.Amount)
		s.ToWin = s.ToWin.Add(b.Profit())
	}
	return s
}
