package badbets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The Parse functions below turn a line typed by the user into a field value.
// They never prompt: errors wrap ErrInvalid and carry a message meant for the
// user, who is then asked again.

// ParseBetType accepts "g", "game", "o", "over", "u", "under" and the type names.
func ParseBetType(s string) (BetType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "g", "game", "headtohead":
		return HeadToHead, nil
	case "o", "over", "futureover":
		return FutureOver, nil
	case "u", "under", "futureunder":
		return FutureUnder, nil
	default:
		return HeadToHead, fmt.Errorf("%w: bet type %q, want g, o or u", ErrInvalid, s)
	}
}

// ParseTeam resolves a team name, see ResolveTeam.
func ParseTeam(s string) (Team, error) {
	team, ok := ResolveTeam(s)
	if !ok {
		return Team{}, fmt.Errorf("%w: unknown team %q", ErrInvalid, strings.TrimSpace(s))
	}
	return team, nil
}

// ParseOdds parses American odds, rejecting values between -99 and 99.
func ParseOdds(s string) (int, error) {
	odds, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: odds must be an integer, got %q", ErrInvalid, s)
	}
	if err := validateOdds(odds); err != nil {
		return 0, err
	}
	return odds, nil
}

// ParseStake parses a non negative bet amount.
func ParseStake(s string) (decimal.Decimal, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: bet amount must be a number, got %q", ErrInvalid, s)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: bet amount %s is negative", ErrInvalid, amount)
	}
	return amount, nil
}

// ParseYesNo returns true for "y" or "yes", false for anything else.
func ParseYesNo(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// Action is a step of an interactive session.
type Action int

const (
	// Continue means the input was not understood, ask again.
	Continue Action = iota
	AddBet
	ListBets
	SettleBets
	ShowSummary
	Quit
)

// ParseAction reads a session action. Unknown input yields Continue.
func ParseAction(s string) Action {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "a":
		return AddBet
	case "list", "ls", "l":
		return ListBets
	case "settle", "s":
		return SettleBets
	case "summary", "sum":
		return ShowSummary
	case "quit", "q", "exit":
		return Quit
	default:
		return Continue
	}
}
