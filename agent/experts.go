package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/badbets"
	"github.com/etnz/badbets/date"
	"github.com/etnz/badbets/docs"
	"github.com/etnz/badbets/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// creates the facilitator
func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here to review their sports bets: which ones are due, how their record looks,
			which teams or bet types cost them money. Be frank about losing habits, the tool is called Bad Bets.

			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.
			Never make up a bet, a result or an amount: the Bookmaker knows the ledger.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewScout returns an expert on recent games and standings, grounded on Google Search.
func NewScout(model string) *Expert {
	return &Expert{
		Name: "Scout",
		Description: `This is a sports scout following the NBA and the NFL.
		Ask the Scout about game results, standings, injuries and season outlooks,
		for instance to know whether a bet that settled today has won.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a sports scout for the NBA and the NFL. You leverage Google Search to
			ground your assertions: final scores, standings, win totals, schedules and news.
			Always tell the date of the facts you report.
			`}}},
		},
	}
}

// NewBookmaker returns an expert reading the ledger l. It cannot change it.
func NewBookmaker(model string, l *badbets.Ledger, opts renderer.Options) *Expert {
	lib := BookmakerFunctions(l, opts)
	return &Expert{
		Name: "Bookmaker",
		Description: `This is the Bookmaker. They keep the user's betting ledger and
		know every bet: teams, odds, stakes, dates and results. Ask them for lists of bets,
		the bets due for settlement, the win/loss record and the net result over a period.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You keep the user's betting ledger.
				You know how to use the Tools to extract relevant information about the user's bets.
				You are part of a team of experts, yours is everything about the user's ledger. They might ask
				you questions about the bets, pardon their approximative language and figure out what they meant.

				Here is how odds and payouts work:

				` + must(docs.GetTopic("odds")),
			}}},
		},
		Library: NewLibrary(lib),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// BookmakerFunctions returns the read only functions over l offered to the Bookmaker.
func BookmakerFunctions(l *badbets.Ledger, opts renderer.Options) []*Func {
	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "ListBets",
				Description: "ListBets lists the bets of the ledger as markdown tables, in settlement date order.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"which": {
							Type:        genai.TypeString,
							Description: "Which bets to list: 'outstanding', 'settled' or 'all' (the default).",
						},
					},
				},
				Response: &genai.Schema{Type: genai.TypeString, Description: "Markdown tables of bets."},
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				which, err := stringArg(args, "which", "all")
				if err != nil {
					return "", err
				}
				switch strings.ToLower(which) {
				case "all":
					return renderer.LedgerMarkdown(l, opts), nil
				case "outstanding":
					return renderer.OutstandingMarkdown(l.Outstanding(), opts), nil
				case "settled":
					return renderer.SettledMarkdown(l.Settled(), opts), nil
				default:
					return "", fmt.Errorf("argument 'which' must be 'outstanding', 'settled' or 'all', got %q", which)
				}
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "DueBets",
				Description: "DueBets lists the outstanding bets that are ready to be settled today: overdue ones and those settling today.",
				Response:    &genai.Schema{Type: genai.TypeString, Description: "A markdown table of due bets."},
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				return renderer.DueMarkdown(l.Due(opts.Now), opts), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Summary",
				Description: "Summary computes the win/loss record, the amount staked and the net result of the bets settled in a period, and the exposure of outstanding bets.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"period": {
							Type:        genai.TypeString,
							Description: "One of 'day', 'week', 'month', 'quarter', 'year' or 'all' (the default).",
						},
						"date": {
							Type: genai.TypeString,
							Description: `A date within the period, today by default. Formats:

							` + must(docs.GetTopic("dates")),
						},
					},
				},
				Response: &genai.Schema{Type: genai.TypeString, Description: "A markdown summary."},
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				r, err := rangeArgs(args, date.Of(opts.Now))
				if err != nil {
					return "", err
				}
				return renderer.SummaryMarkdown(badbets.NewSummary(l, r, opts.Currency)), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Teams",
				Description: "Teams lists the known teams of a league with their aliases.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"league": {
							Type:        genai.TypeString,
							Description: "'NBA' or 'NFL', all leagues by default.",
						},
					},
				},
				Response: &genai.Schema{Type: genai.TypeString, Description: "Markdown tables of teams."},
			},
			Func: func(ctx context.Context, args map[string]any) (string, error) {
				league, err := stringArg(args, "league", "")
				if err != nil {
					return "", err
				}
				leagues := badbets.Leagues()
				if league != "" {
					if badbets.Franchises(badbets.League(league)) == nil {
						return "", fmt.Errorf("unknown league %q", league)
					}
					leagues = []badbets.League{badbets.League(strings.ToUpper(league))}
				}
				return renderer.TeamsMarkdown(leagues), nil
			},
		},
	}
}

// stringArg returns the string argument name, or def when absent.
func stringArg(args map[string]any, name, def string) (string, error) {
	v, ok := args[name]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return def, fmt.Errorf("argument '%s' is not a string as expected but %T", name, v)
	}
	return s, nil
}

// rangeArgs reads the 'period' and 'date' arguments as a date range.
func rangeArgs(args map[string]any, today date.Date) (date.Range, error) {
	period, err := stringArg(args, "period", "all")
	if err != nil {
		return date.Range{}, err
	}
	if period == "all" || period == "" {
		return date.Range{}, nil
	}
	p, err := date.ParsePeriod(period)
	if err != nil {
		return date.Range{}, err
	}
	sdate, err := stringArg(args, "date", "")
	if err != nil {
		return date.Range{}, err
	}
	d := today
	if sdate != "" {
		if d, err = date.ParseInput(sdate, today); err != nil {
			return date.Range{}, fmt.Errorf("argument 'date' must be a valid date got %q: %w", sdate, err)
		}
	}
	return date.NewRange(d, p), nil
}
