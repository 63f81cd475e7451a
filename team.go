package badbets

import (
	"fmt"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
)

// League identifies a professional league.
type League string

const (
	NBA League = "NBA"
	NFL League = "NFL"
)

// franchise is one entry of the team vocabulary.
type franchise struct {
	name    string   // canonical name, as persisted
	aliases []string // alternate spellings accepted by ResolveTeam
}

// vocabulary lists, per league, every franchise a bet can be placed on.
// Adding a league or a franchise only touches this table.
var vocabulary = []struct {
	league     League
	franchises []franchise
}{
	{NBA, []franchise{
		{name: "Hawks"}, {name: "Celtics"}, {name: "Nets"}, {name: "Hornets"}, {name: "Bulls"},
		{name: "Cavaliers"}, {name: "Mavericks"}, {name: "Nuggets"}, {name: "Pistons"}, {name: "Warriors"},
		{name: "Rockets"}, {name: "Pacers"}, {name: "Clippers"}, {name: "Lakers"}, {name: "Grizzlies"},
		{name: "Heat"}, {name: "Bucks"}, {name: "Timberwolves"}, {name: "Pelicans"}, {name: "Knicks"},
		{name: "Thunder"}, {name: "Magic"}, {name: "Sixers", aliases: []string{"76ers"}}, {name: "Suns"},
		{name: "TrailBlazers"}, {name: "Kings"}, {name: "Spurs"}, {name: "Raptors"}, {name: "Jazz"},
		{name: "Wizards"},
	}},
	{NFL, []franchise{
		{name: "Cardinals"}, {name: "Falcons"}, {name: "Ravens"}, {name: "Bills"}, {name: "Panthers"},
		{name: "Bears"}, {name: "Bengals"}, {name: "Browns"}, {name: "Cowboys"}, {name: "Broncos"},
		{name: "Lions"}, {name: "Packers"}, {name: "Texans"}, {name: "Colts"}, {name: "Jaguars"},
		{name: "Chiefs"}, {name: "Chargers"}, {name: "Rams"}, {name: "Dolphins"}, {name: "Vikings"},
		{name: "Patriots"}, {name: "Saints"}, {name: "Giants"}, {name: "Jets"}, {name: "Raiders"},
		{name: "Eagles"}, {name: "Steelers"}, {name: "Niners"}, {name: "Seahawks"},
		{name: "Buccaneers"}, {name: "Titans"}, {name: "WashingtonFootballTeam"},
	}},
}

// teamIndex maps every lower cased name and alias to its team.
var teamIndex = buildTeamIndex()

func buildTeamIndex() map[string]Team {
	index := make(map[string]Team)
	for _, l := range vocabulary {
		for _, f := range l.franchises {
			team := Team{League: l.league, Franchise: f.name}
			for _, name := range append([]string{f.name}, f.aliases...) {
				key := strings.ToLower(name)
				if prev, exists := index[key]; exists {
					panic(fmt.Sprintf("team name %q is ambiguous: %v and %v", name, prev, team))
				}
				index[key] = team
			}
		}
	}
	return index
}

// Team is a franchise in a league.
//
// Teams are plain values: two teams are equal when they have the same
// league and franchise.
type Team struct {
	League    League
	Franchise string
}

// ResolveTeam finds a team by name, ignoring case. Only franchise names and
// their listed aliases are known. It returns false on unknown names.
func ResolveTeam(name string) (Team, bool) {
	team, ok := teamIndex[strings.ToLower(strings.TrimSpace(name))]
	return team, ok
}

// Comparable reports whether a and b can face each other in a head-to-head bet:
// same league, different franchises.
func Comparable(a, b Team) bool {
	return a.League == b.League && a.Franchise != b.Franchise
}

// Leagues returns all known leagues.
func Leagues() []League {
	leagues := make([]League, 0, len(vocabulary))
	for _, l := range vocabulary {
		leagues = append(leagues, l.league)
	}
	return leagues
}

// Franchises returns the teams of a league in table order, or nil for an unknown league.
func Franchises(league League) []Team {
	for _, l := range vocabulary {
		if !strings.EqualFold(string(l.league), string(league)) {
			continue
		}
		teams := make([]Team, 0, len(l.franchises))
		for _, f := range l.franchises {
			teams = append(teams, Team{League: l.league, Franchise: f.name})
		}
		return teams
	}
	return nil
}

// TeamNames returns every accepted team name and alias, sorted.
func TeamNames() []string {
	var names []string
	for _, l := range vocabulary {
		for _, f := range l.franchises {
			names = append(names, f.name)
			names = append(names, f.aliases...)
		}
	}
	slices.Sort(names)
	return names
}

// Aliases returns the alternate spellings of the team.
func (t Team) Aliases() []string {
	for _, l := range vocabulary {
		if l.league != t.League {
			continue
		}
		for _, f := range l.franchises {
			if f.name == t.Franchise {
				return f.aliases
			}
		}
	}
	return nil
}

// IsZero reports whether t is the zero Team.
func (t Team) IsZero() bool { return t == Team{} }

// String returns the team as "NBA:Lakers".
func (t Team) String() string { return string(t.League) + ":" + t.Franchise }

// MarshalJSON writes the team as a single entry object {"NBA":"Lakers"}.
func (t Team) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[League]string{t.League: t.Franchise})
}

// UnmarshalJSON reads a team written by MarshalJSON and checks it against the vocabulary.
func (t *Team) UnmarshalJSON(data []byte) error {
	var obj map[League]string
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("invalid team %s: %w", data, err)
	}
	if len(obj) != 1 {
		return fmt.Errorf("invalid team %s: want a single league entry", data)
	}
	for league, name := range obj {
		team, ok := ResolveTeam(name)
		if !ok || team.League != league {
			return fmt.Errorf("unknown %s team %q", league, name)
		}
		*t = team
	}
	return nil
}
