// Package teams is a static registry of the 30 NBA franchises.
//
// Team IDs are stable across seasons, so a compiled-in table avoids a
// network round trip for the common ID/abbreviation lookups.
package teams

import "strings"

// Team is one franchise.
type Team struct {
	ID           int
	Abbreviation string
	Name         string
	City         string
	Conference   string
	Division     string
}

// FullName returns "City Name", e.g. "Boston Celtics".
func (t Team) FullName() string {
	return t.City + " " + t.Name
}

// All lists every franchise, in team-ID order.
var All = []Team{
	{1610612737, "ATL", "Hawks", "Atlanta", "East", "Southeast"},
	{1610612738, "BOS", "Celtics", "Boston", "East", "Atlantic"},
	{1610612739, "CLE", "Cavaliers", "Cleveland", "East", "Central"},
	{1610612740, "NOP", "Pelicans", "New Orleans", "West", "Southwest"},
	{1610612741, "CHI", "Bulls", "Chicago", "East", "Central"},
	{1610612742, "DAL", "Mavericks", "Dallas", "West", "Southwest"},
	{1610612743, "DEN", "Nuggets", "Denver", "West", "Northwest"},
	{1610612744, "GSW", "Warriors", "Golden State", "West", "Pacific"},
	{1610612745, "HOU", "Rockets", "Houston", "West", "Southwest"},
	{1610612746, "LAC", "Clippers", "Los Angeles", "West", "Pacific"},
	{1610612747, "LAL", "Lakers", "Los Angeles", "West", "Pacific"},
	{1610612748, "MIA", "Heat", "Miami", "East", "Southeast"},
	{1610612749, "MIL", "Bucks", "Milwaukee", "East", "Central"},
	{1610612750, "MIN", "Timberwolves", "Minnesota", "West", "Northwest"},
	{1610612751, "BKN", "Nets", "Brooklyn", "East", "Atlantic"},
	{1610612752, "NYK", "Knicks", "New York", "East", "Atlantic"},
	{1610612753, "ORL", "Magic", "Orlando", "East", "Southeast"},
	{1610612754, "IND", "Pacers", "Indiana", "East", "Central"},
	{1610612755, "PHI", "76ers", "Philadelphia", "East", "Atlantic"},
	{1610612756, "PHX", "Suns", "Phoenix", "West", "Pacific"},
	{1610612757, "POR", "Trail Blazers", "Portland", "West", "Northwest"},
	{1610612758, "SAC", "Kings", "Sacramento", "West", "Pacific"},
	{1610612759, "SAS", "Spurs", "San Antonio", "West", "Southwest"},
	{1610612760, "OKC", "Thunder", "Oklahoma City", "West", "Northwest"},
	{1610612761, "TOR", "Raptors", "Toronto", "East", "Atlantic"},
	{1610612762, "UTA", "Jazz", "Utah", "West", "Northwest"},
	{1610612763, "MEM", "Grizzlies", "Memphis", "West", "Southwest"},
	{1610612764, "WAS", "Wizards", "Washington", "East", "Southeast"},
	{1610612765, "DET", "Pistons", "Detroit", "East", "Central"},
	{1610612766, "CHA", "Hornets", "Charlotte", "East", "Southeast"},
}

var byID = func() map[int]Team {
	m := make(map[int]Team, len(All))
	for _, t := range All {
		m[t.ID] = t
	}
	return m
}()

// ByID looks a franchise up by its numeric team ID.
func ByID(id int) (Team, bool) {
	t, ok := byID[id]
	return t, ok
}

// Find matches query against abbreviation, name, city or full name,
// case-insensitively.
func Find(query string) (Team, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, t := range All {
		if q == strings.ToLower(t.Abbreviation) ||
			q == strings.ToLower(t.Name) ||
			q == strings.ToLower(t.City) ||
			q == strings.ToLower(t.FullName()) {
			return t, true
		}
	}
	return Team{}, false
}

// IDOf returns the team ID for query, or 0 when no franchise matches.
func IDOf(query string) int {
	t, ok := Find(query)
	if !ok {
		return 0
	}
	return t.ID
}

// ByConference returns the teams of one conference ("East" or "West").
func ByConference(conference string) []Team {
	out := []Team{}
	for _, t := range All {
		if strings.EqualFold(t.Conference, conference) {
			out = append(out, t)
		}
	}
	return out
}

// ByDivision returns the teams of one division, e.g. "Atlantic".
func ByDivision(division string) []Team {
	out := []Team{}
	for _, t := range All {
		if strings.EqualFold(t.Division, division) {
			out = append(out, t)
		}
	}
	return out
}
