// Package standings layers conference views and playoff math on the raw
// standings table.
package standings

import (
	"context"
	"sort"
	"strings"

	"fastbreak/endpoints"
	"fastbreak/nba"
	"fastbreak/utils"
)

// Get fetches the full standings table for a season.
func Get(ctx context.Context, c *nba.Client, season string, opts ...endpoints.LeagueStandingsOption) ([]endpoints.TeamStanding, error) {
	rows, err := nba.Get(ctx, c, endpoints.NewLeagueStandings(season, opts...))
	if err != nil {
		return nil, utils.ErrorWithTrace(err)
	}
	return rows, nil
}

// Conference filters standings to one conference and orders them by playoff
// rank. Rows without a rank sort last.
func Conference(rows []endpoints.TeamStanding, conference string) []endpoints.TeamStanding {
	out := []endpoints.TeamStanding{}
	for _, r := range rows {
		if r.Conference != nil && strings.EqualFold(*r.Conference, conference) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].PlayoffRank, out[j].PlayoffRank
		if ri == nil {
			return false
		}
		if rj == nil {
			return true
		}
		return *ri < *rj
	})
	return out
}

// MagicNumber returns how many combined wins and opponent losses clinch a
// better record than the opponent can reach. Zero means already clinched.
func MagicNumber(myWins, oppWins, oppGamesRemaining int) int {
	n := 1 + oppGamesRemaining + oppWins - myWins
	if n < 0 {
		return 0
	}
	return n
}
