// Package schedule derives rest-day facts from a team's game dates.
package schedule

import (
	"context"
	"sort"
	"time"

	"fastbreak/endpoints"
	"fastbreak/nba"
	"fastbreak/utils"
)

const dateLayout = "2006-01-02"

// TeamGameDates returns the dates a team played on in a season, ascending.
func TeamGameDates(ctx context.Context, c *nba.Client, season string, teamID int) ([]time.Time, error) {
	entries, err := nba.Get(ctx, c, endpoints.NewLeagueGameLog(season, endpoints.GameLogPlayerOrTeam("T")))
	if err != nil {
		return nil, utils.ErrorWithTrace(err)
	}
	dates := []time.Time{}
	for _, entry := range entries {
		if entry.TeamID == nil || int(*entry.TeamID) != teamID || entry.GameDate == nil {
			continue
		}
		d, err := time.Parse(dateLayout, *entry.GameDate)
		if err != nil {
			return nil, utils.ErrorWithTrace(err)
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

// DaysRest returns the full off days before game i of a sorted date list.
// The second return is false for the first game of the list, which has no
// preceding game to rest from.
func DaysRest(dates []time.Time, i int) (int, bool) {
	if i <= 0 || i >= len(dates) {
		return 0, false
	}
	rest := int(dates[i].Sub(dates[i-1]).Hours()/24) - 1
	if rest < 0 {
		rest = 0
	}
	return rest, true
}

// IsBackToBack reports whether game i is the second night of a back-to-back.
func IsBackToBack(dates []time.Time, i int) bool {
	rest, ok := DaysRest(dates, i)
	return ok && rest == 0
}

// BackToBackCount returns how many second-night games the date list holds.
func BackToBackCount(dates []time.Time) int {
	n := 0
	for i := range dates {
		if IsBackToBack(dates, i) {
			n++
		}
	}
	return n
}
