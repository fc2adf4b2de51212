// Package games composes endpoint fetches into game-centric helpers.
package games

import (
	"context"
	"fmt"
	"sort"
	"time"

	"fastbreak/endpoints"
	"fastbreak/nba"
	"fastbreak/utils"
)

// GameIDs returns the distinct game IDs of a season, ascending. A non-zero
// teamID filters to that team's games. The filter is applied client-side:
// the upstream accepts a TeamID parameter on leaguegamelog but ignores it.
func GameIDs(ctx context.Context, c *nba.Client, season string, teamID int, opts ...endpoints.LeagueGameLogOption) ([]string, error) {
	opts = append([]endpoints.LeagueGameLogOption{endpoints.GameLogPlayerOrTeam("T")}, opts...)
	entries, err := nba.Get(ctx, c, endpoints.NewLeagueGameLog(season, opts...))
	if err != nil {
		return nil, utils.ErrorWithTrace(err)
	}
	seen := map[string]bool{}
	ids := []string{}
	for _, entry := range entries {
		if entry.GameID == nil {
			continue
		}
		if teamID != 0 && (entry.TeamID == nil || int(*entry.TeamID) != teamID) {
			continue
		}
		if !seen[*entry.GameID] {
			seen[*entry.GameID] = true
			ids = append(ids, *entry.GameID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// OnDate returns the scoreboard games for a date (YYYY-MM-DD). A day with
// no games yields an empty slice.
func OnDate(ctx context.Context, c *nba.Client, date string) ([]endpoints.ScoreboardGame, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, utils.ErrorWithTrace(fmt.Errorf("invalid date %q, want YYYY-MM-DD", date))
	}
	board, err := nba.Get(ctx, c, endpoints.NewScoreboardV3(date))
	if err != nil {
		return nil, utils.ErrorWithTrace(err)
	}
	if board.Games == nil {
		return []endpoints.ScoreboardGame{}, nil
	}
	return board.Games, nil
}

// Today returns today's scoreboard games.
func Today(ctx context.Context, c *nba.Client) ([]endpoints.ScoreboardGame, error) {
	return OnDate(ctx, c, time.Now().Format("2006-01-02"))
}

// BoxScores fetches the traditional box score for every game ID, keyed by
// game ID. The fetches fan out under the client's batch ceiling, so the
// whole set either lands or fails together.
func BoxScores(ctx context.Context, c *nba.Client, gameIDs []string, opts ...nba.BatchOption) (map[string]endpoints.BoxScore, error) {
	eps := make([]nba.Endpoint[endpoints.BoxScore], len(gameIDs))
	for i, id := range gameIDs {
		eps[i] = endpoints.NewBoxScoreTraditionalV3(id)
	}
	scores, err := nba.GetMany(ctx, c, eps, opts...)
	if err != nil {
		return nil, utils.ErrorWithTrace(err)
	}
	out := make(map[string]endpoints.BoxScore, len(scores))
	for _, bs := range scores {
		out[bs.GameID] = bs
	}
	return out, nil
}
