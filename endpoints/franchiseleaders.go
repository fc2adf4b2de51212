package endpoints

import (
	"strconv"

	"fastbreak/records"
)

// FranchiseLeaders fetches a franchise's all-time statistical leaders. The
// response is one aggregate row naming the leader in each category.
type FranchiseLeaders struct {
	leagueID string
	teamID   int
}

// NewFranchiseLeaders builds a franchiseleaders request.
func NewFranchiseLeaders(teamID int) FranchiseLeaders {
	return FranchiseLeaders{leagueID: LeagueNBA, teamID: teamID}
}

func (FranchiseLeaders) Path() string { return "franchiseleaders" }

func (e FranchiseLeaders) Params() map[string]string {
	return map[string]string{
		"LeagueID": e.leagueID,
		"TeamID":   strconv.Itoa(e.teamID),
	}
}

// FranchiseLeaderRow is the single FranchiseLeaders row. Nil for franchises
// the upstream has no leader data for.
type FranchiseLeaderRow struct {
	TeamID         *float64
	Points         *float64
	PointsPlayer   *string
	Assists        *float64
	AssistsPlayer  *string
	Rebounds       *float64
	ReboundsPlayer *string
	Blocks         *float64
	BlocksPlayer   *string
	Steals         *float64
	StealsPlayer   *string
}

func (e FranchiseLeaders) Decode(body []byte) (*FranchiseLeaderRow, error) {
	r, err := records.ParseFirstRow(body, "FranchiseLeaders")
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	return &FranchiseLeaderRow{
		TeamID:         records.Value[float64](r, "TEAM_ID"),
		Points:         records.Value[float64](r, "PTS"),
		PointsPlayer:   records.Value[string](r, "PTS_PLAYER"),
		Assists:        records.Value[float64](r, "AST"),
		AssistsPlayer:  records.Value[string](r, "AST_PLAYER"),
		Rebounds:       records.Value[float64](r, "REB"),
		ReboundsPlayer: records.Value[string](r, "REB_PLAYER"),
		Blocks:         records.Value[float64](r, "BLK"),
		BlocksPlayer:   records.Value[string](r, "BLK_PLAYER"),
		Steals:         records.Value[float64](r, "STL"),
		StealsPlayer:   records.Value[string](r, "STL_PLAYER"),
	}, nil
}
