package endpoints

import (
	"strconv"

	"fastbreak/records"
)

// TeamInfoCommon fetches one team's season summary and league-wide ranks.
type TeamInfoCommon struct {
	leagueID   string
	teamID     int
	season     string
	seasonType string
}

// TeamInfoOption configures a TeamInfoCommon request.
type TeamInfoOption func(*TeamInfoCommon)

// TeamInfoSeasonType selects "Regular Season", "Playoffs", etc.
func TeamInfoSeasonType(t string) TeamInfoOption {
	return func(e *TeamInfoCommon) { e.seasonType = t }
}

// NewTeamInfoCommon builds a teaminfocommon request.
func NewTeamInfoCommon(teamID int, season string, opts ...TeamInfoOption) TeamInfoCommon {
	e := TeamInfoCommon{
		leagueID:   LeagueNBA,
		teamID:     teamID,
		season:     season,
		seasonType: SeasonTypeRegular,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (TeamInfoCommon) Path() string { return "teaminfocommon" }

func (e TeamInfoCommon) Params() map[string]string {
	return map[string]string{
		"LeagueID":   e.leagueID,
		"TeamID":     strconv.Itoa(e.teamID),
		"Season":     e.season,
		"SeasonType": e.seasonType,
	}
}

// TeamInfo is the decoded teaminfocommon response: one summary row and one
// ranks row, both semantically singletons.
type TeamInfo struct {
	Background *TeamBackground
	Ranks      *TeamSeasonRanks
}

// TeamBackground is the TeamInfoCommon row.
type TeamBackground struct {
	TeamID           *float64
	SeasonYear       *string
	TeamCity         *string
	TeamName         *string
	TeamAbbreviation *string
	TeamConference   *string
	TeamDivision     *string
	Wins             *float64
	Losses           *float64
	WinPct           *float64
	ConfRank         *float64
	DivRank          *float64
	MinYear          *string
	MaxYear          *string
}

// TeamSeasonRanks is the TeamSeasonRanks row.
type TeamSeasonRanks struct {
	TeamID        *float64
	PointsRank    *float64
	PointsPG      *float64
	ReboundsRank  *float64
	ReboundsPG    *float64
	AssistsRank   *float64
	AssistsPG     *float64
	OppPointsRank *float64
	OppPointsPG   *float64
}

func (e TeamInfoCommon) Decode(body []byte) (TeamInfo, error) {
	tables, err := records.ParseNamedTables(body, []records.TableSpec{
		{Field: "info", Table: "TeamInfoCommon", Single: true},
		{Field: "ranks", Table: "TeamSeasonRanks", Single: true},
	}, false)
	if err != nil {
		return TeamInfo{}, err
	}
	var out TeamInfo
	if rows := tables["info"]; len(rows) > 0 {
		r := rows[0]
		out.Background = &TeamBackground{
			TeamID:           records.Value[float64](r, "TEAM_ID"),
			SeasonYear:       records.Value[string](r, "SEASON_YEAR"),
			TeamCity:         records.Value[string](r, "TEAM_CITY"),
			TeamName:         records.Value[string](r, "TEAM_NAME"),
			TeamAbbreviation: records.Value[string](r, "TEAM_ABBREVIATION"),
			TeamConference:   records.Value[string](r, "TEAM_CONFERENCE"),
			TeamDivision:     records.Value[string](r, "TEAM_DIVISION"),
			Wins:             records.Value[float64](r, "W"),
			Losses:           records.Value[float64](r, "L"),
			WinPct:           records.Value[float64](r, "PCT"),
			ConfRank:         records.Value[float64](r, "CONF_RANK"),
			DivRank:          records.Value[float64](r, "DIV_RANK"),
			MinYear:          records.Value[string](r, "MIN_YEAR"),
			MaxYear:          records.Value[string](r, "MAX_YEAR"),
		}
	}
	if rows := tables["ranks"]; len(rows) > 0 {
		r := rows[0]
		out.Ranks = &TeamSeasonRanks{
			TeamID:        records.Value[float64](r, "TEAM_ID"),
			PointsRank:    records.Value[float64](r, "PTS_RANK"),
			PointsPG:      records.Value[float64](r, "PTS_PG"),
			ReboundsRank:  records.Value[float64](r, "REB_RANK"),
			ReboundsPG:    records.Value[float64](r, "REB_PG"),
			AssistsRank:   records.Value[float64](r, "AST_RANK"),
			AssistsPG:     records.Value[float64](r, "AST_PG"),
			OppPointsRank: records.Value[float64](r, "OPP_PTS_RANK"),
			OppPointsPG:   records.Value[float64](r, "OPP_PTS_PG"),
		}
	}
	return out, nil
}
