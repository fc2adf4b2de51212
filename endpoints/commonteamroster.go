package endpoints

import (
	"strconv"

	"fastbreak/records"
)

// CommonTeamRoster fetches a team's player roster and coaching staff for
// one season.
type CommonTeamRoster struct {
	leagueID string
	teamID   int
	season   string
}

// NewCommonTeamRoster builds a commonteamroster request.
func NewCommonTeamRoster(teamID int, season string) CommonTeamRoster {
	return CommonTeamRoster{leagueID: LeagueNBA, teamID: teamID, season: season}
}

func (CommonTeamRoster) Path() string { return "commonteamroster" }

func (e CommonTeamRoster) Params() map[string]string {
	return map[string]string{
		"LeagueID": e.leagueID,
		"TeamID":   strconv.Itoa(e.teamID),
		"Season":   e.season,
	}
}

// TeamRoster is the decoded commonteamroster response.
type TeamRoster struct {
	Players []RosterPlayer
	Coaches []Coach
}

// RosterPlayer is one row of the CommonTeamRoster table.
type RosterPlayer struct {
	TeamID      *float64
	Season      *string
	PlayerID    *float64
	PlayerName  *string
	PlayerSlug  *string
	Number      *string
	Position    *string
	Height      *string
	Weight      *string
	Birthdate   *string
	Age         *float64
	Experience  *string
	School      *string
	HowAcquired *string
}

// Coach is one row of the Coaches table.
type Coach struct {
	TeamID      *float64
	Season      *string
	CoachID     *string
	FirstName   *string
	LastName    *string
	CoachName   *string
	CoachType   *string
	IsAssistant *float64
}

func (e CommonTeamRoster) Decode(body []byte) (TeamRoster, error) {
	tables, err := records.ParseNamedTables(body, []records.TableSpec{
		{Field: "players", Table: "CommonTeamRoster"},
		{Field: "coaches", Table: "Coaches"},
	}, false)
	if err != nil {
		return TeamRoster{}, err
	}
	var out TeamRoster
	for _, r := range tables["players"] {
		out.Players = append(out.Players, RosterPlayer{
			TeamID:      records.Value[float64](r, "TeamID"),
			Season:      records.Value[string](r, "SEASON"),
			PlayerID:    records.Value[float64](r, "PLAYER_ID"),
			PlayerName:  records.Value[string](r, "PLAYER"),
			PlayerSlug:  records.Value[string](r, "PLAYER_SLUG"),
			Number:      records.Value[string](r, "NUM"),
			Position:    records.Value[string](r, "POSITION"),
			Height:      records.Value[string](r, "HEIGHT"),
			Weight:      records.Value[string](r, "WEIGHT"),
			Birthdate:   records.Value[string](r, "BIRTH_DATE"),
			Age:         records.Value[float64](r, "AGE"),
			Experience:  records.Value[string](r, "EXP"),
			School:      records.Value[string](r, "SCHOOL"),
			HowAcquired: records.Value[string](r, "HOW_ACQUIRED"),
		})
	}
	for _, r := range tables["coaches"] {
		out.Coaches = append(out.Coaches, Coach{
			TeamID:      records.Value[float64](r, "TEAM_ID"),
			Season:      records.Value[string](r, "SEASON"),
			CoachID:     records.Value[string](r, "COACH_ID"),
			FirstName:   records.Value[string](r, "FIRST_NAME"),
			LastName:    records.Value[string](r, "LAST_NAME"),
			CoachName:   records.Value[string](r, "COACH_NAME"),
			CoachType:   records.Value[string](r, "COACH_TYPE"),
			IsAssistant: records.Value[float64](r, "IS_ASSISTANT"),
		})
	}
	return out, nil
}
