package endpoints

import (
	"strconv"

	"fastbreak/records"
)

// CommonPlayerInfo fetches one player's bio alongside their headline stats.
type CommonPlayerInfo struct {
	leagueID string
	playerID int
}

// NewCommonPlayerInfo builds a commonplayerinfo request for one player.
func NewCommonPlayerInfo(playerID int) CommonPlayerInfo {
	return CommonPlayerInfo{leagueID: LeagueNBA, playerID: playerID}
}

func (CommonPlayerInfo) Path() string { return "commonplayerinfo" }

func (e CommonPlayerInfo) Params() map[string]string {
	return map[string]string{
		"LeagueID": e.leagueID,
		"PlayerID": strconv.Itoa(e.playerID),
	}
}

// PlayerInfo is the decoded commonplayerinfo response. Info is always
// present; HeadlineStats is nil for players with no recorded games.
type PlayerInfo struct {
	Info          *PlayerBio
	HeadlineStats *HeadlineStats
}

// PlayerBio is the CommonPlayerInfo row.
type PlayerBio struct {
	PersonID         *float64
	FirstName        *string
	LastName         *string
	DisplayFirstLast *string
	Birthdate        *string
	School           *string
	Country          *string
	Height           *string
	Weight           *string
	SeasonExp        *float64
	Jersey           *string
	Position         *string
	RosterStatus     *string
	TeamID           *float64
	TeamName         *string
	TeamAbbreviation *string
	TeamCity         *string
	FromYear         *float64
	ToYear           *float64
	DraftYear        *string
	DraftRound       *string
	DraftNumber      *string
}

// HeadlineStats is the PlayerHeadlineStats row.
type HeadlineStats struct {
	PlayerID           *float64
	PlayerName         *string
	TimeFrame          *string
	Points             *float64
	Assists            *float64
	Rebounds           *float64
	AllStarAppearances *float64
}

func (e CommonPlayerInfo) Decode(body []byte) (PlayerInfo, error) {
	// Both tables are declared mandatory: a missing one means the upstream
	// changed shape and is surfaced, not papered over.
	tables, err := records.ParseNamedTables(body, []records.TableSpec{
		{Field: "info", Table: "CommonPlayerInfo", Single: true},
		{Field: "headline", Table: "PlayerHeadlineStats", Single: true},
	}, false)
	if err != nil {
		return PlayerInfo{}, err
	}
	var out PlayerInfo
	if rows := tables["info"]; len(rows) > 0 {
		r := rows[0]
		out.Info = &PlayerBio{
			PersonID:         records.Value[float64](r, "PERSON_ID"),
			FirstName:        records.Value[string](r, "FIRST_NAME"),
			LastName:         records.Value[string](r, "LAST_NAME"),
			DisplayFirstLast: records.Value[string](r, "DISPLAY_FIRST_LAST"),
			Birthdate:        records.Value[string](r, "BIRTHDATE"),
			School:           records.Value[string](r, "SCHOOL"),
			Country:          records.Value[string](r, "COUNTRY"),
			Height:           records.Value[string](r, "HEIGHT"),
			Weight:           records.Value[string](r, "WEIGHT"),
			SeasonExp:        records.Value[float64](r, "SEASON_EXP"),
			Jersey:           records.Value[string](r, "JERSEY"),
			Position:         records.Value[string](r, "POSITION"),
			RosterStatus:     records.Value[string](r, "ROSTERSTATUS"),
			TeamID:           records.Value[float64](r, "TEAM_ID"),
			TeamName:         records.Value[string](r, "TEAM_NAME"),
			TeamAbbreviation: records.Value[string](r, "TEAM_ABBREVIATION"),
			TeamCity:         records.Value[string](r, "TEAM_CITY"),
			FromYear:         records.Value[float64](r, "FROM_YEAR"),
			ToYear:           records.Value[float64](r, "TO_YEAR"),
			DraftYear:        records.Value[string](r, "DRAFT_YEAR"),
			DraftRound:       records.Value[string](r, "DRAFT_ROUND"),
			DraftNumber:      records.Value[string](r, "DRAFT_NUMBER"),
		}
	}
	if rows := tables["headline"]; len(rows) > 0 {
		r := rows[0]
		out.HeadlineStats = &HeadlineStats{
			PlayerID:           records.Value[float64](r, "PLAYER_ID"),
			PlayerName:         records.Value[string](r, "PLAYER_NAME"),
			TimeFrame:          records.Value[string](r, "TimeFrame"),
			Points:             records.Value[float64](r, "PTS"),
			Assists:            records.Value[float64](r, "AST"),
			Rebounds:           records.Value[float64](r, "REB"),
			AllStarAppearances: records.Value[float64](r, "ALL_STAR_APPEARANCES"),
		}
	}
	return out, nil
}
