package endpoints

import (
	"encoding/json"
	"fmt"
)

// BoxScoreTraditionalV3 fetches one game's traditional box score from the
// nested v3 endpoint.
type BoxScoreTraditionalV3 struct {
	gameID string
}

// NewBoxScoreTraditionalV3 builds a boxscoretraditionalv3 request for a
// 10-digit game ID.
func NewBoxScoreTraditionalV3(gameID string) BoxScoreTraditionalV3 {
	return BoxScoreTraditionalV3{gameID: gameID}
}

func (BoxScoreTraditionalV3) Path() string { return "boxscoretraditionalv3" }

func (e BoxScoreTraditionalV3) Params() map[string]string {
	return map[string]string{"GameID": e.gameID}
}

// BoxScore is one game's traditional box score.
type BoxScore struct {
	GameID     string       `json:"gameId"`
	HomeTeamID int          `json:"homeTeamId"`
	AwayTeamID int          `json:"awayTeamId"`
	HomeTeam   BoxScoreTeam `json:"homeTeam"`
	AwayTeam   BoxScoreTeam `json:"awayTeam"`
}

// BoxScoreTeam is one side's players and team totals.
type BoxScoreTeam struct {
	TeamID      int                   `json:"teamId"`
	TeamCity    string                `json:"teamCity"`
	TeamName    string                `json:"teamName"`
	TeamTricode string                `json:"teamTricode"`
	Players     []BoxScorePlayer      `json:"players"`
	Statistics  TraditionalStatistics `json:"statistics"`
}

// BoxScorePlayer is one player's line. Comment is non-empty for players who
// did not play (DNP, inactive) and Statistics is zeroed for them.
type BoxScorePlayer struct {
	PersonID   int                   `json:"personId"`
	FirstName  string                `json:"firstName"`
	FamilyName string                `json:"familyName"`
	NameI      string                `json:"nameI"`
	Position   string                `json:"position"`
	Comment    string                `json:"comment"`
	JerseyNum  string                `json:"jerseyNum"`
	Statistics TraditionalStatistics `json:"statistics"`
}

// TraditionalStatistics is the traditional stat line shared by player rows
// and team totals. Minutes is ISO-8601 duration form, e.g. "PT36M45.00S".
type TraditionalStatistics struct {
	Minutes                 string  `json:"minutes"`
	FieldGoalsMade          int     `json:"fieldGoalsMade"`
	FieldGoalsAttempted     int     `json:"fieldGoalsAttempted"`
	FieldGoalsPercentage    float64 `json:"fieldGoalsPercentage"`
	ThreePointersMade       int     `json:"threePointersMade"`
	ThreePointersAttempted  int     `json:"threePointersAttempted"`
	ThreePointersPercentage float64 `json:"threePointersPercentage"`
	FreeThrowsMade          int     `json:"freeThrowsMade"`
	FreeThrowsAttempted     int     `json:"freeThrowsAttempted"`
	FreeThrowsPercentage    float64 `json:"freeThrowsPercentage"`
	ReboundsOffensive       int     `json:"reboundsOffensive"`
	ReboundsDefensive       int     `json:"reboundsDefensive"`
	ReboundsTotal           int     `json:"reboundsTotal"`
	Assists                 int     `json:"assists"`
	Steals                  int     `json:"steals"`
	Blocks                  int     `json:"blocks"`
	Turnovers               int     `json:"turnovers"`
	FoulsPersonal           int     `json:"foulsPersonal"`
	Points                  int     `json:"points"`
	PlusMinusPoints         float64 `json:"plusMinusPoints"`
}

func (e BoxScoreTraditionalV3) Decode(body []byte) (BoxScore, error) {
	var envelope struct {
		BoxScore *BoxScore `json:"boxScoreTraditional"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return BoxScore{}, err
	}
	if envelope.BoxScore == nil {
		return BoxScore{}, fmt.Errorf("response has no boxScoreTraditional object")
	}
	return *envelope.BoxScore, nil
}
