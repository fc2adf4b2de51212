package endpoints

import (
	"encoding/json"
	"fmt"
)

// ScoreboardV3 fetches the nested-JSON scoreboard for one calendar date.
// This is one of the v3 endpoints that abandoned the resultSets encoding,
// so it decodes with plain struct tags instead of the records package.
type ScoreboardV3 struct {
	leagueID string
	gameDate string
}

// NewScoreboardV3 builds a scoreboardv3 request for a date (YYYY-MM-DD).
func NewScoreboardV3(gameDate string) ScoreboardV3 {
	return ScoreboardV3{leagueID: LeagueNBA, gameDate: gameDate}
}

func (ScoreboardV3) Path() string { return "scoreboardv3" }

func (e ScoreboardV3) Params() map[string]string {
	return map[string]string{
		"LeagueID": e.leagueID,
		"GameDate": e.gameDate,
	}
}

// Scoreboard is the day's slate of games.
type Scoreboard struct {
	GameDate string           `json:"gameDate"`
	LeagueID string           `json:"leagueId"`
	Games    []ScoreboardGame `json:"games"`
}

// ScoreboardGame is one game on the scoreboard, live or final.
type ScoreboardGame struct {
	GameID         string         `json:"gameId"`
	GameCode       string         `json:"gameCode"`
	GameStatus     int            `json:"gameStatus"`
	GameStatusText string         `json:"gameStatusText"`
	Period         int            `json:"period"`
	GameClock      string         `json:"gameClock"`
	GameTimeUTC    string         `json:"gameTimeUTC"`
	GameLabel      string         `json:"gameLabel"`
	SeriesText     string         `json:"seriesText"`
	HomeTeam       ScoreboardTeam `json:"homeTeam"`
	AwayTeam       ScoreboardTeam `json:"awayTeam"`
}

// ScoreboardTeam is one side of a scoreboard game.
type ScoreboardTeam struct {
	TeamID      int           `json:"teamId"`
	TeamName    string        `json:"teamName"`
	TeamCity    string        `json:"teamCity"`
	TeamTricode string        `json:"teamTricode"`
	Wins        int           `json:"wins"`
	Losses      int           `json:"losses"`
	Score       int           `json:"score"`
	Seed        int           `json:"seed"`
	Periods     []PeriodScore `json:"periods"`
}

// PeriodScore is one period's score line for a team.
type PeriodScore struct {
	Period     int    `json:"period"`
	PeriodType string `json:"periodType"`
	Score      int    `json:"score"`
}

func (e ScoreboardV3) Decode(body []byte) (Scoreboard, error) {
	var envelope struct {
		Scoreboard *Scoreboard `json:"scoreboard"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return Scoreboard{}, err
	}
	if envelope.Scoreboard == nil {
		return Scoreboard{}, fmt.Errorf("response has no scoreboard object")
	}
	return *envelope.Scoreboard, nil
}
