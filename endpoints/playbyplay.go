package endpoints

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// PlayByPlay fetches the action-by-action log of one game from the nested
// v3 endpoint.
type PlayByPlay struct {
	gameID      string
	startPeriod int
	endPeriod   int
}

// PlayByPlayOption configures a PlayByPlay request.
type PlayByPlayOption func(*PlayByPlay)

// PlayByPlayPeriods restricts the log to periods [start, end]. Zero means
// unbounded on that side.
func PlayByPlayPeriods(start, end int) PlayByPlayOption {
	return func(e *PlayByPlay) {
		e.startPeriod = start
		e.endPeriod = end
	}
}

// NewPlayByPlay builds a playbyplayv3 request for a 10-digit game ID.
func NewPlayByPlay(gameID string, opts ...PlayByPlayOption) PlayByPlay {
	e := PlayByPlay{gameID: gameID}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

func (PlayByPlay) Path() string { return "playbyplayv3" }

func (e PlayByPlay) Params() map[string]string {
	return map[string]string{
		"GameID":      e.gameID,
		"StartPeriod": strconv.Itoa(e.startPeriod),
		"EndPeriod":   strconv.Itoa(e.endPeriod),
	}
}

// GameActions is one game's full action log.
type GameActions struct {
	GameID  string   `json:"gameId"`
	Actions []Action `json:"actions"`
}

// Action is one play-by-play event. Clock is ISO-8601 duration form,
// e.g. "PT11M23.00S".
type Action struct {
	ActionNumber   int    `json:"actionNumber"`
	ActionID       int    `json:"actionId"`
	Clock          string `json:"clock"`
	Period         int    `json:"period"`
	TeamID         int    `json:"teamId"`
	TeamTricode    string `json:"teamTricode"`
	PersonID       int    `json:"personId"`
	PlayerName     string `json:"playerName"`
	PlayerNameI    string `json:"playerNameI"`
	ShotDistance   int    `json:"shotDistance"`
	ShotResult     string `json:"shotResult"`
	IsFieldGoal    int    `json:"isFieldGoal"`
	ScoreHome      string `json:"scoreHome"`
	ScoreAway      string `json:"scoreAway"`
	Description    string `json:"description"`
	ActionType     string `json:"actionType"`
	SubType        string `json:"subType"`
	VideoAvailable int    `json:"videoAvailable"`
}

func (e PlayByPlay) Decode(body []byte) (GameActions, error) {
	var envelope struct {
		Game *GameActions `json:"game"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return GameActions{}, err
	}
	if envelope.Game == nil {
		return GameActions{}, fmt.Errorf("response has no game object")
	}
	return *envelope.Game, nil
}
