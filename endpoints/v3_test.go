package endpoints

import (
	"strings"
	"testing"
)

func TestScoreboardV3Decode(t *testing.T) {
	body := []byte(`{
		"scoreboard": {
			"gameDate": "2024-01-15",
			"leagueId": "00",
			"games": [{
				"gameId": "0022300561",
				"gameCode": "20240115/CHIOKC",
				"gameStatus": 3,
				"gameStatusText": "Final",
				"period": 4,
				"gameClock": "",
				"gameTimeUTC": "2024-01-16T00:00:00Z",
				"homeTeam": {
					"teamId": 1610612760,
					"teamName": "Thunder",
					"teamCity": "Oklahoma City",
					"teamTricode": "OKC",
					"wins": 28,
					"losses": 13,
					"score": 124,
					"periods": [
						{"period": 1, "periodType": "REGULAR", "score": 30},
						{"period": 2, "periodType": "REGULAR", "score": 34}
					]
				},
				"awayTeam": {
					"teamId": 1610612741,
					"teamName": "Bulls",
					"teamCity": "Chicago",
					"teamTricode": "CHI",
					"score": 104
				}
			}]
		}
	}`)
	board, err := NewScoreboardV3("2024-01-15").Decode(body)
	if err != nil {
		t.Fatal(err)
	}
	if board.GameDate != "2024-01-15" || len(board.Games) != 1 {
		t.Fatalf("decoded wrong: %+v", board)
	}
	game := board.Games[0]
	if game.HomeTeam.TeamTricode != "OKC" || game.HomeTeam.Score != 124 {
		t.Errorf("home team decoded wrong: %+v", game.HomeTeam)
	}
	if len(game.HomeTeam.Periods) != 2 || game.HomeTeam.Periods[1].Score != 34 {
		t.Errorf("periods decoded wrong: %+v", game.HomeTeam.Periods)
	}
	if game.GameStatusText != "Final" {
		t.Errorf("status = %q", game.GameStatusText)
	}
}

func TestScoreboardV3DecodeMissingEnvelope(t *testing.T) {
	_, err := NewScoreboardV3("2024-01-15").Decode([]byte(`{}`))
	if err == nil || !strings.Contains(err.Error(), "scoreboard") {
		t.Errorf("got %v, want missing-scoreboard error", err)
	}
}

func TestPlayByPlayDecode(t *testing.T) {
	body := []byte(`{
		"game": {
			"gameId": "0022300561",
			"actions": [
				{
					"actionNumber": 2,
					"actionId": 1,
					"clock": "PT11M58.00S",
					"period": 1,
					"teamId": 1610612760,
					"teamTricode": "OKC",
					"personId": 1628983,
					"playerName": "Gilgeous-Alexander",
					"playerNameI": "S. Gilgeous-Alexander",
					"shotDistance": 14,
					"shotResult": "Made",
					"isFieldGoal": 1,
					"scoreHome": "2",
					"scoreAway": "0",
					"description": "S. Gilgeous-Alexander 14' pullup shot",
					"actionType": "Made Shot",
					"subType": "pullup",
					"videoAvailable": 1
				}
			]
		}
	}`)
	game, err := NewPlayByPlay("0022300561").Decode(body)
	if err != nil {
		t.Fatal(err)
	}
	if game.GameID != "0022300561" || len(game.Actions) != 1 {
		t.Fatalf("decoded wrong: %+v", game)
	}
	action := game.Actions[0]
	if action.Clock != "PT11M58.00S" || action.ShotResult != "Made" || action.IsFieldGoal != 1 {
		t.Errorf("action decoded wrong: %+v", action)
	}
}

func TestPlayByPlayPeriodsParams(t *testing.T) {
	params := NewPlayByPlay("0022300561", PlayByPlayPeriods(2, 3)).Params()
	if params["StartPeriod"] != "2" || params["EndPeriod"] != "3" {
		t.Errorf("got %v", params)
	}
	params = NewPlayByPlay("0022300561").Params()
	if params["StartPeriod"] != "0" || params["EndPeriod"] != "0" {
		t.Errorf("defaults = %v, want 0/0", params)
	}
}

func TestBoxScoreTraditionalV3Decode(t *testing.T) {
	body := []byte(`{
		"boxScoreTraditional": {
			"gameId": "0022300561",
			"homeTeamId": 1610612760,
			"awayTeamId": 1610612741,
			"homeTeam": {
				"teamId": 1610612760,
				"teamTricode": "OKC",
				"players": [{
					"personId": 1628983,
					"firstName": "Shai",
					"familyName": "Gilgeous-Alexander",
					"position": "G",
					"comment": "",
					"jerseyNum": "2",
					"statistics": {
						"minutes": "PT36M45.00S",
						"fieldGoalsMade": 12,
						"fieldGoalsAttempted": 20,
						"points": 31,
						"assists": 8,
						"reboundsTotal": 5,
						"plusMinusPoints": 14.0
					}
				}],
				"statistics": {"points": 124, "reboundsTotal": 46}
			},
			"awayTeam": {
				"teamId": 1610612741,
				"teamTricode": "CHI",
				"statistics": {"points": 104}
			}
		}
	}`)
	box, err := NewBoxScoreTraditionalV3("0022300561").Decode(body)
	if err != nil {
		t.Fatal(err)
	}
	if box.GameID != "0022300561" || box.HomeTeamID != 1610612760 {
		t.Fatalf("decoded wrong: %+v", box)
	}
	if box.HomeTeam.Statistics.Points != 124 {
		t.Errorf("team totals = %+v", box.HomeTeam.Statistics)
	}
	player := box.HomeTeam.Players[0]
	if player.FamilyName != "Gilgeous-Alexander" || player.Statistics.Points != 31 {
		t.Errorf("player line = %+v", player)
	}
	if player.Statistics.Minutes != "PT36M45.00S" {
		t.Errorf("minutes = %q", player.Statistics.Minutes)
	}
}

func TestBoxScoreTraditionalV3DecodeMissingEnvelope(t *testing.T) {
	_, err := NewBoxScoreTraditionalV3("0022300561").Decode([]byte(`{"meta": {}}`))
	if err == nil {
		t.Error("want error for body without boxScoreTraditional")
	}
}

func TestCumeStatsPlayerDecode(t *testing.T) {
	body := []byte(`{
		"resultSets": [
			{
				"name": "GameByGameStats",
				"headers": ["GAME_ID", "PTS"],
				"rowSet": [["0022300001", 28], ["0022300002", 35]]
			},
			{
				"name": "TotalPlayerStats",
				"headers": ["GP", "PTS"],
				"rowSet": [[2, 63]]
			}
		]
	}`)
	stats, err := NewCumeStatsPlayer(1628983, "2023-24", []string{"0022300001", "0022300002"}).Decode(body)
	if err != nil {
		t.Fatal(err)
	}
	if len(stats.GameByGame) != 2 {
		t.Errorf("GameByGame = %d rows", len(stats.GameByGame))
	}
	if stats.Totals == nil {
		t.Fatal("Totals is nil")
	}
	if pts, ok := stats.Totals["PTS"].(float64); !ok || pts != 63 {
		t.Errorf("Totals PTS = %v", stats.Totals["PTS"])
	}
}
