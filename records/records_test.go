package records

import (
	"errors"
	"reflect"
	"testing"
)

var playerStatsBody = []byte(`{
	"resultSets": [
		{
			"name": "PlayerStats",
			"headers": ["PLAYER_ID", "PTS"],
			"rowSet": [[1, 10], [2, 20]]
		},
		{
			"name": "TeamStats",
			"headers": ["TEAM_ID"],
			"rowSet": []
		}
	]
}`)

func TestIsTabular(t *testing.T) {
	cases := []struct {
		name string
		data string
		want bool
	}{
		{"resultSets", `{"resultSets": []}`, true},
		{"resultSet", `{"resultSet": {"name": "x", "headers": [], "rowSet": []}}`, true},
		{"nested v3", `{"scoreboard": {"games": []}}`, false},
		{"array body", `[1, 2, 3]`, false},
		{"not json", `nope`, false},
		{"empty object", `{}`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsTabular([]byte(tc.data)); got != tc.want {
				t.Errorf("IsTabular(%s) = %v, want %v", tc.data, got, tc.want)
			}
		})
	}
}

func TestParseTable(t *testing.T) {
	rows, err := ParseTable(playerStatsBody, "PlayerStats")
	if err != nil {
		t.Fatal(err)
	}
	want := []Record{
		{"PLAYER_ID": float64(1), "PTS": float64(10)},
		{"PLAYER_ID": float64(2), "PTS": float64(20)},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("got %v, want %v", rows, want)
	}
}

func TestParseTableAbsentNameYieldsEmpty(t *testing.T) {
	rows, err := ParseTable(playerStatsBody, "NoSuchTable")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestParseTableMatchIsCaseSensitive(t *testing.T) {
	rows, err := ParseTable(playerStatsBody, "playerstats")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("lowercased name matched %d rows, want 0", len(rows))
	}
}

func TestParseTableNotTabular(t *testing.T) {
	_, err := ParseTable([]byte(`{"scoreboard": {}}`), "PlayerStats")
	if !errors.Is(err, ErrNotTabular) {
		t.Errorf("got %v, want ErrNotTabular", err)
	}
}

func TestParseTableRowLengthMismatch(t *testing.T) {
	body := []byte(`{
		"resultSets": [
			{"name": "Bad", "headers": ["A", "B"], "rowSet": [[1, 2], [3]]}
		]
	}`)
	_, err := ParseTable(body, "Bad")
	var rowErr *RowLengthError
	if !errors.As(err, &rowErr) {
		t.Fatalf("got %v, want RowLengthError", err)
	}
	if rowErr.Row != 1 || rowErr.Headers != 2 || rowErr.Values != 1 {
		t.Errorf("got %+v, want row 1 with 1 value for 2 headers", rowErr)
	}
}

func TestParseSingleTable(t *testing.T) {
	body := []byte(`{
		"resultSet": {"name": "Leaders", "headers": ["RANK"], "rowSet": [[1]]}
	}`)
	rows, err := ParseSingleTable(body)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || *Value[float64](rows[0], "RANK") != 1 {
		t.Errorf("got %v", rows)
	}
}

func TestParseSingleTableMissing(t *testing.T) {
	_, err := ParseSingleTable(playerStatsBody)
	var missing *MissingTableError
	if !errors.As(err, &missing) {
		t.Errorf("got %v, want MissingTableError", err)
	}
}

func TestParseFirstRow(t *testing.T) {
	row, err := ParseFirstRow(playerStatsBody, "PlayerStats")
	if err != nil {
		t.Fatal(err)
	}
	if got := *Value[float64](row, "PLAYER_ID"); got != 1 {
		t.Errorf("PLAYER_ID = %v, want 1", got)
	}

	row, err = ParseFirstRow(playerStatsBody, "TeamStats")
	if err != nil {
		t.Fatal(err)
	}
	if row != nil {
		t.Errorf("empty table first row = %v, want nil", row)
	}

	row, err = ParseFirstRow(playerStatsBody, "NoSuchTable")
	if err != nil {
		t.Fatal(err)
	}
	if row != nil {
		t.Errorf("absent table first row = %v, want nil", row)
	}
}

func TestParseNamedTables(t *testing.T) {
	specs := []TableSpec{
		{Field: "players", Table: "PlayerStats"},
		{Field: "teams", Table: "TeamStats"},
	}
	out, err := ParseNamedTables(playerStatsBody, specs, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(out["players"]) != 2 {
		t.Errorf("players = %d rows, want 2", len(out["players"]))
	}
	if len(out["teams"]) != 0 {
		t.Errorf("teams = %d rows, want 0", len(out["teams"]))
	}
}

func TestParseNamedTablesMissingDeclared(t *testing.T) {
	specs := []TableSpec{{Field: "x", Table: "NoSuchTable"}}

	_, err := ParseNamedTables(playerStatsBody, specs, false)
	var missing *MissingTableError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want MissingTableError", err)
	}
	if missing.Table != "NoSuchTable" {
		t.Errorf("Table = %q", missing.Table)
	}
	if !reflect.DeepEqual(missing.Available, []string{"PlayerStats", "TeamStats"}) {
		t.Errorf("Available = %v", missing.Available)
	}

	out, err := ParseNamedTables(playerStatsBody, specs, true)
	if err != nil {
		t.Fatal(err)
	}
	if rows := out["x"]; rows == nil || len(rows) != 0 {
		t.Errorf("ignoreMissing gave %v, want empty slice", rows)
	}
}

func TestParseNamedTablesSingleTruncates(t *testing.T) {
	specs := []TableSpec{{Field: "top", Table: "PlayerStats", Single: true}}
	out, err := ParseNamedTables(playerStatsBody, specs, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(out["top"]) != 1 {
		t.Fatalf("got %d rows, want 1", len(out["top"]))
	}
	if got := *Value[float64](out["top"][0], "PLAYER_ID"); got != 1 {
		t.Errorf("kept row PLAYER_ID = %v, want first row", got)
	}
}

func TestValue(t *testing.T) {
	r := Record{"PTS": float64(31), "NAME": "Jalen", "WL": nil}
	if got := Value[float64](r, "PTS"); got == nil || *got != 31 {
		t.Errorf("PTS = %v", got)
	}
	if got := Value[string](r, "NAME"); got == nil || *got != "Jalen" {
		t.Errorf("NAME = %v", got)
	}
	if got := Value[float64](r, "NAME"); got != nil {
		t.Errorf("type mismatch gave %v, want nil", got)
	}
	if got := Value[string](r, "WL"); got != nil {
		t.Errorf("null column gave %v, want nil", got)
	}
	if got := Value[string](r, "ABSENT"); got != nil {
		t.Errorf("absent key gave %v, want nil", got)
	}
}
