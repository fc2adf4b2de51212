// Package seasons handles the league's "YYYY-YY" season labels.
//
// A season straddles two calendar years: the 2023-24 season runs from
// October 2023 into June 2024. Everything here pivots on October as the
// boundary month.
package seasons

import (
	"fmt"
	"regexp"
	"time"
)

var seasonPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// FromDate returns the season label the given date falls in. Dates in
// October or later belong to the season starting that year; earlier dates
// belong to the season that started the previous year.
func FromDate(t time.Time) string {
	year := t.Year()
	if t.Month() < time.October {
		year--
	}
	return Label(year)
}

// Current returns the season label for today.
func Current() string {
	return FromDate(time.Now())
}

// Label formats a season label from its starting year, e.g. 2023 -> "2023-24".
func Label(startYear int) string {
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// StartYear returns the starting calendar year of a season label.
func StartYear(season string) (int, error) {
	if !IsValid(season) {
		return 0, fmt.Errorf("invalid season %q, want YYYY-YY", season)
	}
	var year int
	fmt.Sscanf(season, "%4d", &year)
	return year, nil
}

// ToSeasonID converts a season label to the SEASON_ID form game-log rows
// carry, e.g. "2023-24" -> "22023". The leading "2" marks regular season.
func ToSeasonID(season string) (string, error) {
	year, err := StartYear(season)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("2%d", year), nil
}

// IsValid reports whether season is in "YYYY-YY" form with consecutive
// years.
func IsValid(season string) bool {
	if !seasonPattern.MatchString(season) {
		return false
	}
	var year int
	fmt.Sscanf(season, "%4d", &year)
	var suffix int
	fmt.Sscanf(season[5:], "%2d", &suffix)
	return (year+1)%100 == suffix
}

// Range returns season labels from the first starting year through the
// last, newest first.
func Range(firstStartYear, lastStartYear int) []string {
	if lastStartYear < firstStartYear {
		return []string{}
	}
	out := make([]string, 0, lastStartYear-firstStartYear+1)
	for y := lastStartYear; y >= firstStartYear; y-- {
		out = append(out, Label(y))
	}
	return out
}
