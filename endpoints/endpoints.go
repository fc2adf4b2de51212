// Package endpoints defines typed request objects for the NBA Stats API.
//
// Each endpoint is an immutable value: fields are unexported and set only by
// the constructor and its options, so a constructed request can be shared
// freely across concurrent fetches. Params always builds a fresh map from
// the same fields, never touching hidden state.
//
// Whether an unset optional parameter is omitted or sent as an empty string
// is a per-endpoint fact of the upstream contract, not a policy: some
// endpoints reject requests missing a key they treat as mandatory-but-blank.
// Each endpoint file encodes its observed behavior literally.
package endpoints

// Season type values accepted by SeasonType parameters.
const (
	SeasonTypeRegular   = "Regular Season"
	SeasonTypePlayoffs  = "Playoffs"
	SeasonTypePreSeason = "Pre Season"
	SeasonTypeAllStar   = "All Star"
)

// Per-mode values accepted by PerMode parameters.
const (
	PerModeTotals  = "Totals"
	PerModePerGame = "PerGame"
	PerModePer36   = "Per36"
	PerModePer100  = "Per100Possessions"
)

// League IDs. Only the NBA is exercised here but the upstream accepts all.
const (
	LeagueNBA          = "00"
	LeagueABA          = "01"
	LeagueWNBA         = "10"
	LeagueGLeague      = "15"
	LeagueSummerLeague = "20"
)
