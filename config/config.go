package config

import (
	"time"

	flag "github.com/spf13/pflag"
)

var ListenAddr string
var RequestTimeout time.Duration
var RequestsPerSecond float64
var BatchConcurrency int

var ValidSeasons = []string{
	"2025-26",
	"2024-25",
	"2023-24",
	"2022-23",
	"2021-22",
	"2020-21",
	"2019-20",
	"2018-19",
	"2017-18",
	"2016-17",
	"2015-16",
	"2014-15",
}

func LoadConfig() error {
	flag.StringVar(&ListenAddr, "listen", ":8080", "address the demo server listens on")
	flag.DurationVar(&RequestTimeout, "timeout", 30*time.Second, "per-request timeout against the stats API")
	flag.Float64Var(&RequestsPerSecond, "rps", 2, "rate limit for outgoing stats API requests")
	flag.IntVar(&BatchConcurrency, "concurrency", 3, "fan-out ceiling for batch fetches")
	flag.Parse()
	return nil
}

func IsValidSeason(season string) bool {
	for _, s := range ValidSeasons {
		if s == season {
			return true
		}
	}
	return false
}
