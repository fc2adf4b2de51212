// Command fastbreak runs a small JSON server demonstrating the client
// packages: standings, scoreboards, rosters and batched box scores, all
// fetched live from the NBA Stats API.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fastbreak/config"
	"fastbreak/endpoints"
	"fastbreak/games"
	"fastbreak/nba"
	"fastbreak/seasons"
	"fastbreak/standings"
	"fastbreak/teams"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var sigChan = make(chan os.Signal, 1)

var client *nba.Client

func init() {
	if err := config.LoadConfig(); err != nil {
		panic(err)
	}
	client = nba.New(
		nba.WithTimeout(config.RequestTimeout),
		nba.WithRequestsPerSecond(config.RequestsPerSecond),
		nba.WithLogger(slog.Default()),
	)
}

func main() {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/standings", func(c echo.Context) error {
		season := c.QueryParam("season")
		if season == "" {
			season = seasons.Current()
		}
		if !seasons.IsValid(season) {
			return echo.NewHTTPError(http.StatusBadRequest, "season must be YYYY-YY")
		}
		if !config.IsValidSeason(season) {
			return echo.NewHTTPError(http.StatusBadRequest, "season not supported")
		}
		rows, err := standings.Get(c.Request().Context(), client, season)
		if err != nil {
			return err
		}
		if conf := c.QueryParam("conference"); conf != "" {
			rows = standings.Conference(rows, conf)
		}
		return c.JSON(http.StatusOK, rows)
	})

	e.GET("/scoreboard/:date", func(c echo.Context) error {
		slate, err := games.OnDate(c.Request().Context(), client, c.Param("date"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusOK, slate)
	})

	e.GET("/players", func(c echo.Context) error {
		season := c.QueryParam("season")
		if season == "" {
			season = seasons.Current()
		}
		players, err := nba.Get(c.Request().Context(), client,
			endpoints.NewCommonAllPlayers(season, endpoints.AllPlayersCurrentOnly()))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, players)
	})

	e.GET("/teams/:query", func(c echo.Context) error {
		team, ok := teams.Find(c.Param("query"))
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound, "no such team")
		}
		return c.JSON(http.StatusOK, team)
	})

	e.GET("/teams/:query/roster", func(c echo.Context) error {
		team, ok := teams.Find(c.Param("query"))
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound, "no such team")
		}
		season := c.QueryParam("season")
		if season == "" {
			season = seasons.Current()
		}
		roster, err := nba.Get(c.Request().Context(), client, endpoints.NewCommonTeamRoster(team.ID, season))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, roster)
	})

	e.GET("/games/:date/boxscores", func(c echo.Context) error {
		ctx := c.Request().Context()
		slate, err := games.OnDate(ctx, client, c.Param("date"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		ids := make([]string, len(slate))
		for i, g := range slate {
			ids[i] = g.GameID
		}
		scores, err := games.BoxScores(ctx, client, ids, nba.WithConcurrency(config.BatchConcurrency))
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, scores)
	})

	go func() {
		signal.Notify(sigChan, syscall.SIGTERM, os.Interrupt, syscall.SIGINT)
		<-sigChan
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client.Close()
		if err := e.Shutdown(ctx); err != nil {
			e.Logger.Error(err)
		}
	}()

	if err := e.Start(config.ListenAddr); err != nil && err != http.ErrServerClosed {
		e.Logger.Fatal(err)
	}
}
