package nba

import (
	"context"
	"io"
	"log/slog"

	"github.com/josephoneill/basketball-bot-telegram/internal/nba/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAPI scripts every upstream endpoint for the service and plugin tests.
type fakeAPI struct {
	scoreboard    *api.ResultSetResponse
	scoreboardErr error

	career    *api.ResultSetResponse
	careerErr error

	gameLog    *api.ResultSetResponse
	gameLogErr error

	info    *api.ResultSetResponse
	infoErr error

	standings    *api.ResultSetResponse
	standingsErr error

	box    *api.Boxscore
	boxErr error

	allPlayers      *api.ResultSetResponse
	allPlayersErr   error
	allPlayersCalls int
}

func (f *fakeAPI) Scoreboard(ctx context.Context, gameDate string) (*api.ResultSetResponse, error) {
	return f.scoreboard, f.scoreboardErr
}

func (f *fakeAPI) PlayerCareerStats(ctx context.Context, playerID int) (*api.ResultSetResponse, error) {
	return f.career, f.careerErr
}

func (f *fakeAPI) PlayerGameLog(ctx context.Context, playerID int, season string) (*api.ResultSetResponse, error) {
	return f.gameLog, f.gameLogErr
}

func (f *fakeAPI) CommonPlayerInfo(ctx context.Context, playerID int) (*api.ResultSetResponse, error) {
	return f.info, f.infoErr
}

func (f *fakeAPI) LeagueStandings(ctx context.Context, season string) (*api.ResultSetResponse, error) {
	return f.standings, f.standingsErr
}

func (f *fakeAPI) LiveBoxscore(ctx context.Context, gameID string) (*api.Boxscore, error) {
	return f.box, f.boxErr
}

func (f *fakeAPI) CommonAllPlayers(ctx context.Context, season string) (*api.ResultSetResponse, error) {
	f.allPlayersCalls++
	return f.allPlayers, f.allPlayersErr
}

// resultSets builds a response envelope from named tables.
func resultSets(sets ...api.ResultSet) *api.ResultSetResponse {
	return &api.ResultSetResponse{ResultSets: sets}
}

// playerInfoSet builds a CommonPlayerInfo response for one player.
func playerInfoSet(teamID int, first, last string) *api.ResultSetResponse {
	return resultSets(api.ResultSet{
		Name:    "CommonPlayerInfo",
		Headers: []string{"PERSON_ID", "FIRST_NAME", "LAST_NAME", "TEAM_ID"},
		RowSet:  [][]any{{float64(2544), first, last, float64(teamID)}},
	})
}

// allPlayersSet builds a CommonAllPlayers response from id/name pairs.
func allPlayersSet(players ...any) *api.ResultSetResponse {
	rows := make([][]any, 0, len(players)/2)
	for i := 0; i+1 < len(players); i += 2 {
		rows = append(rows, []any{float64(players[i].(int)), players[i+1]})
	}
	return resultSets(api.ResultSet{
		Name:    "CommonAllPlayers",
		Headers: []string{"PERSON_ID", "DISPLAY_FIRST_LAST"},
		RowSet:  rows,
	})
}
