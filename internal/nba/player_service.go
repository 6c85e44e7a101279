package nba

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/josephoneill/basketball-bot-telegram/internal/nba/api"
	"github.com/josephoneill/basketball-bot-telegram/internal/stats"
)

// statsAPI is the slice of [api.Client] the services consume. Tests
// substitute a scripted fake.
type statsAPI interface {
	Scoreboard(ctx context.Context, gameDate string) (*api.ResultSetResponse, error)
	PlayerCareerStats(ctx context.Context, playerID int) (*api.ResultSetResponse, error)
	PlayerGameLog(ctx context.Context, playerID int, season string) (*api.ResultSetResponse, error)
	CommonPlayerInfo(ctx context.Context, playerID int) (*api.ResultSetResponse, error)
	LeagueStandings(ctx context.Context, season string) (*api.ResultSetResponse, error)
	LiveBoxscore(ctx context.Context, gameID string) (*api.Boxscore, error)
}

// playerService assembles player stat records from the upstream feeds.
// The current-game path walks a fallback chain: live boxscore first, then
// the season game log, then a not-started placeholder built from today's
// schedule, and only then "no recent game".
type playerService struct {
	client statsAPI
	logger *slog.Logger
	now    func() time.Time
}

func newPlayerService(client statsAPI, logger *slog.Logger) *playerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &playerService{client: client, logger: logger, now: easternNow}
}

// career builds a career-totals record from the CareerTotalsRegularSeason
// result set. An empty row set yields a record with nil points, which the
// formatter renders as invalid input.
func (s *playerService) career(ctx context.Context, playerID int) (stats.StatRecord, error) {
	resp, err := s.client.PlayerCareerStats(ctx, playerID)
	if err != nil {
		return stats.StatRecord{}, fmt.Errorf("fetching career stats for player %d: %w", playerID, err)
	}
	table, err := FindResultSet(resp, "CareerTotalsRegularSeason")
	if err != nil {
		return stats.StatRecord{}, err
	}
	if table.Empty() {
		return stats.StatRecord{Tense: stats.TenseCompleted}, nil
	}
	return totalsRecord(table, table.Rows[0], stats.TenseCompleted, ""), nil
}

// season builds a season-totals record. Empty year bounds select the most
// recent season in the player's log; explicit bounds select that season id
// or, when the player never played it, a nil-points record.
func (s *playerService) season(ctx context.Context, playerID int, startYear, endYear string) (stats.StatRecord, error) {
	resp, err := s.client.PlayerCareerStats(ctx, playerID)
	if err != nil {
		return stats.StatRecord{}, fmt.Errorf("fetching season stats for player %d: %w", playerID, err)
	}
	table, err := FindResultSet(resp, "SeasonTotalsRegularSeason")
	if err != nil {
		return stats.StatRecord{}, err
	}
	if table.Empty() {
		return stats.StatRecord{Tense: stats.TenseCompleted}, nil
	}

	current := currentSeason(s.now())
	want := seasonIDFromBounds(startYear, endYear, current)

	var row []any
	if startYear == "" {
		row = table.Rows[len(table.Rows)-1]
		want = table.Str(row, "SEASON_ID")
	} else {
		for _, r := range table.Rows {
			if table.Str(r, "SEASON_ID") == want {
				row = r
				break
			}
		}
	}
	if row == nil {
		return stats.StatRecord{Tense: stats.TenseCompleted, Season: want}, nil
	}

	tense := stats.TenseCompleted
	if want == current {
		tense = stats.TenseInProgress
	}
	return totalsRecord(table, row, tense, want), nil
}

// totalsRecord maps one totals row (career or season shape, both carry
// GP/PTS/REB/AST/FTM/FTA) into a record.
func totalsRecord(t Table, row []any, tense stats.Tense, season string) stats.StatRecord {
	points := t.Int(row, "PTS")
	return stats.StatRecord{
		Tense:               tense,
		Season:              season,
		GamesPlayed:         t.Int(row, "GP"),
		Points:              &points,
		Rebounds:            t.Int(row, "REB"),
		Assists:             t.Int(row, "AST"),
		FreeThrowsMade:      t.Int(row, "FTM"),
		FreeThrowsAttempted: t.Int(row, "FTA"),
	}
}

// current walks the fallback chain for "what is the player doing right now".
func (s *playerService) current(ctx context.Context, playerID int) (stats.StatRecord, error) {
	info, err := s.playerInfo(ctx, playerID)
	if err != nil {
		return stats.StatRecord{}, err
	}

	today := s.now().Format("2006-01-02")
	board, err := s.client.Scoreboard(ctx, today)
	if err != nil {
		s.logger.Warn("nba: scoreboard fetch failed, falling back to game log", "error", err)
		board = nil
	}

	gameID, status := todaysGame(board, info.teamID)
	if gameID != "" {
		rec, ok := s.liveRecord(ctx, gameID, info)
		if ok {
			return rec, nil
		}
		// A scheduled game with no fetchable boxscore has not tipped off.
		if !looksStarted(status) {
			return stats.StatRecord{Tense: stats.TenseNotStarted, Status: status}, nil
		}
	}

	rec, err := s.lastGameRecord(ctx, playerID)
	if err != nil {
		return stats.StatRecord{}, err
	}
	return rec, nil
}

// playerInfo is the slice of CommonPlayerInfo the chain needs to locate the
// player inside a boxscore.
type playerInfo struct {
	teamID    int
	firstName string
	lastName  string
}

func (s *playerService) playerInfo(ctx context.Context, playerID int) (playerInfo, error) {
	resp, err := s.client.CommonPlayerInfo(ctx, playerID)
	if err != nil {
		return playerInfo{}, fmt.Errorf("fetching player info for %d: %w", playerID, err)
	}
	table, err := FindResultSet(resp, "CommonPlayerInfo")
	if err != nil {
		return playerInfo{}, err
	}
	if table.Empty() {
		return playerInfo{}, fmt.Errorf("player %d: %w", playerID, stats.ErrMalformedResponse)
	}
	row := table.Rows[0]
	return playerInfo{
		teamID:    table.Int(row, "TEAM_ID"),
		firstName: table.Str(row, "FIRST_NAME"),
		lastName:  table.Str(row, "LAST_NAME"),
	}, nil
}

// todaysGame scans the scoreboard for the team's game and returns its id
// plus the schedule's status text. Empty id means no game today.
func todaysGame(board *api.ResultSetResponse, teamID int) (gameID, status string) {
	if board == nil {
		return "", ""
	}
	lines, err := FindResultSet(board, "LineScore")
	if err != nil {
		return "", ""
	}
	for _, row := range lines.Rows {
		if lines.Int(row, "TEAM_ID") == teamID {
			gameID = lines.Str(row, "GAME_ID")
			break
		}
	}
	if gameID == "" {
		return "", ""
	}
	headers, err := FindResultSet(board, "GameHeader")
	if err != nil {
		return gameID, ""
	}
	for _, row := range headers.Rows {
		if headers.Str(row, "GAME_ID") == gameID {
			status = headers.Str(row, "GAME_STATUS_TEXT")
			break
		}
	}
	return gameID, status
}

// looksStarted reports whether a schedule status text describes a game in
// progress or finished. Pre-game statuses are start times ("7:00 pm ET").
func looksStarted(status string) bool {
	s := strings.ToLower(status)
	return s == "final" || strings.HasPrefix(s, "q") || strings.Contains(s, "halftime") || strings.HasSuffix(s, "ot")
}

// liveRecord fetches the live boxscore and maps the player's row. The
// second return is false when the boxscore or the player's line is not
// available yet, which sends the caller down the fallback chain.
func (s *playerService) liveRecord(ctx context.Context, gameID string, info playerInfo) (stats.StatRecord, bool) {
	box, err := s.client.LiveBoxscore(ctx, gameID)
	if err != nil {
		s.logger.Debug("nba: live boxscore not available", "game_id", gameID, "error", err)
		return stats.StatRecord{}, false
	}

	side := box.Game.HomeTeam
	if side.TeamID != info.teamID {
		side = box.Game.AwayTeam
	}
	var line map[string]any
	for _, p := range side.Players {
		if p.FirstName == info.firstName && p.FamilyName == info.lastName {
			line = p.Statistics
			break
		}
	}
	if line == nil {
		return stats.StatRecord{}, false
	}

	// Null points means the feed exists but the game has not tipped off.
	if line["points"] == nil {
		return stats.StatRecord{Tense: stats.TenseNotStarted, Status: box.Game.GameStatusText}, true
	}

	tense := stats.TenseCompleted
	if box.Game.GameStatusText != "Final" {
		tense = stats.TenseInProgress
	}
	points := stats.Num(line["points"])
	ftm, fta := stats.Num(line["freeThrowsMade"]), stats.Num(line["freeThrowsAttempted"])
	return stats.StatRecord{
		Tense:               tense,
		Status:              box.Game.GameStatusText,
		Points:              &points,
		Rebounds:            stats.Num(line["reboundsOffensive"]) + stats.Num(line["reboundsDefensive"]),
		Assists:             stats.Num(line["assists"]),
		FieldGoalPct:        stats.Percentage(stats.Num(line["fieldGoalsMade"]), stats.Num(line["fieldGoalsAttempted"])),
		ThreePointPct:       stats.Percentage(stats.Num(line["threePointersMade"]), stats.Num(line["threePointersAttempted"])),
		FreeThrowPct:        stats.Percentage(ftm, fta),
		FreeThrowsMade:      ftm,
		FreeThrowsAttempted: fta,
		Minutes:             playedClock(stats.Str(line["minutes"])),
	}, true
}

// lastGameRecord builds a completed record from the most recent game-log
// entry of the current season.
func (s *playerService) lastGameRecord(ctx context.Context, playerID int) (stats.StatRecord, error) {
	season := currentSeason(s.now())
	resp, err := s.client.PlayerGameLog(ctx, playerID, season)
	if err != nil {
		return stats.StatRecord{}, fmt.Errorf("fetching game log for player %d: %w", playerID, err)
	}
	table, err := FindResultSet(resp, "PlayerGameLog")
	if err != nil {
		return stats.StatRecord{}, err
	}
	if table.Empty() {
		return stats.StatRecord{}, fmt.Errorf("player %d: %w", playerID, stats.ErrNoRecentGame)
	}

	// Row 0 is the latest game.
	row := table.Rows[0]
	points := table.Int(row, "PTS")
	ftm, fta := table.Int(row, "FTM"), table.Int(row, "FTA")
	return stats.StatRecord{
		Tense:               stats.TenseCompleted,
		AsOfDate:            table.Str(row, "GAME_DATE"),
		Points:              &points,
		Rebounds:            table.Int(row, "REB"),
		Assists:             table.Int(row, "AST"),
		FieldGoalPct:        stats.Percentage(table.Int(row, "FGM"), table.Int(row, "FGA")),
		ThreePointPct:       stats.Percentage(table.Int(row, "FG3M"), table.Int(row, "FG3A")),
		FreeThrowPct:        stats.Percentage(ftm, fta),
		FreeThrowsMade:      ftm,
		FreeThrowsAttempted: fta,
		Minutes:             strconv.Itoa(table.Int(row, "MIN")),
	}, nil
}

// playedClock converts the feed's ISO-style duration ("PT34M12.00S") to a
// "34:12" display clock. Malformed input degrades to an empty clock.
func playedClock(d string) string {
	rest, ok := strings.CutPrefix(d, "PT")
	if !ok {
		return ""
	}
	mins, rest, ok := strings.Cut(rest, "M")
	if !ok {
		return ""
	}
	secs, _, ok := strings.Cut(rest, ".")
	if !ok {
		secs = strings.TrimSuffix(rest, "S")
	}
	if mins == "" || secs == "" {
		return ""
	}
	return mins + ":" + secs
}
