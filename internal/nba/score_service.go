package nba

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/josephoneill/basketball-bot-telegram/internal/stats"
)

// scoreService assembles match score snapshots from the scoreboard feed.
// LineScore lists two rows per game; GameHeader supplies status, clock,
// and which side is home.
type scoreService struct {
	client statsAPI
	logger *slog.Logger
	now    func() time.Time
}

func newScoreService(client statsAPI, logger *slog.Logger) *scoreService {
	if logger == nil {
		logger = slog.Default()
	}
	return &scoreService{client: client, logger: logger, now: easternNow}
}

// teamGame returns the team's game on date (today when date is zero).
// [stats.ErrNoRecentGame] means the team is not on the schedule that day.
func (s *scoreService) teamGame(ctx context.Context, teamID int, date time.Time) (*stats.MatchScore, error) {
	if date.IsZero() {
		date = s.now()
	}
	board, err := s.client.Scoreboard(ctx, date.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("fetching scoreboard: %w", err)
	}
	lines, err := FindResultSet(board, "LineScore")
	if err != nil {
		return nil, err
	}
	headers, err := FindResultSet(board, "GameHeader")
	if err != nil {
		return nil, err
	}

	for i := 0; i+1 < len(lines.Rows); i += 2 {
		a, b := lines.Rows[i], lines.Rows[i+1]
		if lines.Int(a, "TEAM_ID") != teamID && lines.Int(b, "TEAM_ID") != teamID {
			continue
		}
		return s.buildScore(ctx, lines, headers, a, b)
	}
	return nil, fmt.Errorf("team %d on %s: %w", teamID, date.Format("2006-01-02"), stats.ErrNoRecentGame)
}

func (s *scoreService) buildScore(ctx context.Context, lines, headers Table, a, b []any) (*stats.MatchScore, error) {
	gameID := lines.Str(a, "GAME_ID")

	var status, clock string
	homeTeamID := lines.Int(a, "TEAM_ID")
	for _, h := range headers.Rows {
		if headers.Str(h, "GAME_ID") != gameID {
			continue
		}
		status = headers.Str(h, "GAME_STATUS_TEXT")
		clock = liveClock(headers.Str(h, "LIVE_PC_TIME"))
		homeTeamID = headers.Int(h, "HOME_TEAM_ID")
		break
	}

	home, away := a, b
	if lines.Int(b, "TEAM_ID") == homeTeamID {
		home, away = b, a
	}

	score := &stats.MatchScore{
		HomeTeam:     lines.Str(home, "TEAM_NAME"),
		HomeRecord:   s.record(ctx, lines, home),
		AwayTeam:     lines.Str(away, "TEAM_NAME"),
		AwayRecord:   s.record(ctx, lines, away),
		Status:       status,
		StartTime:    status,
		CurrentClock: clock,
	}
	if pts := lines.Value(home, "PTS"); pts != nil {
		n := stats.Num(pts)
		score.HomeScore = &n
	}
	if pts := lines.Value(away, "PTS"); pts != nil {
		n := stats.Num(pts)
		score.AwayScore = &n
	}
	return score, nil
}

// record reads the side's win-loss record from the line score, falling
// back to the standings table when the scoreboard omits it (pre-game rows
// sometimes do).
func (s *scoreService) record(ctx context.Context, lines Table, row []any) string {
	if rec := lines.Str(row, "TEAM_WINS_LOSSES"); rec != "" {
		return rec
	}
	return s.standingsRecord(ctx, lines.Int(row, "TEAM_ID"))
}

func (s *scoreService) standingsRecord(ctx context.Context, teamID int) string {
	resp, err := s.client.LeagueStandings(ctx, currentSeason(s.now()))
	if err != nil {
		s.logger.Debug("nba: standings fetch failed", "error", err)
		return ""
	}
	table, err := FindResultSet(resp, "Standings")
	if err != nil {
		return ""
	}
	for _, row := range table.Rows {
		if table.Int(row, "TeamID") != teamID {
			continue
		}
		if rec := table.Str(row, "Record"); rec != "" {
			return rec
		}
		return fmt.Sprintf("%d-%d", table.Int(row, "WINS"), table.Int(row, "LOSSES"))
	}
	return ""
}

// liveClock normalizes the scoreboard's live clock: a zeroed or blank
// clock means the period is over and renders as empty.
func liveClock(raw string) string {
	c := strings.TrimSpace(raw)
	if c == "0.0" || c == "0:00" {
		return ""
	}
	return c
}
