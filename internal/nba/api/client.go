// Package api is the HTTP client for the NBA's two stat hosts: the
// tabular stats.nba.com endpoints (scoreboard, career, game log, player
// info, standings, player directory) and the cdn.nba.com live boxscore
// feed.
//
// Both hosts are treated as unreliable: any call may fail, stall, or
// return an empty result set, and callers are expected to feed absence
// into their fallback chain rather than retry here. Requests are
// rate-limited with a token bucket because stats.nba.com throttles
// aggressively.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/josephoneill/basketball-bot-telegram/internal/observe"
)

const (
	// DefaultStatsBaseURL serves the tabular resultSets endpoints.
	DefaultStatsBaseURL = "https://stats.nba.com"

	// DefaultLiveBaseURL serves the nested live boxscore JSON.
	DefaultLiveBaseURL = "https://cdn.nba.com"

	defaultRequestsPerMinute = 30
)

// Config holds client settings. Zero values select the production hosts
// and a conservative request rate.
type Config struct {
	StatsBaseURL      string
	LiveBaseURL       string
	RequestsPerMinute int
}

// Client performs rate-limited requests against the NBA stat hosts.
// It is safe for concurrent use.
type Client struct {
	httpClient   *http.Client
	statsBaseURL string
	liveBaseURL  string
	limiter      *rate.Limiter
	logger       *slog.Logger
	metrics      *observe.Metrics
}

// NewClient creates a client from cfg. A nil logger falls back to
// [slog.Default].
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.StatsBaseURL == "" {
		cfg.StatsBaseURL = DefaultStatsBaseURL
	}
	if cfg.LiveBaseURL == "" {
		cfg.LiveBaseURL = DefaultLiveBaseURL
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = defaultRequestsPerMinute
	}
	return &Client{
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		statsBaseURL: cfg.StatsBaseURL,
		liveBaseURL:  cfg.LiveBaseURL,
		limiter:      rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), 1),
		logger:       logger,
		metrics:      observe.DefaultMetrics(),
	}
}

// ResultSetResponse is the envelope every stats.nba.com endpoint returns:
// one or more named tabular result sets.
type ResultSetResponse struct {
	ResultSets []ResultSet `json:"resultSets"`
}

// ResultSet is one named table: an ordered header list paired with
// positional value rows.
type ResultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// Boxscore is the cdn.nba.com live boxscore envelope.
type Boxscore struct {
	Game BoxscoreGame `json:"game"`
}

// BoxscoreGame is the nested live game payload.
type BoxscoreGame struct {
	GameID         string       `json:"gameId"`
	GameStatusText string       `json:"gameStatusText"`
	GameClock      string       `json:"gameClock"`
	HomeTeam       BoxscoreTeam `json:"homeTeam"`
	AwayTeam       BoxscoreTeam `json:"awayTeam"`
}

// BoxscoreTeam is one side of a live boxscore.
type BoxscoreTeam struct {
	TeamID   int              `json:"teamId"`
	TeamName string           `json:"teamName"`
	Score    int              `json:"score"`
	Players  []BoxscorePlayer `json:"players"`
}

// BoxscorePlayer is one player's live line. Statistics stays a loose
// key→value record: the feed nulls individual fields freely, so values go
// through defensive coercion rather than typed decoding.
type BoxscorePlayer struct {
	PersonID   int            `json:"personId"`
	FirstName  string         `json:"firstName"`
	FamilyName string         `json:"familyName"`
	Statistics map[string]any `json:"statistics"`
}

// Scoreboard fetches the schedule and line scores for gameDate
// ("2006-01-02" form, Eastern time).
func (c *Client) Scoreboard(ctx context.Context, gameDate string) (*ResultSetResponse, error) {
	params := url.Values{}
	params.Set("DayOffset", "0")
	params.Set("GameDate", gameDate)
	params.Set("LeagueID", "00")
	return c.getResultSets(ctx, "/stats/scoreboardv2", params)
}

// PlayerCareerStats fetches season-by-season and career totals.
func (c *Client) PlayerCareerStats(ctx context.Context, playerID int) (*ResultSetResponse, error) {
	params := url.Values{}
	params.Set("LeagueID", "")
	params.Set("PerMode", "Totals")
	params.Set("PlayerID", fmt.Sprint(playerID))
	return c.getResultSets(ctx, "/stats/playercareerstats", params)
}

// PlayerGameLog fetches a player's completed games for one season, most
// recent first.
func (c *Client) PlayerGameLog(ctx context.Context, playerID int, season string) (*ResultSetResponse, error) {
	params := url.Values{}
	params.Set("DateFrom", "")
	params.Set("DateTo", "")
	params.Set("LeagueID", "")
	params.Set("PlayerID", fmt.Sprint(playerID))
	params.Set("Season", season)
	params.Set("SeasonType", "Regular Season")
	return c.getResultSets(ctx, "/stats/playergamelog", params)
}

// CommonPlayerInfo fetches a player's profile row (team id, names).
func (c *Client) CommonPlayerInfo(ctx context.Context, playerID int) (*ResultSetResponse, error) {
	params := url.Values{}
	params.Set("LeagueID", "")
	params.Set("PlayerID", fmt.Sprint(playerID))
	return c.getResultSets(ctx, "/stats/commonplayerinfo", params)
}

// CommonAllPlayers fetches the full player name directory.
func (c *Client) CommonAllPlayers(ctx context.Context, season string) (*ResultSetResponse, error) {
	params := url.Values{}
	params.Set("LeagueID", "00")
	params.Set("Season", season)
	params.Set("IsOnlyCurrentSeason", "0")
	return c.getResultSets(ctx, "/stats/commonallplayers", params)
}

// LeagueStandings fetches win-loss records for every team.
func (c *Client) LeagueStandings(ctx context.Context, season string) (*ResultSetResponse, error) {
	params := url.Values{}
	params.Set("LeagueID", "00")
	params.Set("Season", season)
	params.Set("SeasonType", "Regular Season")
	return c.getResultSets(ctx, "/stats/leaguestandingsv3", params)
}

// LiveBoxscore fetches the live per-player snapshot for one game id from
// the CDN host.
func (c *Client) LiveBoxscore(ctx context.Context, gameID string) (*Boxscore, error) {
	u := fmt.Sprintf("%s/static/json/liveData/boxscore/boxscore_%s.json", c.liveBaseURL, gameID)
	body, err := c.get(ctx, u, "cdn.nba.com", "https://cdn.nba.com/")
	if err != nil {
		return nil, err
	}
	var box Boxscore
	if err := json.Unmarshal(body, &box); err != nil {
		return nil, fmt.Errorf("api: decode boxscore %s: %w", gameID, err)
	}
	return &box, nil
}

// Ping probes the CDN host with the today's-scoreboard feed. It is the
// readiness check: the stats host throttles too aggressively to probe on
// every health poll.
func (c *Client) Ping(ctx context.Context) error {
	u := c.liveBaseURL + "/static/json/liveData/scoreboard/todaysScoreboard_00.json"
	_, err := c.get(ctx, u, "cdn.nba.com", "https://cdn.nba.com/")
	return err
}

// getResultSets performs a stats-host GET and decodes the resultSets
// envelope.
func (c *Client) getResultSets(ctx context.Context, path string, params url.Values) (*ResultSetResponse, error) {
	u := c.statsBaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	body, err := c.get(ctx, u, "stats.nba.com", "https://stats.nba.com/")
	if err != nil {
		return nil, err
	}
	var resp ResultSetResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("api: decode %s: %w", path, err)
	}
	return &resp, nil
}

// get performs one rate-limited request. The stats host rejects requests
// without browser-looking headers, so they are spoofed on every call.
func (c *Client) get(ctx context.Context, u, host, referer string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("api: rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("api: create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Referer", referer)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-nba-stats-origin", "stats")
	req.Header.Set("x-nba-stats-token", "true")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordUpstreamError(ctx, host)
		return nil, fmt.Errorf("api: request %s: %w", host, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.RecordUpstreamError(ctx, host)
		return nil, fmt.Errorf("api: read body: %w", err)
	}
	c.logger.Debug("api: upstream request",
		"url", u, "status", resp.StatusCode, "dur", time.Since(start))
	c.metrics.RecordUpstreamRequest(ctx, host, strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		c.metrics.RecordUpstreamError(ctx, host)
		return nil, fmt.Errorf("api: %s returned status %d", host, resp.StatusCode)
	}
	return body, nil
}
