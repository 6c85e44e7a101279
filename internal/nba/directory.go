package nba

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/josephoneill/basketball-bot-telegram/internal/nba/api"
	"github.com/josephoneill/basketball-bot-telegram/internal/resolve"
)

// allPlayersFetcher is the slice of the stats client the directory needs.
type allPlayersFetcher interface {
	CommonAllPlayers(ctx context.Context, season string) (*api.ResultSetResponse, error)
}

// Directory caches the league player index. The roster list is fetched
// lazily on first use and refreshed at most once per refresh interval;
// a failed refresh keeps serving the previous snapshot.
type Directory struct {
	client  allPlayersFetcher
	refresh time.Duration
	logger  *slog.Logger

	mu        sync.RWMutex
	players   []resolve.Entity
	fetchedAt time.Time
}

func NewDirectory(client allPlayersFetcher, refresh time.Duration, logger *slog.Logger) *Directory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Directory{client: client, refresh: refresh, logger: logger}
}

// Teams returns the static team directory.
func (d *Directory) Teams() []resolve.TeamEntry {
	return teamDirectory
}

// Players returns the current player index, fetching or refreshing it
// when stale. An error is returned only when no snapshot exists at all.
func (d *Directory) Players(ctx context.Context) ([]resolve.Entity, error) {
	d.mu.RLock()
	players, fetchedAt := d.players, d.fetchedAt
	d.mu.RUnlock()
	if players != nil && time.Since(fetchedAt) < d.refresh {
		return players, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.players != nil && time.Since(d.fetchedAt) < d.refresh {
		return d.players, nil
	}

	fresh, err := d.fetch(ctx)
	if err != nil {
		if d.players != nil {
			d.logger.Warn("player directory refresh failed, keeping stale snapshot",
				"error", err, "age", time.Since(d.fetchedAt))
			return d.players, nil
		}
		return nil, fmt.Errorf("fetching player directory: %w", err)
	}
	d.players = fresh
	d.fetchedAt = time.Now()
	d.logger.Info("player directory refreshed", "players", len(fresh))
	return d.players, nil
}

func (d *Directory) fetch(ctx context.Context) ([]resolve.Entity, error) {
	resp, err := d.client.CommonAllPlayers(ctx, currentSeason(easternNow()))
	if err != nil {
		return nil, err
	}
	table, err := FindResultSet(resp, "CommonAllPlayers")
	if err != nil {
		return nil, err
	}
	players := make([]resolve.Entity, 0, len(table.Rows))
	for _, row := range table.Rows {
		id := table.Int(row, "PERSON_ID")
		name := table.Str(row, "DISPLAY_FIRST_LAST")
		if id == 0 || name == "" {
			continue
		}
		players = append(players, resolve.Entity{ID: id, Name: name})
	}
	return players, nil
}
