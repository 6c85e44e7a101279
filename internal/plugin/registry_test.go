package plugin

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/josephoneill/basketball-bot-telegram/internal/stats"
	"github.com/josephoneill/basketball-bot-telegram/internal/token"
)

// fakePlugin is a scriptable SportPlugin for registry and dispatcher tests.
type fakePlugin struct {
	name          string
	teamQueries   []string
	playerQueries []string

	careerResult  Result
	careerErr     error
	currentResult Result
	currentErr    error
	seasonResult  Result
	scores        *stats.MatchScore
	scoresErr     error
	customOps     []CustomOp

	resumed []token.Token
}

func (f *fakePlugin) Name() string { return f.name }

func (f *fakePlugin) SupportsTeam(_ context.Context, q string) bool {
	for _, t := range f.teamQueries {
		if t == q {
			return true
		}
	}
	return false
}

func (f *fakePlugin) SupportsPlayer(_ context.Context, q string) bool {
	for _, p := range f.playerQueries {
		if p == q {
			return true
		}
	}
	return false
}

func (f *fakePlugin) LiveScores(context.Context, string, time.Time) (*stats.MatchScore, error) {
	return f.scores, f.scoresErr
}

func (f *fakePlugin) PlayerCareerStats(context.Context, string) (Result, error) {
	return f.careerResult, f.careerErr
}

func (f *fakePlugin) PlayerSeasonStats(context.Context, string, string, string) (Result, error) {
	return f.seasonResult, nil
}

func (f *fakePlugin) PlayerCurrentStats(context.Context, string) (Result, error) {
	return f.currentResult, f.currentErr
}

func (f *fakePlugin) CustomOps() []CustomOp { return f.customOps }

func (f *fakePlugin) Resume(_ context.Context, tok token.Token) (Result, error) {
	f.resumed = append(f.resumed, tok)
	return f.careerResult, f.careerErr
}

func staticFactory(p SportPlugin) Factory {
	return func() (SportPlugin, error) { return p, nil }
}

func TestRegistryInitializeIsIdempotent(t *testing.T) {
	var built atomic.Int32
	r := NewRegistry()
	r.Register("nba", func() (SportPlugin, error) {
		built.Add(1)
		return &fakePlugin{name: "nba"}, nil
	})

	r.Initialize()
	r.Initialize()
	r.All()

	if got := built.Load(); got != 1 {
		t.Fatalf("factory ran %d times, want 1", got)
	}
}

func TestRegistryConcurrentFirstUseInitializesOnce(t *testing.T) {
	var built atomic.Int32
	r := NewRegistry()
	r.Register("nba", func() (SportPlugin, error) {
		built.Add(1)
		return &fakePlugin{name: "nba", playerQueries: []string{"curry"}}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.ForPlayer(context.Background(), "curry")
		}()
	}
	wg.Wait()

	if got := built.Load(); got != 1 {
		t.Fatalf("factory ran %d times under concurrent first use, want 1", got)
	}
}

func TestRegistryBrokenPluginIsIsolated(t *testing.T) {
	r := NewRegistry()
	r.Register("broken", func() (SportPlugin, error) {
		return nil, errors.New("boom")
	})
	healthy := &fakePlugin{name: "nba", teamQueries: []string{"lakers"}}
	r.Register("nba", staticFactory(healthy))

	p, ok := r.ForTeam(context.Background(), "lakers")
	if !ok {
		t.Fatal("healthy plugin should still load when another factory fails")
	}
	if p.Name() != "nba" {
		t.Fatalf("plugin = %q, want nba", p.Name())
	}
	if len(r.All()) != 1 {
		t.Fatalf("loaded plugins = %d, want 1", len(r.All()))
	}
}

func TestRegistryDispatchPrefersRegistrationOrder(t *testing.T) {
	first := &fakePlugin{name: "first", playerQueries: []string{"james"}}
	second := &fakePlugin{name: "second", playerQueries: []string{"james"}}

	r := NewRegistry()
	r.Register("first", staticFactory(first))
	r.Register("second", staticFactory(second))

	p, ok := r.ForPlayer(context.Background(), "james")
	if !ok || p.Name() != "first" {
		t.Fatalf("dispatched to %v, want first (registration order)", p)
	}
}

func TestRegistryRegisterAfterInitializeIgnored(t *testing.T) {
	r := NewRegistry()
	r.Initialize()
	r.Register("late", staticFactory(&fakePlugin{name: "late"}))
	if len(r.All()) != 0 {
		t.Fatal("registration after initialize must be ignored")
	}
}

func TestRegistryByName(t *testing.T) {
	r := NewRegistry()
	r.Register("nba", staticFactory(&fakePlugin{name: "nba"}))
	if _, ok := r.ByName("nba"); !ok {
		t.Fatal("ByName should find the registered plugin")
	}
	if _, ok := r.ByName("nhl"); ok {
		t.Fatal("ByName should not find an unregistered plugin")
	}
}
