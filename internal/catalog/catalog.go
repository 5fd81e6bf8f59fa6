// Package catalog keeps the list of games the rule chatbot supports.
//
// The list is fetched from the AI backend on first use and kept for the life
// of the process. If the backend cannot list its games, a fixed fallback list
// is used instead, and that choice is also kept; the catalog never refreshes.
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrCacheMiss is returned by a Cache that holds no catalog.
var ErrCacheMiss = errors.New("catalog: cache miss")

// Source lists the games known to the AI backend.
type Source interface {
	ListGames(ctx context.Context) ([]string, error)
}

// Cache is an optional store shared between server instances.
type Cache interface {
	Get(ctx context.Context) ([]string, error)
	Set(ctx context.Context, games []string) error
}

type Catalog struct {
	source   Source
	cache    Cache
	fallback []string

	mu     sync.RWMutex
	games  []string
	loaded bool
	group  singleflight.Group
}

// New builds a Catalog. cache may be nil.
func New(source Source, fallback []string, cache Cache) *Catalog {
	return &Catalog{
		source:   source,
		cache:    cache,
		fallback: slices.Clone(fallback),
	}
}

// Games returns the supported games, loading them on the first call.
// Concurrent first calls share a single load.
func (c *Catalog) Games(ctx context.Context) []string {
	if games, ok := c.cached(); ok {
		return games
	}

	v, _, _ := c.group.Do("games", func() (any, error) {
		if games, ok := c.cached(); ok {
			return games, nil
		}
		// The load outlives the request that triggered it.
		games := c.load(context.WithoutCancel(ctx))

		c.mu.Lock()
		c.games = games
		c.loaded = true
		c.mu.Unlock()
		return games, nil
	})
	return slices.Clone(v.([]string))
}

// Contains reports whether game is in the catalog. Matching is exact.
func (c *Catalog) Contains(ctx context.Context, game string) bool {
	return slices.Contains(c.Games(ctx), game)
}

func (c *Catalog) cached() ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return nil, false
	}
	return slices.Clone(c.games), true
}

func (c *Catalog) load(ctx context.Context) []string {
	if c.cache != nil {
		games, err := c.cache.Get(ctx)
		switch {
		case err == nil && len(games) > 0:
			slog.Info("Game catalog loaded from shared cache", "count", len(games))
			return games
		case err != nil && !errors.Is(err, ErrCacheMiss):
			slog.Warn("Failed to read game catalog cache", "error", err)
		}
	}

	games, err := c.source.ListGames(ctx)
	if err != nil || len(games) == 0 {
		slog.Error("Failed to load game catalog, using fallback list", "error", err, "count", len(c.fallback))
		return slices.Clone(c.fallback)
	}
	slog.Info("Game catalog loaded from backend", "count", len(games))

	if c.cache != nil {
		if err := c.cache.Set(ctx, games); err != nil {
			slog.Warn("Failed to write game catalog cache", "error", err)
		}
	}
	return games
}
