// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"context"
	"log/slog"

	"github.com/danielhkuo/aita-judge/feed"
	"github.com/danielhkuo/aita-judge/judgment"
	"github.com/danielhkuo/aita-judge/models"
)

// Loader ties the feed client to the store: one fetch, normalize, replace.
type Loader struct {
	client feed.Client
	store  *Store
	set    judgment.Set
}

func NewLoader(client feed.Client, store *Store, set judgment.Set) *Loader {
	return &Loader{client: client, store: store, set: set}
}

// Reload fetches the feed once and replaces the dataset. On fetch or parse
// failure the error is recorded and the previous collection stays as-is;
// there is no retry. An empty feed still replaces the collection (clients
// see the no-data condition, not stale scenarios).
func (l *Loader) Reload(ctx context.Context) (Snapshot, error) {
	raws, err := l.client.Fetch(ctx)
	if err != nil {
		l.store.RecordError(err)
		slog.Error("dataset reload failed", "error", err)
		return l.store.Snapshot(), err
	}

	scenarios := feed.Normalize(raws, l.set)
	version := l.store.Replace(scenarios, models.SourceFeed)
	slog.Info("dataset reloaded",
		"version", version,
		"raw_records", len(raws),
		"scenarios", len(scenarios),
	)

	return l.store.Snapshot(), nil
}
