// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package feed fetches and normalizes the live scenario feed.

The feed is a JSON array of loosely-typed post records regenerated daily
by an upstream scraper. Fetching is a single attempt with no retry;
normalization is partial-failure tolerant, dropping unusable records one
at a time while the rest of the batch survives.

	client := feed.NewClient(nil, cfg.FeedURL)
	raws, err := client.Fetch(ctx)
	if err != nil {
		// surfaced to the UI; the previous dataset stays in place
	}
	scenarios := feed.Normalize(raws, judgment.FiveWay)
*/
package feed
