// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3319)
  - DatabaseURL: Database path or connection string
  - DatabaseType: "sqlite" (default) or "postgres"
  - AdminKeySalt: Secret for admin key HMAC (required)
  - FeedURL: Scenario feed endpoint (required)
  - SurveyConfigPath: Survey YAML path (empty = built-in config)
  - RefreshSchedule: Cron expression for periodic feed refresh (optional)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-feed         Scenario feed URL
	-survey       Survey config YAML path
	-refresh      Cron refresh schedule
	-admin-salt   Admin key salt

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	FEED_URL         → -feed
	SURVEY_CONFIG    → -survey
	REFRESH_SCHEDULE → -refresh
	ADMIN_KEY_SALT   → -admin-salt

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - FEED_URL must be provided
  - ADMIN_KEY_SALT must be provided
  - DATABASE_URL must be provided when the type is postgres
    (sqlite falls back to file:aita-judge.db)

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(conn, store, cfg)
*/
package cliparse
