package database

import "database/sql"

// One settings table per channel. Success/failure overrides default to on so a
// freshly enabled channel reports deployment outcomes without extra toggles;
// the channel itself defaults to off.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS teams (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		team_id TEXT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS deployments (
		uuid TEXT PRIMARY KEY,
		team_id TEXT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		application_uuid TEXT NOT NULL,
		commit_sha TEXT,
		commit_message TEXT,
		created_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS webhook_notification_settings (
		team_id TEXT UNIQUE NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		enabled INTEGER NOT NULL DEFAULT 0,
		url TEXT,
		api_key TEXT,
		deployment_success_webhook_notifications INTEGER NOT NULL DEFAULT 1,
		deployment_failure_webhook_notifications INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS discord_notification_settings (
		team_id TEXT UNIQUE NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		enabled INTEGER NOT NULL DEFAULT 0,
		webhook_url TEXT,
		deployment_success_discord_notifications INTEGER NOT NULL DEFAULT 1,
		deployment_failure_discord_notifications INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS slack_notification_settings (
		team_id TEXT UNIQUE NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		enabled INTEGER NOT NULL DEFAULT 0,
		webhook_url TEXT,
		deployment_success_slack_notifications INTEGER NOT NULL DEFAULT 1,
		deployment_failure_slack_notifications INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS telegram_notification_settings (
		team_id TEXT UNIQUE NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		enabled INTEGER NOT NULL DEFAULT 0,
		token TEXT,
		chat_id TEXT,
		deployment_success_telegram_notifications INTEGER NOT NULL DEFAULT 1,
		deployment_failure_telegram_notifications INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS pushover_notification_settings (
		team_id TEXT UNIQUE NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		enabled INTEGER NOT NULL DEFAULT 0,
		token TEXT,
		user_key TEXT,
		deployment_success_pushover_notifications INTEGER NOT NULL DEFAULT 1,
		deployment_failure_pushover_notifications INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS email_notification_settings (
		team_id TEXT UNIQUE NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
		enabled INTEGER NOT NULL DEFAULT 0,
		recipient_address TEXT,
		deployment_success_email_notifications INTEGER NOT NULL DEFAULT 1,
		deployment_failure_email_notifications INTEGER NOT NULL DEFAULT 1
	)`,
}

func Migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
