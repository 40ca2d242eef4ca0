package database

import (
	"database/sql"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/davidmokos/coolify/internal/platform/config"
)

// Open connects to the sqlite database at cfg.Path. Foreign keys are switched
// on so settings rows cascade with team deletion.
func Open(cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := cfg.Path
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on"
	} else {
		dsn += "&_foreign_keys=on"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
