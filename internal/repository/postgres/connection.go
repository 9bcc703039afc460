package postgres

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS game_history (
	game_id          TEXT PRIMARY KEY,
	mode             TEXT NOT NULL,
	winner           TEXT NOT NULL DEFAULT '',
	reason           TEXT NOT NULL,
	total_moves      INT NOT NULL,
	duration_seconds INT NOT NULL,
	started_at       TIMESTAMPTZ NOT NULL,
	finished_at      TIMESTAMPTZ NOT NULL,
	board_state      JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_game_history_finished_at ON game_history (finished_at DESC);
`

func InitDB(connStr string, maxOpenConns, maxIdleConns, connMaxLifetimeMin int) (*sql.DB, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database schema: %v", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(time.Duration(connMaxLifetimeMin) * time.Minute)

	log.Println("[DB] connected successfully")
	return db, nil
}
