package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/connect4ai/connect4/internal/service/match"
)

// HistoryRepo records finished games.
type HistoryRepo struct {
	DB *sql.DB
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo {
	return &HistoryRepo{DB: db}
}

// SaveResult upserts one finished game.
func (r *HistoryRepo) SaveResult(ctx context.Context, result match.Result) error {
	boardJSON, err := json.Marshal(result.Board)
	if err != nil {
		return fmt.Errorf("failed to marshal board state: %v", err)
	}

	query := `
	INSERT INTO game_history (game_id, mode, winner, reason, total_moves, duration_seconds, started_at, finished_at, board_state)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (game_id) DO UPDATE SET
		winner = EXCLUDED.winner,
		reason = EXCLUDED.reason,
		total_moves = EXCLUDED.total_moves,
		duration_seconds = EXCLUDED.duration_seconds,
		finished_at = EXCLUDED.finished_at,
		board_state = EXCLUDED.board_state`

	durationSeconds := int(result.FinishedAt.Sub(result.StartedAt).Seconds())

	_, err = r.DB.ExecContext(ctx, query,
		result.GameID,
		result.Mode,
		result.Winner,
		result.Reason,
		result.TotalMoves,
		durationSeconds,
		result.StartedAt,
		result.FinishedAt,
		boardJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save game: %v", err)
	}
	return nil
}

// HistoryEntry is one row of the `connect4 history` listing.
type HistoryEntry struct {
	GameID          string
	Mode            string
	Winner          string
	Reason          string
	TotalMoves      int
	DurationSeconds int
	FinishedAt      time.Time
}

// ListRecent returns the most recently finished games, newest first.
func (r *HistoryRepo) ListRecent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.DB.QueryContext(ctx, `
	SELECT game_id, mode, winner, reason, total_moves, duration_seconds, finished_at
	FROM game_history
	ORDER BY finished_at DESC
	LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %v", err)
	}
	defer rows.Close()

	entries := []HistoryEntry{}
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.GameID, &e.Mode, &e.Winner, &e.Reason, &e.TotalMoves, &e.DurationSeconds, &e.FinishedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
