package match

import (
	"context"
	"fmt"
	"time"

	"github.com/connect4ai/connect4/internal/domain"
)

// SavedGame is the JSON snapshot of an in-progress session written to
// the save store after every move.
type SavedGame struct {
	GameID        string              `json:"gameId"`
	Mode          string              `json:"mode"`
	Board         [][]domain.PlayerID `json:"board"`
	CurrentPlayer domain.PlayerID     `json:"currentPlayer"`
	MoveCount     int                 `json:"moveCount"`
	SavedAt       time.Time           `json:"savedAt"`
}

func NewSavedGame(m *Match) SavedGame {
	return SavedGame{
		GameID:        m.GameID,
		Mode:          string(m.Mode),
		Board:         m.Game.Snapshot(),
		CurrentPlayer: m.Game.CurrentPlayer,
		MoveCount:     m.Game.MoveCount,
		SavedAt:       time.Now(),
	}
}

// Resume loads the slot from the store and rebuilds a playable match
// around it. Returns ErrNoSavedGame when the slot is empty.
func Resume(ctx context.Context, store SaveStore, slot string, ui UI) (*Match, error) {
	var saved SavedGame
	if err := store.Load(ctx, slot, &saved); err != nil {
		return nil, err
	}

	mode, err := ParseMode(saved.Mode)
	if err != nil {
		return nil, fmt.Errorf("corrupt saved game: %w", err)
	}
	if saved.CurrentPlayer != domain.Player1 && saved.CurrentPlayer != domain.Player2 {
		return nil, fmt.Errorf("corrupt saved game: current player %d", saved.CurrentPlayer)
	}
	if len(saved.Board) != domain.Rows {
		return nil, fmt.Errorf("corrupt saved game: %d rows", len(saved.Board))
	}
	for _, row := range saved.Board {
		if len(row) != domain.Columns {
			return nil, fmt.Errorf("corrupt saved game: %d columns", len(row))
		}
	}

	m := New(mode, saved.GameID, ui)
	m.SaveSlot = slot
	m.Store = store
	m.Game = &domain.Game{
		Board:         saved.Board,
		CurrentPlayer: saved.CurrentPlayer,
		Status:        domain.StatusActive,
		MoveCount:     saved.MoveCount,
	}
	return m, nil
}
