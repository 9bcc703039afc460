package match

import "github.com/connect4ai/connect4/internal/domain"

// Snapshot is the wire form of the session state broadcast to
// spectators after every move.
type Snapshot struct {
	GameID        string             `json:"gameId"`
	Mode          string             `json:"mode"`
	Board         [][]domain.PlayerID `json:"board"`
	CurrentPlayer domain.PlayerID    `json:"currentPlayer"`
	Status        domain.GameStatus  `json:"status"`
	Winner        domain.PlayerID    `json:"winner"`
	MoveCount     int                `json:"moveCount"`
}

func (m *Match) snapshot() Snapshot {
	return Snapshot{
		GameID:        m.GameID,
		Mode:          string(m.Mode),
		Board:         m.Game.Snapshot(),
		CurrentPlayer: m.Game.CurrentPlayer,
		Status:        m.Game.Status,
		Winner:        m.Game.Winner,
		MoveCount:     m.Game.MoveCount,
	}
}
