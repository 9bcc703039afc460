package domain

// PlayerID identifies the owner of a cell. The zero value is an empty
// cell, so a freshly allocated board is a valid empty board.
type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Opponent returns the other player.
func Opponent(p PlayerID) PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove  Error = "invalid move"
	ErrColumnFull   Error = "column is full"
	ErrGameFinished Error = "game is finished"
)
