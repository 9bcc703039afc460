package domain

type Game struct {
	Board         [][]PlayerID
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	MoveCount     int
}

func NewGame() *Game {
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: Player1,
		Status:        StatusActive,
		Winner:        Empty,
		MoveCount:     0,
	}
}

// MakeMove drops a disk for the current player into the given column.
// Once the game has reached a terminal status every further call fails
// with ErrGameFinished and leaves the board untouched.
func (g *Game) MakeMove(column int) (int, error) {
	if g.Status != StatusActive {
		return -1, ErrGameFinished
	}

	if !IsValidMove(g.Board, column) {
		return -1, ErrInvalidMove
	}

	row, err := DropDisk(g.Board, column, g.CurrentPlayer)
	if err != nil {
		return -1, err
	}

	g.MoveCount++

	if winner := CheckWinner(g.Board); winner != Empty {
		g.Status = StatusWon
		g.Winner = winner
		return row, nil
	}

	if IsBoardFull(g.Board) {
		g.Status = StatusDraw
		return row, nil
	}

	g.CurrentPlayer = Opponent(g.CurrentPlayer)

	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}

// Snapshot returns a read-only copy of the grid for rendering,
// persistence and prompt serialization.
func (g *Game) Snapshot() [][]PlayerID {
	return CopyBoard(g.Board)
}
