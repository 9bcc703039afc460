package bot

import (
	"testing"

	"github.com/connect4ai/connect4/internal/domain"
)

func TestFallbackMoveTakesImmediateWin(t *testing.T) {
	board := domain.NewBoard()
	board[5][0] = domain.Player1
	board[5][1] = domain.Player1
	board[5][2] = domain.Player1

	if got := FallbackMove(board, domain.Player1); got != 3 {
		t.Fatalf("FallbackMove = %d, want winning column 3", got)
	}
}

func TestFallbackMoveBlocksOpponentWin(t *testing.T) {
	board := domain.NewBoard()
	board[5][4] = domain.Player1
	board[4][4] = domain.Player1
	board[3][4] = domain.Player1

	if got := FallbackMove(board, domain.Player2); got != 4 {
		t.Fatalf("FallbackMove = %d, want blocking column 4", got)
	}
}

func TestFallbackMovePrefersCenter(t *testing.T) {
	board := domain.NewBoard()
	if got := FallbackMove(board, domain.Player1); got != 3 {
		t.Fatalf("FallbackMove on empty board = %d, want center column 3", got)
	}
}

func TestFallbackMoveCenterFull(t *testing.T) {
	board := domain.NewBoard()
	for r := 0; r < domain.Rows; r++ {
		// fill the center column without creating a vertical run of four
		p := domain.Player1
		if r == 2 || r == 3 {
			p = domain.Player2
		}
		board[r][3] = p
	}

	if got := FallbackMove(board, domain.Player1); got != 2 {
		t.Fatalf("FallbackMove with full center = %d, want 2", got)
	}
}

func TestFallbackMoveIsDeterministic(t *testing.T) {
	board := domain.NewBoard()
	board[5][1] = domain.Player2
	board[5][6] = domain.Player1

	first := FallbackMove(board, domain.Player1)
	for i := 0; i < 10; i++ {
		if got := FallbackMove(board, domain.Player1); got != first {
			t.Fatalf("FallbackMove varied across calls: %d then %d", first, got)
		}
	}
}

func TestFallbackMoveFullBoard(t *testing.T) {
	board := domain.NewBoard()
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c < domain.Columns; c++ {
			board[r][c] = domain.Player1
		}
	}
	if got := FallbackMove(board, domain.Player2); got != -1 {
		t.Fatalf("FallbackMove on full board = %d, want -1", got)
	}
}
