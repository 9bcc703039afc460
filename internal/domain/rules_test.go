package domain

import "testing"

func TestCheckWinnerHorizontal(t *testing.T) {
	board := NewBoard()
	for col := 0; col < 4; col++ {
		if _, err := DropDisk(board, col, Player1); err != nil {
			t.Fatalf("drop into column %d: %v", col, err)
		}
	}
	if got := CheckWinner(board); got != Player1 {
		t.Fatalf("CheckWinner = %v, want Player1", got)
	}
}

func TestCheckWinnerVertical(t *testing.T) {
	board := NewBoard()
	for i := 0; i < 4; i++ {
		if _, err := DropDisk(board, 0, Player2); err != nil {
			t.Fatalf("drop %d: %v", i, err)
		}
		if i < 3 && CheckWinner(board) != Empty {
			t.Fatalf("winner declared after only %d disks", i+1)
		}
	}
	if got := CheckWinner(board); got != Player2 {
		t.Fatalf("CheckWinner = %v, want Player2", got)
	}
}

func TestCheckWinnerDiagonalDownRight(t *testing.T) {
	board := NewBoard()
	board[2][1] = Player1
	board[3][2] = Player1
	board[4][3] = Player1
	board[5][4] = Player1

	if got := CheckWinner(board); got != Player1 {
		t.Fatalf("CheckWinner = %v, want Player1", got)
	}
}

func TestCheckWinnerDiagonalDownLeft(t *testing.T) {
	board := NewBoard()
	board[2][5] = Player2
	board[3][4] = Player2
	board[4][3] = Player2
	board[5][2] = Player2

	if got := CheckWinner(board); got != Player2 {
		t.Fatalf("CheckWinner = %v, want Player2", got)
	}
}

func TestCheckWinnerNoFalsePositive(t *testing.T) {
	board := NewBoard()
	// three in a row with the fourth cell blocked by the opponent
	board[5][0] = Player1
	board[5][1] = Player1
	board[5][2] = Player1
	board[5][3] = Player2
	// three in a row with a gap before the fourth
	board[4][0] = Player2
	board[4][1] = Player2
	board[4][2] = Player2

	if got := CheckWinner(board); got != Empty {
		t.Fatalf("CheckWinner = %v, want Empty", got)
	}
}

func TestCheckWinnerEmptyBoard(t *testing.T) {
	if got := CheckWinner(NewBoard()); got != Empty {
		t.Fatalf("CheckWinner on empty board = %v, want Empty", got)
	}
}

func TestCheckWinnerIdempotent(t *testing.T) {
	board := NewBoard()
	for i := 0; i < 4; i++ {
		DropDisk(board, 3, Player1)
	}
	first := CheckWinner(board)
	second := CheckWinner(board)
	if first != second {
		t.Fatalf("CheckWinner not idempotent: %v then %v", first, second)
	}
	if first != Player1 {
		t.Fatalf("CheckWinner = %v, want Player1", first)
	}
}

// fullDrawBoard builds a completely filled board with no run of four
// anywhere: rows are paired so every vertical run stops at two, columns
// alternate so horizontal runs stop at one, and the two together cap
// diagonal runs at two.
func fullDrawBoard() [][]PlayerID {
	board := NewBoard()
	for r := 0; r < Rows; r++ {
		group := 0
		if r == 2 || r == 3 {
			group = 1
		}
		for c := 0; c < Columns; c++ {
			if (group+c)%2 == 0 {
				board[r][c] = Player1
			} else {
				board[r][c] = Player2
			}
		}
	}
	return board
}

func TestDrawBoard(t *testing.T) {
	board := fullDrawBoard()
	if !IsBoardFull(board) {
		t.Fatal("draw fixture is not full")
	}
	if got := CheckWinner(board); got != Empty {
		t.Fatalf("CheckWinner on draw board = %v, want Empty", got)
	}
}

func TestHasWinningMove(t *testing.T) {
	board := NewBoard()
	board[5][0] = Player1
	board[5][1] = Player1
	board[5][2] = Player1

	if got := HasWinningMove(board, Player1); got != 3 {
		t.Fatalf("HasWinningMove = %d, want 3", got)
	}
	if got := HasWinningMove(board, Player2); got != -1 {
		t.Fatalf("HasWinningMove for opponent = %d, want -1", got)
	}
}
