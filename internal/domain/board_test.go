package domain

import "testing"

func TestIsValidMoveOutOfRange(t *testing.T) {
	board := NewBoard()
	for _, col := range []int{-1, -100, Columns, Columns + 5} {
		if IsValidMove(board, col) {
			t.Errorf("IsValidMove(%d) = true, want false", col)
		}
	}
}

func TestDropDiskOutOfRangeMutatesNothing(t *testing.T) {
	board := NewBoard()
	for _, col := range []int{-1, Columns} {
		if _, err := DropDisk(board, col, Player1); err != ErrInvalidMove {
			t.Errorf("DropDisk(%d) error = %v, want ErrInvalidMove", col, err)
		}
	}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			if board[r][c] != Empty {
				t.Fatalf("cell (%d,%d) mutated by rejected drop", r, c)
			}
		}
	}
}

func TestDropDiskFillsBottomUp(t *testing.T) {
	board := NewBoard()
	players := []PlayerID{Player1, Player2}

	for i := 0; i < Rows; i++ {
		row, err := DropDisk(board, 0, players[i%2])
		if err != nil {
			t.Fatalf("drop %d: unexpected error %v", i, err)
		}
		want := Rows - 1 - i
		if row != want {
			t.Fatalf("drop %d landed on row %d, want %d", i, row, want)
		}
	}

	// column is now full; the 7th drop must fail closed
	if _, err := DropDisk(board, 0, Player1); err != ErrColumnFull {
		t.Fatalf("drop into full column: error = %v, want ErrColumnFull", err)
	}
	if IsValidMove(board, 0) {
		t.Fatal("IsValidMove(0) = true on a full column")
	}

	for r := 0; r < Rows; r++ {
		if board[r][0] == Empty {
			t.Fatalf("row %d of column 0 still empty after filling", r)
		}
	}
}

func TestIsBoardFull(t *testing.T) {
	board := NewBoard()
	if IsBoardFull(board) {
		t.Fatal("empty board reported full")
	}

	for c := 0; c < Columns; c++ {
		for r := 0; r < Rows; r++ {
			if _, err := DropDisk(board, c, Player1); err != nil {
				t.Fatalf("drop into column %d: %v", c, err)
			}
		}
	}
	if !IsBoardFull(board) {
		t.Fatal("full board reported not full")
	}
}

func TestCopyBoardIsDeep(t *testing.T) {
	board := NewBoard()
	board[Rows-1][3] = Player1

	snapshot := CopyBoard(board)
	snapshot[Rows-1][3] = Player2

	if board[Rows-1][3] != Player1 {
		t.Fatal("mutating the copy leaked into the original board")
	}
}

func TestGetValidMoves(t *testing.T) {
	board := NewBoard()
	if got := GetValidMoves(board); len(got) != Columns {
		t.Fatalf("empty board valid moves = %d, want %d", len(got), Columns)
	}

	for r := 0; r < Rows; r++ {
		DropDisk(board, 2, Player1)
	}
	for _, col := range GetValidMoves(board) {
		if col == 2 {
			t.Fatal("full column 2 reported as a valid move")
		}
	}
}

func TestSimulateMoveLeavesOriginalUntouched(t *testing.T) {
	board := NewBoard()
	sim, row, err := SimulateMove(board, 4, Player2)
	if err != nil {
		t.Fatalf("SimulateMove: %v", err)
	}
	if row != Rows-1 {
		t.Fatalf("simulated drop landed on row %d, want %d", row, Rows-1)
	}
	if sim[Rows-1][4] != Player2 {
		t.Fatal("simulated board missing the dropped disk")
	}
	if board[Rows-1][4] != Empty {
		t.Fatal("SimulateMove mutated the original board")
	}
}
