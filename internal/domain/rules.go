package domain

// winDirections is the fixed probe order: horizontal, vertical,
// diagonal down-right, diagonal down-left. The order matters for
// determinism of CheckWinner, not for correctness.
var winDirections = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// CheckWinner scans the whole board and returns the owner of the first
// run of at least ToWin cells, or Empty when there is none. Origins are
// visited in row-major order (top row first, left to right), then each
// direction in winDirections order, so repeated calls on an unchanged
// board always return the same result.
func CheckWinner(board [][]PlayerID) PlayerID {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			player := board[row][col]
			if player == Empty {
				continue
			}

			for _, dir := range winDirections {
				count := 1
				for i := 1; i < ToWin; i++ {
					r := row + dir[0]*i
					c := col + dir[1]*i
					if r < 0 || r >= Rows || c < 0 || c >= Columns {
						break
					}
					if board[r][c] != player {
						break
					}
					count++
				}

				if count >= ToWin {
					return player
				}
			}
		}
	}

	return Empty
}

// HasWinningMove reports whether player can win immediately by dropping
// into any currently valid column, returning that column or -1.
func HasWinningMove(board [][]PlayerID, player PlayerID) int {
	for _, col := range GetValidMoves(board) {
		testBoard, _, err := SimulateMove(board, col, player)
		if err != nil {
			continue
		}
		if CheckWinner(testBoard) == player {
			return col
		}
	}
	return -1
}
