// Package bot is the deterministic local move policy used when an LLM
// seat cannot produce a legal move.
package bot

import (
	"github.com/connect4ai/connect4/internal/domain"
)

// FallbackMove picks a column for player without any model involvement:
// take an immediate win, otherwise block the opponent's immediate win,
// otherwise the first valid column in center-outward order. Returns -1
// only when the board has no valid moves left.
func FallbackMove(board [][]domain.PlayerID, player domain.PlayerID) int {
	validColumns := domain.GetValidMoves(board)
	if len(validColumns) == 0 {
		return -1
	}

	if col := domain.HasWinningMove(board, player); col != -1 {
		return col
	}

	opponent := domain.Opponent(player)
	if col := domain.HasWinningMove(board, opponent); col != -1 {
		return col
	}

	for _, col := range centerOutOrder() {
		if domain.IsValidMove(board, col) {
			return col
		}
	}

	return validColumns[0]
}

// centerOutOrder lists columns starting at the center and fanning
// outward: 3, 2, 4, 1, 5, 0, 6 on a standard board.
func centerOutOrder() []int {
	order := make([]int, 0, domain.Columns)
	center := domain.Columns / 2
	order = append(order, center)
	for offset := 1; offset <= center; offset++ {
		if center-offset >= 0 {
			order = append(order, center-offset)
		}
		if center+offset < domain.Columns {
			order = append(order, center+offset)
		}
	}
	return order
}
