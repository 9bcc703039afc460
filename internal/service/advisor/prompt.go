package advisor

import (
	"fmt"
	"strings"

	"github.com/connect4ai/connect4/internal/domain"
)

const systemPrompt = `You are playing Connect 4 on a 6-row, 7-column grid.
Columns are numbered 0 to 6 from left to right. Pieces fall to the lowest
empty cell of the chosen column. Four of your pieces in a row
(horizontally, vertically or diagonally) wins.
Respond with a JSON object of the form {"column": N} where N is the
column you want to play. Respond with nothing else.`

// cellSymbol maps grid cells to the characters used in the prompt.
func cellSymbol(p domain.PlayerID) string {
	switch p {
	case domain.Player1:
		return "1"
	case domain.Player2:
		return "2"
	default:
		return "."
	}
}

// BuildPrompt serializes a board snapshot into the textual form handed
// to the model, top row first, together with whose turn it is.
func BuildPrompt(board [][]domain.PlayerID, player domain.PlayerID) string {
	var b strings.Builder

	b.WriteString("Current board (top row first, '.' is empty):\n")
	b.WriteString("  0 1 2 3 4 5 6\n")
	for r := 0; r < domain.Rows; r++ {
		b.WriteString(" ")
		for c := 0; c < domain.Columns; c++ {
			b.WriteString(" ")
			b.WriteString(cellSymbol(board[r][c]))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nYou are player %s.", cellSymbol(player))
	valid := domain.GetValidMoves(board)
	fmt.Fprintf(&b, " Playable columns: %s.", joinInts(valid))
	b.WriteString(" Choose your column.")

	return b.String()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}
