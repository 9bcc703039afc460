package match

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/connect4ai/connect4/internal/domain"
)

// ConsoleUI renders the game on the terminal with pterm.
type ConsoleUI struct{}

func NewConsoleUI() *ConsoleUI {
	return &ConsoleUI{}
}

func discFor(p domain.PlayerID) string {
	switch p {
	case domain.Player1:
		return pterm.FgRed.Sprint("●")
	case domain.Player2:
		return pterm.FgYellow.Sprint("●")
	default:
		return pterm.FgDarkGray.Sprint("·")
	}
}

func (u *ConsoleUI) ShowBoard(board [][]domain.PlayerID) {
	var b strings.Builder

	b.WriteString("\n  ")
	for c := 0; c < domain.Columns; c++ {
		fmt.Fprintf(&b, " %d ", c)
	}
	b.WriteString("\n  ")
	b.WriteString(strings.Repeat("-", domain.Columns*3+1))
	b.WriteString("\n")

	for r := 0; r < domain.Rows; r++ {
		b.WriteString("  |")
		for c := 0; c < domain.Columns; c++ {
			fmt.Fprintf(&b, "%s |", discFor(board[r][c]))
		}
		b.WriteString("\n")
	}

	b.WriteString("  ")
	b.WriteString(strings.Repeat("-", domain.Columns*3+1))
	b.WriteString("\n")

	fmt.Print(b.String())
}

func (u *ConsoleUI) Info(format string, args ...any) {
	pterm.Info.Printfln(format, args...)
}

func (u *ConsoleUI) Success(format string, args ...any) {
	pterm.Success.Printfln(format, args...)
}

func (u *ConsoleUI) Warn(format string, args ...any) {
	pterm.Warning.Printfln(format, args...)
}

func (u *ConsoleUI) Thinking(name string) func() {
	spinner, err := pterm.DefaultSpinner.Start(fmt.Sprintf("AI %s is thinking...", name))
	if err != nil {
		return func() {}
	}
	return func() {
		spinner.Stop()
	}
}

// PromptColumn keeps asking until it gets a number. Range and
// column-full checks belong to the engine; bad input here only means
// "not a number".
func (u *ConsoleUI) PromptColumn(ctx context.Context, name string) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}

		text, err := pterm.DefaultInteractiveTextInput.Show(
			fmt.Sprintf("Player %s, enter column (0-%d)", name, domain.Columns-1))
		if err != nil {
			return -1, err
		}

		column, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			pterm.Warning.Printfln("Please enter a valid number (0-%d).", domain.Columns-1)
			continue
		}
		return column, nil
	}
}
