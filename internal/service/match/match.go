// Package match runs a single Connect-4 session from first move to
// terminal outcome, wiring seats (human or LLM-backed) to the board
// engine and to the optional history, save and spectator collaborators.
package match

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/connect4ai/connect4/internal/domain"
	"github.com/connect4ai/connect4/internal/service/advisor"
	"github.com/connect4ai/connect4/internal/service/bot"
)

type Mode string

const (
	ModePvP Mode = "pvp" // human vs human
	ModeAvA Mode = "ava" // AI vs AI
	ModePvA Mode = "pva" // human vs AI
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePvP, ModeAvA, ModePvA:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid mode %q: must be pvp, ava or pva", s)
	}
}

// SeatNames returns the two seat labels for a mode, Player1 first.
// Human seats are "p" prefixed, AI seats "a" prefixed, as rendered in
// prompts and results.
func SeatNames(mode Mode) [2]string {
	switch mode {
	case ModeAvA:
		return [2]string{"a1", "a2"}
	case ModePvA:
		return [2]string{"p1", "a1"}
	default:
		return [2]string{"p1", "p2"}
	}
}

type Seat struct {
	Name string
	IsAI bool
}

// UI is the terminal surface the match talks to. The console
// implementation lives in console.go; tests substitute a scripted one.
type UI interface {
	ShowBoard(board [][]domain.PlayerID)
	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)
	// Thinking shows a progress indicator for an AI seat and returns a
	// stop function.
	Thinking(name string) func()
	// PromptColumn asks a human seat for a column index.
	PromptColumn(ctx context.Context, name string) (int, error)
}

// HistoryRecorder persists finished games. Implemented by the postgres
// repository; nil disables recording.
type HistoryRecorder interface {
	SaveResult(ctx context.Context, r Result) error
}

// Result describes one finished game.
type Result struct {
	GameID     string
	Mode       string
	Winner     string // seat name, empty on draw
	Reason     string // "connect4" or "draw"
	TotalMoves int
	StartedAt  time.Time
	FinishedAt time.Time
	Board      [][]domain.PlayerID
}

// SaveStore keeps one in-progress session per slot so a quit game can
// be resumed. Implemented by the redis repository; nil disables it.
type SaveStore interface {
	Save(ctx context.Context, slot string, v any) error
	Load(ctx context.Context, slot string, v any) error
	Delete(ctx context.Context, slot string) error
}

// SnapshotPublisher receives a snapshot after every applied move.
// Implemented by the watch hub; nil disables it.
type SnapshotPublisher interface {
	Publish(v any)
}

type Match struct {
	GameID string
	Mode   Mode
	Game   *domain.Game
	Seats  [2]Seat
	UI     UI

	Advisor   advisor.MoveProvider // required when any seat is AI
	History   HistoryRecorder
	Store     SaveStore
	Publisher SnapshotPublisher
	SaveSlot  string

	startedAt time.Time
}

// New builds a match for the given mode over a fresh game.
func New(mode Mode, gameID string, ui UI) *Match {
	names := SeatNames(mode)
	return &Match{
		GameID: gameID,
		Mode:   mode,
		Game:   domain.NewGame(),
		Seats: [2]Seat{
			{Name: names[0], IsAI: names[0][0] == 'a'},
			{Name: names[1], IsAI: names[1][0] == 'a'},
		},
		UI:       ui,
		SaveSlot: "default",
	}
}

func (m *Match) seatFor(p domain.PlayerID) Seat {
	if p == domain.Player1 {
		return m.Seats[0]
	}
	return m.Seats[1]
}

// Run plays the match to completion. It returns an error only when the
// context is cancelled or a human seat's input fails; engine-level
// rejections are re-prompted, AI failures fall back to the local bot.
func (m *Match) Run(ctx context.Context) error {
	m.startedAt = time.Now()
	if m.Game == nil {
		m.Game = domain.NewGame()
	}

	for !m.Game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		seat := m.seatFor(m.Game.CurrentPlayer)
		m.UI.ShowBoard(m.Game.Board)

		column, err := m.pickColumn(ctx, seat)
		if err != nil {
			return err
		}

		if _, err := m.Game.MakeMove(column); err != nil {
			if seat.IsAI {
				// fallback already re-validated, so this only fires on
				// a full board race; surface it and stop
				return fmt.Errorf("ai move rejected: %w", err)
			}
			m.UI.Warn("Invalid move! Column is either out of range or full. Try again.")
			continue
		}

		m.publish()
		m.autosave(ctx)
	}

	m.finish(ctx)
	return nil
}

func (m *Match) pickColumn(ctx context.Context, seat Seat) (int, error) {
	if !seat.IsAI {
		return m.UI.PromptColumn(ctx, seat.Name)
	}

	stop := m.UI.Thinking(seat.Name)
	column, err := m.Advisor.SuggestMove(ctx, m.Game.Snapshot(), m.Game.CurrentPlayer)
	stop()

	if err != nil {
		log.Printf("[AI] %s: %v, using fallback", seat.Name, err)
		column = bot.FallbackMove(m.Game.Board, m.Game.CurrentPlayer)
		m.UI.Warn("AI %s fell back to column %d", seat.Name, column)
		return column, nil
	}

	m.UI.Info("AI %s chooses column %d", seat.Name, column)
	return column, nil
}

func (m *Match) finish(ctx context.Context) {
	m.UI.ShowBoard(m.Game.Board)

	result := Result{
		GameID:     m.GameID,
		Mode:       string(m.Mode),
		TotalMoves: m.Game.MoveCount,
		StartedAt:  m.startedAt,
		FinishedAt: time.Now(),
		Board:      m.Game.Snapshot(),
	}

	if m.Game.Status == domain.StatusWon {
		winner := m.seatFor(m.Game.Winner)
		result.Winner = winner.Name
		result.Reason = "connect4"
		if winner.IsAI {
			m.UI.Success("AI %s wins!", winner.Name)
		} else {
			m.UI.Success("Player %s wins!", winner.Name)
		}
	} else {
		result.Reason = "draw"
		m.UI.Success("It's a draw!")
	}

	m.publish()

	if m.History != nil {
		if err := m.History.SaveResult(ctx, result); err != nil {
			log.Printf("[HISTORY] failed to record game %s: %v", m.GameID, err)
		}
	}
	if m.Store != nil {
		if err := m.Store.Delete(ctx, m.SaveSlot); err != nil {
			log.Printf("[SAVE] failed to clear slot %s: %v", m.SaveSlot, err)
		}
	}
}

func (m *Match) publish() {
	if m.Publisher == nil {
		return
	}
	m.Publisher.Publish(m.snapshot())
}

func (m *Match) autosave(ctx context.Context) {
	if m.Store == nil || m.Game.IsFinished() {
		return
	}
	if err := m.Store.Save(ctx, m.SaveSlot, NewSavedGame(m)); err != nil {
		log.Printf("[SAVE] autosave failed: %v", err)
	}
}

// ErrNoSavedGame is returned by Resume when the slot is empty.
var ErrNoSavedGame = errors.New("no saved game")
