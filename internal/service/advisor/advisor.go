// Package advisor turns an LLM chat client into a Connect-4 move
// provider. The board engine never depends on this package; only the
// match loop does.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/connect4ai/connect4/internal/domain"
	"github.com/connect4ai/connect4/internal/llm"
)

// MoveProvider is the contract every seat fulfils: given a read-only
// board snapshot, pick a column for player.
type MoveProvider interface {
	SuggestMove(ctx context.Context, board [][]domain.PlayerID, player domain.PlayerID) (int, error)
}

var (
	// ErrProvider covers transport and model failures.
	ErrProvider = errors.New("move provider failure")
	// ErrBadSuggestion covers replies that parse but name an illegal column.
	ErrBadSuggestion = errors.New("provider suggested an illegal column")
)

// LLMAdvisor asks a chat model for the next move.
type LLMAdvisor struct {
	client  llm.Client
	timeout time.Duration
}

func NewLLMAdvisor(client llm.Client, timeout time.Duration) *LLMAdvisor {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &LLMAdvisor{client: client, timeout: timeout}
}

func (a *LLMAdvisor) SuggestMove(ctx context.Context, board [][]domain.PlayerID, player domain.PlayerID) (int, error) {
	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	reply, err := a.client.Chat(callCtx, systemPrompt, BuildPrompt(board, player))
	if err != nil {
		return -1, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	column, err := ParseColumn(reply)
	if err != nil {
		return -1, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	if !domain.IsValidMove(board, column) {
		return -1, fmt.Errorf("%w: column %d", ErrBadSuggestion, column)
	}

	return column, nil
}
