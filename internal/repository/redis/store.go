package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/connect4ai/connect4/internal/service/match"
)

// saveTTL caps how long an abandoned game stays resumable.
const saveTTL = 24 * time.Hour

// NewClient connects to Redis. The caller decides whether a connection
// failure is fatal; for the game it never is.
func NewClient(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("could not connect to redis: %v", err)
	}

	log.Println("[REDIS] connected successfully")
	return client, nil
}

// SavedGameStore keeps one JSON-encoded in-progress session per slot.
type SavedGameStore struct {
	client *redis.Client
}

func NewSavedGameStore(client *redis.Client) *SavedGameStore {
	return &SavedGameStore{client: client}
}

func slotKey(slot string) string {
	return "connect4:save:" + slot
}

func (s *SavedGameStore) Save(ctx context.Context, slot string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, slotKey(slot), payload, saveTTL).Err()
}

// Load fills v from the slot, reporting match.ErrNoSavedGame when the
// slot is empty so every store speaks the same sentinel.
func (s *SavedGameStore) Load(ctx context.Context, slot string, v any) error {
	payload, err := s.client.Get(ctx, slotKey(slot)).Result()
	if err == redis.Nil {
		return match.ErrNoSavedGame
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(payload), v)
}

func (s *SavedGameStore) Delete(ctx context.Context, slot string) error {
	return s.client.Del(ctx, slotKey(slot)).Err()
}
