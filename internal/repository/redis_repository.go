package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/0xshariq/ai-powered-chatbot/internal/model"
)

type redisRepository struct {
	rdb *redis.Client
}

// NewRedisRepository returns a Repository backed by Redis. Records are stored
// as JSON values under stable keys, the same shapes the SQLite backend keeps.
func NewRedisRepository(rdb *redis.Client) Repository {
	return &redisRepository{rdb: rdb}
}

// Key generation helpers.
func (r *redisRepository) sessionKey(chatID string) string { return fmt.Sprintf("chat:%s:messages", chatID) }
func (r *redisRepository) summariesKey() string            { return "chat:summaries" }
func (r *redisRepository) activeKey() string               { return "chat:active" }

func (r *redisRepository) SaveSession(ctx context.Context, chatID string, messages []model.Message) error {
	payload, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("could not marshal messages: %w", err)
	}
	return r.rdb.Set(ctx, r.sessionKey(chatID), payload, 0).Err()
}

func (r *redisRepository) GetSession(ctx context.Context, chatID string) ([]model.Message, error) {
	payload, err := r.rdb.Get(ctx, r.sessionKey(chatID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var messages []model.Message
	if err := json.Unmarshal(payload, &messages); err != nil {
		slog.Warn("Discarding corrupt session record", "chat_id", chatID, "error", err)
		return []model.Message{}, nil
	}
	return messages, nil
}

func (r *redisRepository) SessionExists(ctx context.Context, chatID string) (bool, error) {
	n, err := r.rdb.Exists(ctx, r.sessionKey(chatID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *redisRepository) DeleteSession(ctx context.Context, chatID string) error {
	return r.rdb.Del(ctx, r.sessionKey(chatID)).Err()
}

func (r *redisRepository) SaveSummaries(ctx context.Context, summaries []model.ChatSummary) error {
	payload, err := json.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("could not marshal summaries: %w", err)
	}
	return r.rdb.Set(ctx, r.summariesKey(), payload, 0).Err()
}

func (r *redisRepository) GetSummaries(ctx context.Context) ([]model.ChatSummary, error) {
	payload, err := r.rdb.Get(ctx, r.summariesKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []model.ChatSummary{}, nil
		}
		return nil, err
	}

	summaries := []model.ChatSummary{}
	if err := json.Unmarshal(payload, &summaries); err != nil {
		slog.Warn("Discarding corrupt summary list", "error", err)
		return []model.ChatSummary{}, nil
	}
	return summaries, nil
}

func (r *redisRepository) SetActiveChat(ctx context.Context, chatID string) error {
	return r.rdb.Set(ctx, r.activeKey(), chatID, 0).Err()
}

func (r *redisRepository) GetActiveChat(ctx context.Context) (string, error) {
	chatID, err := r.rdb.Get(ctx, r.activeKey()).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return chatID, nil
}
