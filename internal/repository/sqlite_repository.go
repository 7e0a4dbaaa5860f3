package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/0xshariq/ai-powered-chatbot/internal/model"
)

const activeChatKey = "active_chat"

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) SaveSession(ctx context.Context, chatID string, messages []model.Message) error {
	payload, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("could not marshal messages: %w", err)
	}
	query := `
		INSERT INTO sessions (id, messages, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET messages = excluded.messages, updated_at = excluded.updated_at
	`
	_, err = r.db.ExecContext(ctx, query, chatID, string(payload), time.Now().UTC())
	return err
}

func (r *sqliteRepository) GetSession(ctx context.Context, chatID string) ([]model.Message, error) {
	row := r.db.QueryRowContext(ctx, "SELECT messages FROM sessions WHERE id = ?", chatID)
	var payload string
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var messages []model.Message
	if err := json.Unmarshal([]byte(payload), &messages); err != nil {
		// Corrupt persisted data fails closed: log it and present the chat
		// as empty rather than propagating a parse error to the caller.
		slog.Warn("Discarding corrupt session record", "chat_id", chatID, "error", err)
		return []model.Message{}, nil
	}
	return messages, nil
}

func (r *sqliteRepository) SessionExists(ctx context.Context, chatID string) (bool, error) {
	row := r.db.QueryRowContext(ctx, "SELECT 1 FROM sessions WHERE id = ?", chatID)
	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *sqliteRepository) DeleteSession(ctx context.Context, chatID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", chatID)
	return err
}

// SaveSummaries rewrites the whole ordered list in one transaction so the
// stored record always matches the in-memory index exactly.
func (r *sqliteRepository) SaveSummaries(ctx context.Context, summaries []model.ChatSummary) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM summaries"); err != nil {
		return fmt.Errorf("could not clear summaries: %w", err)
	}
	for i, s := range summaries {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO summaries (id, position, title, preview, timestamp) VALUES (?, ?, ?, ?, ?)",
			s.ID, i, s.Title, s.Preview, s.Timestamp,
		)
		if err != nil {
			return fmt.Errorf("could not insert summary: %w", err)
		}
	}

	return tx.Commit()
}

func (r *sqliteRepository) GetSummaries(ctx context.Context) ([]model.ChatSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, title, preview, timestamp FROM summaries ORDER BY position ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []model.ChatSummary{}
	for rows.Next() {
		var s model.ChatSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.Preview, &s.Timestamp); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *sqliteRepository) SetActiveChat(ctx context.Context, chatID string) error {
	query := `
		INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	_, err := r.db.ExecContext(ctx, query, activeChatKey, chatID)
	return err
}

func (r *sqliteRepository) GetActiveChat(ctx context.Context) (string, error) {
	row := r.db.QueryRowContext(ctx, "SELECT value FROM app_state WHERE key = ?", activeChatKey)
	var chatID string
	if err := row.Scan(&chatID); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return chatID, nil
}
