package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/innerlog/innerlog-api/internal/models"
	"github.com/innerlog/innerlog-api/pkg/recordstore"
)

type journalRepository struct {
	client *recordstore.Client
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(client *recordstore.Client) JournalRepository {
	return &journalRepository{client: client}
}

func (r *journalRepository) ListByUser(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	params := map[string]string{
		"userId": fmt.Sprintf("eq.%s", userID),
		"order":  "createdAt.desc",
	}
	return r.list(ctx, params)
}

func (r *journalRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]models.JournalEntry, error) {
	params := map[string]string{
		"userId": fmt.Sprintf("eq.%s", userID),
		"or":     fmt.Sprintf("(timestamp.gte.%s,createdAt.gte.%s)", since.Format(time.RFC3339), since.Format(time.RFC3339)),
		"order":  "createdAt.desc",
	}
	return r.list(ctx, params)
}

func (r *journalRepository) list(ctx context.Context, params map[string]string) ([]models.JournalEntry, error) {
	body, err := r.client.Query(ctx, "journal_entries", params)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}

	var wire []models.WireJournalEntry
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("failed to unmarshal journal entries: %w", err)
	}

	entries := make([]models.JournalEntry, 0, len(wire))
	for _, w := range wire {
		entries = append(entries, models.NormalizeJournalEntry(w))
	}
	return entries, nil
}
