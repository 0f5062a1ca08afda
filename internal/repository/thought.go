package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/innerlog/innerlog-api/internal/models"
	"github.com/innerlog/innerlog-api/pkg/recordstore"
)

type thoughtRepository struct {
	client *recordstore.Client
}

// NewThoughtRepository creates a new thought-record repository
func NewThoughtRepository(client *recordstore.Client) ThoughtRepository {
	return &thoughtRepository{client: client}
}

func (r *thoughtRepository) ListByUser(ctx context.Context, userID string) ([]models.ThoughtRecord, error) {
	params := map[string]string{
		"userId": fmt.Sprintf("eq.%s", userID),
		"order":  "createdAt.desc",
	}
	return r.list(ctx, params)
}

func (r *thoughtRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]models.ThoughtRecord, error) {
	params := map[string]string{
		"userId": fmt.Sprintf("eq.%s", userID),
		"or":     fmt.Sprintf("(timestamp.gte.%s,createdAt.gte.%s)", since.Format(time.RFC3339), since.Format(time.RFC3339)),
		"order":  "createdAt.desc",
	}
	return r.list(ctx, params)
}

func (r *thoughtRepository) list(ctx context.Context, params map[string]string) ([]models.ThoughtRecord, error) {
	body, err := r.client.Query(ctx, "thought_records", params)
	if err != nil {
		return nil, fmt.Errorf("failed to list thought records: %w", err)
	}

	var wire []models.WireThoughtRecord
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("failed to unmarshal thought records: %w", err)
	}

	records := make([]models.ThoughtRecord, 0, len(wire))
	for _, w := range wire {
		records = append(records, models.NormalizeThoughtRecord(w))
	}
	return records, nil
}
