package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/innerlog/innerlog-api/internal/models"
	"github.com/innerlog/innerlog-api/pkg/recordstore"
)

type emotionRepository struct {
	client *recordstore.Client
}

// NewEmotionRepository creates a new emotion repository
func NewEmotionRepository(client *recordstore.Client) EmotionRepository {
	return &emotionRepository{client: client}
}

func (r *emotionRepository) ListByUser(ctx context.Context, userID string) ([]models.EmotionRecord, error) {
	params := map[string]string{
		"userId": fmt.Sprintf("eq.%s", userID),
		"order":  "createdAt.desc",
	}
	return r.list(ctx, params)
}

func (r *emotionRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]models.EmotionRecord, error) {
	params := map[string]string{
		"userId": fmt.Sprintf("eq.%s", userID),
		"or":     fmt.Sprintf("(timestamp.gte.%s,createdAt.gte.%s)", since.Format(time.RFC3339), since.Format(time.RFC3339)),
		"order":  "createdAt.desc",
	}
	return r.list(ctx, params)
}

func (r *emotionRepository) list(ctx context.Context, params map[string]string) ([]models.EmotionRecord, error) {
	body, err := r.client.Query(ctx, "emotion_records", params)
	if err != nil {
		return nil, fmt.Errorf("failed to list emotion records: %w", err)
	}

	var wire []models.WireEmotionRecord
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("failed to unmarshal emotion records: %w", err)
	}

	records := make([]models.EmotionRecord, 0, len(wire))
	for _, w := range wire {
		records = append(records, models.NormalizeEmotionRecord(w))
	}
	return records, nil
}
