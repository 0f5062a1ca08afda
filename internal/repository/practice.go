package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/innerlog/innerlog-api/internal/models"
	"github.com/innerlog/innerlog-api/pkg/recordstore"
)

type practiceRepository struct {
	client *recordstore.Client
}

// NewPracticeRepository creates a new practice-result repository
func NewPracticeRepository(client *recordstore.Client) PracticeRepository {
	return &practiceRepository{client: client}
}

func (r *practiceRepository) ListByUser(ctx context.Context, userID string) ([]models.PracticeResult, error) {
	params := map[string]string{
		"userId": fmt.Sprintf("eq.%s", userID),
		"order":  "createdAt.desc",
	}
	return r.list(ctx, params)
}

func (r *practiceRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]models.PracticeResult, error) {
	params := map[string]string{
		"userId": fmt.Sprintf("eq.%s", userID),
		"or":     fmt.Sprintf("(timestamp.gte.%s,createdAt.gte.%s)", since.Format(time.RFC3339), since.Format(time.RFC3339)),
		"order":  "createdAt.desc",
	}
	return r.list(ctx, params)
}

func (r *practiceRepository) list(ctx context.Context, params map[string]string) ([]models.PracticeResult, error) {
	body, err := r.client.Query(ctx, "practice_results", params)
	if err != nil {
		return nil, fmt.Errorf("failed to list practice results: %w", err)
	}

	var wire []models.WirePracticeResult
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("failed to unmarshal practice results: %w", err)
	}

	results := make([]models.PracticeResult, 0, len(wire))
	for _, w := range wire {
		results = append(results, models.NormalizePracticeResult(w))
	}
	return results, nil
}
