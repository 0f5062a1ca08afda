package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/innerlog/innerlog-api/internal/models"
	"github.com/innerlog/innerlog-api/pkg/recordstore"
)

type goalRepository struct {
	client *recordstore.Client
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(client *recordstore.Client) GoalRepository {
	return &goalRepository{client: client}
}

func (r *goalRepository) ListByUser(ctx context.Context, userID string) ([]models.Goal, error) {
	params := map[string]string{
		"userId": fmt.Sprintf("eq.%s", userID),
		"order":  "createdAt.desc",
	}
	return r.list(ctx, params)
}

func (r *goalRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]models.Goal, error) {
	params := map[string]string{
		"userId": fmt.Sprintf("eq.%s", userID),
		"or":     fmt.Sprintf("(timestamp.gte.%s,createdAt.gte.%s)", since.Format(time.RFC3339), since.Format(time.RFC3339)),
		"order":  "createdAt.desc",
	}
	return r.list(ctx, params)
}

func (r *goalRepository) list(ctx context.Context, params map[string]string) ([]models.Goal, error) {
	body, err := r.client.Query(ctx, "goals", params)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	var wire []models.WireGoal
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("failed to unmarshal goals: %w", err)
	}

	goals := make([]models.Goal, 0, len(wire))
	for _, w := range wire {
		goals = append(goals, models.NormalizeGoal(w))
	}
	return goals, nil
}
