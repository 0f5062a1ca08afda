package service

import (
	"context"

	"github.com/innerlog/innerlog-api/internal/models"
)

// SessionService owns active-user resolution and the persisted
// viewing-client selection. It is the only place a viewing choice is
// interpreted; handlers never re-derive it.
type SessionService interface {
	// Resolve determines whose records the request should operate on.
	// requestedClientID is the request-scoped selection (the
	// X-Viewing-Client-Id header); it takes precedence over the persisted
	// selection, which in turn falls back to the user's own id.
	Resolve(ctx context.Context, user *models.User, requestedClientID string) (*models.ActiveUser, error)
	SetViewingClient(ctx context.Context, user *models.User, clientID string) error
	ClearViewingClient(ctx context.Context, user *models.User) error
	GetViewingClient(ctx context.Context, user *models.User) (*models.ViewSelection, error)
}

// InsightsService computes the dashboard progress summary.
type InsightsService interface {
	GetProgressSummary(ctx context.Context, userID string, rng models.InsightRange) (*models.ProgressSummary, error)
}

// TrendsService computes time-bucketed trend series.
type TrendsService interface {
	GetMoodTrend(ctx context.Context, userID string, rng models.TrendRange) (*models.TrendSeries, error)
	GetPracticeTrend(ctx context.Context, userID string, rng models.TrendRange) (*models.TrendSeries, error)
	GetJournalTrend(ctx context.Context, userID string, rng models.TrendRange) (*models.TrendSeries, error)
}

// RecordsService serves normalized record lists for the active user.
type RecordsService interface {
	ListEmotions(ctx context.Context, userID string, rng models.InsightRange) ([]models.EmotionRecord, error)
	ListThoughts(ctx context.Context, userID string, rng models.InsightRange) ([]models.ThoughtRecord, error)
	ListJournals(ctx context.Context, userID string, rng models.InsightRange) ([]models.JournalEntry, error)
	ListGoals(ctx context.Context, userID string, rng models.InsightRange) ([]models.Goal, error)
	ListPracticeResults(ctx context.Context, userID string, rng models.InsightRange) ([]models.PracticeResult, error)
}
