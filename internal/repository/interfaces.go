package repository

import (
	"context"
	"time"

	"github.com/innerlog/innerlog-api/internal/models"
)

// EmotionRepository reads emotion records from the records backend.
type EmotionRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.EmotionRecord, error)
	ListByUserSince(ctx context.Context, userID string, since time.Time) ([]models.EmotionRecord, error)
}

// ThoughtRepository reads CBT thought records from the records backend.
type ThoughtRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.ThoughtRecord, error)
	ListByUserSince(ctx context.Context, userID string, since time.Time) ([]models.ThoughtRecord, error)
}

// JournalRepository reads journal entries from the records backend.
type JournalRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.JournalEntry, error)
	ListByUserSince(ctx context.Context, userID string, since time.Time) ([]models.JournalEntry, error)
}

// GoalRepository reads goals from the records backend.
type GoalRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Goal, error)
	ListByUserSince(ctx context.Context, userID string, since time.Time) ([]models.Goal, error)
}

// PracticeRepository reads reframe-practice results from the records backend.
type PracticeRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.PracticeResult, error)
	ListByUserSince(ctx context.Context, userID string, since time.Time) ([]models.PracticeResult, error)
}

// UserRepository reads user profiles and therapist-client grants.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	// HasClientGrant reports whether viewerID holds an explicit grant to
	// view clientID's data.
	HasClientGrant(ctx context.Context, viewerID, clientID string) (bool, error)
}

// ViewSelectionRepository persists the viewing-client choice locally.
// Get returns nil (no error) when the user has no selection.
type ViewSelectionRepository interface {
	Get(ctx context.Context, userID string) (*models.ViewSelection, error)
	Set(ctx context.Context, userID, clientID string) error
	Clear(ctx context.Context, userID string) error
}
