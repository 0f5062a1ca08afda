package service

import (
	"context"
	"time"

	"github.com/innerlog/innerlog-api/internal/models"
)

// mockEmotionRepository is a mock implementation of EmotionRepository for testing
type mockEmotionRepository struct {
	records []models.EmotionRecord
	err     error
}

func (m *mockEmotionRepository) ListByUser(ctx context.Context, userID string) ([]models.EmotionRecord, error) {
	return m.records, m.err
}

func (m *mockEmotionRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]models.EmotionRecord, error) {
	return m.records, m.err
}

// mockThoughtRepository is a mock implementation of ThoughtRepository for testing
type mockThoughtRepository struct {
	records []models.ThoughtRecord
	err     error
}

func (m *mockThoughtRepository) ListByUser(ctx context.Context, userID string) ([]models.ThoughtRecord, error) {
	return m.records, m.err
}

func (m *mockThoughtRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]models.ThoughtRecord, error) {
	return m.records, m.err
}

// mockJournalRepository is a mock implementation of JournalRepository for testing
type mockJournalRepository struct {
	records []models.JournalEntry
	err     error
}

func (m *mockJournalRepository) ListByUser(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	return m.records, m.err
}

func (m *mockJournalRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]models.JournalEntry, error) {
	return m.records, m.err
}

// mockGoalRepository is a mock implementation of GoalRepository for testing
type mockGoalRepository struct {
	records []models.Goal
	err     error
}

func (m *mockGoalRepository) ListByUser(ctx context.Context, userID string) ([]models.Goal, error) {
	return m.records, m.err
}

func (m *mockGoalRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]models.Goal, error) {
	return m.records, m.err
}

// mockPracticeRepository is a mock implementation of PracticeRepository for testing
type mockPracticeRepository struct {
	records []models.PracticeResult
	err     error
}

func (m *mockPracticeRepository) ListByUser(ctx context.Context, userID string) ([]models.PracticeResult, error) {
	return m.records, m.err
}

func (m *mockPracticeRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]models.PracticeResult, error) {
	return m.records, m.err
}

// mockUserRepository tracks grants as "viewerID:clientID" keys.
type mockUserRepository struct {
	users  map[string]*models.User
	grants map[string]bool
	err    error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users:  make(map[string]*models.User),
		grants: make(map[string]bool),
	}
}

func (m *mockUserRepository) grant(viewerID, clientID string) {
	m.grants[viewerID+":"+clientID] = true
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users[userID], nil
}

func (m *mockUserRepository) HasClientGrant(ctx context.Context, viewerID, clientID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.grants[viewerID+":"+clientID], nil
}

// mockViewSelectionRepository is an in-memory ViewSelectionRepository.
type mockViewSelectionRepository struct {
	selections map[string]string
	setCalls   int
	clearCalls int
}

func newMockViewSelectionRepository() *mockViewSelectionRepository {
	return &mockViewSelectionRepository{selections: make(map[string]string)}
}

func (m *mockViewSelectionRepository) Get(ctx context.Context, userID string) (*models.ViewSelection, error) {
	clientID, ok := m.selections[userID]
	if !ok {
		return nil, nil
	}
	return &models.ViewSelection{UserID: userID, ClientID: clientID}, nil
}

func (m *mockViewSelectionRepository) Set(ctx context.Context, userID, clientID string) error {
	m.setCalls++
	m.selections[userID] = clientID
	return nil
}

func (m *mockViewSelectionRepository) Clear(ctx context.Context, userID string) error {
	m.clearCalls++
	delete(m.selections, userID)
	return nil
}
