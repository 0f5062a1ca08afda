package service

import (
	"context"
	"fmt"
	"time"

	"github.com/innerlog/innerlog-api/internal/models"
	"github.com/innerlog/innerlog-api/internal/repository"
)

type recordsService struct {
	emotions repository.EmotionRepository
	thoughts repository.ThoughtRepository
	journals repository.JournalRepository
	goals    repository.GoalRepository
	practice repository.PracticeRepository
}

// NewRecordsService creates the normalized record-list service.
func NewRecordsService(
	emotions repository.EmotionRepository,
	thoughts repository.ThoughtRepository,
	journals repository.JournalRepository,
	goals repository.GoalRepository,
	practice repository.PracticeRepository,
) RecordsService {
	return &recordsService{
		emotions: emotions,
		thoughts: thoughts,
		journals: journals,
		goals:    goals,
		practice: practice,
	}
}

func (s *recordsService) ListEmotions(ctx context.Context, userID string, rng models.InsightRange) ([]models.EmotionRecord, error) {
	now := time.Now()
	var (
		records []models.EmotionRecord
		err     error
	)
	if start, bounded := rangeStart(now, rng); bounded {
		records, err = s.emotions.ListByUserSince(ctx, userID, start)
		records = filterEmotions(records, start, now, true)
	} else {
		records, err = s.emotions.ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list emotions: %w", err)
	}
	return records, nil
}

func (s *recordsService) ListThoughts(ctx context.Context, userID string, rng models.InsightRange) ([]models.ThoughtRecord, error) {
	now := time.Now()
	var (
		records []models.ThoughtRecord
		err     error
	)
	if start, bounded := rangeStart(now, rng); bounded {
		records, err = s.thoughts.ListByUserSince(ctx, userID, start)
		records = filterThoughts(records, start, now, true)
	} else {
		records, err = s.thoughts.ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list thoughts: %w", err)
	}
	return records, nil
}

func (s *recordsService) ListJournals(ctx context.Context, userID string, rng models.InsightRange) ([]models.JournalEntry, error) {
	now := time.Now()
	var (
		entries []models.JournalEntry
		err     error
	)
	if start, bounded := rangeStart(now, rng); bounded {
		entries, err = s.journals.ListByUserSince(ctx, userID, start)
		entries = filterJournals(entries, start, now, true)
	} else {
		entries, err = s.journals.ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}
	return entries, nil
}

func (s *recordsService) ListGoals(ctx context.Context, userID string, rng models.InsightRange) ([]models.Goal, error) {
	now := time.Now()
	var (
		goals []models.Goal
		err   error
	)
	if start, bounded := rangeStart(now, rng); bounded {
		goals, err = s.goals.ListByUserSince(ctx, userID, start)
		goals = filterGoals(goals, start, now, true)
	} else {
		goals, err = s.goals.ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

func (s *recordsService) ListPracticeResults(ctx context.Context, userID string, rng models.InsightRange) ([]models.PracticeResult, error) {
	now := time.Now()
	var (
		results []models.PracticeResult
		err     error
	)
	if start, bounded := rangeStart(now, rng); bounded {
		results, err = s.practice.ListByUserSince(ctx, userID, start)
		results = filterPractice(results, start, now, true)
	} else {
		results, err = s.practice.ListByUser(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list practice results: %w", err)
	}
	return results, nil
}
