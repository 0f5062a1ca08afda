package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/innerlog/innerlog-api/internal/models"
)

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func emotionAt(id int64, emotion models.CoreEmotion, intensity float64, at time.Time) models.EmotionRecord {
	return models.EmotionRecord{ID: id, UserID: "user-1", CoreEmotion: emotion, Intensity: intensity, OccurredAt: at}
}

func TestBuildProgressSummaryEmpty(t *testing.T) {
	summary := buildProgressSummary(testNow, models.RangeWeek, nil, nil, nil, nil, nil)

	if summary.EmotionalBalance.Positive.Current != 0 || summary.EmotionalBalance.Negative.Current != 0 {
		t.Errorf("balance = %+v, want all zero", summary.EmotionalBalance)
	}
	if summary.ThoughtChallenge.Rate != 0 || summary.ThoughtChallenge.Total != 0 {
		t.Errorf("challenge rate = %+v, want zero", summary.ThoughtChallenge)
	}
	if summary.GoalProgress.CompletionRate != 0 {
		t.Errorf("completion rate = %d, want 0", summary.GoalProgress.CompletionRate)
	}
	if summary.TopDistortion != nil {
		t.Errorf("top distortion = %+v, want nil", summary.TopDistortion)
	}
	if len(summary.Timeline) != 0 {
		t.Errorf("timeline length = %d, want 0", len(summary.Timeline))
	}
}

func TestEmotionalBalanceMidpointSplit(t *testing.T) {
	// Week window, so the midpoint falls 3.5 days back. One positive and
	// two negative records in the recent half, nothing in the previous
	// half.
	emotions := []models.EmotionRecord{
		emotionAt(1, models.EmotionJoy, 8, testNow.AddDate(0, 0, -1)),
		emotionAt(2, models.EmotionSadness, 4, testNow.AddDate(0, 0, -1)),
		emotionAt(3, models.EmotionSadness, 6, testNow.AddDate(0, 0, -2)),
	}

	summary := buildProgressSummary(testNow, models.RangeWeek, emotions, nil, nil, nil, nil)
	balance := summary.EmotionalBalance

	if balance.Positive.Current != 8 {
		t.Errorf("positive current = %v, want 8", balance.Positive.Current)
	}
	if balance.Negative.Current != 5 {
		t.Errorf("negative current = %v, want 5", balance.Negative.Current)
	}
	if balance.Positive.Previous != 0 || balance.Negative.Previous != 0 {
		t.Errorf("previous halves = %v/%v, want 0/0", balance.Positive.Previous, balance.Negative.Previous)
	}
	// An empty previous half never divides by zero.
	if balance.Positive.ChangePercent != 0 {
		t.Errorf("positive change percent = %v, want 0", balance.Positive.ChangePercent)
	}
}

func TestEmotionalBalanceBothHalves(t *testing.T) {
	emotions := []models.EmotionRecord{
		emotionAt(1, models.EmotionJoy, 4, testNow.AddDate(0, 0, -5)), // previous half
		emotionAt(2, models.EmotionJoy, 6, testNow.AddDate(0, 0, -1)), // recent half
	}

	balance := buildProgressSummary(testNow, models.RangeWeek, emotions, nil, nil, nil, nil).EmotionalBalance

	if balance.Positive.Current != 6 || balance.Positive.Previous != 4 {
		t.Fatalf("positive = %+v, want current 6 previous 4", balance.Positive)
	}
	if balance.Positive.Change != 2 {
		t.Errorf("change = %v, want 2", balance.Positive.Change)
	}
	if balance.Positive.ChangePercent != 50 {
		t.Errorf("change percent = %v, want 50", balance.Positive.ChangePercent)
	}
}

func TestEmotionalBalanceNeutralExcluded(t *testing.T) {
	emotions := []models.EmotionRecord{
		emotionAt(1, models.EmotionSurprise, 9, testNow.AddDate(0, 0, -1)),
		emotionAt(2, models.EmotionTrust, 7, testNow.AddDate(0, 0, -1)),
		emotionAt(3, "mystery", 5, testNow.AddDate(0, 0, -1)),
	}

	balance := buildProgressSummary(testNow, models.RangeWeek, emotions, nil, nil, nil, nil).EmotionalBalance

	if balance.Positive.Current != 0 || balance.Negative.Current != 0 {
		t.Errorf("balance = %+v, want zero (neutral valence only)", balance)
	}
}

func TestEmotionalBalanceUnboundedWindow(t *testing.T) {
	// For the all range the window starts at the earliest record, not at
	// time zero, so the midpoint split stays meaningful.
	emotions := []models.EmotionRecord{
		emotionAt(1, models.EmotionJoy, 2, testNow.AddDate(0, 0, -100)),
		emotionAt(2, models.EmotionJoy, 8, testNow.AddDate(0, 0, -10)),
	}

	balance := buildProgressSummary(testNow, models.RangeAll, emotions, nil, nil, nil, nil).EmotionalBalance

	if balance.Positive.Previous != 2 {
		t.Errorf("previous = %v, want 2", balance.Positive.Previous)
	}
	if balance.Positive.Current != 8 {
		t.Errorf("current = %v, want 8", balance.Positive.Current)
	}
}

func TestThoughtChallengeRate(t *testing.T) {
	thoughts := []models.ThoughtRecord{
		{ID: 1, AutomaticThoughts: "I always fail", EvidenceAgainst: "I passed last week", OccurredAt: testNow.AddDate(0, 0, -1)},
		{ID: 2, AutomaticThoughts: "Nobody listens", OccurredAt: testNow.AddDate(0, 0, -2)},
	}

	rate := buildProgressSummary(testNow, models.RangeWeek, nil, thoughts, nil, nil, nil).ThoughtChallenge

	if rate.Rate != 50 {
		t.Errorf("rate = %d, want 50", rate.Rate)
	}
	if rate.Challenged != 1 || rate.Total != 2 {
		t.Errorf("challenged/total = %d/%d, want 1/2", rate.Challenged, rate.Total)
	}
}

func TestGoalProgress(t *testing.T) {
	goals := []models.Goal{
		{ID: 1, Status: models.GoalStatusCompleted, OccurredAt: testNow.AddDate(0, 0, -1)},
		{ID: 2, Status: models.GoalStatusApproved, OccurredAt: testNow.AddDate(0, 0, -1)},
		{ID: 3, Status: models.GoalStatusInProgress, OccurredAt: testNow.AddDate(0, 0, -2)},
		{ID: 4, Status: models.GoalStatusPending, OccurredAt: testNow.AddDate(0, 0, -3)},
	}

	progress := buildProgressSummary(testNow, models.RangeWeek, nil, nil, nil, goals, nil).GoalProgress

	// Approved goals sit in the Other bucket but still count as done.
	if progress.Completed != 1 || progress.InProgress != 1 || progress.Pending != 1 || progress.Other != 1 {
		t.Errorf("buckets = %+v, want 1 each", progress)
	}
	if progress.CompletionRate != 50 {
		t.Errorf("completion rate = %d, want 50", progress.CompletionRate)
	}
	if sum := progress.Completed + progress.InProgress + progress.Pending + progress.Other; sum != progress.Total {
		t.Errorf("bucket sum = %d, total = %d", sum, progress.Total)
	}
	if progress.CompletionRate < 0 || progress.CompletionRate > 100 {
		t.Errorf("completion rate %d out of range", progress.CompletionRate)
	}
}

func TestTopDistortion(t *testing.T) {
	thoughts := []models.ThoughtRecord{
		{ID: 1, CognitiveDistortions: []string{"catastrophizing", "mind reading"}, OccurredAt: testNow.AddDate(0, 0, -1)},
		{ID: 2, CognitiveDistortions: []string{"catastrophizing"}, OccurredAt: testNow.AddDate(0, 0, -2)},
		{ID: 3, CognitiveDistortions: []string{"all-or-nothing"}, OccurredAt: testNow.AddDate(0, 0, -3)},
	}

	top := buildProgressSummary(testNow, models.RangeWeek, nil, thoughts, nil, nil, nil).TopDistortion

	if top == nil {
		t.Fatal("top distortion is nil")
	}
	if top.Name != "catastrophizing" {
		t.Errorf("name = %q, want %q", top.Name, "catastrophizing")
	}
	if top.Count != 2 {
		t.Errorf("count = %d, want 2", top.Count)
	}
}

func TestTopDistortionTieGoesToFirst(t *testing.T) {
	// Both distortions end at one occurrence; the one seen first wins.
	thoughts := []models.ThoughtRecord{
		{ID: 1, CognitiveDistortions: []string{"labeling"}, OccurredAt: testNow.AddDate(0, 0, -1)},
		{ID: 2, CognitiveDistortions: []string{"mind reading"}, OccurredAt: testNow.AddDate(0, 0, -2)},
	}

	top := buildProgressSummary(testNow, models.RangeWeek, nil, thoughts, nil, nil, nil).TopDistortion

	if top == nil || top.Name != "labeling" {
		t.Errorf("top = %+v, want labeling", top)
	}
}

func TestTopDistortionNilWithoutDistortions(t *testing.T) {
	thoughts := []models.ThoughtRecord{
		{ID: 1, CognitiveDistortions: []string{}, OccurredAt: testNow.AddDate(0, 0, -1)},
	}

	if top := buildProgressSummary(testNow, models.RangeWeek, nil, thoughts, nil, nil, nil).TopDistortion; top != nil {
		t.Errorf("top = %+v, want nil", top)
	}
}

func TestTimelineSortedAndCapped(t *testing.T) {
	var emotions []models.EmotionRecord
	for i := 0; i < 20; i++ {
		emotions = append(emotions, emotionAt(int64(i), models.EmotionJoy, 5, testNow.Add(-time.Duration(i)*time.Hour)))
	}
	var journals []models.JournalEntry
	for i := 0; i < 20; i++ {
		journals = append(journals, models.JournalEntry{
			ID:         int64(100 + i),
			Title:      fmt.Sprintf("Entry %d", i),
			OccurredAt: testNow.Add(-time.Duration(i)*time.Hour - 30*time.Minute),
		})
	}

	timeline := buildProgressSummary(testNow, models.RangeWeek, emotions, nil, journals, nil, nil).Timeline

	if len(timeline) != 30 {
		t.Fatalf("timeline length = %d, want 30", len(timeline))
	}
	for i := 1; i < len(timeline); i++ {
		if timeline[i].Date.After(timeline[i-1].Date) {
			t.Fatalf("timeline not sorted at %d: %v after %v", i, timeline[i].Date, timeline[i-1].Date)
		}
	}
	// The cap applies to the merged list, so both types survive it.
	types := map[models.RecordType]int{}
	for _, e := range timeline {
		types[e.Type]++
	}
	if types[models.RecordTypeEmotion] == 0 || types[models.RecordTypeJournal] == 0 {
		t.Errorf("type mix = %v, want both emotion and journal entries", types)
	}
}

func TestTimelineTitles(t *testing.T) {
	long := strings.Repeat("x", 80)
	thoughts := []models.ThoughtRecord{
		{ID: 1, AutomaticThoughts: long, OccurredAt: testNow.AddDate(0, 0, -1)},
	}
	practice := []models.PracticeResult{
		{ID: 2, Correct: 3, Total: 5, OccurredAt: testNow.AddDate(0, 0, -2)},
	}

	timeline := buildProgressSummary(testNow, models.RangeWeek, nil, thoughts, nil, nil, practice).Timeline

	if len(timeline) != 2 {
		t.Fatalf("timeline length = %d, want 2", len(timeline))
	}
	if want := strings.Repeat("x", 60) + "..."; timeline[0].Title != want {
		t.Errorf("thought title = %q, want truncated to 60", timeline[0].Title)
	}
	if timeline[1].Title != "Reframe practice (60%)" {
		t.Errorf("practice title = %q, want %q", timeline[1].Title, "Reframe practice (60%)")
	}
}

func TestRangeFiltering(t *testing.T) {
	emotions := []models.EmotionRecord{
		emotionAt(1, models.EmotionJoy, 5, testNow.AddDate(0, 0, -1)),
		emotionAt(2, models.EmotionJoy, 5, testNow.AddDate(0, 0, -20)),
		emotionAt(3, models.EmotionJoy, 5, testNow.AddDate(0, 0, -90)),
	}

	tests := []struct {
		rng  models.InsightRange
		want int
	}{
		{models.RangeWeek, 1},
		{models.RangeMonth, 2},
		{models.RangeAll, 3},
	}

	for _, tt := range tests {
		summary := buildProgressSummary(testNow, tt.rng, emotions, nil, nil, nil, nil)
		if summary.Totals.Emotions != tt.want {
			t.Errorf("range %s: emotions = %d, want %d", tt.rng, summary.Totals.Emotions, tt.want)
		}
	}
}

func TestGetProgressSummaryWithoutCache(t *testing.T) {
	svc := NewInsightsService(
		&mockEmotionRepository{records: []models.EmotionRecord{
			emotionAt(1, models.EmotionJoy, 7, time.Now().Add(-time.Hour)),
		}},
		&mockThoughtRepository{},
		&mockJournalRepository{},
		&mockGoalRepository{},
		&mockPracticeRepository{},
		nil,
	)

	summary, err := svc.GetProgressSummary(context.Background(), "user-1", models.RangeWeek)
	if err != nil {
		t.Fatalf("GetProgressSummary() error = %v", err)
	}
	if summary.Totals.Emotions != 1 {
		t.Errorf("emotions total = %d, want 1", summary.Totals.Emotions)
	}
	if summary.Range != models.RangeWeek {
		t.Errorf("range = %s, want week", summary.Range)
	}
}
