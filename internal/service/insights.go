package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/innerlog/innerlog-api/internal/cache"
	"github.com/innerlog/innerlog-api/internal/logger"
	"github.com/innerlog/innerlog-api/internal/models"
	"github.com/innerlog/innerlog-api/internal/repository"
)

// timelineLimit caps the unified timeline across all record types combined.
const timelineLimit = 30

type insightsService struct {
	emotions repository.EmotionRepository
	thoughts repository.ThoughtRepository
	journals repository.JournalRepository
	goals    repository.GoalRepository
	practice repository.PracticeRepository
	cache    *cache.InsightsCache
}

// NewInsightsService creates the progress-insights service. cache may be
// nil, in which case every request recomputes from raw arrays.
func NewInsightsService(
	emotions repository.EmotionRepository,
	thoughts repository.ThoughtRepository,
	journals repository.JournalRepository,
	goals repository.GoalRepository,
	practice repository.PracticeRepository,
	insightsCache *cache.InsightsCache,
) InsightsService {
	return &insightsService{
		emotions: emotions,
		thoughts: thoughts,
		journals: journals,
		goals:    goals,
		practice: practice,
		cache:    insightsCache,
	}
}

func (s *insightsService) GetProgressSummary(ctx context.Context, userID string, rng models.InsightRange) (*models.ProgressSummary, error) {
	if summary, ok := s.cache.Get(ctx, userID, rng); ok {
		return summary, nil
	}

	now := time.Now()

	var (
		emotions []models.EmotionRecord
		thoughts []models.ThoughtRecord
		journals []models.JournalEntry
		goals    []models.Goal
		practice []models.PracticeResult
		err      error
	)

	if start, bounded := rangeStart(now, rng); bounded {
		emotions, err = s.emotions.ListByUserSince(ctx, userID, start)
		if err == nil {
			thoughts, err = s.thoughts.ListByUserSince(ctx, userID, start)
		}
		if err == nil {
			journals, err = s.journals.ListByUserSince(ctx, userID, start)
		}
		if err == nil {
			goals, err = s.goals.ListByUserSince(ctx, userID, start)
		}
		if err == nil {
			practice, err = s.practice.ListByUserSince(ctx, userID, start)
		}
	} else {
		emotions, err = s.emotions.ListByUser(ctx, userID)
		if err == nil {
			thoughts, err = s.thoughts.ListByUser(ctx, userID)
		}
		if err == nil {
			journals, err = s.journals.ListByUser(ctx, userID)
		}
		if err == nil {
			goals, err = s.goals.ListByUser(ctx, userID)
		}
		if err == nil {
			practice, err = s.practice.ListByUser(ctx, userID)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	summary := buildProgressSummary(now, rng, emotions, thoughts, journals, goals, practice)
	s.cache.Set(ctx, userID, rng, summary)

	logger.Ctx(ctx).Debug("progress summary computed",
		logger.String("user_id", userID),
		logger.String("range", string(rng)),
		logger.Int("timeline", len(summary.Timeline)),
	)

	return summary, nil
}

// rangeStart returns the inclusive window start for a bounded range. The
// second return is false for RangeAll.
func rangeStart(now time.Time, rng models.InsightRange) (time.Time, bool) {
	switch rng {
	case models.RangeWeek:
		return now.AddDate(0, 0, -7), true
	case models.RangeMonth:
		return now.AddDate(0, 0, -30), true
	default:
		return time.Time{}, false
	}
}

// buildProgressSummary is the whole aggregation pipeline as one pure, total
// function: any combination of empty inputs yields an all-zero summary,
// never an error.
func buildProgressSummary(
	now time.Time,
	rng models.InsightRange,
	emotions []models.EmotionRecord,
	thoughts []models.ThoughtRecord,
	journals []models.JournalEntry,
	goals []models.Goal,
	practice []models.PracticeResult,
) *models.ProgressSummary {
	start, bounded := rangeStart(now, rng)

	emotions = filterEmotions(emotions, start, now, bounded)
	thoughts = filterThoughts(thoughts, start, now, bounded)
	journals = filterJournals(journals, start, now, bounded)
	goals = filterGoals(goals, start, now, bounded)
	practice = filterPractice(practice, start, now, bounded)

	return &models.ProgressSummary{
		Range:            rng,
		EmotionalBalance: computeEmotionalBalance(emotions, start, now, bounded),
		ThoughtChallenge: computeThoughtChallengeRate(thoughts),
		GoalProgress:     computeGoalProgress(goals),
		TopDistortion:    computeTopDistortion(thoughts),
		Timeline:         buildTimeline(emotions, thoughts, journals, goals, practice),
		Totals: models.CollectionTotals{
			Emotions:        len(emotions),
			Thoughts:        len(thoughts),
			Journals:        len(journals),
			Goals:           len(goals),
			PracticeResults: len(practice),
		},
		ComputedAt: now,
	}
}

func inWindow(t, start, end time.Time, bounded bool) bool {
	if bounded && t.Before(start) {
		return false
	}
	return !t.After(end)
}

func filterEmotions(in []models.EmotionRecord, start, end time.Time, bounded bool) []models.EmotionRecord {
	out := make([]models.EmotionRecord, 0, len(in))
	for _, r := range in {
		if inWindow(r.OccurredAt, start, end, bounded) {
			out = append(out, r)
		}
	}
	return out
}

func filterThoughts(in []models.ThoughtRecord, start, end time.Time, bounded bool) []models.ThoughtRecord {
	out := make([]models.ThoughtRecord, 0, len(in))
	for _, r := range in {
		if inWindow(r.OccurredAt, start, end, bounded) {
			out = append(out, r)
		}
	}
	return out
}

func filterJournals(in []models.JournalEntry, start, end time.Time, bounded bool) []models.JournalEntry {
	out := make([]models.JournalEntry, 0, len(in))
	for _, r := range in {
		if inWindow(r.OccurredAt, start, end, bounded) {
			out = append(out, r)
		}
	}
	return out
}

func filterGoals(in []models.Goal, start, end time.Time, bounded bool) []models.Goal {
	out := make([]models.Goal, 0, len(in))
	for _, r := range in {
		if inWindow(r.OccurredAt, start, end, bounded) {
			out = append(out, r)
		}
	}
	return out
}

func filterPractice(in []models.PracticeResult, start, end time.Time, bounded bool) []models.PracticeResult {
	out := make([]models.PracticeResult, 0, len(in))
	for _, r := range in {
		if inWindow(r.OccurredAt, start, end, bounded) {
			out = append(out, r)
		}
	}
	return out
}

// computeEmotionalBalance splits the window at its midpoint date and
// compares mean intensities of positive- and negative-valence records in
// the recent half against the previous half. Neutral-valence emotions
// (Surprise, Trust, unknown labels) are excluded from the math entirely.
// For the unbounded range the window starts at the earliest record.
func computeEmotionalBalance(emotions []models.EmotionRecord, start, end time.Time, bounded bool) models.EmotionalBalance {
	if len(emotions) == 0 {
		return models.EmotionalBalance{}
	}

	if !bounded {
		start = emotions[0].OccurredAt
		for _, e := range emotions[1:] {
			if e.OccurredAt.Before(start) {
				start = e.OccurredAt
			}
		}
	}
	mid := start.Add(end.Sub(start) / 2)

	var (
		posRecentSum, posPrevSum float64
		posRecentN, posPrevN     int
		negRecentSum, negPrevSum float64
		negRecentN, negPrevN     int
	)

	for _, e := range emotions {
		recent := !e.OccurredAt.Before(mid)
		switch e.CoreEmotion.Valence() {
		case models.ValencePositive:
			if recent {
				posRecentSum += e.Intensity
				posRecentN++
			} else {
				posPrevSum += e.Intensity
				posPrevN++
			}
		case models.ValenceNegative:
			if recent {
				negRecentSum += e.Intensity
				negRecentN++
			} else {
				negPrevSum += e.Intensity
				negPrevN++
			}
		}
	}

	return models.EmotionalBalance{
		Positive: metricChange(mean(posRecentSum, posRecentN), mean(posPrevSum, posPrevN)),
		Negative: metricChange(mean(negRecentSum, negRecentN), mean(negPrevSum, negPrevN)),
	}
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func metricChange(current, previous float64) models.MetricChange {
	change := current - previous
	percent := 0.0
	if previous != 0 {
		percent = change / previous * 100
	}
	return models.MetricChange{
		Current:       current,
		Previous:      previous,
		Change:        change,
		ChangePercent: percent,
	}
}

func computeThoughtChallengeRate(thoughts []models.ThoughtRecord) models.ThoughtChallengeRate {
	if len(thoughts) == 0 {
		return models.ThoughtChallengeRate{}
	}

	challenged := 0
	for _, t := range thoughts {
		if t.Challenged() {
			challenged++
		}
	}

	return models.ThoughtChallengeRate{
		Rate:       roundPercent(challenged, len(thoughts)),
		Challenged: challenged,
		Total:      len(thoughts),
	}
}

func computeGoalProgress(goals []models.Goal) models.GoalProgress {
	if len(goals) == 0 {
		return models.GoalProgress{}
	}

	progress := models.GoalProgress{Total: len(goals)}
	done := 0
	for _, g := range goals {
		switch g.Status {
		case models.GoalStatusCompleted:
			progress.Completed++
		case models.GoalStatusInProgress:
			progress.InProgress++
		case models.GoalStatusPending:
			progress.Pending++
		case models.GoalStatusApproved:
			// Approved goals count as completed for the rate but are
			// reported in the Other bucket.
			progress.Other++
		default:
			progress.Other++
		}
		if g.Done() {
			done++
		}
	}
	progress.CompletionRate = roundPercent(done, len(goals))
	return progress
}

// computeTopDistortion flattens all distortion arrays and returns the most
// frequent one. Counts are accumulated in record order and the leader only
// changes on a strictly greater count, so ties resolve to the distortion
// that reached the winning count first.
func computeTopDistortion(thoughts []models.ThoughtRecord) *models.TopDistortion {
	if len(thoughts) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var topName string
	topCount := 0
	for _, t := range thoughts {
		for _, d := range t.CognitiveDistortions {
			if d == "" {
				continue
			}
			counts[d]++
			if counts[d] > topCount {
				topCount = counts[d]
				topName = d
			}
		}
	}

	if topCount == 0 {
		return nil
	}

	return &models.TopDistortion{
		Name:    topName,
		Count:   topCount,
		Percent: float64(topCount) / float64(len(thoughts)) * 100,
	}
}

// Timeline display metadata per record type. Emotions use the shared
// emotion table instead.
var timelineMeta = map[models.RecordType]struct {
	Icon  string
	Color string
}{
	models.RecordTypeThought:  {Icon: "message-circle", Color: "#818cf8"},
	models.RecordTypeJournal:  {Icon: "book-open", Color: "#34d399"},
	models.RecordTypeGoal:     {Icon: "target", Color: "#fbbf24"},
	models.RecordTypePractice: {Icon: "award", Color: "#c084fc"},
}

// buildTimeline merges all five collections into one list sorted by date
// descending and truncated to timelineLimit entries total.
func buildTimeline(
	emotions []models.EmotionRecord,
	thoughts []models.ThoughtRecord,
	journals []models.JournalEntry,
	goals []models.Goal,
	practice []models.PracticeResult,
) []models.TimelineEntry {
	entries := make([]models.TimelineEntry, 0,
		len(emotions)+len(thoughts)+len(journals)+len(goals)+len(practice))

	for _, e := range emotions {
		meta := e.CoreEmotion.Meta()
		entries = append(entries, models.TimelineEntry{
			ID:    e.ID,
			Type:  models.RecordTypeEmotion,
			Date:  e.OccurredAt,
			Title: string(e.CoreEmotion),
			Icon:  meta.Icon,
			Color: meta.Color,
		})
	}
	for _, t := range thoughts {
		m := timelineMeta[models.RecordTypeThought]
		entries = append(entries, models.TimelineEntry{
			ID:    t.ID,
			Type:  models.RecordTypeThought,
			Date:  t.OccurredAt,
			Title: truncateTitle(t.AutomaticThoughts),
			Icon:  m.Icon,
			Color: m.Color,
		})
	}
	for _, j := range journals {
		m := timelineMeta[models.RecordTypeJournal]
		entries = append(entries, models.TimelineEntry{
			ID:    j.ID,
			Type:  models.RecordTypeJournal,
			Date:  j.OccurredAt,
			Title: j.Title,
			Icon:  m.Icon,
			Color: m.Color,
		})
	}
	for _, g := range goals {
		m := timelineMeta[models.RecordTypeGoal]
		entries = append(entries, models.TimelineEntry{
			ID:    g.ID,
			Type:  models.RecordTypeGoal,
			Date:  g.OccurredAt,
			Title: g.Title,
			Icon:  m.Icon,
			Color: m.Color,
		})
	}
	for _, p := range practice {
		m := timelineMeta[models.RecordTypePractice]
		entries = append(entries, models.TimelineEntry{
			ID:    p.ID,
			Type:  models.RecordTypePractice,
			Date:  p.OccurredAt,
			Title: fmt.Sprintf("Reframe practice (%d%%)", int(math.Round(p.Accuracy()))),
			Icon:  m.Icon,
			Color: m.Color,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	if len(entries) > timelineLimit {
		entries = entries[:timelineLimit]
	}
	return entries
}

func truncateTitle(s string) string {
	const max = 60
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
