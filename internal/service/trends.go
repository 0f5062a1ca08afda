package service

import (
	"context"
	"fmt"
	"time"

	"github.com/innerlog/innerlog-api/internal/models"
	"github.com/innerlog/innerlog-api/internal/repository"
)

type trendsService struct {
	emotions repository.EmotionRepository
	journals repository.JournalRepository
	practice repository.PracticeRepository
}

// NewTrendsService creates the trend-bucketing service.
func NewTrendsService(
	emotions repository.EmotionRepository,
	journals repository.JournalRepository,
	practice repository.PracticeRepository,
) TrendsService {
	return &trendsService{
		emotions: emotions,
		journals: journals,
		practice: practice,
	}
}

func (s *trendsService) GetMoodTrend(ctx context.Context, userID string, rng models.TrendRange) (*models.TrendSeries, error) {
	buckets := makeBuckets(time.Now(), rng)

	records, err := s.emotions.ListByUserSince(ctx, userID, buckets[0].Start)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch emotion records: %w", err)
	}

	points := make([]weightedPoint, 0, len(records))
	for _, r := range records {
		points = append(points, weightedPoint{at: r.OccurredAt, value: r.Intensity})
	}

	return &models.TrendSeries{
		Metric:  "mood",
		Range:   rng,
		Buckets: fillBuckets(buckets, points),
	}, nil
}

func (s *trendsService) GetPracticeTrend(ctx context.Context, userID string, rng models.TrendRange) (*models.TrendSeries, error) {
	buckets := makeBuckets(time.Now(), rng)

	results, err := s.practice.ListByUserSince(ctx, userID, buckets[0].Start)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch practice results: %w", err)
	}

	points := make([]weightedPoint, 0, len(results))
	for _, r := range results {
		points = append(points, weightedPoint{at: r.OccurredAt, value: r.Accuracy()})
	}

	return &models.TrendSeries{
		Metric:  "practice",
		Range:   rng,
		Buckets: fillBuckets(buckets, points),
	}, nil
}

func (s *trendsService) GetJournalTrend(ctx context.Context, userID string, rng models.TrendRange) (*models.TrendSeries, error) {
	buckets := makeBuckets(time.Now(), rng)

	entries, err := s.journals.ListByUserSince(ctx, userID, buckets[0].Start)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal entries: %w", err)
	}

	points := make([]weightedPoint, 0, len(entries))
	for _, e := range entries {
		points = append(points, weightedPoint{at: e.OccurredAt})
	}

	return &models.TrendSeries{
		Metric:  "journal",
		Range:   rng,
		Buckets: fillBuckets(buckets, points),
	}, nil
}

// weightedPoint is a record reduced to its date and the value being
// averaged (intensity, accuracy). Count-only series leave value at 0.
type weightedPoint struct {
	at    time.Time
	value float64
}

// makeBuckets enumerates the full calendar range for a trend range before
// any record is considered, so sparse data can never drop a bucket:
//   - week:  7 daily buckets ending today, labeled by weekday
//   - month: 4 Monday-aligned 7-day buckets covering the last 28 days
//   - year:  12 calendar months of the current year
func makeBuckets(now time.Time, rng models.TrendRange) []models.TrendBucket {
	switch rng {
	case models.TrendRangeMonth:
		start := mondayOnOrBefore(startOfDay(now).AddDate(0, 0, -27))
		buckets := make([]models.TrendBucket, 0, 4)
		for i := 0; i < 4; i++ {
			bs := start.AddDate(0, 0, i*7)
			buckets = append(buckets, models.TrendBucket{
				Label: fmt.Sprintf("Week %d", i+1),
				Start: bs,
				End:   bs.AddDate(0, 0, 7),
			})
		}
		return buckets

	case models.TrendRangeYear:
		buckets := make([]models.TrendBucket, 0, 12)
		for m := time.January; m <= time.December; m++ {
			bs := time.Date(now.Year(), m, 1, 0, 0, 0, 0, now.Location())
			buckets = append(buckets, models.TrendBucket{
				Label: m.String(),
				Start: bs,
				End:   bs.AddDate(0, 1, 0),
			})
		}
		return buckets

	default: // week
		start := startOfDay(now).AddDate(0, 0, -6)
		buckets := make([]models.TrendBucket, 0, 7)
		for i := 0; i < 7; i++ {
			bs := start.AddDate(0, 0, i)
			buckets = append(buckets, models.TrendBucket{
				Label: bs.Weekday().String(),
				Start: bs,
				End:   bs.AddDate(0, 0, 1),
			})
		}
		return buckets
	}
}

// fillBuckets distributes points into pre-enumerated buckets and computes
// each bucket's count and mean value. Empty buckets stay at 0.
func fillBuckets(buckets []models.TrendBucket, points []weightedPoint) []models.TrendBucket {
	for i := range buckets {
		var sum float64
		count := 0
		for _, p := range points {
			if p.at.Before(buckets[i].Start) || !p.at.Before(buckets[i].End) {
				continue
			}
			sum += p.value
			count++
		}
		buckets[i].Count = count
		if count > 0 {
			buckets[i].Average = sum / float64(count)
		}
	}
	return buckets
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// mondayOnOrBefore walks back to the most recent Monday, which may be the
// day itself.
func mondayOnOrBefore(t time.Time) time.Time {
	offset := (int(t.Weekday()) - int(time.Monday) + 7) % 7
	return t.AddDate(0, 0, -offset)
}
