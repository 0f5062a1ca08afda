package models

import "time"

// TrendRange selects the bucketing scheme for trend series.
type TrendRange string

const (
	TrendRangeWeek  TrendRange = "week"  // 7 daily buckets ending today
	TrendRangeMonth TrendRange = "month" // 4 Monday-aligned weekly buckets
	TrendRangeYear  TrendRange = "year"  // 12 calendar months of this year
)

// ParseTrendRange validates a range string, defaulting to "week".
func ParseTrendRange(s string) (TrendRange, bool) {
	switch TrendRange(s) {
	case TrendRangeWeek, TrendRangeMonth, TrendRangeYear:
		return TrendRange(s), true
	case "":
		return TrendRangeWeek, true
	default:
		return TrendRangeWeek, false
	}
}

// TrendBucket is one calendar bucket in a trend series. Buckets with no
// records keep Count 0 and Average 0 so chart axes stay stable.
type TrendBucket struct {
	Label   string    `json:"label"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"` // exclusive
	Count   int       `json:"count"`
	Average float64   `json:"average"`
}

// TrendSeries is a complete bucketed series for one metric.
type TrendSeries struct {
	Metric  string        `json:"metric"` // "mood", "practice", "journal"
	Range   TrendRange    `json:"range"`
	Buckets []TrendBucket `json:"buckets"`
}
