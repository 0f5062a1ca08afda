package models

import "time"

// InsightRange selects the aggregation window for progress insights.
type InsightRange string

const (
	RangeWeek  InsightRange = "week"  // last 7 days
	RangeMonth InsightRange = "month" // last 30 days
	RangeAll   InsightRange = "all"   // everything
)

// ParseInsightRange validates a range string, defaulting to "all".
func ParseInsightRange(s string) (InsightRange, bool) {
	switch InsightRange(s) {
	case RangeWeek, RangeMonth, RangeAll:
		return InsightRange(s), true
	case "":
		return RangeAll, true
	default:
		return RangeAll, false
	}
}

// MetricChange compares the recent half of a window against the previous
// half. ChangePercent is 0 when the previous value is 0; that is a floor to
// avoid division by zero, not a claim of "no change".
type MetricChange struct {
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

// EmotionalBalance is the positive/negative intensity comparison for a
// window. Neutral-valence emotions are excluded entirely.
type EmotionalBalance struct {
	Positive MetricChange `json:"positive"`
	Negative MetricChange `json:"negative"`
}

// ThoughtChallengeRate is the share of thought records with at least one
// challenge field populated.
type ThoughtChallengeRate struct {
	Rate       int `json:"rate"` // percent, rounded
	Challenged int `json:"challenged"`
	Total      int `json:"total"`
}

// GoalProgress categorizes goals by status. Completed and approved both
// count toward the completion rate. Statuses outside the known set land in
// Other, so Completed+InProgress+Pending can be less than Total.
type GoalProgress struct {
	CompletionRate int `json:"completion_rate"` // percent, rounded
	Completed      int `json:"completed"`
	InProgress     int `json:"in_progress"`
	Pending        int `json:"pending"`
	Other          int `json:"other"`
	Total          int `json:"total"`
}

// TopDistortion is the most frequent cognitive distortion across the
// window's thought records. Ties break to the first distortion reaching the
// winning count in record order.
type TopDistortion struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"` // of total thought records
}

// TimelineEntry is one row of the unified activity timeline.
type TimelineEntry struct {
	ID    int64      `json:"id"`
	Type  RecordType `json:"type"`
	Date  time.Time  `json:"date"`
	Title string     `json:"title"`
	Icon  string     `json:"icon"`
	Color string     `json:"color"`
}

// CollectionTotals holds per-collection record counts for the window.
type CollectionTotals struct {
	Emotions        int `json:"emotions"`
	Thoughts        int `json:"thoughts"`
	Journals        int `json:"journals"`
	Goals           int `json:"goals"`
	PracticeResults int `json:"practice_results"`
}

// ProgressSummary is the single immutable summary object served to the
// dashboard. It is recomputed from raw arrays on every request (and only
// cached opportunistically); there is no state carried between computations.
type ProgressSummary struct {
	Range            InsightRange         `json:"range"`
	EmotionalBalance EmotionalBalance     `json:"emotional_balance"`
	ThoughtChallenge ThoughtChallengeRate `json:"thought_challenge"`
	GoalProgress     GoalProgress         `json:"goal_progress"`
	TopDistortion    *TopDistortion       `json:"top_distortion,omitempty"`
	Timeline         []TimelineEntry      `json:"timeline"`
	Totals           CollectionTotals     `json:"totals"`
	ComputedAt       time.Time            `json:"computed_at"`
}
