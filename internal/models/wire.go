package models

import "time"

// Wire shapes for the records backend payloads. The backend grew out of a
// JavaScript codebase and its collections disagree on field names: the event
// date arrives as either "timestamp" or "createdAt", and practice results
// carry duplicate-meaning score fields ("correctAnswers"/"correctCount",
// "totalQuestions"/"totalCount"). These structs accept every spelling and
// the Normalize functions collapse them onto the canonical types, so no
// aggregation code ever sees the inconsistency.

// WireEmotionRecord mirrors the backend emotion_records payload.
type WireEmotionRecord struct {
	ID          int64      `json:"id"`
	UserID      string     `json:"userId"`
	CoreEmotion string     `json:"coreEmotion"`
	Intensity   float64    `json:"intensity"`
	Situation   string     `json:"situation"`
	Timestamp   *time.Time `json:"timestamp"`
	CreatedAt   *time.Time `json:"createdAt"`
}

// WireThoughtRecord mirrors the backend thought_records payload.
type WireThoughtRecord struct {
	ID                     int64      `json:"id"`
	UserID                 string     `json:"userId"`
	EmotionRecordID        *int64     `json:"emotionRecordId"`
	AutomaticThoughts      string     `json:"automaticThoughts"`
	CognitiveDistortions   []string   `json:"cognitiveDistortions"`
	EvidenceFor            string     `json:"evidenceFor"`
	EvidenceAgainst        string     `json:"evidenceAgainst"`
	AlternativePerspective string     `json:"alternativePerspective"`
	ReflectionRating       *int       `json:"reflectionRating"`
	Timestamp              *time.Time `json:"timestamp"`
	CreatedAt              *time.Time `json:"createdAt"`
}

// WireJournalEntry mirrors the backend journal_entries payload.
type WireJournalEntry struct {
	ID        int64      `json:"id"`
	UserID    string     `json:"userId"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Tags      []string   `json:"tags"`
	Timestamp *time.Time `json:"timestamp"`
	CreatedAt *time.Time `json:"createdAt"`
}

// WireGoal mirrors the backend goals payload.
type WireGoal struct {
	ID        int64      `json:"id"`
	UserID    string     `json:"userId"`
	Title     string     `json:"title"`
	Status    string     `json:"status"`
	Timestamp *time.Time `json:"timestamp"`
	CreatedAt *time.Time `json:"createdAt"`
}

// WirePracticeResult mirrors the backend practice_results payload,
// including both historical spellings of the score fields.
type WirePracticeResult struct {
	ID              int64      `json:"id"`
	UserID          string     `json:"userId"`
	ThoughtRecordID *int64     `json:"thoughtRecordId"`
	AssignmentID    *int64     `json:"assignmentId"`
	Score           float64    `json:"score"`
	CorrectAnswers  *int       `json:"correctAnswers"`
	CorrectCount    *int       `json:"correctCount"`
	TotalQuestions  *int       `json:"totalQuestions"`
	TotalCount      *int       `json:"totalCount"`
	StreakCount     int        `json:"streakCount"`
	Timestamp       *time.Time `json:"timestamp"`
	CreatedAt       *time.Time `json:"createdAt"`
}

// occurredAt picks the record date: timestamp when present, createdAt
// otherwise. A record with neither gets the zero time and sorts last.
func occurredAt(timestamp, createdAt *time.Time) time.Time {
	if timestamp != nil {
		return *timestamp
	}
	if createdAt != nil {
		return *createdAt
	}
	return time.Time{}
}

// firstInt returns the first non-nil value, or def when all are nil.
func firstInt(def int, candidates ...*int) int {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return def
}

// NormalizeEmotionRecord maps a wire emotion record onto the canonical type.
func NormalizeEmotionRecord(w WireEmotionRecord) EmotionRecord {
	return EmotionRecord{
		ID:          w.ID,
		UserID:      w.UserID,
		CoreEmotion: CoreEmotion(w.CoreEmotion),
		Intensity:   w.Intensity,
		Situation:   w.Situation,
		OccurredAt:  occurredAt(w.Timestamp, w.CreatedAt),
	}
}

// NormalizeThoughtRecord maps a wire thought record onto the canonical type.
func NormalizeThoughtRecord(w WireThoughtRecord) ThoughtRecord {
	distortions := w.CognitiveDistortions
	if distortions == nil {
		distortions = []string{}
	}
	return ThoughtRecord{
		ID:                     w.ID,
		UserID:                 w.UserID,
		EmotionRecordID:        w.EmotionRecordID,
		AutomaticThoughts:      w.AutomaticThoughts,
		CognitiveDistortions:   distortions,
		EvidenceFor:            w.EvidenceFor,
		EvidenceAgainst:        w.EvidenceAgainst,
		AlternativePerspective: w.AlternativePerspective,
		ReflectionRating:       w.ReflectionRating,
		OccurredAt:             occurredAt(w.Timestamp, w.CreatedAt),
	}
}

// NormalizeJournalEntry maps a wire journal entry onto the canonical type.
func NormalizeJournalEntry(w WireJournalEntry) JournalEntry {
	tags := w.Tags
	if tags == nil {
		tags = []string{}
	}
	return JournalEntry{
		ID:         w.ID,
		UserID:     w.UserID,
		Title:      w.Title,
		Content:    w.Content,
		Tags:       tags,
		OccurredAt: occurredAt(w.Timestamp, w.CreatedAt),
	}
}

// NormalizeGoal maps a wire goal onto the canonical type.
func NormalizeGoal(w WireGoal) Goal {
	return Goal{
		ID:         w.ID,
		UserID:     w.UserID,
		Title:      w.Title,
		Status:     GoalStatus(w.Status),
		OccurredAt: occurredAt(w.Timestamp, w.CreatedAt),
	}
}

// NormalizePracticeResult maps a wire practice result onto the canonical
// type, reconciling the duplicate score fields. The denominator defaults to
// 1 so accuracy math never divides by zero.
func NormalizePracticeResult(w WirePracticeResult) PracticeResult {
	total := firstInt(1, w.TotalQuestions, w.TotalCount)
	if total <= 0 {
		total = 1
	}
	return PracticeResult{
		ID:              w.ID,
		UserID:          w.UserID,
		ThoughtRecordID: w.ThoughtRecordID,
		AssignmentID:    w.AssignmentID,
		Score:           w.Score,
		Correct:         firstInt(0, w.CorrectAnswers, w.CorrectCount),
		Total:           total,
		StreakCount:     w.StreakCount,
		OccurredAt:      occurredAt(w.Timestamp, w.CreatedAt),
	}
}
