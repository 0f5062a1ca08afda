package models

import "time"

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalStatusPending    GoalStatus = "pending"
	GoalStatusInProgress GoalStatus = "in_progress"
	GoalStatusCompleted  GoalStatus = "completed"
	GoalStatusApproved   GoalStatus = "approved"
)

// RecordType identifies which collection a record came from, used by the
// unified timeline.
type RecordType string

const (
	RecordTypeEmotion  RecordType = "emotion"
	RecordTypeThought  RecordType = "thought"
	RecordTypeJournal  RecordType = "journal"
	RecordTypeGoal     RecordType = "goal"
	RecordTypePractice RecordType = "practice"
)

// The canonical record shapes. The records backend exposes these with
// inconsistent field names (timestamp vs createdAt, correctAnswers vs
// correctCount); normalization happens once at the repository boundary and
// everything downstream works against these types only.

// EmotionRecord is a single logged emotion with its intensity.
type EmotionRecord struct {
	ID          int64       `json:"id"`
	UserID      string      `json:"user_id"`
	CoreEmotion CoreEmotion `json:"core_emotion"`
	Intensity   float64     `json:"intensity"` // 0-10
	Situation   string      `json:"situation,omitempty"`
	OccurredAt  time.Time   `json:"occurred_at"`
}

// ThoughtRecord is a CBT thought record, optionally linked to the emotion
// record that prompted it. The link is best effort: a dangling
// EmotionRecordID is treated as no link, never an error.
type ThoughtRecord struct {
	ID                     int64     `json:"id"`
	UserID                 string    `json:"user_id"`
	EmotionRecordID        *int64    `json:"emotion_record_id,omitempty"`
	AutomaticThoughts      string    `json:"automatic_thoughts"`
	CognitiveDistortions   []string  `json:"cognitive_distortions"`
	EvidenceFor            string    `json:"evidence_for,omitempty"`
	EvidenceAgainst        string    `json:"evidence_against,omitempty"`
	AlternativePerspective string    `json:"alternative_perspective,omitempty"`
	ReflectionRating       *int      `json:"reflection_rating,omitempty"`
	OccurredAt             time.Time `json:"occurred_at"`
}

// Challenged reports whether the record has at least one challenge field
// populated (evidence for, evidence against, or an alternative perspective).
func (t ThoughtRecord) Challenged() bool {
	return t.EvidenceFor != "" || t.EvidenceAgainst != "" || t.AlternativePerspective != ""
}

// JournalEntry is a free-form journal entry.
type JournalEntry struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Goal is a tracked goal.
type Goal struct {
	ID         int64      `json:"id"`
	UserID     string     `json:"user_id"`
	Title      string     `json:"title"`
	Status     GoalStatus `json:"status"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// Done reports whether a goal counts toward the completion rate.
func (g Goal) Done() bool {
	return g.Status == GoalStatusCompleted || g.Status == GoalStatusApproved
}

// PracticeResult is one scored reframe-practice session.
type PracticeResult struct {
	ID              int64     `json:"id"`
	UserID          string    `json:"user_id"`
	ThoughtRecordID *int64    `json:"thought_record_id,omitempty"`
	AssignmentID    *int64    `json:"assignment_id,omitempty"`
	Score           float64   `json:"score"`
	Correct         int       `json:"correct"`
	Total           int       `json:"total"` // always >= 1 after normalization
	StreakCount     int       `json:"streak_count"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// Accuracy returns the percentage of correct answers.
func (p PracticeResult) Accuracy() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Correct) / float64(p.Total) * 100
}
