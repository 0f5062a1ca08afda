package models

import (
	"testing"
	"time"
)

func ptrTime(t time.Time) *time.Time { return &t }
func ptrInt(i int) *int              { return &i }

func TestOccurredAtPrefersTimestamp(t *testing.T) {
	stamped := time.Date(2026, time.January, 10, 8, 0, 0, 0, time.UTC)
	created := time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC)

	r := NormalizeEmotionRecord(WireEmotionRecord{
		ID:        1,
		Timestamp: ptrTime(stamped),
		CreatedAt: ptrTime(created),
	})
	if !r.OccurredAt.Equal(stamped) {
		t.Errorf("OccurredAt = %v, want timestamp %v", r.OccurredAt, stamped)
	}

	r = NormalizeEmotionRecord(WireEmotionRecord{ID: 2, CreatedAt: ptrTime(created)})
	if !r.OccurredAt.Equal(created) {
		t.Errorf("OccurredAt = %v, want createdAt %v", r.OccurredAt, created)
	}

	r = NormalizeEmotionRecord(WireEmotionRecord{ID: 3})
	if !r.OccurredAt.IsZero() {
		t.Errorf("OccurredAt = %v, want zero time", r.OccurredAt)
	}
}

func TestNormalizePracticeResultScoreFields(t *testing.T) {
	tests := []struct {
		name        string
		wire        WirePracticeResult
		wantCorrect int
		wantTotal   int
	}{
		{
			name:        "modern spelling",
			wire:        WirePracticeResult{CorrectAnswers: ptrInt(3), TotalQuestions: ptrInt(5)},
			wantCorrect: 3,
			wantTotal:   5,
		},
		{
			name:        "legacy spelling",
			wire:        WirePracticeResult{CorrectCount: ptrInt(3), TotalCount: ptrInt(5)},
			wantCorrect: 3,
			wantTotal:   5,
		},
		{
			name:        "modern wins when both present",
			wire:        WirePracticeResult{CorrectAnswers: ptrInt(4), CorrectCount: ptrInt(1), TotalQuestions: ptrInt(8), TotalCount: ptrInt(2)},
			wantCorrect: 4,
			wantTotal:   8,
		},
		{
			name:        "missing denominator defaults to 1",
			wire:        WirePracticeResult{CorrectAnswers: ptrInt(0)},
			wantCorrect: 0,
			wantTotal:   1,
		},
		{
			name:        "zero denominator clamps to 1",
			wire:        WirePracticeResult{TotalQuestions: ptrInt(0)},
			wantCorrect: 0,
			wantTotal:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePracticeResult(tt.wire)
			if got.Correct != tt.wantCorrect {
				t.Errorf("Correct = %d, want %d", got.Correct, tt.wantCorrect)
			}
			if got.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", got.Total, tt.wantTotal)
			}
		})
	}
}

func TestPracticeAccuracyNeverNaN(t *testing.T) {
	r := NormalizePracticeResult(WirePracticeResult{CorrectCount: ptrInt(3), TotalCount: ptrInt(5)})
	if acc := r.Accuracy(); acc != 60 {
		t.Errorf("Accuracy() = %v, want 60", acc)
	}

	empty := NormalizePracticeResult(WirePracticeResult{})
	if acc := empty.Accuracy(); acc != 0 {
		t.Errorf("Accuracy() on empty result = %v, want 0", acc)
	}
}

func TestNormalizeThoughtRecordNilDistortions(t *testing.T) {
	r := NormalizeThoughtRecord(WireThoughtRecord{ID: 1})
	if r.CognitiveDistortions == nil {
		t.Error("CognitiveDistortions is nil, want empty slice")
	}
}

func TestThoughtChallenged(t *testing.T) {
	tests := []struct {
		name string
		rec  ThoughtRecord
		want bool
	}{
		{"no challenge fields", ThoughtRecord{AutomaticThoughts: "x"}, false},
		{"evidence for", ThoughtRecord{EvidenceFor: "y"}, true},
		{"evidence against", ThoughtRecord{EvidenceAgainst: "y"}, true},
		{"alternative perspective", ThoughtRecord{AlternativePerspective: "y"}, true},
	}
	for _, tt := range tests {
		if got := tt.rec.Challenged(); got != tt.want {
			t.Errorf("%s: Challenged() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCoreEmotionValence(t *testing.T) {
	tests := []struct {
		emotion CoreEmotion
		want    Valence
	}{
		{EmotionJoy, ValencePositive},
		{EmotionLove, ValencePositive},
		{EmotionSadness, ValenceNegative},
		{EmotionFear, ValenceNegative},
		{EmotionAnger, ValenceNegative},
		{EmotionDisgust, ValenceNegative},
		{EmotionSurprise, ValenceNeutral},
		{EmotionTrust, ValenceNeutral},
		{CoreEmotion("unknown"), ValenceNeutral},
	}
	for _, tt := range tests {
		if got := tt.emotion.Valence(); got != tt.want {
			t.Errorf("%s.Valence() = %s, want %s", tt.emotion, got, tt.want)
		}
	}
}

func TestGoalDone(t *testing.T) {
	if !(Goal{Status: GoalStatusCompleted}).Done() {
		t.Error("completed goal not done")
	}
	if !(Goal{Status: GoalStatusApproved}).Done() {
		t.Error("approved goal not done")
	}
	if (Goal{Status: GoalStatusInProgress}).Done() {
		t.Error("in-progress goal reported done")
	}
}
