package models

// CoreEmotion is one of the fixed top-level emotion categories used to
// classify free-form emotion entries.
type CoreEmotion string

const (
	EmotionJoy      CoreEmotion = "Joy"
	EmotionLove     CoreEmotion = "Love"
	EmotionSadness  CoreEmotion = "Sadness"
	EmotionFear     CoreEmotion = "Fear"
	EmotionAnger    CoreEmotion = "Anger"
	EmotionDisgust  CoreEmotion = "Disgust"
	EmotionSurprise CoreEmotion = "Surprise"
	EmotionTrust    CoreEmotion = "Trust"
)

// Valence classifies a core emotion for balance math.
type Valence string

const (
	ValencePositive Valence = "positive"
	ValenceNegative Valence = "negative"
	// ValenceNeutral emotions (Surprise, Trust) are excluded from
	// emotional-balance computations entirely.
	ValenceNeutral Valence = "neutral"
)

// EmotionMeta holds display and classification metadata for a core emotion.
// This is the single source of truth; nothing else may redefine valence or
// colors per emotion.
type EmotionMeta struct {
	Valence Valence
	Color   string
	Icon    string
}

var emotionTable = map[CoreEmotion]EmotionMeta{
	EmotionJoy:      {Valence: ValencePositive, Color: "#facc15", Icon: "sun"},
	EmotionLove:     {Valence: ValencePositive, Color: "#f472b6", Icon: "heart"},
	EmotionSadness:  {Valence: ValenceNegative, Color: "#60a5fa", Icon: "cloud-rain"},
	EmotionFear:     {Valence: ValenceNegative, Color: "#a78bfa", Icon: "alert-triangle"},
	EmotionAnger:    {Valence: ValenceNegative, Color: "#f87171", Icon: "flame"},
	EmotionDisgust:  {Valence: ValenceNegative, Color: "#4ade80", Icon: "frown"},
	EmotionSurprise: {Valence: ValenceNeutral, Color: "#fb923c", Icon: "zap"},
	EmotionTrust:    {Valence: ValenceNeutral, Color: "#2dd4bf", Icon: "shield"},
}

// Meta returns the metadata for a core emotion. Unknown labels get neutral
// valence and a default color so they fall out of balance math the same way
// Surprise does.
func (e CoreEmotion) Meta() EmotionMeta {
	if m, ok := emotionTable[e]; ok {
		return m
	}
	return EmotionMeta{Valence: ValenceNeutral, Color: "#94a3b8", Icon: "circle"}
}

// Valence returns the balance classification for a core emotion.
func (e CoreEmotion) Valence() Valence {
	return e.Meta().Valence
}
