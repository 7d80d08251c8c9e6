package sentiment

import "github.com/jonreiter/govader"

type Label string

const (
	Positive Label = "Positive"
	Neutral  Label = "Neutral"
	Negative Label = "Negative"
)

// Scorer maps text to a compound polarity score in [-1, 1].
type Scorer interface {
	CompoundScore(text string) float64
}

type vaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func (s vaderScorer) CompoundScore(text string) float64 {
	return s.analyzer.PolarityScores(text).Compound
}

type Classifier struct {
	scorer Scorer
}

func NewClassifier() *Classifier {
	return &Classifier{scorer: vaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}}
}

func NewClassifierWithScorer(scorer Scorer) *Classifier {
	return &Classifier{scorer: scorer}
}

// Classify buckets the compound score. The 0.05 band is fixed; both
// boundaries are inclusive.
func (c *Classifier) Classify(text string) Label {
	compound := c.scorer.CompoundScore(text)
	switch {
	case compound >= 0.05:
		return Positive
	case compound <= -0.05:
		return Negative
	default:
		return Neutral
	}
}
