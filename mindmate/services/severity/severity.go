package severity

import (
	"fmt"
	"mindmate/mindmate/utils/logging"

	"go.uber.org/zap"
)

const (
	LevelNone             = "None"
	LevelMild             = "Mild"
	LevelModerate         = "Moderate"
	LevelModeratelySevere = "Moderately Severe"
	LevelSevere           = "Severe"
)

// NumQuestions is the PHQ-9 answer vector length; each answer is an ordinal
// in [0, 3].
const NumQuestions = 9

// LevelFromScore is the standard PHQ-9 severity banding on the summed score.
func LevelFromScore(score int) string {
	switch {
	case score <= 4:
		return LevelNone
	case score <= 9:
		return LevelMild
	case score <= 14:
		return LevelModerate
	case score <= 19:
		return LevelModeratelySevere
	default:
		return LevelSevere
	}
}

// Service predicts a severity label from a PHQ-9 answer vector. When a model
// artifact is configured it is loaded once at startup; without one the
// service bands the summed score directly.
type Service struct {
	forest *Forest
}

func NewService(modelPath string) *Service {
	if modelPath == "" {
		return &Service{}
	}
	forest, err := LoadForest(modelPath)
	if err != nil {
		logging.ErrorLogger.Error("severity model load failed, using score banding",
			zap.String("path", modelPath), zap.Error(err))
		return &Service{}
	}
	logging.AppLogger.Info("severity model loaded",
		zap.String("path", modelPath), zap.Int("trees", len(forest.Trees)))
	return &Service{forest: forest}
}

func (s *Service) PredictSeverity(answers []int) (string, error) {
	if len(answers) != NumQuestions {
		return "", fmt.Errorf("expected %d answers, got %d", NumQuestions, len(answers))
	}
	for i, a := range answers {
		if a < 0 || a > 3 {
			return "", fmt.Errorf("answer %d out of range: %d", i+1, a)
		}
	}
	if s.forest != nil {
		return s.forest.Predict(answers)
	}
	total := 0
	for _, a := range answers {
		total += a
	}
	return LevelFromScore(total), nil
}

// SupportPlan returns the per-level support suggestions shown alongside a
// screening result.
func SupportPlan(level string) []string {
	switch level {
	case LevelNone:
		return []string{
			"Continue your healthy habits",
			"Stay socially connected",
			"Practice gratitude daily",
		}
	case LevelMild:
		return []string{
			"Try 10-minute journaling",
			"Take a mindful walk",
			"Listen to calming music",
		}
	case LevelModerate:
		return []string{
			"Reach out to a trusted friend or mentor",
			"Follow a consistent sleep schedule",
			"Try guided meditation",
		}
	case LevelModeratelySevere:
		return []string{
			"Please consider talking to a counselor or therapist",
			"Limit negative screen time",
			"Follow a self-care checklist daily",
		}
	case LevelSevere:
		return []string{
			"Visit a mental health professional",
			"Talk to someone you trust",
			"You are not alone — help is available",
		}
	}
	return nil
}
