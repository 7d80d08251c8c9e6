package severity

import (
	"encoding/json"
	"mindmate/mindmate/utils/logging"
	"os"
	"path/filepath"
	"testing"
)

func TestLevelFromScoreBands(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, LevelNone},
		{4, LevelNone},
		{5, LevelMild},
		{9, LevelMild},
		{10, LevelModerate},
		{14, LevelModerate},
		{15, LevelModeratelySevere},
		{19, LevelModeratelySevere},
		{20, LevelSevere},
		{27, LevelSevere},
	}
	for _, tc := range cases {
		if got := LevelFromScore(tc.score); got != tc.want {
			t.Errorf("score %d: expected %s, got %s", tc.score, tc.want, got)
		}
	}
}

func TestPredictWithoutModel(t *testing.T) {
	s := NewService("")

	level, err := s.PredictSeverity([]int{0, 0, 0, 0, 0, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("PredictSeverity: %v", err)
	}
	if level != LevelNone {
		t.Errorf("all zeros: expected %s, got %s", LevelNone, level)
	}

	level, err = s.PredictSeverity([]int{3, 3, 3, 3, 3, 3, 3, 3, 3})
	if err != nil {
		t.Fatalf("PredictSeverity: %v", err)
	}
	if level != LevelSevere {
		t.Errorf("all threes: expected %s, got %s", LevelSevere, level)
	}
}

func TestPredictRejectsBadInput(t *testing.T) {
	s := NewService("")
	if _, err := s.PredictSeverity([]int{1, 2, 3}); err == nil {
		t.Error("expected error for short answer vector")
	}
	if _, err := s.PredictSeverity([]int{0, 0, 0, 0, 4, 0, 0, 0, 0}); err == nil {
		t.Error("expected error for out-of-range answer")
	}
}

func TestForestPredictMajority(t *testing.T) {
	// Two stump trees split on Q1: answer <= 1 goes left. A third always
	// votes Mild, so the first two carry the majority.
	stump := Tree{Nodes: []Node{
		{Feature: 0, Threshold: 1, Left: 1, Right: 2},
		{Leaf: LevelNone},
		{Leaf: LevelSevere},
	}}
	constant := Tree{Nodes: []Node{{Leaf: LevelMild}}}
	f := Forest{Trees: []Tree{stump, stump, constant}}

	label, err := f.Predict([]int{0, 0, 0, 0, 0, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if label != LevelNone {
		t.Errorf("expected %s, got %s", LevelNone, label)
	}

	label, err = f.Predict([]int{3, 0, 0, 0, 0, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if label != LevelSevere {
		t.Errorf("expected %s, got %s", LevelSevere, label)
	}
}

func TestServiceLoadsArtifact(t *testing.T) {
	logging.InitLogger() // ensures AppLogger isn't nil
	f := Forest{Trees: []Tree{{Nodes: []Node{{Leaf: LevelModerate}}}}}
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "phq9_model.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	s := NewService(path)
	if s.forest == nil {
		t.Fatal("expected forest to be loaded")
	}
	level, err := s.PredictSeverity([]int{1, 1, 1, 1, 1, 1, 1, 1, 1})
	if err != nil {
		t.Fatalf("PredictSeverity: %v", err)
	}
	if level != LevelModerate {
		t.Errorf("expected %s, got %s", LevelModerate, level)
	}
}
