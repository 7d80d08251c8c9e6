package suggest

import (
	"context"
	"errors"
	"testing"

	"mindmate/mindmate/services/llm"
	"mindmate/mindmate/services/sentiment"
	"mindmate/mindmate/utils/logging"
)

type stubClient struct {
	reply string
	err   error
}

func (c stubClient) Run(ctx context.Context, messages []llm.Message) (string, error) {
	return c.reply, c.err
}

func (c stubClient) RunStream(ctx context.Context, messages []llm.Message) (<-chan string, error) {
	return nil, errors.New("not implemented")
}

func TestSuggestUsesServiceReply(t *testing.T) {
	s := NewService(stubClient{reply: "Go for a walk\n\nCall a friend\nStretch"})
	got := s.Suggest(context.Background(), sentiment.Positive)
	if got.Fallback {
		t.Fatal("expected service tasks, got fallback")
	}
	want := []string{"Go for a walk", "Call a friend", "Stretch"}
	if len(got.Tasks) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got.Tasks))
	}
	for i, task := range want {
		if got.Tasks[i] != task {
			t.Errorf("task %d: expected %q, got %q", i, task, got.Tasks[i])
		}
	}
	if got.FollowUp != FollowUpShareMore {
		t.Errorf("expected follow-up %s, got %s", FollowUpShareMore, got.FollowUp)
	}
}

func TestSuggestFallsBackOnError(t *testing.T) {
	logging.InitLogger()
	s := NewService(stubClient{err: errors.New("quota exceeded")})

	for _, label := range []sentiment.Label{sentiment.Positive, sentiment.Neutral, sentiment.Negative} {
		got := s.Suggest(context.Background(), label)
		if !got.Fallback {
			t.Fatalf("%s: expected fallback", label)
		}
		if got.Notice == "" {
			t.Errorf("%s: expected a notice line", label)
		}
		if len(got.Tasks) != 3 {
			t.Fatalf("%s: expected 3 tasks, got %d", label, len(got.Tasks))
		}
		table := fallbackTasks[label]
		seen := make(map[string]bool)
		for _, task := range got.Tasks {
			if seen[task] {
				t.Errorf("%s: duplicate task %q in one draw", label, task)
			}
			seen[task] = true
			found := false
			for _, item := range table {
				if item == task {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%s: task %q not from the fallback table", label, task)
			}
		}
	}
}

func TestSuggestFallsBackOnEmptyReply(t *testing.T) {
	s := NewService(stubClient{reply: "   \n\n  "})
	got := s.Suggest(context.Background(), sentiment.Neutral)
	if !got.Fallback {
		t.Fatal("expected fallback for empty reply")
	}
	if len(got.Tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(got.Tasks))
	}
}

func TestUpliftActions(t *testing.T) {
	for _, action := range UpliftMenu {
		res, err := Uplift(action, "")
		if err != nil {
			t.Fatalf("Uplift(%s): %v", action, err)
		}
		if res.Message == "" {
			t.Errorf("Uplift(%s): empty message", action)
		}
	}
	if _, err := Uplift("bogus", ""); err == nil {
		t.Error("expected error for unknown action")
	}
}
