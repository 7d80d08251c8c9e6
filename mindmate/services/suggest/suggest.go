package suggest

import (
	"context"
	"math/rand"
	"strings"

	"mindmate/mindmate/services/llm"
	"mindmate/mindmate/services/sentiment"
	"mindmate/mindmate/utils/logging"

	"go.uber.org/zap"
)

const fallbackNotice = "I'm having trouble connecting to my AI friend. Here are some classic suggestions for now:"

var prompts = map[sentiment.Label]string{
	sentiment.Positive: "Generate 5 very short and fun tasks to do for someone who is feeling great.",
	sentiment.Neutral:  "Generate 5 simple and calming tasks for someone with a neutral mood.",
	sentiment.Negative: "Generate 5 short and helpful tasks for someone who is feeling low. The tasks should be easy to do.",
}

var fallbackTasks = map[sentiment.Label][]string{
	sentiment.Positive: {
		"Write down three things you are grateful for right now. 🙏",
		"Listen to your favorite upbeat song and dance like nobody's watching! 💃",
		"Plan a fun activity for the weekend to look forward to. 🗓️",
		"Send a message of appreciation to someone who has helped you. 💌",
		"Take a short walk and notice five beautiful things around you. 🌳",
	},
	sentiment.Neutral: {
		"Take a moment to simply breathe deeply. 🧘",
		"Straighten up your desk or living space. 🧹",
		"Write a simple to-do list for tomorrow. 📝",
		"Put your phone away for 15 minutes. 📵",
		"Drink a full glass of water. 💧",
	},
	sentiment.Negative: {
		"Acknowledge how you're feeling without judgment. It's okay. 🫂",
		"Watch a short video of something that always makes you laugh. 😂",
		"Call or text a friend you trust. 📞",
		"Take a warm shower or bath to reset. 🛀",
		"Listen to music that validates your emotions. 🎶",
	},
}

// FollowUp kinds attached to a suggestion response, by sentiment.
const (
	FollowUpShareMore     = "share_more"
	FollowUpGratitudeNote = "gratitude_note"
	FollowUpUpliftMenu    = "uplift_menu"
)

type Suggestions struct {
	Sentiment string   `json:"sentiment"`
	Tasks     []string `json:"tasks"`
	Fallback  bool     `json:"fallback"`
	Notice    string   `json:"notice,omitempty"`
	FollowUp  string   `json:"follow_up"`
	Message   string   `json:"message"`
}

type Service struct {
	client llm.Client
}

func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// Suggest asks the generative service for task ideas. It never fails: any
// service error degrades to 3 samples from the fixed table for the sentiment,
// flagged with a one-line notice.
func (s *Service) Suggest(ctx context.Context, label sentiment.Label) Suggestions {
	result := Suggestions{Sentiment: string(label)}

	switch label {
	case sentiment.Positive:
		result.FollowUp = FollowUpShareMore
		result.Message = "You're glowing today! 🌟 Keep it up."
	case sentiment.Negative:
		result.FollowUp = FollowUpUpliftMenu
		result.Message = "It's okay to feel low 😔 You're not alone."
	default:
		result.FollowUp = FollowUpGratitudeNote
		result.Message = "Sometimes okay is just okay and that's fine. 🌤️"
	}

	prompt, ok := prompts[label]
	if !ok {
		prompt = "Generate 5 helpful tasks."
	}

	text, err := s.client.Run(ctx, []llm.Message{{Role: "user", Content: prompt}})
	if err == nil {
		tasks := splitTasks(text)
		if len(tasks) > 0 {
			result.Tasks = tasks
			return result
		}
	}
	if err != nil {
		logging.ErrorLogger.Error("suggestion generation failed, using fallback",
			zap.String("sentiment", string(label)), zap.Error(err))
	}

	result.Fallback = true
	result.Notice = fallbackNotice
	result.Tasks = sampleTasks(fallbackTasks[label], 3)
	return result
}

func splitTasks(text string) []string {
	var tasks []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			tasks = append(tasks, line)
		}
	}
	return tasks
}

// sampleTasks draws n items without replacement.
func sampleTasks(table []string, n int) []string {
	if n > len(table) {
		n = len(table)
	}
	picked := make([]string, 0, n)
	for _, i := range rand.Perm(len(table))[:n] {
		picked = append(picked, table[i])
	}
	return picked
}
