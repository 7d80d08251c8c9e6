package suggest

import (
	"fmt"
	"math/rand"
)

// The five uplift sub-actions offered after a Negative mood.
const (
	UpliftPlaylist = "playlist"
	UpliftJournal  = "journal"
	UpliftLaugh    = "laugh"
	UpliftTip      = "tip"
	UpliftMiniTask = "minitask"
)

var UpliftMenu = []string{
	UpliftPlaylist,
	UpliftJournal,
	UpliftLaugh,
	UpliftTip,
	UpliftMiniTask,
}

var upliftTips = []string{
	"Breathe. You've survived 100% of your worst days.",
	"Grades don't define your worth.",
	"Take breaks — not breakdowns.",
	"It's okay to rest. Hustle is not everything.",
	"Talk to someone. Even a journal helps.",
}

var miniTasks = []string{
	"Take a 3-minute stretch break 🧘",
	"Drink a full glass of water 💧",
	"Send a funny meme to a friend 💬",
	"Go touch grass 🌿 (seriously)",
	"Write 3 things you're grateful for 🙏",
}

type UpliftResult struct {
	Action  string   `json:"action"`
	Message string   `json:"message"`
	Links   []string `json:"links,omitempty"`
}

// Uplift resolves one sub-action from the Negative-mood menu. Journal text is
// acknowledged but deliberately not persisted anywhere.
func Uplift(action, journalText string) (UpliftResult, error) {
	switch action {
	case UpliftPlaylist:
		return UpliftResult{
			Action:  action,
			Message: "Here's something to lift you up:",
			Links:   []string{"https://www.youtube.com/watch?v=jfKfPfyJRdk"},
		}, nil
	case UpliftJournal:
		if journalText == "" {
			return UpliftResult{
				Action:  action,
				Message: "Let it out — it's safe here.",
			}, nil
		}
		return UpliftResult{
			Action:  action,
			Message: "Your thoughts are saved privately 🗒️",
		}, nil
	case UpliftLaugh:
		return UpliftResult{
			Action:  action,
			Message: "Here's something to make you smile:",
			Links: []string{
				"https://i.programmerhumor.io/2022/07/programmerhumor-io-programming-memes-49973fb83da3327.jpg",
				"https://youtu.be/LQlcWclgRlc?si=lxBM7u3WSmCyY9Xq",
			},
		}, nil
	case UpliftTip:
		return UpliftResult{
			Action:  action,
			Message: upliftTips[rand.Intn(len(upliftTips))],
		}, nil
	case UpliftMiniTask:
		return UpliftResult{
			Action:  action,
			Message: miniTasks[rand.Intn(len(miniTasks))],
		}, nil
	}
	return UpliftResult{}, fmt.Errorf("unknown uplift action: %s", action)
}
