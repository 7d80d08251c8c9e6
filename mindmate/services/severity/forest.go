package severity

import (
	"encoding/json"
	"fmt"
	"os"
)

// Node is one position in a decision tree. A node with a non-empty Leaf is
// terminal; otherwise Feature/Threshold route to the Left or Right index.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Leaf      string  `json:"leaf,omitempty"`
}

type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Forest is the serialized random-forest artifact produced by cmd/phq9-train.
type Forest struct {
	Trees []Tree `json:"trees"`
}

func LoadForest(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f Forest
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	if len(f.Trees) == 0 {
		return nil, fmt.Errorf("model artifact has no trees")
	}
	return &f, nil
}

func (t *Tree) predict(answers []int) (string, error) {
	i := 0
	for steps := 0; steps <= len(t.Nodes); steps++ {
		if i < 0 || i >= len(t.Nodes) {
			return "", fmt.Errorf("tree node index out of range: %d", i)
		}
		n := t.Nodes[i]
		if n.Leaf != "" {
			return n.Leaf, nil
		}
		if n.Feature < 0 || n.Feature >= len(answers) {
			return "", fmt.Errorf("tree feature index out of range: %d", n.Feature)
		}
		if float64(answers[n.Feature]) <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
	return "", fmt.Errorf("tree walk did not terminate")
}

// Predict runs every tree and returns the majority label. Ties break toward
// the label first reached, which keeps prediction deterministic.
func (f *Forest) Predict(answers []int) (string, error) {
	votes := make(map[string]int)
	order := make([]string, 0, len(f.Trees))
	for _, t := range f.Trees {
		label, err := t.predict(answers)
		if err != nil {
			return "", err
		}
		if votes[label] == 0 {
			order = append(order, label)
		}
		votes[label]++
	}
	best := order[0]
	for _, label := range order[1:] {
		if votes[label] > votes[best] {
			best = label
		}
	}
	return best, nil
}
