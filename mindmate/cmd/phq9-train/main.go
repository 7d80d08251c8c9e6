// Command phq9-train fits the PHQ-9 severity forest on synthetic screening
// data and writes the JSON artifact the server loads at startup.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"mindmate/mindmate/services/severity"
)

const (
	numSamples = 1000
	numTrees   = 20
	maxDepth   = 8
	minLeaf    = 2
)

var labels = []string{
	severity.LevelNone,
	severity.LevelMild,
	severity.LevelModerate,
	severity.LevelModeratelySevere,
	severity.LevelSevere,
}

type sample struct {
	answers []int
	label   string
}

func main() {
	out := flag.String("out", "phq9_model.json", "output path for the model artifact")
	seed := flag.Int64("seed", 42, "rng seed for the synthetic dataset")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	samples := make([]sample, numSamples)
	for i := range samples {
		answers := make([]int, severity.NumQuestions)
		total := 0
		for j := range answers {
			answers[j] = rng.Intn(4)
			total += answers[j]
		}
		samples[i] = sample{answers: answers, label: severity.LevelFromScore(total)}
	}

	forest := severity.Forest{Trees: make([]severity.Tree, numTrees)}
	for i := range forest.Trees {
		boot := make([]sample, len(samples))
		for j := range boot {
			boot[j] = samples[rng.Intn(len(samples))]
		}
		forest.Trees[i] = buildTree(rng, boot, 0)
	}

	reportAccuracy(samples, &forest)

	data, err := json.MarshalIndent(forest, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal model:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "write model:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d trees to %s\n", numTrees, *out)
}

// buildTree grows one CART tree on a bootstrap sample, choosing splits from a
// random feature subset at each node.
func buildTree(rng *rand.Rand, samples []sample, depth int) severity.Tree {
	t := severity.Tree{}
	grow(rng, &t, samples, depth)
	return t
}

func grow(rng *rand.Rand, t *severity.Tree, samples []sample, depth int) int {
	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, severity.Node{})

	if depth >= maxDepth || len(samples) < 2*minLeaf || pure(samples) {
		t.Nodes[idx] = severity.Node{Leaf: majority(samples)}
		return idx
	}

	feature, threshold, ok := bestSplit(rng, samples)
	if !ok {
		t.Nodes[idx] = severity.Node{Leaf: majority(samples)}
		return idx
	}

	var left, right []sample
	for _, s := range samples {
		if float64(s.answers[feature]) <= threshold {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}

	leftIdx := grow(rng, t, left, depth+1)
	rightIdx := grow(rng, t, right, depth+1)
	t.Nodes[idx] = severity.Node{
		Feature:   feature,
		Threshold: threshold,
		Left:      leftIdx,
		Right:     rightIdx,
	}
	return idx
}

// bestSplit scans sqrt-of-features random features and the three ordinal cut
// points, keeping the split with the lowest weighted gini.
func bestSplit(rng *rand.Rand, samples []sample) (int, float64, bool) {
	features := rng.Perm(severity.NumQuestions)[:3]
	thresholds := []float64{0.5, 1.5, 2.5}

	bestGini := gini(samples)
	bestFeature, bestThreshold := -1, 0.0

	for _, f := range features {
		for _, th := range thresholds {
			var left, right []sample
			for _, s := range samples {
				if float64(s.answers[f]) <= th {
					left = append(left, s)
				} else {
					right = append(right, s)
				}
			}
			if len(left) < minLeaf || len(right) < minLeaf {
				continue
			}
			n := float64(len(samples))
			weighted := gini(left)*float64(len(left))/n + gini(right)*float64(len(right))/n
			if weighted < bestGini {
				bestGini = weighted
				bestFeature = f
				bestThreshold = th
			}
		}
	}
	if bestFeature < 0 {
		return 0, 0, false
	}
	return bestFeature, bestThreshold, true
}

func gini(samples []sample) float64 {
	counts := make(map[string]int)
	for _, s := range samples {
		counts[s.label]++
	}
	n := float64(len(samples))
	impurity := 1.0
	for _, c := range counts {
		p := float64(c) / n
		impurity -= p * p
	}
	return impurity
}

func pure(samples []sample) bool {
	for _, s := range samples[1:] {
		if s.label != samples[0].label {
			return false
		}
	}
	return true
}

func majority(samples []sample) string {
	counts := make(map[string]int)
	for _, s := range samples {
		counts[s.label]++
	}
	best := labels[0]
	for _, label := range labels {
		if counts[label] > counts[best] {
			best = label
		}
	}
	return best
}

func reportAccuracy(samples []sample, forest *severity.Forest) {
	correct := 0
	for _, s := range samples {
		pred, err := forest.Predict(s.answers)
		if err == nil && pred == s.label {
			correct++
		}
	}
	fmt.Printf("training accuracy: %.3f\n", float64(correct)/float64(len(samples)))
}
