package interaction

import (
	"encoding/json"
	"fmt"
	"math"

	apperrors "github.com/nutrirx/DrugFood-Intelligence/pkg/errors"
)

// Node is one decision node of a regression tree.  Internal nodes split on
// Feature < Threshold (left when true); leaf nodes carry Value and have
// Left == Right == -1.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

// IsLeaf reports whether the node is terminal.
func (n Node) IsLeaf() bool { return n.Left < 0 && n.Right < 0 }

// Tree is a single regression tree contributing to one class margin.
type Tree struct {
	Class int    `json:"class"`
	Nodes []Node `json:"nodes"`
}

// score walks the tree from the root for the given feature vector.  Feature
// indexes beyond the vector read as 0.0.
func (t Tree) score(features []float64) float64 {
	idx := 0
	for {
		n := t.Nodes[idx]
		if n.IsLeaf() {
			return n.Value
		}
		v := 0.0
		if n.Feature >= 0 && n.Feature < len(features) {
			v = features[n.Feature]
		}
		if v < n.Threshold {
			idx = n.Left
		} else {
			idx = n.Right
		}
	}
}

// Ensemble is a gradient-boosted tree ensemble producing per-class
// probabilities via softmax over summed tree margins.
type Ensemble struct {
	NumClasses int     `json:"num_classes"`
	BaseScore  float64 `json:"base_score"`
	Trees      []Tree  `json:"trees"`
}

// ParseEnsemble decodes and validates an ensemble from its JSON artifact.
func ParseEnsemble(data []byte) (*Ensemble, error) {
	var m Ensemble
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeArtifactLoadFailed, "decode model artifact")
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Ensemble) validate() error {
	if m.NumClasses < 2 {
		return apperrors.New(apperrors.ErrCodeArtifactLoadFailed,
			fmt.Sprintf("model must have at least 2 classes, got %d", m.NumClasses))
	}
	if len(m.Trees) == 0 {
		return apperrors.New(apperrors.ErrCodeArtifactLoadFailed, "model has no trees")
	}
	for ti, t := range m.Trees {
		if t.Class < 0 || t.Class >= m.NumClasses {
			return apperrors.New(apperrors.ErrCodeArtifactLoadFailed,
				fmt.Sprintf("tree %d targets class %d outside [0, %d)", ti, t.Class, m.NumClasses))
		}
		if len(t.Nodes) == 0 {
			return apperrors.New(apperrors.ErrCodeArtifactLoadFailed,
				fmt.Sprintf("tree %d has no nodes", ti))
		}
		for ni, n := range t.Nodes {
			if n.IsLeaf() {
				continue
			}
			if n.Left < 0 || n.Left >= len(t.Nodes) || n.Right < 0 || n.Right >= len(t.Nodes) {
				return apperrors.New(apperrors.ErrCodeArtifactLoadFailed,
					fmt.Sprintf("tree %d node %d has child index out of range", ti, ni))
			}
			if n.Left <= ni || n.Right <= ni {
				return apperrors.New(apperrors.ErrCodeArtifactLoadFailed,
					fmt.Sprintf("tree %d node %d has a backward edge", ti, ni))
			}
		}
	}
	return nil
}

// Probabilities scores the feature vector and returns one probability per
// class, summing to 1.
func (m *Ensemble) Probabilities(features []float64) []float64 {
	margins := make([]float64, m.NumClasses)
	for i := range margins {
		margins[i] = m.BaseScore
	}
	for _, t := range m.Trees {
		margins[t.Class] += t.score(features)
	}
	return softmax(margins)
}

// softmax converts margins to probabilities with the max-subtraction trick
// for numerical stability.
func softmax(margins []float64) []float64 {
	maxM := margins[0]
	for _, m := range margins[1:] {
		if m > maxM {
			maxM = m
		}
	}
	probs := make([]float64, len(margins))
	sum := 0.0
	for i, m := range margins {
		probs[i] = math.Exp(m - maxM)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

// argmax returns the index of the largest value; ties resolve to the lowest
// index.
func argmax(values []float64) int {
	best := 0
	for i, v := range values[1:] {
		if v > values[best] {
			best = i + 1
		}
	}
	return best
}
