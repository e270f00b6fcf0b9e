// Package classify defines the contract of the image classifier and
// the pure helpers used to turn raw model output into ranked
// predictions.
package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
)

// Prediction is a class label with its confidence in [0, 1].
type Prediction struct {
	// Label is an underscore-joined class name, e.g. "Aedes_albopictus".
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Classifier ranks the classes of an image.
type Classifier interface {
	// Classify returns at most topK predictions ordered by descending
	// confidence.
	Classify(ctx context.Context, imagePath string, topK int) ([]Prediction, error)

	// Close releases the model.
	Close() error
}

// Softmax converts logits into probabilities that sum to 1.
func Softmax(logits []float32) []float64 {
	if len(logits) == 0 {
		return nil
	}

	maxLogit := float64(slices.Max(logits))
	res := make([]float64, len(logits))
	var sum float64
	for i, v := range logits {
		res[i] = math.Exp(float64(v) - maxLogit)
		sum += res[i]
	}
	for i := range res {
		res[i] /= sum
	}
	return res
}

// Pair joins labels with confidences of the same index.
func Pair(labels []string, confidence []float64) ([]Prediction, error) {
	if len(labels) != len(confidence) {
		return nil, fmt.Errorf(
			"length of labels (%d) and predictions (%d) do not match",
			len(labels), len(confidence),
		)
	}

	res := make([]Prediction, len(labels))
	for i := range labels {
		res[i] = Prediction{Label: labels[i], Confidence: confidence[i]}
	}
	return res, nil
}

// TopK sorts predictions by descending confidence and keeps the first
// k of them. Equal confidences keep their input order.
func TopK(preds []Prediction, k int) []Prediction {
	res := slices.Clone(preds)
	slices.SortStableFunc(res, func(a, b Prediction) int {
		switch {
		case a.Confidence > b.Confidence:
			return -1
		case a.Confidence < b.Confidence:
			return 1
		default:
			return 0
		}
	})
	if k < 0 {
		k = 0
	}
	if len(res) > k {
		res = res[:k]
	}
	return res
}

// ParseClassMap reads a JSON object that maps class indices to labels,
// e.g. {"0": "Aedes_albopictus", "1": "Culex_pipiens"}, and returns the
// labels ordered by index. Indices must be contiguous from zero.
func ParseClassMap(data []byte) ([]string, error) {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	res := make([]string, len(m))
	seen := make([]bool, len(m))
	for k, v := range m {
		idx, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("class index %q is not a number", k)
		}
		if idx < 0 || idx >= len(m) {
			return nil, fmt.Errorf("class index %d is out of range", idx)
		}
		if seen[idx] {
			return nil, fmt.Errorf("class index %d is repeated", idx)
		}
		seen[idx] = true
		res[idx] = v
	}
	return res, nil
}
