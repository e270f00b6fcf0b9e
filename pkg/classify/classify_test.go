package classify_test

import (
	"testing"

	"github.com/gnames/gnpest/pkg/classify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSoftmax(t *testing.T) {
	res := classify.Softmax([]float32{1, 2, 3, 1000})
	require.Len(t, res, 4)

	var sum float64
	for _, v := range res {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.InDelta(t, 1.0, res[3], 1e-9, "large logits do not overflow")

	res = classify.Softmax([]float32{0, 0})
	assert.InDelta(t, 0.5, res[0], 1e-9)
	assert.Nil(t, classify.Softmax(nil))
}

func TestPair(t *testing.T) {
	res, err := classify.Pair([]string{"a", "b"}, []float64{0.3, 0.7})
	require.NoError(t, err)
	assert.Equal(t, []classify.Prediction{
		{Label: "a", Confidence: 0.3},
		{Label: "b", Confidence: 0.7},
	}, res)

	_, err = classify.Pair([]string{"a"}, []float64{0.3, 0.7})
	assert.Error(t, err)
}

func TestTopK(t *testing.T) {
	preds := []classify.Prediction{
		{Label: "a", Confidence: 0.1},
		{Label: "b", Confidence: 0.4},
		{Label: "c", Confidence: 0.4},
		{Label: "d", Confidence: 0.1},
		{Label: "e", Confidence: 0.0},
	}

	tests := []struct {
		msg    string
		k      int
		labels []string
	}{
		{"top 1", 1, []string{"b"}},
		{"top 3 stable ties", 3, []string{"b", "c", "a"}},
		{"more than available", 10, []string{"b", "c", "a", "d", "e"}},
		{"zero", 0, nil},
		{"negative", -1, nil},
	}

	for _, v := range tests {
		res := classify.TopK(preds, v.k)
		var labels []string
		for _, p := range res {
			labels = append(labels, p.Label)
		}
		assert.Equal(t, v.labels, labels, v.msg)
	}
	assert.Equal(t, "a", preds[0].Label, "input is not modified")
}

func TestParseClassMap(t *testing.T) {
	tests := []struct {
		msg    string
		data   string
		labels []string
		err    bool
	}{
		{
			msg:    "ordered by index",
			data:   `{"1": "Culex_pipiens", "0": "Aedes_albopictus", "2": "Musca_domestica"}`,
			labels: []string{"Aedes_albopictus", "Culex_pipiens", "Musca_domestica"},
		},
		{
			msg:    "empty",
			data:   `{}`,
			labels: []string{},
		},
		{
			msg:  "not json",
			data: `0: Aedes_albopictus`,
			err:  true,
		},
		{
			msg:  "gap",
			data: `{"0": "a", "2": "b"}`,
			err:  true,
		},
		{
			msg:  "non-numeric",
			data: `{"zero": "a"}`,
			err:  true,
		},
	}

	for _, v := range tests {
		res, err := classify.ParseClassMap([]byte(v.data))
		if v.err {
			assert.Error(t, err, v.msg)
			continue
		}
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.labels, res, v.msg)
	}
}
