// Package format renders species records and classifier predictions
// as terminal lines.
package format

import (
	"fmt"
	"strings"

	"github.com/gnames/gnpest/pkg/catalog"
	"github.com/gnames/gnpest/pkg/classify"
)

// Placeholder precedes the label of a field in place of a missing value,
// e.g. "鉴别特征: 暂未收录鉴别特征".
const Placeholder = "暂未收录"

// Lines returns one line per field in display order. Empty values are
// replaced by the placeholder message. A nil record produces no lines,
// the lookup engine has already told the user it was not found.
func Lines(rec *catalog.Record) []string {
	if rec == nil {
		return nil
	}

	fields := catalog.Fields()
	res := make([]string, len(fields))
	for i, f := range fields {
		res[i] = Line(f, rec.Value(f))
	}
	return res
}

// Line renders a single field as "<label>: <value>".
func Line(f catalog.Field, value string) string {
	if strings.TrimSpace(value) == "" {
		value = Placeholder + f.Label()
	}
	return f.Label() + ": " + value
}

// Record joins Lines with new lines.
func Record(rec *catalog.Record) string {
	return strings.Join(Lines(rec), "\n")
}

// Prediction renders a label with its confidence as a percentage.
func Prediction(p classify.Prediction) string {
	return fmt.Sprintf("%s (confidence=%.2f%%)", p.Label, p.Confidence*100)
}

// Predictions renders ranked predictions, one per line.
func Predictions(preds []classify.Prediction) string {
	lines := make([]string, len(preds))
	for i, v := range preds {
		lines[i] = fmt.Sprintf("%d. %s", i+1, Prediction(v))
	}
	return strings.Join(lines, "\n")
}
