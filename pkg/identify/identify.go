// Package identify defines the end-to-end identification of a pest
// photo: classification, label conversion and catalog lookup.
package identify

import (
	"context"
	"time"

	"github.com/gnames/gnpest/pkg/catalog"
	"github.com/gnames/gnpest/pkg/classify"
)

// Identifier identifies the species on an image. Identification has
// two phases that can be run separately, so that callers are able to
// show classification results before catalog lookups start.
type Identifier interface {
	// Classify checks the image and ranks the species on it. Candidates
	// of the returned report are not looked up yet.
	Classify(ctx context.Context, imagePath string) (*Report, error)

	// LookupCandidate converts the label of a candidate to a binomial
	// and looks it up in the catalog. Labels that are not binomials and
	// names absent from the catalog are reported as not found and leave
	// a nil Record. A failed lookup is kept in the candidate.
	LookupCandidate(ctx context.Context, cand *Candidate)

	// Identify runs Classify and then LookupCandidate for every
	// candidate, timing both phases.
	Identify(ctx context.Context, imagePath string) (*Report, error)
}

// Candidate is one ranked classifier prediction with its catalog data.
type Candidate struct {
	classify.Prediction

	// Binomial is the scientific name derived from the label. It is
	// empty if the label is not a binomial.
	Binomial string `json:"binomial,omitempty"`

	// Record is nil when the species is not in the catalog.
	Record *catalog.Record `json:"record,omitempty"`

	// Err is the lookup failure of this candidate, such as duplicate
	// catalog rows. Other candidates are not affected by it.
	Err error `json:"-"`
	// Error is the text of Err for JSON output.
	Error string `json:"error,omitempty"`
}

// SetErr records a lookup failure of the candidate.
func (c *Candidate) SetErr(err error) {
	c.Err = err
	c.Error = ""
	if err != nil {
		c.Error = err.Error()
	}
}

// Report is the result of identification of one image.
type Report struct {
	Image      string      `json:"image"`
	Candidates []Candidate `json:"candidates"`

	// ClassifyTime is the duration of the classification phase.
	ClassifyTime time.Duration `json:"classifyTime"`
	// LookupTime is the duration of the catalog phase.
	LookupTime time.Duration `json:"lookupTime"`
}

// Found returns candidates that have catalog records.
func (r *Report) Found() []Candidate {
	var res []Candidate
	for _, v := range r.Candidates {
		if v.Record != nil {
			res = append(res, v)
		}
	}
	return res
}

// Failed returns candidates whose lookup ended with an error.
func (r *Report) Failed() []Candidate {
	var res []Candidate
	for _, v := range r.Candidates {
		if v.Err != nil {
			res = append(res, v)
		}
	}
	return res
}

// Predictions returns the classifier output of the report.
func (r *Report) Predictions() []classify.Prediction {
	res := make([]classify.Prediction, len(r.Candidates))
	for i, v := range r.Candidates {
		res[i] = v.Prediction
	}
	return res
}
