// Package ioidentify implements identify.Identifier. It checks the
// image, runs the classifier and looks the predicted species up one
// by one.
package ioidentify

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gnames/gnpest/pkg/classify"
	"github.com/gnames/gnpest/pkg/identify"
	"github.com/gnames/gnpest/pkg/lookup"
	"github.com/gnames/gnpest/pkg/parserpool"
)

type identifier struct {
	classifier classify.Classifier
	parser     parserpool.Pool
	engine     *lookup.Engine
	topK       int
}

// New creates an Identifier from its collaborators. Their lifecycle
// belongs to the caller.
func New(
	cl classify.Classifier,
	parser parserpool.Pool,
	engine *lookup.Engine,
	topK int,
) identify.Identifier {
	return &identifier{
		classifier: cl,
		parser:     parser,
		engine:     engine,
		topK:       topK,
	}
}

// Classify checks the image and runs the classifier.
func (id *identifier) Classify(
	ctx context.Context,
	imagePath string,
) (*identify.Report, error) {
	if err := CheckImage(imagePath); err != nil {
		return nil, err
	}

	res := identify.Report{Image: imagePath}

	start := time.Now()
	preds, err := id.classifier.Classify(ctx, imagePath, id.topK)
	res.ClassifyTime = time.Since(start)
	if err != nil {
		return nil, ClassifyError(imagePath, err)
	}
	slog.Info("Image classified",
		"image", imagePath,
		"predictions", len(preds),
		"duration", res.ClassifyTime,
	)

	res.Candidates = make([]identify.Candidate, len(preds))
	for i, v := range preds {
		res.Candidates[i] = identify.Candidate{Prediction: v}
	}
	return &res, nil
}

// LookupCandidate fills Binomial and Record of a candidate.
func (id *identifier) LookupCandidate(
	ctx context.Context,
	cand *identify.Candidate,
) {
	name, ok := id.parser.Binomial(cand.Label)
	if ok {
		cand.Binomial = name
	} else {
		slog.Warn("Label is not a binomial", "label", cand.Label)
		// the engine reports such names as not found
		name = strings.ReplaceAll(cand.Label, "_", " ")
	}

	rec, err := id.engine.Lookup(ctx, name)
	if err != nil {
		slog.Error("Lookup failed", "label", cand.Label, "error", err)
		cand.SetErr(err)
		return
	}
	cand.Record = rec
}

// Identify runs classification and lookup for an image.
func (id *identifier) Identify(
	ctx context.Context,
	imagePath string,
) (*identify.Report, error) {
	res, err := id.Classify(ctx, imagePath)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	for i := range res.Candidates {
		id.LookupCandidate(ctx, &res.Candidates[i])
	}
	res.LookupTime = time.Since(start)
	slog.Info("Candidates looked up",
		"image", imagePath,
		"found", len(res.Found()),
		"failed", len(res.Failed()),
		"duration", res.LookupTime,
	)

	return res, nil
}

// CheckImage makes sure the path is a readable regular file. It is
// cheap and should run before the classifier and the catalog are
// opened.
func CheckImage(path string) error {
	if err := checkImage(path); err != nil {
		return ImageError(path, err)
	}
	return nil
}

// checkImage makes sure the path is a readable regular file.
func checkImage(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return errors.New("path is a directory")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}
