/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnpest/internal/ioclassify"
	"github.com/gnames/gnpest/internal/ioidentify"
	"github.com/gnames/gnpest/pkg/format"
	"github.com/gnames/gnpest/pkg/identify"
	"github.com/gnames/gnpest/pkg/lookup"
	"github.com/gnames/gnpest/pkg/parserpool"
	"github.com/spf13/cobra"
)

// getIdentifyCmd returns the identify command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getIdentifyCmd() *cobra.Command {
	identifyCmd := &cobra.Command{
		Use:   "identify IMAGE",
		Short: "Identify species on an image and show catalog data",
		Long: `Identify runs the image classifier on a photo and looks the most
likely species up in the catalog.

This command:
  1. Checks that the image exists and is readable
  2. Ranks species with the TensorFlow Lite classifier
  3. Converts every predicted label to a scientific name
  4. Looks every name up in the species catalog
  5. Prints predictions, catalog records and elapsed time

The same happens when an image is given to gnpest without a command.

Examples:
  gnpest identify mosquito.jpg
  gnpest identify mosquito.jpg --top-k 5
  gnpest identify mosquito.jpg -m model.tflite -l labels.json
  gnpest identify mosquito.jpg --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIdentify(cmd, args[0])
		},
	}

	classifierFlags(identifyCmd)

	return identifyCmd
}

// newClassifier loads the classification model.
var newClassifier = ioclassify.New

func runIdentify(cmd *cobra.Command, imagePath string) error {
	ctx := context.Background()
	asJSON, _ := cmd.Flags().GetBool("json")

	if err := ioidentify.CheckImage(imagePath); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	op, store, err := openStore(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	cl, err := newClassifier(cfg.Classifier)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer cl.Close()

	pool := parserpool.NewPool(cfg.JobsNumber)
	defer pool.Close()

	idf := ioidentify.New(cl, pool, lookup.New(store), cfg.Classifier.TopK)

	var res *identify.Report
	if asJSON {
		if res, err = idf.Identify(ctx, imagePath); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		if err = printJSON(res); err != nil {
			return err
		}
		return lookupFailure(res)
	}

	gn.Info("Classifying <em>%s</em>", imagePath)
	if res, err = idf.Classify(ctx, imagePath); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	printPredictions(res)

	gn.Info("Searching in catalog <em>%s</em>", catalogName(&cfg.Database))
	for i := range res.Candidates {
		cand := &res.Candidates[i]
		fmt.Printf("\n%s:\n", cand.Label)

		start := time.Now()
		idf.LookupCandidate(ctx, cand)
		res.LookupTime += time.Since(start)

		printCandidate(cand)
	}
	gn.Info("Searching took <em>%s</em>",
		gnfmt.TimeString(res.LookupTime.Seconds()))

	return lookupFailure(res)
}

// printPredictions shows the ranked classifier output.
func printPredictions(res *identify.Report) {
	fmt.Println(format.Predictions(res.Predictions()))
	gn.Info("Classifying took <em>%s</em>",
		gnfmt.TimeString(res.ClassifyTime.Seconds()))
}

// printCandidate shows the catalog record of a looked up candidate.
// Not found candidates were already reported by the lookup engine.
func printCandidate(cand *identify.Candidate) {
	switch {
	case cand.Err != nil:
		gn.PrintErrorMessage(cand.Err)
	case cand.Record != nil:
		fmt.Println(format.Record(cand.Record))
	}
}

// lookupFailure returns the first candidate error. The report is
// complete at that point, the error only changes the exit code.
func lookupFailure(res *identify.Report) error {
	if failed := res.Failed(); len(failed) > 0 {
		return failed[0].Err
	}
	return nil
}

func printJSON(data any) error {
	enc := gnfmt.GNjson{Pretty: true}
	bs, err := enc.Encode(data)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	fmt.Println(string(bs))
	return nil
}
