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

	"github.com/gnames/gn"
	"github.com/gnames/gnpest/pkg/catalog"
	"github.com/gnames/gnpest/pkg/format"
	"github.com/gnames/gnpest/pkg/lookup"
	"github.com/spf13/cobra"
)

// getLookupCmd returns the lookup command.
func getLookupCmd() *cobra.Command {
	var asJSON bool

	lookupCmd := &cobra.Command{
		Use:   "lookup NAME...",
		Short: "Show catalog data for scientific names",
		Long: `Lookup finds species in the catalog by their binomial scientific
names, without running the classifier.

Every name is matched exactly, e.g. "Aedes albopictus". Names that are
not in the catalog are reported and skipped.

Examples:
  gnpest lookup "Aedes albopictus"
  gnpest lookup "Aedes albopictus" "Culex pipiens"
  gnpest lookup "Anopheles sinensis" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, args, asJSON)
		},
	}

	lookupCmd.Flags().BoolVarP(&asJSON, "json", "j", false,
		"print found records as JSON")

	return lookupCmd
}

func runLookup(_ *cobra.Command, names []string, asJSON bool) error {
	ctx := context.Background()

	op, store, err := openStore(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	engine := lookup.New(store)

	var recs []*catalog.Record
	for _, name := range names {
		rec, err := engine.Lookup(ctx, name)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		if rec == nil {
			continue
		}
		recs = append(recs, rec)
	}

	if asJSON {
		return printJSON(recs)
	}

	for _, v := range recs {
		fmt.Printf("\n%s\n%s\n", v.ScientificName, format.Record(v))
	}
	return nil
}
