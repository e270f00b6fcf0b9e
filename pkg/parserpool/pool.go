// Package parserpool keeps reusable gnparser instances and turns
// classifier labels into binomial scientific names.
package parserpool

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool is safe for concurrent use.
type Pool interface {
	// Parse parses a name string according to a nomenclatural code.
	// Only zoological and botanical codes are served.
	Parse(nameString string, code nomcode.Code) (parsed.Parsed, error)

	// Binomial converts a classifier label such as "Aedes_albopictus" to
	// a binomial name. It returns false if the label is not a parseable
	// name of exactly two words (genus and species epithet).
	Binomial(label string) (string, bool)

	// Close releases parsers. The pool cannot be used afterwards.
	Close()
}

// codes served by the pool. Pests and vectors are animals, plant
// names appear when hosts are parsed.
var codes = []nomcode.Code{nomcode.Zoological, nomcode.Botanical}

type pool struct {
	parsers map[nomcode.Code]chan gnparser.GNparser
}

// NewPool creates jobsNum parsers for every served code. Non-positive
// jobsNum falls back to the number of CPUs.
func NewPool(jobsNum int) Pool {
	if jobsNum <= 0 {
		jobsNum = runtime.NumCPU()
	}

	res := pool{parsers: make(map[nomcode.Code]chan gnparser.GNparser)}
	for _, code := range codes {
		cfg := gnparser.NewConfig(gnparser.OptCode(code))
		res.parsers[code] = gnparser.NewPool(cfg, jobsNum)
	}
	return &res
}

func (p *pool) Parse(nameString string, code nomcode.Code) (parsed.Parsed, error) {
	ch, ok := p.parsers[code]
	if !ok {
		return parsed.Parsed{},
			fmt.Errorf("nomenclatural code %v is not served by parser pool", code)
	}

	gnp := <-ch
	defer func() { ch <- gnp }()
	return gnp.ParseName(nameString), nil
}

func (p *pool) Binomial(label string) (string, bool) {
	name := labelToName(label)
	if name == "" {
		return "", false
	}

	res, err := p.Parse(name, nomcode.Zoological)
	switch {
	case err != nil, !res.Parsed, res.Canonical == nil:
		return "", false
	case res.Cardinality != 2:
		return "", false
	}
	return res.Canonical.Simple, true
}

func (p *pool) Close() {
	for code, ch := range p.parsers {
		close(ch)
		for range ch {
		}
		delete(p.parsers, code)
	}
}

// labelToName replaces underscores with spaces and squeezes repeated
// whitespace.
func labelToName(label string) string {
	label = strings.ReplaceAll(label, "_", " ")
	return strings.Join(strings.Fields(label), " ")
}
