// Package profile generalizes the teacher's scope-cost measurement
// (frontend/cs/r1cs/compiler.go's Tag/AddCounter, which tags a lexical
// region and records how many variables/constraints it added) into a
// pprof profile.proto sample per scope path, so existing flamegraph
// tooling can visualize where a circuit's constraints and variables come
// from without a bespoke viewer.
package profile

import (
	"io"

	"github.com/google/pprof/profile"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ScopeCost is the per-scope-path measurement recorded between two Tags in
// the teacher's idiom: how many constraints and variables a lexical region
// contributed.
type ScopeCost struct {
	NumConstraints int64
	NumVariables   int64
}

// Build renders a pprof Profile with one sample per scope path. Two
// sample value columns are emitted: "constraints" and "variables", both
// counted in "count" units.
func Build(costs map[string]ScopeCost) *profile.Profile {
	p := &profile.Profile{
		SampleType: []*profile.ValueType{
			{Type: "constraints", Unit: "count"},
			{Type: "variables", Unit: "count"},
		},
		PeriodType: &profile.ValueType{Type: "scope", Unit: "count"},
		Period:     1,
	}

	paths := maps.Keys(costs)
	slices.Sort(paths)

	for i, path := range paths {
		fn := &profile.Function{ID: uint64(i + 1), Name: path, SystemName: path}
		loc := &profile.Location{ID: uint64(i + 1), Line: []profile.Line{{Function: fn, Line: 0}}}
		p.Function = append(p.Function, fn)
		p.Location = append(p.Location, loc)

		c := costs[path]
		p.Sample = append(p.Sample, &profile.Sample{
			Location: []*profile.Location{loc},
			Value:    []int64{c.NumConstraints, c.NumVariables},
			Label:    map[string][]string{"scope": {path}},
		})
	}

	return p
}

// Write serializes the profile in the standard gzip-compressed
// profile.proto wire format any pprof-compatible tool can open.
func Write(w io.Writer, costs map[string]ScopeCost) error {
	return Build(costs).Write(w)
}
