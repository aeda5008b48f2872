package score

import (
	"runtime"

	"github.com/sourcegraph/conc/iter"

	"github.com/AvengeMedia/dankpalette/internal/theme"
)

// Candidate is one generated theme and its evaluation.
type Candidate struct {
	Theme  theme.DualTheme `json:"theme"`
	Result Result          `json:"result"`
}

// BestOfSeeds generates a theme per seed in parallel, each from base with
// the seed swapped in, and returns the best one along with every candidate
// in seed order. Ties go to the earlier seed so the result does not depend
// on scheduling. ok is false when seeds is empty.
func BestOfSeeds(base theme.Options, seeds []string, w Weights, workers int) (best Candidate, all []Candidate, ok bool) {
	if len(seeds) == 0 {
		return Candidate{}, nil, false
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	mapper := iter.Mapper[string, Candidate]{MaxGoroutines: workers}
	all = mapper.Map(seeds, func(seed *string) Candidate {
		opts := base
		opts.Seed = *seed
		d := theme.Generate(opts)
		return Candidate{Theme: d, Result: EvaluateDual(d, w)}
	})

	results := make([]Result, len(all))
	for i, c := range all {
		results[i] = c.Result
	}
	idx, _ := pick(results)
	return all[idx], all, true
}
