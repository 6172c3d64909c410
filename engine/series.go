package engine

import (
	"golang.org/x/sync/errgroup"
)

// Factory builds one ready to run game from a seed.
type Factory func(seed uint64) *Local

// RunSeries plays n independent games and aggregates their outcomes.
// Game i is built from seed base+i, so a fixed base reproduces the whole
// series. At most limit games run at once; a nonpositive limit lets them
// all run together.
func RunSeries(n int, base uint64, limit int, factory Factory) SeriesStats {
	results := make([]GameStats, n)

	var group errgroup.Group
	if limit > 0 {
		group.SetLimit(limit)
	}
	for i := 0; i < n; i++ {
		i := i // per-iteration copy; required while go.mod declares go < 1.22
		group.Go(func() error {
			_, stats := factory(base + uint64(i)).Run()
			results[i] = stats
			return nil
		})
	}
	_ = group.Wait()

	series := SeriesStats{}
	for _, result := range results {
		series.Merge(result)
	}
	return series
}
