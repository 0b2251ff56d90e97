package match

import (
	"context"

	"github.com/bastiangx/wordsolve/pkg/pattern"
	"golang.org/x/sync/errgroup"
)

// Scan applies Match to every entry in order. Results keep the order of entries.
func Scan(entries []string, spec *pattern.Spec, opts Options) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	var results []Result
	for i, entry := range entries {
		if res, ok := Match(entry, spec, opts); ok {
			res.Index = i
			results = append(results, res)
		}
	}
	return results, nil
}

// ScanAt is Scan restricted to the given entry indices, which must be sorted
// ascending for the results to come out in list order.
func ScanAt(entries []string, at []int, spec *pattern.Spec, opts Options) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	var results []Result
	for _, i := range at {
		if i < 0 || i >= len(entries) {
			continue
		}
		if res, ok := Match(entries[i], spec, opts); ok {
			res.Index = i
			results = append(results, res)
		}
	}
	return results, nil
}

// minChunk keeps tiny lists on a single goroutine.
const minChunk = 2048

// ScanParallel splits entries into contiguous chunks matched concurrently.
// Chunk results are joined back in chunk order, so the output is identical
// to Scan. workers <= 1 falls back to Scan.
func ScanParallel(ctx context.Context, entries []string, spec *pattern.Spec, opts Options, workers int) ([]Result, error) {
	if workers <= 1 || len(entries) <= minChunk {
		return Scan(entries, spec, opts)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	size := (len(entries) + workers - 1) / workers
	if size < minChunk {
		size = minChunk
	}
	chunks := (len(entries) + size - 1) / size
	parts := make([][]Result, chunks)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for c := 0; c < chunks; c++ {
		lo := c * size
		hi := min(lo+size, len(entries))
		g.Go(func() error {
			var local []Result
			for i := lo; i < hi; i++ {
				if (i-lo)%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				if res, ok := Match(entries[i], spec, opts); ok {
					res.Index = i
					local = append(local, res)
				}
			}
			parts[c] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := 0
	for _, p := range parts {
		n += len(p)
	}
	results := make([]Result, 0, n)
	for _, p := range parts {
		results = append(results, p...)
	}
	return results, nil
}

// Entries extracts the matched entries in result order.
func Entries(results []Result) []string {
	if len(results) == 0 {
		return nil
	}
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Entry
	}
	return out
}
