package seqio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Summary holds record statistics for one stream.
type Summary struct {
	Path    string
	Format  Format
	Records int
	Bases   int64 // Total sequence length
	MinLen  int   // Shortest sequence (0 when there are no records)
	MaxLen  int   // Longest sequence
}

// MeanLen returns the mean sequence length, or 0 for an empty summary.
func (s Summary) MeanLen() float64 {
	if s.Records == 0 {
		return 0
	}
	return float64(s.Bases) / float64(s.Records)
}

// cancelCheckInterval is how many records Summarize reads between context checks.
const cancelCheckInterval = 4096

// Summarize reads the remaining records and tallies them.
//
// It stops at the first parse or source error and returns the partial
// summary alongside it. Cancelling ctx stops it between records.
func (r *Reader) Summarize(ctx context.Context) (Summary, error) {
	s := Summary{Path: r.Path, Format: r.Format}

	for {
		if s.Records%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return s, err
			}
		}

		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		if err != nil {
			return s, err
		}

		n := rec.Len()
		if s.Records == 0 || n < s.MinLen {
			s.MinLen = n
		}
		if n > s.MaxLen {
			s.MaxLen = n
		}
		s.Bases += int64(n)
		s.Records++
	}
}

// SummarizeMany opens and summarizes multiple files concurrently.
//
// Files are read in parallel using up to runtime.NumCPU() goroutines, one
// Reader per file. Results are returned in the same order as the input
// paths. The first failure cancels the remaining work and is returned,
// prefixed with its path.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
//	defer cancel()
//
//	sums, err := seqio.SummarizeMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, s := range sums {
//		fmt.Printf("%s\t%s\t%d\t%d\n", s.Path, s.Format, s.Records, s.Bases)
//	}
func SummarizeMany(ctx context.Context, paths []string, opts ...Option) ([]Summary, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	logger := applyOptions(opts).logger

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]Summary, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			r, err := Open(path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			defer r.Close()

			s, err := r.Summarize(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			s.Path = path
			results[i] = s
			logger.Debug("summarized", "path", path, "records", s.Records, "bases", s.Bases)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
