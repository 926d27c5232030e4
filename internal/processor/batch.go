package processor

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type BatchItem struct {
	Index  int
	Result Result
	Err    error
}

// SummarizeBatch summarizes each text independently with at most workers
// running at once. Items come back in input order; a failing document does
// not stop the others. Only ctx cancellation aborts the batch.
func SummarizeBatch(ctx context.Context, s *Summarizer, texts []string, workers int) ([]BatchItem, error) {
	items := make([]BatchItem, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i, text := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := s.Summarize(text)
			items[i] = BatchItem{Index: i, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
