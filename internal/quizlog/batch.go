package quizlog

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/quizreport/internal/model"
)

// DefaultConcurrency is the number of files read at the same time.
const DefaultConcurrency = 4

// BatchLoader loads multiple quiz log files concurrently.
type BatchLoader struct {
	// concurrency is the maximum number of files read simultaneously.
	concurrency int

	logger *slog.Logger
}

// BatchOption configures a BatchLoader.
type BatchOption func(*BatchLoader)

// WithConcurrency sets the maximum number of concurrent reads.
// Values below 1 are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchLoader) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithLogger sets the logger used for progress messages.
func WithLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchLoader) {
		b.logger = logger
	}
}

// NewBatchLoader creates a BatchLoader.
func NewBatchLoader(opts ...BatchOption) *BatchLoader {
	b := &BatchLoader{
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.Default()
	}

	return b
}

// LoadAll loads every path and returns the logs in the same order as paths.
// The first failure cancels the remaining reads and is returned.
func (b *BatchLoader) LoadAll(ctx context.Context, paths []string) ([]*model.QuizLog, error) {
	b.logger.Debug("loading quiz logs",
		"count", len(paths),
		"concurrency", b.concurrency,
	)

	// Each goroutine writes only its own index, so no lock is needed.
	logs := make([]*model.QuizLog, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			quizLog, err := Load(path)
			if err != nil {
				return fmt.Errorf("failed to load quiz log %s: %w", path, err)
			}

			b.logger.Debug("quiz log loaded",
				"path", path,
				"total", quizLog.Total(),
				"successful", quizLog.Successful(),
			)

			logs[i] = quizLog
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return logs, nil
}
