// Package pipeline drives one estimation run end to end: shot
// allocation, symbol binding, task partitioning, evaluation and result
// assembly, in that order.
package pipeline

import (
	"context"
	"fmt"
	"strconv"

	"go.orqa.ch/estim/internal/core/domain"
	"go.orqa.ch/estim/internal/core/ports"
	"go.orqa.ch/estim/internal/estimation"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options controls one pipeline run.
type Options struct {
	// TotalShots is allocated uniformly across all tasks before
	// evaluation when HasTotalShots is set; otherwise every task keeps
	// its own shot count. A negative budget fails the run; zero
	// disables sampling.
	TotalShots    int
	HasTotalShots bool

	// Exact computes expectation values analytically instead of by
	// sampling. Requires a backend with the Simulator capability.
	Exact bool

	// Parallelism bounds the number of concurrently evaluated task
	// chunks. Values below 1 are treated as 1.
	Parallelism int

	// ChunkSize is the number of measurable tasks submitted to the
	// backend per batch. Values below 1 fall back to a single batch.
	ChunkSize int
}

// Pipeline executes estimation runs against a backend.
type Pipeline struct {
	backend ports.Sampler
	tracer  ports.Tracer
	logger  ports.Logger
}

// New creates a Pipeline with the given dependencies.
func New(backend ports.Sampler, tracer ports.Tracer, logger ports.Logger) *Pipeline {
	return &Pipeline{
		backend: backend,
		tracer:  tracer,
		logger:  logger,
	}
}

// Run estimates expectation values for the given tasks and returns one
// result per task, in input order. Symbol maps pair positionally with
// tasks; pass nil to skip binding entirely. In exact mode every task
// is evaluated analytically and the shot-based partitioning is
// skipped, since shot counts carry no meaning there.
func (p *Pipeline) Run(
	ctx context.Context,
	tasks []domain.EstimationTask,
	symbolMaps []domain.SymbolMap,
	opts Options,
) ([]domain.ExpectationValues, error) {
	ctx, span := p.tracer.Start(ctx, "estimation.run")
	defer span.End()
	span.SetAttribute("estim.tasks", len(tasks))
	span.SetAttribute("estim.total_shots", opts.TotalShots)
	span.SetAttribute("estim.exact", opts.Exact)

	prepared, err := p.prepare(ctx, tasks, symbolMaps, opts)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if opts.Exact {
		results, exactErr := p.evaluate(ctx, prepared, opts)
		if exactErr != nil {
			span.RecordError(exactErr)
			return nil, exactErr
		}
		return results, nil
	}

	toMeasure, nonMeasured, idxMeasure, idxNon := estimation.SplitTasksToMeasure(prepared)
	p.logger.Debug("partitioned tasks: " +
		strconv.Itoa(len(toMeasure)) + " to measure, " +
		strconv.Itoa(len(nonMeasured)) + " constant")

	nonMeasuredResults, err := estimation.EvaluateNonMeasuredTasks(nonMeasured)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	measuredResults, err := p.evaluate(ctx, toMeasure, opts)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	merged, err := estimation.MergeEstimationResults(measuredResults, nonMeasuredResults, idxMeasure, idxNon)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return merged, nil
}

// prepare applies shot allocation and symbol binding. Allocation only
// happens when a budget was given; without one, per-task shot counts
// are honored as-is.
func (p *Pipeline) prepare(
	ctx context.Context,
	tasks []domain.EstimationTask,
	symbolMaps []domain.SymbolMap,
	opts Options,
) ([]domain.EstimationTask, error) {
	_, span := p.tracer.Start(ctx, "estimation.prepare")
	defer span.End()

	prepared := tasks
	var err error
	if opts.HasTotalShots {
		prepared, err = estimation.AllocateShotsUniformly(tasks, opts.TotalShots)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	if symbolMaps != nil {
		prepared, err = estimation.EvaluateEstimationCircuits(prepared, symbolMaps)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
	}
	return prepared, nil
}

// evaluate runs the measurable tasks against the backend in bounded
// parallel chunks and reassembles results in task order.
func (p *Pipeline) evaluate(
	ctx context.Context,
	tasks []domain.EstimationTask,
	opts Options,
) ([]domain.ExpectationValues, error) {
	ctx, span := p.tracer.Start(ctx, "estimation.evaluate")
	defer span.End()

	if len(tasks) == 0 {
		return []domain.ExpectationValues{}, nil
	}

	chunkSize := opts.ChunkSize
	if chunkSize < 1 {
		chunkSize = len(tasks)
	}
	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	results := make([]domain.ExpectationValues, len(tasks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for start := 0; start < len(tasks); start += chunkSize {
		end := start + chunkSize
		if end > len(tasks) {
			end = len(tasks)
		}
		g.Go(func() error {
			_, chunkSpan := p.tracer.Start(gctx, fmt.Sprintf("estimation.chunk[%d:%d]", start, end))
			defer chunkSpan.End()

			chunk := tasks[start:end]
			var (
				values []domain.ExpectationValues
				err    error
			)
			if opts.Exact {
				values, err = estimation.ExactExpectationValues(gctx, p.backend, chunk)
			} else {
				values, err = estimation.EstimateByAveraging(gctx, p.backend, chunk)
			}
			if err != nil {
				chunkSpan.RecordError(err)
				wrapped := zerr.Wrap(err, "task chunk evaluation failed")
				wrapped = zerr.With(wrapped, "chunk_start", start)
				return zerr.With(wrapped, "chunk_end", end)
			}
			copy(results[start:end], values)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return results, nil
}
