// Package app implements the application layer for estim.
package app

import (
	"context"

	"go.orqa.ch/estim/internal/adapters/linear"
	"go.orqa.ch/estim/internal/adapters/simulator"
	"go.orqa.ch/estim/internal/adapters/telemetry"
	"go.orqa.ch/estim/internal/core/domain"
	"go.orqa.ch/estim/internal/core/ports"
	"go.orqa.ch/estim/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	jobLoader ports.JobLoader
	logger    ports.Logger

	renderer ports.Renderer
	backend  ports.Sampler
}

// New creates a new App instance.
func New(loader ports.JobLoader, log ports.Logger) *App {
	return &App{
		jobLoader: loader,
		logger:    log,
	}
}

// WithRenderer overrides the default renderer.
// This is primarily used for testing.
func (a *App) WithRenderer(r ports.Renderer) *App {
	a.renderer = r
	return a
}

// WithBackend overrides the default simulator backend.
// This is primarily used for testing.
func (a *App) WithBackend(b ports.Sampler) *App {
	a.backend = b
	return a
}

// debugger is implemented by loggers that can lower their level
// threshold at runtime.
type debugger interface {
	SetDebug(enable bool)
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// Shots overrides the job file's total shot budget when >= 0.
	Shots int

	// Exact computes expectation values analytically instead of by
	// sampling.
	Exact bool

	// Parallelism bounds concurrent backend submissions.
	Parallelism int

	// Seed overrides the job file's sampling seed when HasSeed is set.
	Seed    uint64
	HasSeed bool

	// JSON switches log output to JSON.
	JSON bool

	// Debug enables debug-level logging, including span timings.
	Debug bool
}

// Run estimates every job file in order and renders the results.
func (a *App) Run(ctx context.Context, jobPaths []string, opts RunOptions) error {
	if len(jobPaths) == 0 {
		return domain.ErrNoJobsSpecified
	}

	a.logger.SetJSON(opts.JSON)
	if d, ok := a.logger.(debugger); ok {
		d.SetDebug(opts.Debug)
	}

	renderer := a.renderer
	if renderer == nil {
		renderer = linear.NewNode().Renderer()
	}

	// Span lifecycle events surface in the log stream at debug level.
	bridge := telemetry.NewBridge(a.logger)
	provider := telemetry.NewProvider(bridge)
	defer func() {
		_ = provider.Shutdown(ctx)
	}()
	tracer := telemetry.NewOTelTracer("estim")

	total := 0
	for _, path := range jobPaths {
		n, err := a.runJob(ctx, tracer, renderer, path, opts)
		if err != nil {
			return zerr.With(err, "job", path)
		}
		total += n
	}

	renderer.RenderSummary(total)
	return nil
}

func (a *App) runJob(
	ctx context.Context,
	tracer ports.Tracer,
	renderer ports.Renderer,
	path string,
	opts RunOptions,
) (int, error) {
	job, err := a.jobLoader.Load(path)
	if err != nil {
		return 0, err
	}

	backend := a.backend
	if backend == nil {
		seed, hasSeed := job.Seed, job.HasSeed
		if opts.HasSeed {
			seed, hasSeed = opts.Seed, true
		}
		if hasSeed {
			backend = simulator.New(simulator.WithSeed(seed))
		} else {
			backend = simulator.New()
		}
	}

	shots, hasShots := job.TotalShots, job.HasTotalShots
	if opts.Shots >= 0 {
		shots, hasShots = opts.Shots, true
	}

	renderer.RenderPlan(job.Tasks)

	p := pipeline.New(backend, tracer, a.logger)
	results, err := p.Run(ctx, job.Tasks, job.SymbolMaps, pipeline.Options{
		TotalShots:    shots,
		HasTotalShots: hasShots,
		Exact:         opts.Exact,
		Parallelism:   opts.Parallelism,
	})
	if err != nil {
		return 0, zerr.Wrap(err, "estimation failed")
	}

	for i, values := range results {
		renderer.RenderResult(i, job.Tasks[i], values)
	}
	return len(results), nil
}
