package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/quantmind-br/appcache-go/internal/aggregate"
	"github.com/quantmind-br/appcache-go/internal/config"
	"github.com/quantmind-br/appcache-go/internal/domain"
	"github.com/quantmind-br/appcache-go/internal/expander"
	"github.com/quantmind-br/appcache-go/internal/extractor"
	"github.com/quantmind-br/appcache-go/internal/manifest"
	"github.com/quantmind-br/appcache-go/internal/reconcile"
	"github.com/quantmind-br/appcache-go/internal/target"
	"github.com/quantmind-br/appcache-go/internal/utils"
)

// Stages that precede reconciliation, reported in TargetError
const (
	StageResolve = "resolve"
	StageExpand  = "expand"
	StageInclude = "include"
	StageExtract = "extract"
)

// Orchestrator turns targets into manifests on disk
type Orchestrator struct {
	config    *config.Config
	fs        domain.FileSystem
	expander  domain.PathExpander
	extractor domain.ReferenceExtractor
	logger    *utils.Logger
	clock     func() time.Time
	dryRun    bool
	progress  io.Writer
}

// OrchestratorOptions contains options for creating an orchestrator.
// Nil collaborators are replaced by the local disk implementations.
type OrchestratorOptions struct {
	domain.CommonOptions
	Config    *config.Config
	FS        domain.FileSystem
	Expander  domain.PathExpander
	Extractor domain.ReferenceExtractor
	Logger    *utils.Logger
	Clock     func() time.Time
	// Progress receives a progress bar during RunAll; nil disables it
	Progress io.Writer
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logLevel := "info"
		logFormat := "pretty"
		if cfg.Logging.Level != "" {
			logLevel = cfg.Logging.Level
		}
		if cfg.Logging.Format != "" {
			logFormat = cfg.Logging.Format
		}
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   logLevel,
			Format:  logFormat,
			Verbose: opts.Verbose,
		})
	}

	o := &Orchestrator{
		config:    cfg,
		fs:        opts.FS,
		expander:  opts.Expander,
		extractor: opts.Extractor,
		logger:    logger,
		clock:     opts.Clock,
		dryRun:    opts.DryRun || cfg.Output.DryRun,
		progress:  opts.Progress,
	}
	if o.fs == nil {
		o.fs = utils.NewOSFileSystem()
	}
	if o.expander == nil {
		o.expander = expander.New()
	}
	if o.extractor == nil {
		o.extractor = extractor.New()
	}
	if o.clock == nil {
		o.clock = time.Now
	}
	return o, nil
}

// Run generates the manifest for one target. Any failure is returned as a
// *domain.TargetError and leaves the destination as it was.
func (o *Orchestrator) Run(ctx context.Context, t target.Target) (*reconcile.Result, error) {
	logger := o.logger.WithTarget(t.Dest)

	if t.Dest == "" {
		return nil, domain.NewTargetError(t.Dest, StageResolve, domain.NewValidationError("dest", "cannot be empty"))
	}

	settings, err := ResolveSettings(o.config.Defaults, t.Options)
	if err != nil {
		return nil, domain.NewTargetError(t.Dest, StageResolve, err)
	}

	logger.Debug().
		Str("base_path", settings.BasePath).
		Bool("ignore_manifest", settings.IgnoreManifest).
		Bool("prefer_online", settings.PreferOnline).
		Msg("Resolved target options")

	ignored, err := o.expand(t.Ignored, settings.BasePath)
	if err != nil {
		return nil, domain.NewTargetError(t.Dest, StageExpand, err)
	}

	includes, err := o.readIncludes(t.Includes, settings.BasePath)
	if err != nil {
		return nil, domain.NewTargetError(t.Dest, StageInclude, err)
	}

	references, err := o.extractReferences(t.Cache.PagesLinks, settings.BasePath)
	if err != nil {
		return nil, domain.NewTargetError(t.Dest, StageExtract, err)
	}

	matched, err := o.expand(t.Cache.Patterns, settings.BasePath)
	if err != nil {
		return nil, domain.NewTargetError(t.Dest, StageExpand, err)
	}

	logger.Debug().
		Int("includes", len(includes)).
		Int("references", len(references)).
		Int("literals", len(t.Cache.Literals)).
		Int("matched", len(matched)).
		Int("ignored", len(ignored)).
		Msg("Collected sources")

	agg := aggregate.New(aggregate.Options{
		BasePath:       settings.BasePath,
		ManifestPath:   t.Dest,
		IgnoreManifest: settings.IgnoreManifest,
		BaseURL:        t.BaseURL,
	})
	lists := agg.Combine(aggregate.Sources{
		Includes:   includes,
		References: references,
		Literals:   t.Cache.Literals,
		Matched:    matched,
		Ignored:    ignored,
		Network:    t.Network,
		Fallback:   t.Fallback,
	})

	for _, entry := range lists.Rejected {
		logger.Warn().Str("entry", entry).Msg("Skipping entry that cannot be written to a manifest")
	}

	rec := reconcile.New(o.fs, reconcile.Options{
		PreferOnline: settings.PreferOnline,
		DryRun:       o.dryRun,
		Clock:        o.clock,
		Logger:       logger,
	})
	result, err := rec.Run(ctx, t.Dest, lists)
	if err != nil {
		return nil, err
	}

	if result.Written {
		logger.Info().
			Int("revision", result.Manifest.Version.Revision).
			Int("cache", len(result.Manifest.Cache)).
			Bool("prefer_online", result.Manifest.HasSetting(manifest.SettingPreferOnline)).
			Msgf("AppCache manifest %q created.", filepath.Base(t.Dest))
	}

	return result, nil
}

func (o *Orchestrator) expand(patterns []string, basePath string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	paths, err := o.expander.Expand(patterns, basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}
	return paths, nil
}

// readIncludes parses every manifest matched by patterns, in match order
func (o *Orchestrator) readIncludes(patterns []string, basePath string) ([]*manifest.Manifest, error) {
	paths, err := o.expand(patterns, basePath)
	if err != nil {
		return nil, err
	}

	includes := make([]*manifest.Manifest, 0, len(paths))
	for _, p := range paths {
		m, err := manifest.ReadFile(o.fs, filepath.Join(basePath, filepath.FromSlash(p)))
		if err != nil {
			return nil, err
		}
		includes = append(includes, m)
	}
	return includes, nil
}

// extractReferences reads every page matched by patterns and collects the
// stylesheets and scripts it links
func (o *Orchestrator) extractReferences(patterns []string, basePath string) ([]string, error) {
	paths, err := o.expand(patterns, basePath)
	if err != nil {
		return nil, err
	}

	var refs []string
	for _, p := range paths {
		page, err := o.fs.ReadBytes(filepath.Join(basePath, filepath.FromSlash(p)))
		if err != nil {
			return nil, err
		}
		found, err := o.extractor.Extract(bytes.NewReader(page))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		refs = append(refs, found...)
	}
	return refs, nil
}

// TargetResult represents the result of processing one target
type TargetResult struct {
	Target   target.Target
	Result   *reconcile.Result
	Error    error
	Duration time.Duration
}

// RunAll generates every target, at most opts.Concurrency at a time; zero
// uses the configured worker count. Targets must have distinct destinations.
func (o *Orchestrator) RunAll(ctx context.Context, targets []target.Target, opts target.Options) ([]TargetResult, error) {
	startTime := time.Now()
	total := len(targets)

	if total == 0 {
		return nil, target.ErrNoTargets
	}
	if err := target.CheckDistinct(targets); err != nil {
		return nil, err
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = o.config.Concurrency.Workers
	}
	if concurrency <= 0 {
		concurrency = config.DefaultWorkers
	}

	o.logger.Info().
		Int("targets", total).
		Int("concurrency", concurrency).
		Bool("continue_on_error", opts.ContinueOnError).
		Bool("dry_run", o.dryRun).
		Msg("Starting manifest generation")

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var bar *progressbar.ProgressBar
	if o.progress != nil {
		bar = utils.NewProgressBar(total, utils.DescGenerating, o.progress)
		defer func() { _ = bar.Finish() }()
	}

	// first failure in completion order; later ones may be fallout of the cancel
	var firstErr error
	var firstOnce sync.Once

	outcomes := utils.ParallelMap(runCtx, targets, concurrency, func(ctx context.Context, t target.Target) (TargetResult, error) {
		targetStart := time.Now()
		result, err := o.Run(ctx, t)
		tr := TargetResult{Target: t, Result: result, Error: err, Duration: time.Since(targetStart)}

		if bar != nil {
			_ = bar.Add(1)
		}
		if err != nil {
			o.logger.TargetFailure(err).
				Dur("duration", tr.Duration).
				Msg("Target failed")

			firstOnce.Do(func() { firstErr = err })
			if !opts.ContinueOnError {
				cancel()
			}
		}
		return tr, err
	})

	results := make([]TargetResult, total)
	for i, oc := range outcomes {
		results[i] = oc.Value
		// targets skipped after a cancel never ran
		results[i].Target = targets[i]
		results[i].Error = oc.Err
	}

	if ctx.Err() != nil {
		o.logger.Warn().Msg("Manifest generation cancelled")
		return results, ctx.Err()
	}

	if !opts.ContinueOnError && firstErr != nil {
		o.logger.Warn().Msg("Stopping generation (continue_on_error=false)")
		return results, firstErr
	}

	failed := len(utils.Errors(outcomes))

	o.logger.Info().
		Dur("total_duration", time.Since(startTime)).
		Int("total", total).
		Int("success", total-failed).
		Int("failed", failed).
		Msg("Manifest generation completed")

	if failed > 0 {
		return results, fmt.Errorf("%d/%d targets failed: %w", failed, total, firstErr)
	}

	return results, nil
}
