// Package reconcile runs one manifest generation cycle: read the prior
// manifest, assemble the next revision and write it back.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/quantmind-br/appcache-go/internal/aggregate"
	"github.com/quantmind-br/appcache-go/internal/domain"
	"github.com/quantmind-br/appcache-go/internal/manifest"
	"github.com/quantmind-br/appcache-go/internal/utils"
)

// Stages of a cycle, reported in TargetError
const (
	StageRead  = "read"
	StageParse = "parse"
	StageWrite = "write"
)

// Options configures a Reconciler
type Options struct {
	PreferOnline bool
	DryRun       bool
	Clock        func() time.Time
	Logger       *utils.Logger
}

// Result describes a finished cycle
type Result struct {
	Path     string
	Manifest *manifest.Manifest
	Content  string
	// Prior is true when an existing manifest supplied the revision
	Prior bool
	// Written is false for dry runs
	Written bool
}

// Reconciler produces the next manifest for a destination path
type Reconciler struct {
	fs           domain.FileSystem
	preferOnline bool
	dryRun       bool
	clock        func() time.Time
	logger       *utils.Logger
}

// New creates a Reconciler over fs
func New(fs domain.FileSystem, opts Options) *Reconciler {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Reconciler{
		fs:           fs,
		preferOnline: opts.PreferOnline,
		dryRun:       opts.DryRun,
		clock:        clock,
		logger:       logger.WithComponent("reconcile"),
	}
}

// Reconcile builds the manifest that replaces the one at path. A missing
// file starts at revision 0; an existing one is bumped by one. A file that
// exists but does not parse is an error.
func (r *Reconciler) Reconcile(path string, lists aggregate.Lists) (*manifest.Manifest, bool, error) {
	revision := 0
	prior := false

	if r.fs.Exists(path) {
		previous, err := manifest.ReadFile(r.fs, path)
		if err != nil {
			stage := StageRead
			if errors.Is(err, domain.ErrFormat) {
				stage = StageParse
			}
			return nil, false, domain.NewTargetError(path, stage, err)
		}
		if previous.Version.Revision == math.MaxInt {
			err := domain.NewFormatError(path, 0, fmt.Errorf("%w: revision %d cannot be incremented", manifest.ErrRevisionRange, previous.Version.Revision))
			return nil, false, domain.NewTargetError(path, StageParse, err)
		}
		revision = previous.Version.Revision + 1
		prior = true
		r.logger.Debug().
			Str("path", path).
			Int("previous_revision", previous.Version.Revision).
			Msg("Found existing manifest")
	}

	m := &manifest.Manifest{
		Version: manifest.Version{
			Revision: revision,
			Date:     r.clock().UTC().Truncate(time.Millisecond),
		},
		Cache:    nonEmpty(lists.Cache),
		Network:  nonEmpty(lists.Network),
		Fallback: nonEmpty(lists.Fallback),
	}
	if r.preferOnline {
		m.Settings = []manifest.Setting{manifest.SettingPreferOnline}
	}

	return m, prior, nil
}

// Run performs a full cycle for path and writes the result. Nothing is
// written unless every earlier step succeeded.
func (r *Reconciler) Run(ctx context.Context, path string, lists aggregate.Lists) (*Result, error) {
	m, prior, err := r.Reconcile(path, lists)
	if err != nil {
		return nil, err
	}

	content := manifest.Serialize(m)
	result := &Result{
		Path:     path,
		Manifest: m,
		Content:  content,
		Prior:    prior,
	}

	if r.dryRun {
		r.logger.Info().
			Str("path", path).
			Int("revision", m.Version.Revision).
			Msg("Dry run, manifest not written")
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, domain.NewTargetError(path, StageWrite, err)
	}

	if err := r.fs.WriteText(path, content); err != nil {
		return nil, domain.NewTargetError(path, StageWrite, err)
	}
	result.Written = true

	r.logger.Debug().
		Str("path", path).
		Int("revision", m.Version.Revision).
		Int("cache", len(m.Cache)).
		Int("network", len(m.Network)).
		Int("fallback", len(m.Fallback)).
		Msg("Manifest written")

	return result, nil
}

func nonEmpty(entries []string) []string {
	if len(entries) == 0 {
		return nil
	}
	out := make([]string, len(entries))
	copy(out, entries)
	return out
}
