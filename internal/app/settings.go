package app

import (
	"path/filepath"

	"github.com/quantmind-br/appcache-go/internal/config"
	"github.com/quantmind-br/appcache-go/internal/domain"
	"github.com/quantmind-br/appcache-go/internal/target"
	"github.com/quantmind-br/appcache-go/internal/utils"
)

// Settings are the generation options of one target once defaults apply
type Settings struct {
	BasePath       string
	IgnoreManifest bool
	PreferOnline   bool
}

// ResolveSettings applies per-target overrides on top of defaults.
// BasePath is returned absolute.
func ResolveSettings(defaults config.DefaultsConfig, opts target.TargetOptions) (Settings, error) {
	s := Settings{
		BasePath:       defaults.BasePath,
		IgnoreManifest: defaults.IgnoreManifest,
		PreferOnline:   defaults.PreferOnline,
	}

	if opts.BasePath != "" {
		s.BasePath = opts.BasePath
	}
	if opts.IgnoreManifest != nil {
		s.IgnoreManifest = *opts.IgnoreManifest
	}
	if opts.PreferOnline != nil {
		s.PreferOnline = *opts.PreferOnline
	}

	if s.BasePath == "" {
		s.BasePath = config.DefaultBasePath
	}
	abs, err := filepath.Abs(utils.ExpandPath(s.BasePath))
	if err != nil {
		return Settings{}, domain.NewValidationError("base_path", err.Error())
	}
	s.BasePath = abs

	return s, nil
}
