package utils

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// DescGenerating is the description shown while manifests are generated
const DescGenerating = "Generating"

// NewProgressBar creates a consistently styled progress bar.
// A nil writer selects the library default (stdout).
func NewProgressBar(total int, description string, w io.Writer) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	}
	if w != nil {
		opts = append(opts, progressbar.OptionSetWriter(w))
	}

	return progressbar.NewOptions(total, opts...)
}
