// Package target loads batch target files. A target file lists every
// manifest to generate in one run, with the resources that feed each one.
//
// # Target File Format
//
// Target files can be written in YAML or JSON format:
//
//	targets:
//	  - dest: public/manifest.appcache
//	    base_url: https://cdn.example.com
//	    cache:
//	      patterns: ["js/**/*.js", "css/*.css"]
//	      literals: ["/"]
//	      pageslinks: ["index.html"]
//	    network: ["*"]
//	    fallback: ["/ /offline.html"]
//	    options:
//	      base_path: public
//	  - dest: admin/manifest.appcache
//	    cache: ["admin/**/*"]
//	options:
//	  continue_on_error: true
//	  concurrency: 2
//
// A plain list under cache is shorthand for cache.patterns.
//
// # Usage
//
//	loader := target.NewLoader()
//	file, err := loader.Load("targets.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, t := range file.Targets {
//	    // Generate each manifest
//	}
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrNoTargets: the file defines no targets
//   - ErrEmptyDest: a target is missing its dest field
//   - ErrDuplicateDest: two targets write the same manifest
//   - ErrInvalidFormat: file is not valid YAML/JSON
//   - ErrFileNotFound: target file does not exist
//   - ErrUnsupportedExt: unsupported file extension
package target
