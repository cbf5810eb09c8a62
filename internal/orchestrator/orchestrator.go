// Package orchestrator coordinates the mod classification workflow.
package orchestrator

import (
	"fmt"
	"os"

	"modsort/internal/catalog"
	"modsort/internal/classifier"
	"modsort/internal/logging"
	"modsort/internal/organizer"
	"modsort/internal/scanner"
)

// Default working-directory layout.
const (
	DefaultInputDir    = "Input"
	DefaultOutputDir   = "Output"
	DefaultCatalogPath = "mods_data.json"
)

// PreflightErrorType represents the type of preflight failure.
type PreflightErrorType string

const (
	InputNotCreatable  PreflightErrorType = "INPUT_NOT_CREATABLE"
	InputNotADirectory PreflightErrorType = "INPUT_NOT_A_DIRECTORY"
	CatalogNotAFile    PreflightErrorType = "CATALOG_NOT_A_FILE"
	OutputNotCreatable PreflightErrorType = "OUTPUT_NOT_CREATABLE"
)

// PreflightError represents a fatal startup condition. These are the only
// errors that abort a run; everything downstream is logged and survived.
type PreflightError struct {
	Type PreflightErrorType
	Path string
	Err  error
}

func (e *PreflightError) Error() string {
	switch e.Type {
	case InputNotCreatable:
		return fmt.Sprintf("cannot create input directory %s: %v", e.Path, e.Err)
	case InputNotADirectory:
		return fmt.Sprintf("input path %s exists but is not a directory", e.Path)
	case CatalogNotAFile:
		return fmt.Sprintf("catalog path %s exists but is not a regular file", e.Path)
	case OutputNotCreatable:
		return fmt.Sprintf("cannot create output layout under %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("preflight failed for %s: %v", e.Path, e.Err)
	}
}

func (e *PreflightError) Unwrap() error {
	return e.Err
}

// Options configures a classification run.
type Options struct {
	InputDir    string
	OutputDir   string
	CatalogPath string
	DryRun      bool // log decisions without copying anything
	Log         *logging.Logger
}

// DefaultOptions returns Options with the standard working-directory layout.
func DefaultOptions(log *logging.Logger) Options {
	return Options{
		InputDir:    DefaultInputDir,
		OutputDir:   DefaultOutputDir,
		CatalogPath: DefaultCatalogPath,
		Log:         log,
	}
}

// Summary represents the overall results of a classification run.
type Summary struct {
	Total      int // regular files seen in the input directory
	Classified int // copied (or, in dry-run, would have been copied)
	Skipped    int // destination already held the file
	Unmatched  int // no catalog entry for the canonical key
	Errors     int // per-file copy failures
}

// PrintSummary returns a formatted summary string.
func (s *Summary) PrintSummary() string {
	return fmt.Sprintf("processed %d files: %d classified, %d skipped, %d unmatched, %d errors",
		s.Total, s.Classified, s.Skipped, s.Unmatched, s.Errors)
}

// Preflight prepares the working-directory layout: the input directory is
// created when absent, the catalog file is bootstrapped with an empty
// array, and the output root with all category subdirectories is created.
// Any failure here is fatal to the run.
func Preflight(opts Options) error {
	log := opts.Log

	info, err := os.Stat(opts.InputDir)
	switch {
	case os.IsNotExist(err):
		log.Info("input directory %s does not exist, creating it", opts.InputDir)
		if err := os.MkdirAll(opts.InputDir, 0755); err != nil {
			return &PreflightError{Type: InputNotCreatable, Path: opts.InputDir, Err: err}
		}
	case err != nil:
		return &PreflightError{Type: InputNotCreatable, Path: opts.InputDir, Err: err}
	case !info.IsDir():
		return &PreflightError{Type: InputNotADirectory, Path: opts.InputDir}
	}

	info, err = os.Stat(opts.CatalogPath)
	switch {
	case os.IsNotExist(err):
		log.Info("catalog file %s does not exist, creating an empty one", opts.CatalogPath)
		if _, err := catalog.Bootstrap(opts.CatalogPath); err != nil {
			return &PreflightError{Type: CatalogNotAFile, Path: opts.CatalogPath, Err: err}
		}
	case err != nil:
		return &PreflightError{Type: CatalogNotAFile, Path: opts.CatalogPath, Err: err}
	case !info.Mode().IsRegular():
		return &PreflightError{Type: CatalogNotAFile, Path: opts.CatalogPath}
	}

	if err := organizer.EnsureLayout(opts.OutputDir); err != nil {
		return &PreflightError{Type: OutputNotCreatable, Path: opts.OutputDir, Err: err}
	}

	return nil
}

// Run executes one classification pass: preflight, catalog load, then one
// decision and (unless dry-run) one copy per input file. The returned error
// is non-nil only for fatal preflight conditions; per-file problems are
// logged and counted in the Summary.
func Run(opts Options) (*Summary, error) {
	log := opts.Log

	if err := Preflight(opts); err != nil {
		return nil, err
	}

	log.Info("reading mod catalog from %s", opts.CatalogPath)
	cat := LoadCatalog(opts)
	if len(cat) == 0 {
		log.Info("catalog is empty; every file will be reported as unmatched")
	}

	summary := &Summary{}

	files, err := scanner.Scan(opts.InputDir)
	if err != nil {
		log.Error("failed to scan input directory: %v", err)
		return summary, nil
	}

	for _, file := range files {
		summary.Total++
		ProcessFile(file, cat, opts, summary)
	}

	return summary, nil
}

// LoadCatalog loads the catalog and logs every diagnostic the loader
// produced. The result may be empty; that only means nothing will match.
func LoadCatalog(opts Options) catalog.Catalog {
	cat, diags := catalog.Load(opts.CatalogPath)
	for _, diag := range diags {
		opts.Log.Error("%v", diag)
	}
	return cat
}

// ProcessFile classifies a single file and places it, updating the summary
// and writing exactly one log line for the outcome.
func ProcessFile(file scanner.FileEntry, cat catalog.Catalog, opts Options, summary *Summary) {
	log := opts.Log

	decision := classifier.Classify(file.Name, cat)
	if !decision.Matched {
		log.Error("no catalog entry for mod: %s (canonical name: %s)", file.Name, decision.Key)
		summary.Unmatched++
		return
	}

	if opts.DryRun {
		log.Info("[dry-run] would classify mod: %s (canonical name: %s) into %s",
			file.Name, decision.Key, decision.Category.DirName())
		summary.Classified++
		return
	}

	result, err := organizer.Place(file, decision.Category, opts.OutputDir)
	if err != nil {
		log.Error("failed to classify mod %s: %v", file.Name, err)
		summary.Errors++
		return
	}

	if result.Skipped {
		log.Info("already classified, skipped: %s (already present in %s)",
			file.Name, decision.Category.DirName())
		summary.Skipped++
		return
	}

	log.Info("classified mod: %s (canonical name: %s) into %s",
		file.Name, decision.Key, decision.Category.DirName())
	summary.Classified++
}
