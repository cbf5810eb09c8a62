// Package main provides the CLI entry point for the mod classifier.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"modsort/internal/console"
	"modsort/internal/logging"
	"modsort/internal/orchestrator"
	"modsort/internal/scanner"
	"modsort/internal/watcher"
)

func main() {
	console.EnableUTF8Output()

	inputDir := flag.String("input", orchestrator.DefaultInputDir, "directory holding the mod files to classify")
	outputDir := flag.String("output", orchestrator.DefaultOutputDir, "directory receiving the category subdirectories")
	catalogPath := flag.String("catalog", orchestrator.DefaultCatalogPath, "path to the mod catalog JSON file")
	dryRun := flag.Bool("dry-run", false, "log decisions without copying anything")
	watch := flag.Bool("watch", false, "keep running and classify files as they arrive")
	flag.Parse()

	log, err := logging.New(os.Stdout, os.Stderr, logging.DefaultLogPath())
	if err != nil {
		// Console-only operation; the run itself is unaffected.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	defer log.Close()

	log.Info("mod classifier starting")

	opts := orchestrator.Options{
		InputDir:    *inputDir,
		OutputDir:   *outputDir,
		CatalogPath: *catalogPath,
		DryRun:      *dryRun,
		Log:         log,
	}

	summary, err := orchestrator.Run(opts)
	if err != nil {
		log.Error("%v", err)
		log.Close()
		os.Exit(1)
	}

	log.Info("%s", summary.PrintSummary())

	if *watch {
		if err := runWatch(opts); err != nil {
			log.Error("watch mode failed: %v", err)
			log.Close()
			os.Exit(1)
		}
		return
	}

	log.Info("mod classification finished")

	if err := console.WaitForKeypress(os.Stdout); err != nil {
		log.Error("%v", err)
	}
}

// runWatch keeps classifying newly arriving files until interrupted.
// Each settled file is classified against a freshly loaded catalog so
// catalog edits made while watching take effect without a restart.
func runWatch(opts orchestrator.Options) error {
	log := opts.Log

	w := watcher.New(nil, func(path string) {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return
		}
		entry := scanner.FileEntry{
			Name:     filepath.Base(path),
			FullPath: path,
		}
		summary := &orchestrator.Summary{Total: 1}
		orchestrator.ProcessFile(entry, orchestrator.LoadCatalog(opts), opts, summary)
	})

	if err := w.Start(opts.InputDir); err != nil {
		return err
	}

	log.Info("watching %s for new mod files (ctrl-c to stop)", opts.InputDir)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	<-sigs

	skipped := w.Stop()
	log.Info("watch mode stopped (%d temporary or unstable files ignored)", skipped)
	return nil
}
