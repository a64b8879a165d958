// Package fetch provides the "fetch-landgrid" application: it provisions
// per-state land-grid datasets from a published bucket in to the local data
// directory the georeference catalog reads from.
package fetch

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"gocloud.dev/blob"

	"github.com/legaldesc/go-plss-georeference/landgrid"
)

// Run executes the fetch application with a default `flag.FlagSet` instance.
func Run(ctx context.Context) error {
	fs := DefaultFlagSet(ctx)
	return RunWithFlagSet(ctx, fs)
}

// RunWithFlagSet executes the fetch application with a `flag.FlagSet` instance defined by 'fs'.
func RunWithFlagSet(ctx context.Context, fs *flag.FlagSet) error {

	opts, err := RunOptionsFromFlagSet(ctx, fs)

	if err != nil {
		return err
	}

	return RunWithOptions(ctx, opts)
}

func RunWithOptions(ctx context.Context, opts *RunOptions) error {

	if opts.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		slog.Debug("Verbose logging enabled")
	}

	if len(opts.States) == 0 {
		return fmt.Errorf("Nothing to fetch")
	}

	source, err := blob.OpenBucket(ctx, opts.SourceBucketURI)

	if err != nil {
		return fmt.Errorf("Failed to open source bucket, %w", err)
	}

	defer source.Close()

	target, err := blob.OpenBucket(ctx, opts.TargetBucketURI)

	if err != nil {
		return fmt.Errorf("Failed to open target bucket, %w", err)
	}

	defer target.Close()

	progress := func(state string, written int64, total int64) {
		slog.Debug("Fetch progress", "state", state, "written", written, "total", total)
	}

	fetch_opts := &landgrid.FetchOptions{
		Source:   source,
		Target:   target,
		Progress: progress,
	}

	return landgrid.Fetch(ctx, fetch_opts, opts.States...)
}
