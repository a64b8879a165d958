// Package georeference provides the "georeference" command-line and Lambda
// application: it reads georeference requests, runs them through the
// georeferencing pipeline and emits persisted artifacts.
package georeference

import (
	"context"
	"flag"
	"fmt"
	"log/slog"

	"github.com/whosonfirst/go-reader/v2"

	"github.com/legaldesc/go-plss-georeference/georeference"
	"github.com/legaldesc/go-plss-georeference/landgrid"
	"github.com/legaldesc/go-plss-georeference/plss"
)

// Run executes the georeference application with a default `flag.FlagSet` instance.
func Run(ctx context.Context) error {
	fs := DefaultFlagSet(ctx)
	return RunWithFlagSet(ctx, fs)
}

// RunWithFlagSet executes the georeference application with a `flag.FlagSet` instance defined by 'fs'.
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

	landgrid_reader, err := reader.NewReader(ctx, opts.LandGridReaderURI)

	if err != nil {
		return fmt.Errorf("Failed to create land-grid reader, %w", err)
	}

	catalog, err := landgrid.NewCatalog(ctx, landgrid_reader)

	if err != nil {
		return fmt.Errorf("Failed to create land-grid catalog, %w", err)
	}

	resolver := plss.NewResolver(catalog)

	validate_opts := &georeference.ValidateOptions{
		ClosureTolerance:  opts.ClosureTolerance,
		BoundaryTolerance: opts.BoundaryTolerance,
	}

	georeference_opts := &georeference.Options{
		Resolver:   resolver,
		Validation: validate_opts,
	}

	switch opts.Mode {
	case "cli":
		return runCommandLine(ctx, opts, georeference_opts)
	case "lambda":
		return runLambda(ctx, opts, georeference_opts)
	default:
		return fmt.Errorf("Invalid or unsupported mode")
	}
}

// georeferenceRequest runs one parsed request through the pipeline and returns
// the encoded artifact.
func georeferenceRequest(ctx context.Context, opts *georeference.Options, req *Request) ([]byte, error) {

	polygon, report, err := georeference.Georeference(ctx, opts, req.Reference, req.Tie, req.Legs)

	if err != nil {
		return nil, err
	}

	a := georeference.NewArtifact(polygon, report)
	return georeference.MarshalArtifact(a)
}
