package georeference

import (
	"context"
	"flag"
	"fmt"

	"github.com/sfomuseum/go-flags/flagset"
)

type RunOptions struct {
	Mode              string
	Verbose           bool
	LandGridReaderURI string
	ClosureTolerance  float64
	BoundaryTolerance float64
	Paths             []string
}

func RunOptionsFromFlagSet(ctx context.Context, fs *flag.FlagSet) (*RunOptions, error) {

	flagset.Parse(fs)

	err := flagset.SetFlagsFromEnvVars(fs, "LEGALDESC")

	if err != nil {
		return nil, fmt.Errorf("Failed to set flags from environment variables, %w", err)
	}

	opts := &RunOptions{
		Mode:              mode,
		Verbose:           verbose,
		LandGridReaderURI: landgrid_reader_uri,
		ClosureTolerance:  closure_tolerance,
		BoundaryTolerance: boundary_tolerance,
		Paths:             fs.Args(),
	}

	return opts, nil
}
