package fetch

import (
	"context"
	"flag"
	"fmt"

	"github.com/sfomuseum/go-flags/flagset"
)

type RunOptions struct {
	SourceBucketURI string
	TargetBucketURI string
	Verbose         bool
	States          []string
}

func RunOptionsFromFlagSet(ctx context.Context, fs *flag.FlagSet) (*RunOptions, error) {

	flagset.Parse(fs)

	err := flagset.SetFlagsFromEnvVars(fs, "LEGALDESC")

	if err != nil {
		return nil, fmt.Errorf("Failed to set flags from environment variables, %w", err)
	}

	opts := &RunOptions{
		SourceBucketURI: source_bucket_uri,
		TargetBucketURI: target_bucket_uri,
		Verbose:         verbose,
		States:          fs.Args(),
	}

	return opts, nil
}
