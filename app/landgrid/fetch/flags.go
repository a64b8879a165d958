package fetch

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sfomuseum/go-flags/flagset"
)

var source_bucket_uri string
var target_bucket_uri string

var verbose bool

func DefaultFlagSet(ctx context.Context) *flag.FlagSet {

	fs := flagset.NewFlagSet("fetch")

	fs.StringVar(&source_bucket_uri, "source-bucket-uri", "", "A valid gocloud.dev/blob URI for the bucket land-grid datasets are published to.")
	fs.StringVar(&target_bucket_uri, "target-bucket-uri", "file:///usr/local/data/landgrid", "A valid gocloud.dev/blob URI for the local directory datasets are written to.")

	fs.BoolVar(&verbose, "verbose", false, "Enable verbose (debug) logging.")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Fetch prebuilt land-grid datasets for one or more states.\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t %s [options] state state ...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Valid options are:\n")
		fs.PrintDefaults()
	}

	return fs
}
