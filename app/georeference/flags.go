package georeference

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sfomuseum/go-flags/flagset"
)

var mode string
var verbose bool

var landgrid_reader_uri string

var closure_tolerance float64
var boundary_tolerance float64

func DefaultFlagSet(ctx context.Context) *flag.FlagSet {

	fs := flagset.NewFlagSet("georeference")

	fs.StringVar(&mode, "mode", "cli", "Valid options are: cli, lambda.")
	fs.BoolVar(&verbose, "verbose", false, "Enable verbose (debug) logging.")

	fs.StringVar(&landgrid_reader_uri, "landgrid-reader-uri", "fs:///usr/local/data/landgrid", "A valid whosonfirst/go-reader URI for the directory containing per-state land-grid datasets.")

	fs.Float64Var(&closure_tolerance, "closure-tolerance", 0.0, "Closure tolerance in the traverse's native distance unit. 0 selects the default (1.0).")
	fs.Float64Var(&boundary_tolerance, "boundary-tolerance", 0.0, "Boundary-compliance tolerance in meters. 0 selects the default (2000).")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Georeference one or more legal metes-and-bounds descriptions.\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t %s [options] request.json request.json ...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Pass \"-\" to read a request from STDIN. Valid options are:\n")
		fs.PrintDefaults()
	}

	return fs
}
