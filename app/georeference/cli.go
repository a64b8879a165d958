package georeference

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/whosonfirst/go-ioutil"

	"github.com/legaldesc/go-plss-georeference/georeference"
)

const stdin string = "-"

func runCommandLine(ctx context.Context, run_opts *RunOptions, opts *georeference.Options) error {

	if len(run_opts.Paths) == 0 {
		return fmt.Errorf("Nothing to georeference")
	}

	for _, path := range run_opts.Paths {

		body, err := readRequest(path)

		if err != nil {
			return fmt.Errorf("Failed to read request %s, %w", path, err)
		}

		req, err := ParseRequest(body)

		if err != nil {
			return fmt.Errorf("Failed to parse request %s, %w", path, err)
		}

		enc, err := georeferenceRequest(ctx, opts, req)

		if err != nil {
			return fmt.Errorf("Failed to georeference request %s, %w", path, err)
		}

		fmt.Fprintln(os.Stdout, string(enc))
	}

	return nil
}

func readRequest(path string) ([]byte, error) {

	var r io.ReadCloser

	if path == stdin {

		rsc, err := ioutil.NewReadSeekCloser(os.Stdin)

		if err != nil {
			return nil, fmt.Errorf("Failed to create reader for STDIN, %w", err)
		}

		r = rsc

	} else {

		f, err := os.Open(path)

		if err != nil {
			return nil, err
		}

		r = f
	}

	defer r.Close()

	return io.ReadAll(r)
}
