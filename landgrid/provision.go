package landgrid

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gocloud.dev/blob"
)

// ProgressFunc receives download progress for one state dataset: bytes written
// so far and the total size, or -1 when the total is unknown.
type ProgressFunc func(state string, written int64, total int64)

// FetchOptions configures `Fetch`.
type FetchOptions struct {
	// Source is the bucket state datasets are downloaded from.
	Source *blob.Bucket
	// Target is the bucket (typically a file:// bucket over the catalog's local
	// data directory) datasets are written to.
	Target *blob.Bucket
	// Progress, when non-nil, is invoked as bytes are copied.
	Progress ProgressFunc
}

// Fetch downloads the land-grid dataset for each state in 'states' from the
// source bucket to the target bucket, reporting progress as it goes. Fetches
// are cancellable through 'ctx' and never block in-flight lookups for other
// states; the catalog will pick a new dataset up on its next first access.
func Fetch(ctx context.Context, opts *FetchOptions, states ...string) error {

	for _, state := range states {

		err := fetchState(ctx, opts, strings.ToUpper(state))

		if err != nil {
			return fmt.Errorf("Failed to fetch land-grid dataset for %s, %w", state, err)
		}
	}

	return nil
}

func fetchState(ctx context.Context, opts *FetchOptions, state string) error {

	logger := slog.Default()
	logger = logger.With("state", state)

	key := documentKey(state)

	total := int64(-1)

	attrs, err := opts.Source.Attributes(ctx, key)

	if err == nil {
		total = attrs.Size
	}

	r, err := opts.Source.NewReader(ctx, key, nil)

	if err != nil {
		return fmt.Errorf("Failed to open source reader for %s, %w", key, err)
	}

	defer r.Close()

	// Closing a blob writer commits the object unless its context was canceled
	// first; a failed fetch must never leave a truncated dataset behind for
	// the catalog to trip over.

	write_ctx, abort := context.WithCancel(ctx)
	defer abort()

	w, err := opts.Target.NewWriter(write_ctx, key, nil)

	if err != nil {
		return fmt.Errorf("Failed to open target writer for %s, %w", key, err)
	}

	logger.Debug("Fetch land-grid dataset", "key", key, "bytes", total)

	var written int64
	buf := make([]byte, 32*1024)

	for {

		select {
		case <-ctx.Done():
			abort()
			w.Close()
			return ctx.Err()
		default:
			// pass
		}

		n, read_err := r.Read(buf)

		if n > 0 {

			_, write_err := w.Write(buf[:n])

			if write_err != nil {
				abort()
				w.Close()
				return fmt.Errorf("Failed to write %s, %w", key, write_err)
			}

			written += int64(n)

			if opts.Progress != nil {
				opts.Progress(state, written, total)
			}
		}

		if read_err == io.EOF {
			break
		}

		if read_err != nil {
			abort()
			w.Close()
			return fmt.Errorf("Failed to read %s, %w", key, read_err)
		}
	}

	err = w.Close()

	if err != nil {
		return fmt.Errorf("Failed to close target writer for %s, %w", key, err)
	}

	logger.Debug("Fetched land-grid dataset", "key", key, "bytes", written)

	return nil
}
