package landgrid

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/memblob"
)

func TestFetch(t *testing.T) {

	ctx := context.Background()

	fixture_path, err := filepath.Abs("../fixtures/landgrid/WY.geojson")

	if err != nil {
		t.Fatalf("Failed to derive absolute path, %v", err)
	}

	body, err := os.ReadFile(fixture_path)

	if err != nil {
		t.Fatalf("Failed to read fixture, %v", err)
	}

	source, err := blob.OpenBucket(ctx, "mem://")

	if err != nil {
		t.Fatalf("Failed to open source bucket, %v", err)
	}

	defer source.Close()

	target, err := blob.OpenBucket(ctx, "mem://")

	if err != nil {
		t.Fatalf("Failed to open target bucket, %v", err)
	}

	defer target.Close()

	err = source.WriteAll(ctx, "WY.geojson", body, nil)

	if err != nil {
		t.Fatalf("Failed to seed source bucket, %v", err)
	}

	var last_written int64
	var last_total int64

	opts := &FetchOptions{
		Source: source,
		Target: target,
		Progress: func(state string, written int64, total int64) {

			if state != "WY" {
				t.Errorf("Unexpected state '%s'", state)
			}

			last_written = written
			last_total = total
		},
	}

	err = Fetch(ctx, opts, "wy")

	if err != nil {
		t.Fatalf("Failed to fetch, %v", err)
	}

	if last_written != int64(len(body)) {
		t.Fatalf("Expected %d bytes written but got %d", len(body), last_written)
	}

	if last_total != int64(len(body)) {
		t.Fatalf("Expected total %d but got %d", len(body), last_total)
	}

	fetched, err := target.ReadAll(ctx, "WY.geojson")

	if err != nil {
		t.Fatalf("Failed to read fetched dataset, %v", err)
	}

	if string(fetched) != string(body) {
		t.Fatalf("Fetched dataset differs from the source")
	}
}

func TestFetchMissing(t *testing.T) {

	ctx := context.Background()

	source, err := blob.OpenBucket(ctx, "mem://")

	if err != nil {
		t.Fatalf("Failed to open source bucket, %v", err)
	}

	defer source.Close()

	target, err := blob.OpenBucket(ctx, "mem://")

	if err != nil {
		t.Fatalf("Failed to open target bucket, %v", err)
	}

	defer target.Close()

	opts := &FetchOptions{
		Source: source,
		Target: target,
	}

	err = Fetch(ctx, opts, "ZZ")

	if err == nil {
		t.Fatalf("Expected fetching a missing dataset to fail")
	}
}

func TestFetchCancelled(t *testing.T) {

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source, err := blob.OpenBucket(context.Background(), "mem://")

	if err != nil {
		t.Fatalf("Failed to open source bucket, %v", err)
	}

	defer source.Close()

	target, err := blob.OpenBucket(context.Background(), "mem://")

	if err != nil {
		t.Fatalf("Failed to open target bucket, %v", err)
	}

	defer target.Close()

	err = source.WriteAll(context.Background(), "WY.geojson", []byte("{}"), nil)

	if err != nil {
		t.Fatalf("Failed to seed source bucket, %v", err)
	}

	opts := &FetchOptions{
		Source: source,
		Target: target,
	}

	err = Fetch(ctx, opts, "WY")

	if err == nil {
		t.Fatalf("Expected a cancelled fetch to fail")
	}

	// A failed fetch must not commit anything; a truncated dataset in the
	// target would poison every later catalog load for that state.

	exists, err := target.Exists(context.Background(), "WY.geojson")

	if err != nil {
		t.Fatalf("Failed to check target bucket, %v", err)
	}

	if exists {
		t.Fatalf("Expected no dataset to be committed after a failed fetch")
	}
}
