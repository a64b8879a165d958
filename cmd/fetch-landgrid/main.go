package main

import (
	"context"
	"log"

	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"

	"github.com/legaldesc/go-plss-georeference/app/landgrid/fetch"
)

func main() {

	ctx := context.Background()

	err := fetch.Run(ctx)

	if err != nil {
		log.Fatalf("Failed to fetch land-grid datasets, %v", err)
	}
}
