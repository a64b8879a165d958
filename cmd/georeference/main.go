package main

import (
	"context"
	"log"

	"github.com/legaldesc/go-plss-georeference/app/georeference"
)

func main() {

	ctx := context.Background()

	err := georeference.Run(ctx)

	if err != nil {
		log.Fatalf("Failed to georeference, %v", err)
	}
}
