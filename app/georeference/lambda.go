package georeference

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/legaldesc/go-plss-georeference/georeference"
)

func runLambda(ctx context.Context, run_opts *RunOptions, opts *georeference.Options) error {

	handler := func(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {

		req, err := ParseRequest(body)

		if err != nil {
			return nil, fmt.Errorf("Failed to parse request, %w", err)
		}

		enc, err := georeferenceRequest(ctx, opts, req)

		if err != nil {
			return nil, err
		}

		return json.RawMessage(enc), nil
	}

	lambda.Start(handler)
	return nil
}
