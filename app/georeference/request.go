package georeference

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/legaldesc/go-plss-georeference/georeference"
	"github.com/legaldesc/go-plss-georeference/plss"
	"github.com/legaldesc/go-plss-georeference/survey"
	"github.com/legaldesc/go-plss-georeference/traverse"
)

// Request is one parsed georeference request, as supplied by the upstream
// legal-description extraction service.
type Request struct {
	Reference *plss.Reference
	Tie       *georeference.Tie
	Legs      []traverse.Leg
}

// ParseRequest decodes a request body. Bearings may be plain azimuth numbers
// or quadrant strings; numeric ranges are re-validated here regardless of what
// the extraction service claims.
func ParseRequest(body []byte) (*Request, error) {

	root := gjson.ParseBytes(body)

	ref_rsp := root.Get("reference")

	if !ref_rsp.Exists() {
		return nil, fmt.Errorf("Request is missing a PLSS reference")
	}

	ref, err := plss.NewReference(
		ref_rsp.Get("state").String(),
		ref_rsp.Get("meridian").String(),
		int(ref_rsp.Get("township").Int()),
		ref_rsp.Get("township_direction").String(),
		int(ref_rsp.Get("range").Int()),
		ref_rsp.Get("range_direction").String(),
		int(ref_rsp.Get("section").Int()),
		ref_rsp.Get("quarter").String(),
	)

	if err != nil {
		return nil, err
	}

	req := &Request{
		Reference: ref,
		Legs:      make([]traverse.Leg, 0),
	}

	tie_rsp := root.Get("tie")

	if tie_rsp.Exists() {

		b, err := parseBearing(tie_rsp.Get("bearing"))

		if err != nil {
			return nil, fmt.Errorf("Failed to parse tie bearing, %w", err)
		}

		u, err := survey.ParseUnit(tie_rsp.Get("units").String())

		if err != nil {
			return nil, fmt.Errorf("Failed to parse tie units, %w", err)
		}

		req.Tie = &georeference.Tie{
			Corner:     tie_rsp.Get("corner").String(),
			Bearing:    b,
			Distance:   survey.Distance{Value: tie_rsp.Get("distance").Float(), Unit: u},
			Reciprocal: tie_rsp.Get("reciprocal").Bool(),
		}
	}

	var legs_err error

	root.Get("legs").ForEach(func(_ gjson.Result, leg_rsp gjson.Result) bool {

		b, err := parseBearing(leg_rsp.Get("bearing"))

		if err != nil {
			legs_err = fmt.Errorf("Failed to parse leg bearing, %w", err)
			return false
		}

		u, err := survey.ParseUnit(leg_rsp.Get("units").String())

		if err != nil {
			legs_err = fmt.Errorf("Failed to parse leg units, %w", err)
			return false
		}

		req.Legs = append(req.Legs, traverse.Leg{
			Bearing:    b,
			Distance:   survey.Distance{Value: leg_rsp.Get("distance").Float(), Unit: u},
			SourceText: leg_rsp.Get("source_text").String(),
			Confidence: leg_rsp.Get("confidence").Float(),
		})

		return true
	})

	if legs_err != nil {
		return nil, legs_err
	}

	return req, nil
}

func parseBearing(rsp gjson.Result) (survey.Bearing, error) {

	if rsp.Type == gjson.Number {
		return survey.NewBearing(rsp.Float())
	}

	return survey.ParseBearing(rsp.String())
}
