// Package geodesy implements the direct and inverse geodesic solutions on the
// WGS84 ellipsoid (Vincenty's iterative formulae). Spherical approximations are
// deliberately not offered here; over traverse distances beyond a mile they
// introduce errors that exceed surveying tolerances.
package geodesy

import (
	"math"

	"github.com/paulmach/orb"
)

// WGS84 ellipsoid parameters.
const (
	SEMI_MAJOR_AXIS_M float64 = 6378137.0
	FLATTENING        float64 = 1.0 / 298.257223563
)

const convergence_epsilon float64 = 1e-12

const max_iterations int = 200

// semiMinor is the WGS84 semi-minor axis, derived.
func semiMinor() float64 {
	return SEMI_MAJOR_AXIS_M * (1.0 - FLATTENING)
}

// Forward solves the direct geodesic problem: the point reached by travelling
// 'distance' meters from 'start' along the initial azimuth 'azimuth' (decimal
// degrees clockwise from north). Points are orb (lon, lat) pairs in WGS84.
func Forward(start orb.Point, azimuth float64, distance float64) orb.Point {

	if distance == 0.0 {
		return start
	}

	a := SEMI_MAJOR_AXIS_M
	f := FLATTENING
	b := semiMinor()

	phi1 := start.Lat() * math.Pi / 180.0
	alpha1 := azimuth * math.Pi / 180.0

	sin_alpha1 := math.Sin(alpha1)
	cos_alpha1 := math.Cos(alpha1)

	tan_u1 := (1.0 - f) * math.Tan(phi1)
	cos_u1 := 1.0 / math.Sqrt(1.0+tan_u1*tan_u1)
	sin_u1 := tan_u1 * cos_u1

	sigma1 := math.Atan2(tan_u1, cos_alpha1)
	sin_alpha := cos_u1 * sin_alpha1
	cos_sq_alpha := 1.0 - sin_alpha*sin_alpha

	u_sq := cos_sq_alpha * (a*a - b*b) / (b * b)
	cap_a := 1.0 + u_sq/16384.0*(4096.0+u_sq*(-768.0+u_sq*(320.0-175.0*u_sq)))
	cap_b := u_sq / 1024.0 * (256.0 + u_sq*(-128.0+u_sq*(74.0-47.0*u_sq)))

	sigma := distance / (b * cap_a)

	var sin_sigma, cos_sigma, cos_2sigma_m float64

	for i := 0; i < max_iterations; i++ {

		cos_2sigma_m = math.Cos(2.0*sigma1 + sigma)
		sin_sigma = math.Sin(sigma)
		cos_sigma = math.Cos(sigma)

		delta_sigma := cap_b * sin_sigma * (cos_2sigma_m + cap_b/4.0*(cos_sigma*(-1.0+2.0*cos_2sigma_m*cos_2sigma_m)-
			cap_b/6.0*cos_2sigma_m*(-3.0+4.0*sin_sigma*sin_sigma)*(-3.0+4.0*cos_2sigma_m*cos_2sigma_m)))

		next := distance/(b*cap_a) + delta_sigma

		if math.Abs(next-sigma) < convergence_epsilon {
			sigma = next
			break
		}

		sigma = next
	}

	cos_2sigma_m = math.Cos(2.0*sigma1 + sigma)
	sin_sigma = math.Sin(sigma)
	cos_sigma = math.Cos(sigma)

	tmp := sin_u1*sin_sigma - cos_u1*cos_sigma*cos_alpha1

	phi2 := math.Atan2(sin_u1*cos_sigma+cos_u1*sin_sigma*cos_alpha1,
		(1.0-f)*math.Sqrt(sin_alpha*sin_alpha+tmp*tmp))

	lambda := math.Atan2(sin_sigma*sin_alpha1, cos_u1*cos_sigma-sin_u1*sin_sigma*cos_alpha1)

	cap_c := f / 16.0 * cos_sq_alpha * (4.0 + f*(4.0-3.0*cos_sq_alpha))

	cap_l := lambda - (1.0-cap_c)*f*sin_alpha*
		(sigma+cap_c*sin_sigma*(cos_2sigma_m+cap_c*cos_sigma*(-1.0+2.0*cos_2sigma_m*cos_2sigma_m)))

	lon2 := start.Lon() + cap_l*180.0/math.Pi
	lat2 := phi2 * 180.0 / math.Pi

	// Normalize longitude to [-180, 180)
	lon2 = math.Mod(lon2+540.0, 360.0) - 180.0

	return orb.Point{lon2, lat2}
}

// Inverse solves the inverse geodesic problem between 'from' and 'to', returning
// the geodesic distance in meters and the initial azimuth in decimal degrees
// clockwise from north.
func Inverse(from orb.Point, to orb.Point) (float64, float64) {

	if from.Equal(to) {
		return 0.0, 0.0
	}

	a := SEMI_MAJOR_AXIS_M
	f := FLATTENING
	b := semiMinor()

	phi1 := from.Lat() * math.Pi / 180.0
	phi2 := to.Lat() * math.Pi / 180.0
	cap_l := (to.Lon() - from.Lon()) * math.Pi / 180.0

	tan_u1 := (1.0 - f) * math.Tan(phi1)
	cos_u1 := 1.0 / math.Sqrt(1.0+tan_u1*tan_u1)
	sin_u1 := tan_u1 * cos_u1

	tan_u2 := (1.0 - f) * math.Tan(phi2)
	cos_u2 := 1.0 / math.Sqrt(1.0+tan_u2*tan_u2)
	sin_u2 := tan_u2 * cos_u2

	lambda := cap_l

	var sin_sigma, cos_sigma, sigma, sin_alpha, cos_sq_alpha, cos_2sigma_m float64

	for i := 0; i < max_iterations; i++ {

		sin_lambda := math.Sin(lambda)
		cos_lambda := math.Cos(lambda)

		sin_sq_sigma := (cos_u2*sin_lambda)*(cos_u2*sin_lambda) +
			(cos_u1*sin_u2-sin_u1*cos_u2*cos_lambda)*(cos_u1*sin_u2-sin_u1*cos_u2*cos_lambda)

		sin_sigma = math.Sqrt(sin_sq_sigma)

		if sin_sigma == 0.0 {
			// Coincident points
			return 0.0, 0.0
		}

		cos_sigma = sin_u1*sin_u2 + cos_u1*cos_u2*cos_lambda
		sigma = math.Atan2(sin_sigma, cos_sigma)

		sin_alpha = cos_u1 * cos_u2 * sin_lambda / sin_sigma
		cos_sq_alpha = 1.0 - sin_alpha*sin_alpha

		if cos_sq_alpha == 0.0 {
			// Equatorial line
			cos_2sigma_m = 0.0
		} else {
			cos_2sigma_m = cos_sigma - 2.0*sin_u1*sin_u2/cos_sq_alpha
		}

		cap_c := f / 16.0 * cos_sq_alpha * (4.0 + f*(4.0-3.0*cos_sq_alpha))

		next := cap_l + (1.0-cap_c)*f*sin_alpha*
			(sigma+cap_c*sin_sigma*(cos_2sigma_m+cap_c*cos_sigma*(-1.0+2.0*cos_2sigma_m*cos_2sigma_m)))

		if math.Abs(next-lambda) < convergence_epsilon {
			lambda = next
			break
		}

		lambda = next
	}

	u_sq := cos_sq_alpha * (a*a - b*b) / (b * b)
	cap_a := 1.0 + u_sq/16384.0*(4096.0+u_sq*(-768.0+u_sq*(320.0-175.0*u_sq)))
	cap_b := u_sq / 1024.0 * (256.0 + u_sq*(-128.0+u_sq*(74.0-47.0*u_sq)))

	delta_sigma := cap_b * sin_sigma * (cos_2sigma_m + cap_b/4.0*(cos_sigma*(-1.0+2.0*cos_2sigma_m*cos_2sigma_m)-
		cap_b/6.0*cos_2sigma_m*(-3.0+4.0*sin_sigma*sin_sigma)*(-3.0+4.0*cos_2sigma_m*cos_2sigma_m)))

	distance := b * cap_a * (sigma - delta_sigma)

	sin_lambda := math.Sin(lambda)
	cos_lambda := math.Cos(lambda)

	alpha1 := math.Atan2(cos_u2*sin_lambda, cos_u1*sin_u2-sin_u1*cos_u2*cos_lambda)
	azimuth := math.Mod(alpha1*180.0/math.Pi+360.0, 360.0)

	return distance, azimuth
}
