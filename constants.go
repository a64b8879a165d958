package georef

// DATUM_WGS84 is the datum identifier assigned to every resolved anchor and vertex.
const DATUM_WGS84 string = "WGS84"

// DEFAULT_CLOSURE_TOLERANCE is the default closure tolerance, expressed in the
// traverse's native distance unit (for example 1.0 foot for a traverse recorded in feet).
const DEFAULT_CLOSURE_TOLERANCE float64 = 1.0

// DEFAULT_BOUNDARY_TOLERANCE_M is the geodesic distance, in meters, that a polygon's
// point of beginning may lie from its claimed section centroid before the
// boundary-compliance check is marked advisory. A PLSS section is roughly 1.6km square.
const DEFAULT_BOUNDARY_TOLERANCE_M float64 = 2000.0

// BOUNDARY_FAIL_MARGIN_M is the additional distance, in meters, past the boundary
// tolerance after which a boundary-compliance violation grades the whole report "fail".
// Gross bearing or unit errors (feet read as chains) land well past one statute mile.
const BOUNDARY_FAIL_MARGIN_M float64 = 1609.344

// MIN_COORDINATE_DECIMALS is the minimum number of decimal-degree places every emitted
// coordinate must carry. Six places is roughly 0.11m of longitude at the equator.
const MIN_COORDINATE_DECIMALS int = 6

// PROJECTION_METHOD identifies the geodesic solution used for forward projection
// in persisted artifacts.
const PROJECTION_METHOD string = "vincenty-direct"
