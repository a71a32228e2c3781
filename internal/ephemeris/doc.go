// Package ephemeris answers "where is body X at time t" for the viewer.
//
// Positions are heliocentric, ecliptic J2000, in astronomical units, and are
// computed from Keplerian elements with linear per-century rates. The
// embedded "jpl-approx" dataset holds the JPL approximate elements for the
// eight planets (valid 1800-2050); any other dataset id is read as a YAML
// file path and validated against the same CUE schema.
//
// A dataset that cannot be loaded is fatal for the caller; see [ErrDataUnavailable].
package ephemeris
