// Package solar defines the static identity of the bodies the viewer plots.
//
//   - [BodyID]: typed identifier carried on every pickable primitive
//   - [Body]: display color, display size and the ordered info record
//   - [Catalog]: the immutable set of bodies loaded at startup
//   - [Vec3]: heliocentric position in astronomical units
//
// The default catalog is embedded and holds the Sun plus the eight planets.
//
// # Example
//
//	cat := solar.DefaultCatalog()
//	earth, ok := cat.Body("Earth")
package solar
