// Package magnetic implements the polarized-beam magnetic scattering
// kernels: rotation of the scattering vector into the field-aligned frame,
// the Halpern-Johnson decomposition of a complex magnetization into the
// eight spin-resolved scattering-length-density contributions, the radial
// core-shell form-factor amplitude, and the Langevin saturation helpers.
//
// # Conventions
//
// The applied field and the beam polarization point along the laboratory
// z-axis. Frame-rotation angles passed to ScatVec are in degrees; this
// matches the convention of the magnetic model family and deliberately
// differs from the radian convention of package paracrystal.
//
// The magnetization components passed to SLD must already follow the
// SASView axis convention, which differs from the Moon-Riste-Koehler
// literature convention for historical reasons; no relabeling is applied.
//
// All functions are pure and reentrant; evaluating many scattering points
// concurrently is safe.
package magnetic
