// Package paracrystal implements the body-centred-cubic paracrystal
// structure factor: the closed-form lattice sum over the three cubic axes,
// the BCC occupied-volume fraction, the 150x150-point Gauss-Legendre powder
// average for unoriented samples and the direct single-orientation
// evaluation for oriented ones.
//
// Orientation angles in this package are in radians, unlike the degree
// convention of package magnetic; the split is inherited from the two model
// families and kept so results stay comparable with existing callers.
//
// All functions are pure and reentrant; powder averages for different q
// values can run concurrently.
package paracrystal
