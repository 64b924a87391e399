// Package analytic collects closed-form one-dimensional intensity models
// that need no orientational averaging: the empirical broad-peak shape, the
// Guinier-Porod crossover model and the head/tail lamellar bilayer.
//
// Each model evaluates I(q) directly; the 2D variants reduce to
// I(hypot(qx, qy)) since the models are isotropic.
package analytic
