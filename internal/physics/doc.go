// Package physics derives the equations of motion for a cart-mounted
// pendulum chain.
//
// [Chain] owns the physical parameters (masses, lengths, gravity) and builds,
// for any kinematic state, the linear system whose solution is the vector of
// generalized accelerations: cart acceleration first, then one angular
// acceleration per joint. The formulation is Lagrangian; the resulting matrix
// can turn singular at degenerate configurations (co-linear links), which is
// why the solver package uses a minimum-norm least-squares solve rather than
// a direct one.
//
// [Chain.Energy] gives the corresponding mechanical energy, used by the
// metrics package to monitor drift.
package physics
