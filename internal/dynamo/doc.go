// Package dynamo provides core primitives for the pendulum-chain simulation.
//
// The package defines the shared types the simulation loop is built from:
//
//   - [State]: cart position/velocity and per-joint angle/angular velocity
//   - [Trajectory]: the recorded output table, one row per step
//   - [Stepper]: fixed-step integrator interface
//   - [Observer]/[Metric]: per-step hooks for progress and accumulated scalars
//
// Domain errors live in errors.go; every failure surfaced by the simulator
// wraps one of the sentinels there, so callers can test with errors.Is.
//
// # Thread Safety
//
// States are plain values; a Stepper or Metric instance belongs to a single
// run. For parallel sweeps over initial conditions, give each run its own
// simulator.
package dynamo
