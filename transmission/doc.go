// Package transmission estimates how much of a wave packet crosses a
// potential barrier, by two independent routes:
//
//   - Analyze — numerical: partition the grid into left-of / inside /
//     right-of-barrier regions and integrate the probability density of a
//     trajectory's final state in each. T is the transmitted mass over the
//     initial total mass; R = 1 − T.
//   - WKBEstimate — semiclassical: T ≈ exp(−2κ) with the action integral
//     κ = ∫ √(2·m·max(0, V−E)) dx over the classically forbidden region,
//     clipped to [0, 1].
//
// The two estimators need not agree exactly: WKB is an asymptotic
// approximation, while the numerical answer carries finite-evolution and
// discretization effects. Both are useful as cross-checks.
//
// Errors:
//
//   - ErrEmptyTrajectory: the trajectory holds no recorded steps.
//   - ErrDimensionMismatch: grid axis and trajectory disagree on size.
//   - ErrZeroInitialMass: the initial state carries no probability.
package transmission
