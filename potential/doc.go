// Package potential defines the potential-energy profiles that parametrize a
// Hamiltonian, behind a single Potential interface.
//
// What:
//
//   - InfiniteSquareWell — hard walls approximated by a large finite sentinel.
//   - SoftWallWell      — smooth quadratic confinement outside the well, an
//     alternative infinite-well approximation that avoids the stiff sentinel.
//   - FiniteSquareWell  — flat well of finite depth with evanescent tails.
//   - RectangularBarrier — tunneling barrier of given height/width/center.
//   - HarmonicOscillator — V(x) = ½·m·ω²·x².
//   - Piecewise         — arbitrary piecewise-constant landscape.
//
// Contract:
//
//	Every variant is stateless and side-effect-free: Evaluate maps a slice of
//	positions to a fresh slice of potential values and never inspects grid
//	validity — callers own their grids. Variants are safe to share across
//	any number of concurrent solves.
//
// ForbiddenRegion locates the classically forbidden interval V(x) > E, the
// region probed by WKB tunneling estimates (see package transmission).
package potential
