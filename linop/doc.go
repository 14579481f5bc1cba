// Package linop provides the linear-operator abstraction used by the fbs
// solver.
//
// The solver minimizes f(Ax) + g(x); A only ever appears through two
// actions, the forward product Ax and the adjoint product Aᵀy. Operator
// captures exactly those two actions, so a problem may supply:
//
//   - Identity()      — no measurement operator at all,
//   - FromMatrix(a)   — an explicit dense matrix,
//   - FromFuncs(f, a) — matrix-free closures (FFTs, convolutions, …).
//
// Operators are stateless and safe for concurrent use as long as the
// underlying closures or matrices are not mutated.
package linop
