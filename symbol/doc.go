// Package symbol is a small deterministic symbolic-algebra kernel:
// exact rational arithmetic over math/big, immutable expression trees,
// stable canonical ordering, and LaTeX rendering.
//
// Expressions are built from six node kinds (Number, Variable, Sum,
// Product, Power and Call) through constructor functions (Int, Frac,
// Var, Add, Mul, Pow, Sin, ...) that simplify eagerly. Every operation
// returns a new expression; nothing is ever mutated in place.
//
// Simplification is rule-based, not canonical in the CAS sense: sums
// flatten and combine like terms, products flatten and fold numeric
// factors, integer powers of numbers evaluate exactly. A numeric
// coefficient distributes over a sum only when it is the sole companion
// factor; Expand is the explicit distribution point for everything else,
// which keeps Factor output stable.
//
// Nested powers always collapse: (a^b)^c rewrites to a^(b*c) without
// branch-cut analysis, so Sqrt(Pow(x, 2)) is x. All symbols are treated
// as positive reals; a CAS tracking assumptions would keep |x| here.
//
// The kernel is consumed by package derive as an opaque value type; it
// has no notion of histories, steps or sinks.
package symbol
