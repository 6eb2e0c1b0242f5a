// Package matrix is the dense storage layer under rsacorr's RDMs.
//
// 🚀 What it provides
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and a
//     numeric policy (finite-only Set, a default tolerance) fixed at
//     construction through functional Options.
//   - Validators: nil, shape, tolerance, finiteness, sign, zero diagonal and
//     symmetry checks, each returning a package sentinel tagged with the
//     offending coordinates.
//
// ⚙️ Conventions
//
//   - Errors are sentinels matched with errors.Is; nothing panics on user input.
//   - Scans run in fixed i→j order, so the reported violation is reproducible.
//
// Linear algebra (decompositions, products) is left to gonum; this package
// only stores and checks.
package matrix
