// Package debug holds the single Debug flag that logger uses to decide
// whether to silence output under `go test`. gnark's own debug package
// additionally carries circuit stack-trace plumbing (SymbolTable,
// WriteStack) for its constraint-system compiler; none of that applies
// outside a circuit frontend, so this package keeps only the flag.
package debug

// Debug, when true, disables logger's automatic silencing under `go test`.
// Off by default.
var Debug = false
