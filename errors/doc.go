// Package errors provides structured error types for the ssa-build library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type carries the offending block name, a
// human-readable detail, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseSeal, errors.KindDoubleSeal).
//		Block("loop.header").
//		Detail("predecessor set already final").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.SealedBlock("loop.header")
//	err := errors.UnknownBlock(errors.PhaseReplay, "merge")
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
