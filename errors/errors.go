package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseBuild  Phase = "build"  // CFG mutation during construction
	PhaseSeal   Phase = "seal"   // predecessor-set finalization
	PhaseParse  Phase = "parse"  // construction script parsing
	PhaseReplay Phase = "replay" // script replay through the builder
	PhaseRender Phase = "render" // graph export
)

// Kind categorizes the error
type Kind string

const (
	KindSealedBlock     Kind = "sealed_block"     // predecessor added after seal
	KindDoubleSeal      Kind = "double_seal"      // block sealed twice
	KindUnsealedPending Kind = "unsealed_pending" // construction ended with deferred phis
	KindUnknownBlock    Kind = "unknown_block"    // reference to an undeclared block
	KindDuplicateBlock  Kind = "duplicate_block"  // block name declared twice
	KindInvalidInput    Kind = "invalid_input"    // malformed caller input
	KindInvalidData     Kind = "invalid_data"     // malformed file or payload
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Block  string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Block != "" {
		b.WriteString(" at block ")
		b.WriteString(e.Block)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Block sets the offending block name
func (b *Builder) Block(name string) *Builder {
	b.err.Block = name
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// SealedBlock reports a predecessor edge added to an already-sealed
// block. Phis completed at seal time would silently miss the edge, so
// the mutation is rejected.
func SealedBlock(block string) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindSealedBlock,
		Block:  block,
		Detail: "cannot add predecessor after seal",
	}
}

// DoubleSeal reports a second seal of the same block
func DoubleSeal(block string) *Error {
	return &Error{
		Phase:  PhaseSeal,
		Kind:   KindDoubleSeal,
		Block:  block,
		Detail: "pending phis already completed",
	}
}

// UnsealedPending reports construction ending while blocks still hold
// deferred phis
func UnsealedPending(blocks []string) *Error {
	return &Error{
		Phase:  PhaseSeal,
		Kind:   KindUnsealedPending,
		Detail: fmt.Sprintf("blocks never sealed with phis pending: %s", strings.Join(blocks, ", ")),
	}
}

// UnknownBlock reports a reference to a block that was never declared
func UnknownBlock(phase Phase, block string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownBlock,
		Block:  block,
		Detail: "block not declared",
	}
}

// DuplicateBlock reports a block name declared twice
func DuplicateBlock(block string) *Error {
	return &Error{
		Phase:  PhaseReplay,
		Kind:   KindDuplicateBlock,
		Block:  block,
		Detail: "block already declared",
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
