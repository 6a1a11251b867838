// Package ir defines the value model used during incremental SSA
// construction: blocks, named operations, phi nodes, and undefined
// values.
//
// All nodes are allocated through a Graph, which stamps each one with a
// stable identifier for deterministic printing and export. Node
// identity is pointer identity; the package defines no structural
// equality for operations or phis.
//
// Phi nodes are the only mutable values. Their operand lists are filled
// in after creation, and a phi that turns out to be redundant is
// replaced in place: every user's operand slot and every def-map entry
// that referenced it is rewritten to the substitute. The builder
// package drives those mutations.
package ir
