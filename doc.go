// Package ssabuild provides incremental construction of SSA form for a
// control-flow graph that is still being built.
//
// The library implements on-the-fly SSA construction during a single
// forward pass over a program, for example while parsing or lowering to
// IR. It handles graphs whose predecessor edges are not yet all known
// ("unsealed" blocks) and forward branches or loops that create cyclic
// def-use dependencies, without a prior dominance computation.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	ssabuild/            Root package with the Variable key type
//	├── ir/              IR value model: blocks, operations, phis
//	├── builder/         Def/use resolution, phi insertion, sealing
//	├── errors/          Structured error types for debugging
//	├── script/          YAML construction scripts and replay traces
//	├── viz/             Graphviz DOT export of constructed CFGs
//	└── cmd/ssatrace/    CLI for replaying and inspecting scripts
//
// # Quick Start
//
// Build a diamond-shaped CFG and resolve a variable at the merge point:
//
//	g := ir.NewGraph()
//	b := builder.New(g)
//
//	entry := g.NewBlock("entry")
//	b.SealBlock(entry)
//	b.WriteVariable("x", entry, g.NewOp("const"))
//
//	left, right, join := g.NewBlock("left"), g.NewBlock("right"), g.NewBlock("join")
//	left.AddPred(entry)
//	right.AddPred(entry)
//	join.AddPred(left)
//	join.AddPred(right)
//	b.SealBlock(left)
//	b.SealBlock(right)
//	b.SealBlock(join)
//
//	val := b.ReadVariable("x", join) // phi, or the single reaching def
//
// # Identity Semantics
//
// Values are compared by reference identity only; no structural
// equality is defined for operations or phis. Repeated reads of the
// same (variable, block) pair return the identical Value.
//
// # Concurrency
//
// A construction session is single-threaded. One builder.Builder owns
// one ir.Graph; sharing either across goroutines without external
// synchronization is not supported.
package ssabuild
