// Package script defines a small YAML format describing one SSA
// construction run — block creation, predecessor edges, variable
// writes and reads, and seals — and replays it through the builder.
//
// A script is a list of steps, each carrying exactly one directive:
//
//	name: diamond
//	steps:
//	  - block: entry
//	  - seal: entry
//	  - write: {var: x, block: entry, op: one}
//	  - block: left
//	  - edge: {from: entry, to: left}
//	  - block: right
//	  - edge: {from: entry, to: right}
//	  - block: join
//	  - edge: {from: left, to: join}
//	  - edge: {from: right, to: join}
//	  - seal: [left, right, join]
//	  - read: {var: x, block: join}
//
// Replay produces a Trace: the constructed graph plus one event per
// step with a state snapshot, which the ssatrace command renders
// either as text or interactively.
package script
