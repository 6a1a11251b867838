package ir

import (
	"sort"

	ssabuild "github.com/wippyai/ssa-build"
	"github.com/wippyai/ssa-build/errors"
)

// Block is a CFG vertex. It owns the local variable definitions made
// within it and records its predecessors in edge insertion order; phi
// operand order matches that order.
type Block struct {
	id     uint32
	name   string
	preds  []*Block
	defs   map[ssabuild.Variable]Value
	phis   []*Phi
	sealed bool
}

// ID returns the block's graph-scoped identifier.
func (b *Block) ID() uint32 { return b.id }

// Name returns the block's display name.
func (b *Block) Name() string { return b.name }

func (b *Block) String() string { return b.name }

// Preds returns the predecessor blocks in insertion order. The slice
// is owned by the block and must not be mutated.
func (b *Block) Preds() []*Block { return b.preds }

// NumPreds returns the number of predecessor edges added so far.
func (b *Block) NumPreds() int { return len(b.preds) }

// Sealed reports whether the predecessor set has been declared final.
func (b *Block) Sealed() bool { return b.sealed }

// AddPred appends a predecessor edge. Adding an edge to a sealed block
// is a caller contract violation: phis already completed for the block
// would silently miss the new edge, so the call is rejected instead.
func (b *Block) AddPred(pred *Block) error {
	if b.sealed {
		return errors.SealedBlock(b.name)
	}
	b.preds = append(b.preds, pred)
	return nil
}

// MarkSealed sets the sealed flag. It is called by builder.SealBlock
// after pending phis have been completed; use that entry point rather
// than calling this directly.
func (b *Block) MarkSealed() { b.sealed = true }

// Def returns the value currently defined for variable in this block.
// Absence means "not yet resolved", never "resolved to undefined".
func (b *Block) Def(v ssabuild.Variable) (Value, bool) {
	val, ok := b.defs[v]
	return val, ok
}

// SetDef sets the local definition for variable, overwriting any
// previous one. Phi def sites are kept consistent so a later phi
// replacement can rewrite memoized entries.
func (b *Block) SetDef(v ssabuild.Variable, val Value) {
	if old, ok := b.defs[v]; ok {
		if p, isPhi := old.(*Phi); isPhi {
			p.removeDefSite(b, v)
		}
	}
	b.defs[v] = val
	if p, isPhi := val.(*Phi); isPhi {
		p.addDefSite(b, v)
	}
}

// DefEntry is one (variable, value) pair from a block's def map.
type DefEntry struct {
	Variable ssabuild.Variable
	Value    Value
}

// SortedDefs returns the block's definitions ordered by variable name,
// for deterministic dumps and export.
func (b *Block) SortedDefs() []DefEntry {
	entries := make([]DefEntry, 0, len(b.defs))
	for v, val := range b.defs {
		entries = append(entries, DefEntry{Variable: v, Value: val})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Variable < entries[j].Variable
	})
	return entries
}

// Phis returns every phi created for this block, including ones later
// replaced. Filter with Phi.Live for the current graph.
func (b *Block) Phis() []*Phi { return b.phis }
