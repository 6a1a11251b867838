package builder

import (
	"sort"

	"go.uber.org/zap"

	ssabuild "github.com/wippyai/ssa-build"
	"github.com/wippyai/ssa-build/errors"
	"github.com/wippyai/ssa-build/ir"
)

// Builder is one SSA construction session. It owns the pending-phi
// registry for the graph it was created with; the registry starts
// empty and is torn down by Finish. A Builder is single-threaded by
// design: every operation runs to completion before the next call.
type Builder struct {
	graph *ir.Graph

	// incomplete maps an unsealed block to the operandless phis
	// created for variables read in it before all predecessors were
	// known. Entries exist only for unsealed blocks and are drained
	// exactly once, at seal.
	incomplete map[*ir.Block]map[ssabuild.Variable]*ir.Phi
}

// New creates a construction session over g.
func New(g *ir.Graph) *Builder {
	return &Builder{
		graph:      g,
		incomplete: make(map[*ir.Block]map[ssabuild.Variable]*ir.Phi),
	}
}

// Graph returns the graph this session builds into.
func (b *Builder) Graph() *ir.Graph { return b.graph }

// WriteVariable sets the local definition of variable in block,
// overwriting any previous one. Overwrite is routine: a read after
// reassignment within the same block observes the new value.
func (b *Builder) WriteVariable(variable ssabuild.Variable, block *ir.Block, value ir.Value) {
	block.SetDef(variable, value)
}

// ReadVariable resolves variable at block. A definition local to the
// block is returned directly; otherwise the value is resolved through
// the predecessors, creating phis at merge points as needed. Repeated
// reads with no intervening write return the identical value.
func (b *Builder) ReadVariable(variable ssabuild.Variable, block *ir.Block) ir.Value {
	if val, ok := block.Def(variable); ok {
		// local value numbering
		return val
	}
	return b.readVariableRecursive(variable, block)
}

// PendingPhis returns the number of deferred phis registered for an
// unsealed block. It is zero for sealed blocks.
func (b *Builder) PendingPhis(block *ir.Block) int {
	return len(b.incomplete[block])
}

// Finish ends the session. Blocks never sealed that still hold
// deferred phis indicate an incomplete or unreachable region and are
// reported; the registry is discarded either way.
func (b *Builder) Finish() error {
	var stuck []string
	for block, pending := range b.incomplete {
		if len(pending) > 0 {
			stuck = append(stuck, block.Name())
		}
	}
	b.incomplete = nil
	if len(stuck) > 0 {
		sort.Strings(stuck)
		Logger().Warn("construction finished with incomplete region",
			zap.Strings("blocks", stuck))
		return errors.UnsealedPending(stuck)
	}
	return nil
}
