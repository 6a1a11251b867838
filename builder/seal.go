package builder

import (
	"sort"

	"go.uber.org/zap"

	ssabuild "github.com/wippyai/ssa-build"
	"github.com/wippyai/ssa-build/errors"
	"github.com/wippyai/ssa-build/ir"
)

// SealBlock declares the block's predecessor set final and completes
// every phi deferred for it. Safe to call on a block with nothing
// pending; sealing the same block twice is a contract violation and is
// rejected rather than re-processing an already-drained registry
// entry.
//
// The caller guarantees no further predecessors will be added; AddPred
// enforces this after the fact.
func (b *Builder) SealBlock(block *ir.Block) error {
	if block.Sealed() {
		return errors.DoubleSeal(block.Name())
	}

	pending := b.incomplete[block]
	if len(pending) > 0 {
		// Deterministic completion order. Completing a phi only reads
		// its own variable in the predecessors, so the pending set
		// cannot grow while it drains.
		variables := make([]ssabuild.Variable, 0, len(pending))
		for v := range pending {
			variables = append(variables, v)
		}
		sort.Slice(variables, func(i, j int) bool { return variables[i] < variables[j] })

		for _, v := range variables {
			b.addPhiOperands(v, pending[v])
		}
		Logger().Debug("sealed block",
			zap.String("block", block.Name()),
			zap.Int("completed_phis", len(variables)))
	}

	delete(b.incomplete, block)
	block.MarkSealed()
	return nil
}
