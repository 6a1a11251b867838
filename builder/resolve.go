package builder

import (
	"go.uber.org/zap"

	ssabuild "github.com/wippyai/ssa-build"
	"github.com/wippyai/ssa-build/ir"
)

// readVariableRecursive is global value numbering: it runs on the
// first read of a variable in a block and resolves the value through
// the predecessors. Whatever it resolves is memoized in the block's
// def map, so later reads stay O(1) and consistent even if the value
// is simplified afterwards.
func (b *Builder) readVariableRecursive(variable ssabuild.Variable, block *ir.Block) ir.Value {
	var val ir.Value
	switch {
	case !block.Sealed():
		// Not all predecessors are known yet. Create an operandless
		// phi and defer its completion to SealBlock.
		phi := b.graph.NewPhi(block)
		pending := b.incomplete[block]
		if pending == nil {
			pending = make(map[ssabuild.Variable]*ir.Phi)
			b.incomplete[block] = pending
		}
		pending[variable] = phi
		val = phi
		Logger().Debug("deferred phi for unsealed block",
			zap.String("block", block.Name()),
			zap.String("variable", variable.String()),
			zap.String("phi", phi.String()))

	case block.NumPreds() == 1:
		// A single predecessor never needs a merge.
		val = b.ReadVariable(variable, block.Preds()[0])

	default:
		// Write the operandless phi into the def map before recursing
		// into predecessors: a read that cycles back into this block
		// finds the placeholder instead of recursing forever.
		phi := b.graph.NewPhi(block)
		block.SetDef(variable, phi)
		val = b.addPhiOperands(variable, phi)
	}
	block.SetDef(variable, val)
	return val
}

// addPhiOperands fills in phi's operands by reading variable in every
// predecessor of the owning block, in predecessor insertion order,
// then checks the completed phi for redundancy. A block with zero
// predecessors yields a phi with zero operands, which collapses to
// Undef.
func (b *Builder) addPhiOperands(variable ssabuild.Variable, phi *ir.Phi) ir.Value {
	for _, pred := range phi.Block().Preds() {
		phi.AppendOperand(b.ReadVariable(variable, pred))
	}
	return b.tryRemoveTrivialPhi(phi)
}

// tryRemoveTrivialPhi removes phi if it merges at most one distinct
// value. Operands that are the phi itself or repeat the candidate are
// ignored; with no candidate left the phi is unreachable (start block
// or dead merge) and a fresh Undef substitutes. Users of a removed phi
// are re-checked, since removing one redundancy can make a chain of
// previously valid phis trivial in turn.
func (b *Builder) tryRemoveTrivialPhi(phi *ir.Phi) ir.Value {
	var same ir.Value
	for _, op := range phi.Operands() {
		if op == same || op == ir.Value(phi) {
			// unique value or self-reference
			continue
		}
		if same != nil {
			// merges at least two values: not trivial
			return phi
		}
		same = op
	}
	if same == nil {
		same = b.graph.NewUndef()
	}

	users := phi.ReplaceWith(same)
	Logger().Debug("removed trivial phi",
		zap.String("block", phi.Block().Name()),
		zap.String("phi", phi.String()),
		zap.String("replacement", same.String()))

	for _, user := range users {
		if p, ok := user.(*ir.Phi); ok && p.Live() {
			b.tryRemoveTrivialPhi(p)
		}
	}
	return same
}
