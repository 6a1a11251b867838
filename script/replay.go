package script

import (
	"fmt"

	ssabuild "github.com/wippyai/ssa-build"
	"github.com/wippyai/ssa-build/builder"
	"github.com/wippyai/ssa-build/errors"
	"github.com/wippyai/ssa-build/ir"
)

// Event records one replayed step.
type Event struct {
	Step   int    // 1-based step number
	Desc   string // directive, e.g. `read x in join`
	Result string // resolved value for reads, "" otherwise
	State  string // graph dump after the step
}

// Trace is the outcome of replaying a program.
type Trace struct {
	Program *Program
	Graph   *ir.Graph
	Builder *builder.Builder
	Events  []Event
}

// Replay runs the program through a fresh construction session. On a
// failing step it returns the trace up to that step together with the
// error, so callers can still inspect how far construction got. A
// program that completes but leaves blocks unsealed with deferred phis
// fails the session teardown check.
func Replay(p *Program) (*Trace, error) {
	g := ir.NewGraph()
	t := &Trace{
		Program: p,
		Graph:   g,
		Builder: builder.New(g),
	}
	blocks := make(map[string]*ir.Block)

	for i, step := range p.Steps {
		desc, result, err := t.apply(step, blocks)
		if err != nil {
			return t, errors.Wrap(errors.PhaseReplay, errors.KindInvalidInput, err,
				fmt.Sprintf("step %d (%s)", i+1, desc))
		}
		t.Events = append(t.Events, Event{
			Step:   i + 1,
			Desc:   desc,
			Result: result,
			State:  g.Dump(),
		})
	}

	if err := t.Builder.Finish(); err != nil {
		return t, err
	}
	return t, nil
}

func (t *Trace) apply(step Step, blocks map[string]*ir.Block) (desc, result string, err error) {
	switch {
	case step.Block != "":
		desc = fmt.Sprintf("block %s", step.Block)
		if _, exists := blocks[step.Block]; exists {
			return desc, "", errors.DuplicateBlock(step.Block)
		}
		blocks[step.Block] = t.Graph.NewBlock(step.Block)
		return desc, "", nil

	case step.Edge != nil:
		desc = fmt.Sprintf("edge %s -> %s", step.Edge.From, step.Edge.To)
		from, ok := blocks[step.Edge.From]
		if !ok {
			return desc, "", errors.UnknownBlock(errors.PhaseReplay, step.Edge.From)
		}
		to, ok := blocks[step.Edge.To]
		if !ok {
			return desc, "", errors.UnknownBlock(errors.PhaseReplay, step.Edge.To)
		}
		return desc, "", to.AddPred(from)

	case step.Write != nil:
		opName := step.Write.Op
		if opName == "" {
			opName = "def"
		}
		desc = fmt.Sprintf("write %s in %s = %s", step.Write.Var, step.Write.Block, opName)
		block, ok := blocks[step.Write.Block]
		if !ok {
			return desc, "", errors.UnknownBlock(errors.PhaseReplay, step.Write.Block)
		}
		val := t.Graph.NewOp(opName)
		t.Builder.WriteVariable(ssabuild.Variable(step.Write.Var), block, val)
		return desc, val.String(), nil

	case step.Read != nil:
		desc = fmt.Sprintf("read %s in %s", step.Read.Var, step.Read.Block)
		block, ok := blocks[step.Read.Block]
		if !ok {
			return desc, "", errors.UnknownBlock(errors.PhaseReplay, step.Read.Block)
		}
		val := t.Builder.ReadVariable(ssabuild.Variable(step.Read.Var), block)
		return desc, val.String(), nil

	default:
		desc = fmt.Sprintf("seal %v", []string(step.Seal))
		for _, name := range step.Seal {
			block, ok := blocks[name]
			if !ok {
				return desc, "", errors.UnknownBlock(errors.PhaseReplay, name)
			}
			if err := t.Builder.SealBlock(block); err != nil {
				return desc, "", err
			}
		}
		return desc, "", nil
	}
}
