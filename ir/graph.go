package ir

import (
	"fmt"
	"strings"

	ssabuild "github.com/wippyai/ssa-build"
)

// Graph is the arena for one function's CFG under construction. It
// allocates blocks and values, stamping each with a stable identifier.
// A Graph is owned by a single construction session and is not safe
// for concurrent use.
type Graph struct {
	blocks []*Block
	nextID uint32
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

func (g *Graph) allocID() uint32 {
	id := g.nextID
	g.nextID++
	return id
}

// NewBlock allocates a block. If name is empty a stable "b<id>" name
// is assigned.
func (g *Graph) NewBlock(name string) *Block {
	id := g.allocID()
	if name == "" {
		name = fmt.Sprintf("b%d", id)
	}
	b := &Block{
		id:   id,
		name: name,
		defs: make(map[ssabuild.Variable]Value),
	}
	g.blocks = append(g.blocks, b)
	return b
}

// NewOp allocates a named operation over the given operands. Phi
// operands record the new op as a user.
func (g *Graph) NewOp(name string, operands ...Value) *Op {
	o := &Op{id: g.allocID(), name: name, operands: operands}
	for _, operand := range operands {
		registerUse(operand, o)
	}
	return o
}

// NewPhi allocates an operandless phi owned by block.
func (g *Graph) NewPhi(block *Block) *Phi {
	p := &Phi{id: g.allocID(), block: block}
	block.phis = append(block.phis, p)
	return p
}

// NewUndef allocates a fresh undefined value.
func (g *Graph) NewUndef() *Undef {
	return &Undef{id: g.allocID()}
}

// Blocks returns every block in allocation order.
func (g *Graph) Blocks() []*Block {
	return g.blocks
}

// Dump renders the graph state as plain text, one block per line group:
//
//	join [sealed] preds=[left right]
//	  x = v6:phi(v2:one, v4:two)
func (g *Graph) Dump() string {
	var sb strings.Builder
	for _, b := range g.blocks {
		state := "open"
		if b.sealed {
			state = "sealed"
		}
		names := make([]string, len(b.preds))
		for i, p := range b.preds {
			names[i] = p.name
		}
		fmt.Fprintf(&sb, "%s [%s] preds=[%s]\n", b.name, state, strings.Join(names, " "))
		for _, def := range b.SortedDefs() {
			fmt.Fprintf(&sb, "  %s = %s\n", def.Variable, formatValue(def.Value))
		}
	}
	return sb.String()
}

// formatValue renders a value with one level of operands, enough to
// see phi merges in dumps without walking the whole graph.
func formatValue(v Value) string {
	operands := v.Operands()
	if len(operands) == 0 {
		return v.String()
	}
	parts := make([]string, len(operands))
	for i, op := range operands {
		parts[i] = op.String()
	}
	return v.String() + "(" + strings.Join(parts, ", ") + ")"
}
