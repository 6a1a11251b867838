package viz

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/wippyai/ssa-build/errors"
	"github.com/wippyai/ssa-build/ir"
)

// DOT renders the CFG as a Graphviz digraph. Edges run from
// predecessor to successor; unsealed blocks are drawn dashed.
func DOT(g *ir.Graph, name string) ([]byte, error) {
	out, err := dot.Marshal(newCFG(g), name, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.PhaseRender, errors.KindInvalidData, err, "marshal dot")
	}
	return out, nil
}

// Loops returns the strongly connected components with more than one
// block, plus single blocks that loop on themselves: the natural-loop
// candidates of the CFG. Blocks within a component keep allocation
// order.
func Loops(g *ir.Graph) [][]*ir.Block {
	c := newCFG(g)
	var loops [][]*ir.Block
	for _, scc := range topo.TarjanSCC(c) {
		if len(scc) == 1 {
			n := scc[0].(*blockNode)
			if !c.HasEdgeFromTo(n.ID(), n.ID()) {
				continue
			}
		}
		blocks := make([]*ir.Block, len(scc))
		for i, n := range scc {
			blocks[i] = n.(*blockNode).block
		}
		loops = append(loops, blocks)
	}
	return loops
}

// cfg adapts an ir.Graph to gonum's directed graph interfaces. It is
// a read-only view; self-edges (single-block loops) are legal here,
// which is why the adapter is used instead of a mutable gonum graph.
type cfg struct {
	nodes map[int64]*blockNode
	succs map[int64][]int64
	preds map[int64][]int64
	order []int64
}

func newCFG(g *ir.Graph) *cfg {
	c := &cfg{
		nodes: make(map[int64]*blockNode),
		succs: make(map[int64][]int64),
		preds: make(map[int64][]int64),
	}
	for _, b := range g.Blocks() {
		id := int64(b.ID())
		c.nodes[id] = &blockNode{block: b}
		c.order = append(c.order, id)
	}
	for _, b := range g.Blocks() {
		to := int64(b.ID())
		for _, p := range b.Preds() {
			from := int64(p.ID())
			c.succs[from] = append(c.succs[from], to)
			c.preds[to] = append(c.preds[to], from)
		}
	}
	return c
}

func (c *cfg) Node(id int64) graph.Node {
	if n, ok := c.nodes[id]; ok {
		return n
	}
	return nil
}

func (c *cfg) Nodes() graph.Nodes {
	return c.nodeIter(c.order)
}

func (c *cfg) From(id int64) graph.Nodes {
	return c.nodeIter(c.succs[id])
}

func (c *cfg) To(id int64) graph.Nodes {
	return c.nodeIter(c.preds[id])
}

func (c *cfg) nodeIter(ids []int64) graph.Nodes {
	nodes := make([]graph.Node, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		// parallel edges collapse to one for rendering and traversal
		if seen[id] {
			continue
		}
		seen[id] = true
		nodes = append(nodes, c.nodes[id])
	}
	return iterator.NewOrderedNodes(nodes)
}

func (c *cfg) HasEdgeBetween(xid, yid int64) bool {
	return c.HasEdgeFromTo(xid, yid) || c.HasEdgeFromTo(yid, xid)
}

func (c *cfg) HasEdgeFromTo(uid, vid int64) bool {
	for _, id := range c.succs[uid] {
		if id == vid {
			return true
		}
	}
	return false
}

func (c *cfg) Edge(uid, vid int64) graph.Edge {
	if !c.HasEdgeFromTo(uid, vid) {
		return nil
	}
	return edge{f: c.nodes[uid], t: c.nodes[vid]}
}

type edge struct {
	f, t graph.Node
}

func (e edge) From() graph.Node         { return e.f }
func (e edge) To() graph.Node           { return e.t }
func (e edge) ReversedEdge() graph.Edge { return edge{f: e.t, t: e.f} }

// blockNode wraps a block for gonum and carries its DOT attributes.
type blockNode struct {
	block *ir.Block
}

func (n *blockNode) ID() int64     { return int64(n.block.ID()) }
func (n *blockNode) DOTID() string { return n.block.Name() }

func (n *blockNode) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{
		{Key: "shape", Value: "box"},
		{Key: "label", Value: n.label()},
	}
	if !n.block.Sealed() {
		attrs = append(attrs, encoding.Attribute{Key: "style", Value: "dashed"})
	}
	return attrs
}

func (n *blockNode) label() string {
	parts := []string{n.block.Name()}
	for _, def := range n.block.SortedDefs() {
		parts = append(parts, fmt.Sprintf("%s=%s", def.Variable, def.Value))
	}
	return strings.Join(parts, " | ")
}
