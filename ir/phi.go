package ir

import (
	"fmt"

	ssabuild "github.com/wippyai/ssa-build"
)

// Phi is a merge point value owned by exactly one block. It starts
// operandless; operands are appended once the owning block's
// predecessors are known, in predecessor enumeration order.
//
// A phi additionally tracks its users (values holding it as an
// operand) and its def sites (def-map slots memoizing it), so that a
// phi found redundant can be replaced without any consumer re-reading
// a variable.
type Phi struct {
	id       uint32
	block    *Block
	operands []Value
	users    []Value
	defSites []defSite
	replaced bool
}

// defSite is a def-map slot currently holding the phi.
type defSite struct {
	block    *Block
	variable ssabuild.Variable
}

func (p *Phi) Kind() Kind        { return KindPhi }
func (p *Phi) Operands() []Value { return p.operands }
func (p *Phi) String() string    { return fmt.Sprintf("v%d:phi", p.id) }

// Block returns the owning block, fixed at creation.
func (p *Phi) Block() *Block { return p.block }

// Users returns the values currently holding this phi as an operand.
// The returned slice may contain duplicates when a user references the
// phi through more than one operand slot, and may include the phi
// itself for self-referencing merges.
func (p *Phi) Users() []Value { return p.users }

// Live reports whether the phi is still part of the graph. A phi
// replaced by ReplaceWith stays allocated but is no longer referenced
// by any live node.
func (p *Phi) Live() bool { return !p.replaced }

// AppendOperand appends v to the operand list and records this phi as
// a user of v.
func (p *Phi) AppendOperand(v Value) {
	p.operands = append(p.operands, v)
	registerUse(v, p)
}

// ReplaceWith rewrites every reference to the phi — operand slots of
// its users and def-map entries that memoized it — to point at sub,
// then clears the phi's user set. It returns the former users with the
// phi itself excluded, so the caller can re-check phi users that may
// have become redundant.
func (p *Phi) ReplaceWith(sub Value) []Value {
	users := make([]Value, 0, len(p.users))
	for _, u := range p.users {
		if u == Value(p) {
			continue
		}
		users = append(users, u)
	}
	p.users = nil
	p.replaced = true

	for _, u := range users {
		switch n := u.(type) {
		case *Phi:
			replaceInOperands(n.operands, p, sub, n)
		case *Op:
			replaceInOperands(n.operands, p, sub, n)
		}
	}

	sites := p.defSites
	p.defSites = nil
	for _, site := range sites {
		if cur, ok := site.block.Def(site.variable); ok && cur == Value(p) {
			site.block.SetDef(site.variable, sub)
		}
	}

	return users
}

func (p *Phi) addDefSite(b *Block, v ssabuild.Variable) {
	p.defSites = append(p.defSites, defSite{block: b, variable: v})
}

func (p *Phi) removeDefSite(b *Block, v ssabuild.Variable) {
	for i, site := range p.defSites {
		if site.block == b && site.variable == v {
			p.defSites = append(p.defSites[:i], p.defSites[i+1:]...)
			return
		}
	}
}
