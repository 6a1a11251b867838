package ir

import (
	"testing"
)

func TestPhi_AppendOperandTracksUsers(t *testing.T) {
	g := NewGraph()
	blk := g.NewBlock("")
	inner := g.NewPhi(blk)
	outer := g.NewPhi(blk)

	outer.AppendOperand(g.NewOp("one"))
	outer.AppendOperand(inner)

	if len(outer.Operands()) != 2 {
		t.Fatalf("operands = %d, want 2", len(outer.Operands()))
	}
	users := inner.Users()
	if len(users) != 1 || users[0] != Value(outer) {
		t.Fatalf("inner users = %v, want [%v]", users, outer)
	}
	// non-phi operands track nothing; nothing to assert beyond no panic
}

func TestPhi_SelfReferenceUser(t *testing.T) {
	g := NewGraph()
	blk := g.NewBlock("")
	phi := g.NewPhi(blk)

	phi.AppendOperand(phi)

	users := phi.Users()
	if len(users) != 1 || users[0] != Value(phi) {
		t.Fatalf("self-referencing phi should list itself as user, got %v", users)
	}
}

func TestPhi_ReplaceWithRewritesUsers(t *testing.T) {
	g := NewGraph()
	blk := g.NewBlock("")
	phi := g.NewPhi(blk)
	val := g.NewOp("one")
	phi.AppendOperand(val)

	use := g.NewOp("neg", phi)
	other := g.NewPhi(blk)
	other.AppendOperand(phi)

	users := phi.ReplaceWith(val)

	if len(users) != 2 {
		t.Fatalf("captured users = %d, want 2", len(users))
	}
	if use.Operands()[0] != Value(val) {
		t.Errorf("op operand = %v, want %v", use.Operands()[0], val)
	}
	if other.Operands()[0] != Value(val) {
		t.Errorf("phi operand = %v, want %v", other.Operands()[0], val)
	}
	if len(phi.Users()) != 0 {
		t.Errorf("replaced phi keeps users: %v", phi.Users())
	}
	if phi.Live() {
		t.Error("replaced phi still reports live")
	}
}

func TestPhi_ReplaceWithExcludesSelf(t *testing.T) {
	g := NewGraph()
	blk := g.NewBlock("")
	phi := g.NewPhi(blk)
	val := g.NewOp("one")
	phi.AppendOperand(val)
	phi.AppendOperand(phi) // self-reference

	users := phi.ReplaceWith(val)
	for _, u := range users {
		if u == Value(phi) {
			t.Fatal("ReplaceWith must exclude the phi itself from captured users")
		}
	}
}

func TestPhi_ReplaceWithUpdatesSubstituteUsers(t *testing.T) {
	g := NewGraph()
	blk := g.NewBlock("")
	phi := g.NewPhi(blk)
	sub := g.NewPhi(blk)

	use := g.NewOp("neg", phi)
	phi.ReplaceWith(sub)

	found := false
	for _, u := range sub.Users() {
		if u == Value(use) {
			found = true
		}
	}
	if !found {
		t.Errorf("substitute phi users = %v, want to include %v", sub.Users(), use)
	}
}

func TestPhi_ReplaceWithRewritesDefSites(t *testing.T) {
	g := NewGraph()
	b1 := g.NewBlock("b1")
	b2 := g.NewBlock("b2")
	phi := g.NewPhi(b1)
	val := g.NewOp("one")

	// The phi is memoized as the resolution in two blocks.
	b1.SetDef("x", phi)
	b2.SetDef("x", phi)

	phi.ReplaceWith(val)

	for _, blk := range []*Block{b1, b2} {
		got, ok := blk.Def("x")
		if !ok || got != Value(val) {
			t.Errorf("%s def x = %v (ok=%v), want %v", blk.Name(), got, ok, val)
		}
	}
}

func TestPhi_OverwrittenDefSiteNotRewritten(t *testing.T) {
	g := NewGraph()
	blk := g.NewBlock("")
	phi := g.NewPhi(blk)
	newer := g.NewOp("newer")
	sub := g.NewOp("sub")

	blk.SetDef("x", phi)
	blk.SetDef("x", newer) // reassignment drops the phi's def site

	phi.ReplaceWith(sub)

	got, _ := blk.Def("x")
	if got != Value(newer) {
		t.Errorf("def x = %v, want %v untouched by replacement", got, newer)
	}
}

func TestPhi_BlockIsFixed(t *testing.T) {
	g := NewGraph()
	blk := g.NewBlock("owner")
	phi := g.NewPhi(blk)
	if phi.Block() != blk {
		t.Fatalf("phi block = %v, want %v", phi.Block(), blk)
	}
	phis := blk.Phis()
	if len(phis) != 1 || phis[0] != phi {
		t.Fatalf("block phis = %v, want [%v]", phis, phi)
	}
}
