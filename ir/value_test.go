package ir

import (
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUndef, "undef"},
		{KindOp, "op"},
		{KindPhi, "phi"},
		{Kind(42), "kind(42)"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestNewOp_OperandsAndName(t *testing.T) {
	g := NewGraph()
	a := g.NewOp("one")
	b := g.NewOp("two")
	sum := g.NewOp("add", a, b)

	if sum.Kind() != KindOp {
		t.Fatalf("kind = %v, want op", sum.Kind())
	}
	if sum.Name() != "add" {
		t.Errorf("name = %q, want add", sum.Name())
	}
	ops := sum.Operands()
	if len(ops) != 2 || ops[0] != Value(a) || ops[1] != Value(b) {
		t.Errorf("operands = %v, want [%v %v]", ops, a, b)
	}
}

func TestNewOp_RegistersPhiUsers(t *testing.T) {
	g := NewGraph()
	blk := g.NewBlock("")
	phi := g.NewPhi(blk)

	use := g.NewOp("neg", phi)

	users := phi.Users()
	if len(users) != 1 || users[0] != Value(use) {
		t.Fatalf("phi users = %v, want [%v]", users, use)
	}
}

func TestNewUndef_DistinctInstances(t *testing.T) {
	g := NewGraph()
	a := g.NewUndef()
	b := g.NewUndef()
	if a == b {
		t.Fatal("two undef values must not be identical")
	}
	if a.Kind() != KindUndef || a.Operands() != nil {
		t.Errorf("undef shape wrong: kind=%v operands=%v", a.Kind(), a.Operands())
	}
}

func TestValueStrings(t *testing.T) {
	g := NewGraph()
	blk := g.NewBlock("entry") // id 0
	op := g.NewOp("add")       // id 1
	phi := g.NewPhi(blk)       // id 2
	und := g.NewUndef()        // id 3

	if got := op.String(); got != "v1:add" {
		t.Errorf("op string = %q", got)
	}
	if got := phi.String(); got != "v2:phi" {
		t.Errorf("phi string = %q", got)
	}
	if got := und.String(); got != "v3:undef" {
		t.Errorf("undef string = %q", got)
	}
	if got := blk.String(); got != "entry" {
		t.Errorf("block string = %q", got)
	}
}
