package ir

import "fmt"

// Kind identifies the variant of a Value.
type Kind uint8

const (
	KindUndef Kind = iota // no definition reached this point
	KindOp                // named operation with ordered operands
	KindPhi               // merge point value owned by one block
)

func (k Kind) String() string {
	switch k {
	case KindUndef:
		return "undef"
	case KindOp:
		return "op"
	case KindPhi:
		return "phi"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is any IR node usable as an operand. Implementations are the
// closed set Undef, Op, and Phi; consumers compare Values by reference
// identity only.
type Value interface {
	// Kind reports which variant this value is.
	Kind() Kind
	// Operands returns the ordered operand list, or nil for leaf values.
	Operands() []Value
	// String returns a short stable form like "v3:add" or "v7:phi".
	String() string
}

// Undef marks a read that no definition reached. Each resolution
// failure yields a distinct instance, so two Undefs never compare
// equal.
type Undef struct {
	id uint32
}

func (u *Undef) Kind() Kind        { return KindUndef }
func (u *Undef) Operands() []Value { return nil }
func (u *Undef) String() string    { return fmt.Sprintf("v%d:undef", u.id) }

// Op is a named computation over an ordered sequence of operand values.
// Ops are immutable after creation except for operand slots rewritten
// when a phi operand is replaced.
type Op struct {
	id       uint32
	name     string
	operands []Value
}

func (o *Op) Kind() Kind        { return KindOp }
func (o *Op) Operands() []Value { return o.operands }
func (o *Op) Name() string      { return o.name }
func (o *Op) String() string    { return fmt.Sprintf("v%d:%s", o.id, o.name) }

// registerUse records user as a consumer of operand, if the operand is
// a phi. Only phis track users; they are the only values that can be
// replaced after the fact.
func registerUse(operand, user Value) {
	if p, ok := operand.(*Phi); ok {
		p.users = append(p.users, user)
	}
}

// replaceInOperands rewrites every slot holding old to sub and keeps
// the substitute's user set consistent. Returns the number of slots
// rewritten.
func replaceInOperands(operands []Value, old, sub, user Value) int {
	n := 0
	for i, op := range operands {
		if op == old {
			operands[i] = sub
			registerUse(sub, user)
			n++
		}
	}
	return n
}
