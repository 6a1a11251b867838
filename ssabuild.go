package ssabuild

// Variable is a source-level name used purely as a def/use lookup key.
// Variables are never themselves stored as operands; resolving one
// yields the IR value currently reaching the requesting block.
type Variable string

func (v Variable) String() string { return string(v) }
