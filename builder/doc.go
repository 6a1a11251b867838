// Package builder implements def/use resolution for SSA construction
// over a CFG that is still being built.
//
// Construction pipeline, per function:
//  1. Create blocks and predecessor edges through an ir.Graph
//  2. Write definitions and read variables as the input is lowered
//  3. Seal each block once its predecessor set is final
//  4. Finish the session; blocks left unsealed with deferred phis
//     are reported as an incomplete region
//
// Reads in blocks whose predecessors are not all known yet get an
// operandless placeholder phi, completed at seal time. Reads that form
// a cycle through the CFG are broken by writing the placeholder into
// the block's def map before recursing into predecessors. Phis that
// turn out to merge a single value are removed, cascading into users
// that the removal made redundant in turn.
package builder
