// Package viz exports constructed CFGs for inspection. It adapts an
// ir.Graph to the gonum graph interfaces, which gives Graphviz DOT
// rendering and cycle detection without owning any graph algorithms
// itself.
package viz
