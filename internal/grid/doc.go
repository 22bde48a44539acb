// Package grid holds the two-coloured board, its row partitions and the
// rasterizer that paints a board from an ordered list of rules.
//
// A Grid is built once and is read-only afterwards. Partitions are views over
// contiguous row ranges; they never copy cells and never overlap.
package grid
