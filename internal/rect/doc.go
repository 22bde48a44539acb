// Package rect decides whether the marked cells of a grid form a single
// axis-aligned rectangle.
//
// The work is split in two. Scan walks one partition of rows exactly once,
// top to bottom and left to right, keeping a constant amount of state, and
// returns a PartialVerdict in partition-local row coordinates. Reduce folds
// the partial verdicts of all partitions, in row order, into the
// GlobalVerdict for the whole grid. Neither step performs I/O and neither
// treats a Many outcome as an error.
package rect
