// Package collective runs a fixed-size group of ranks as goroutines and lets
// them exchange data only through collective operations rooted at rank 0:
// Bcast, Scatter and Gather.
//
// Every collective is a single rendezvous. Ranks must issue the same
// collectives in the same order; a rank that calls a different one gets
// ErrMismatch instead of silently reading the wrong payload. Nothing is
// retried. The first rank to fail cancels the context shared by the group,
// which unblocks everyone still waiting.
package collective
