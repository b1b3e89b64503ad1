// Package scan implements the parallel scan engine: it enumerates candidate
// files under a root directory, distributes extraction and classification
// across a bounded worker pool, and gathers the results for reporting.
//
// Cancellation is coordinator-only. Workers run their external invocations
// against the background context so an interrupt never produces per-worker
// noise; the coordinator alone observes ctx.Done, abandons outstanding work,
// and returns ErrInterrupted.
package scan
