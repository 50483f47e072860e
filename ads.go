// Package ads provides generic, production-oriented algorithms and data
// structures: number-theory helpers (math), an ordered map contract with a
// balanced-tree implementation (collection), ring-buffer and bounded queues
// (sequence), a binary heap (heap), union-find (dset) and graph algorithms
// (graph). A small workload harness (bench, cmd/adsbench) exercises the
// collection types under concurrent, rate-limited load.
//
// The API is not stable before the 1.0.0 release.
package ads

// Version is the library version reported by cmd/adsbench.
const Version = "0.1.0"
