// SPDX-License-Identifier: MIT

// Package normalize: functional configuration for the Normalizer.
//
// Design goals:
//   - Defaults reproduce classic CPM exactly: scale 1e6, pseudocount 1, one worker.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package normalize

import (
	"math"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultScale is the per-sample library size every column is rescaled to.
	DefaultScale = 1e6

	// DefaultPseudocount is added to CPM before the logarithm so zero counts map to 0.
	DefaultPseudocount = 1.0

	// DefaultWorkers keeps the computation single-threaded (no goroutines).
	DefaultWorkers = 1
)

// minRowsPerWorker is the smallest row block handed to a goroutine; smaller
// inputs run serially.
const minRowsPerWorker = 64

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicScaleInvalid       = "normalize: WithScale: scale must be finite and > 0"
	panicPseudocountInvalid = "normalize: WithPseudocount: pseudocount must be finite and >= 0"
	panicWorkersInvalid     = "normalize: WithWorkers: workers must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	scale       float64 // > 0; DefaultScale
	pseudocount float64 // >= 0; DefaultPseudocount
	workers     int     // >= 1 after gatherOptions; DefaultWorkers
}

// WithScale sets the target library size (1e6 for CPM, 1e3 for per-thousand, ...).
// Panics when scale is NaN, ±Inf or <= 0.
// Complexity: O(1).
func WithScale(scale float64) Option {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		panic(panicScaleInvalid)
	}

	return func(o *Options) {
		o.scale = scale
	}
}

// WithPseudocount sets the value added to CPM before log2 in Log2CPM.
// Panics when p is NaN, ±Inf or negative. A pseudocount of 0 is allowed and
// maps zero counts to -Inf.
// Complexity: O(1).
func WithPseudocount(p float64) Option {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		panic(panicPseudocountInvalid)
	}

	return func(o *Options) {
		o.pseudocount = p
	}
}

// WithWorkers sets how many goroutines may share the scaling pass.
// 0 selects runtime.GOMAXPROCS(0); 1 keeps everything on the calling goroutine.
// Panics when n is negative.
// Complexity: O(1).
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) {
		o.workers = n
	}
}

// gatherOptions applies user-provided Option setters on top of defaults and
// resolves workers == 0 to the current GOMAXPROCS.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		scale:       DefaultScale,
		pseudocount: DefaultPseudocount,
		workers:     DefaultWorkers,
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
