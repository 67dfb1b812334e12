// SPDX-License-Identifier: MIT

package normalize

import (
	"github.com/katalvlaran/exprnorm/matrix"
	"golang.org/x/sync/errgroup"
)

// cellFunc maps one count and its column total to the normalized value.
type cellFunc func(v, total float64) float64

// rowBlock is a half-open row range [lo, hi) owned by exactly one worker.
type rowBlock struct {
	lo, hi int
}

// rowBlocks splits rows into at most `workers` contiguous blocks of at least
// minRowsPerWorker rows. A single block means "run serially".
func rowBlocks(rows, workers int) []rowBlock {
	if workers <= 1 || rows < 2*minRowsPerWorker {
		return []rowBlock{{lo: 0, hi: rows}}
	}
	size := max((rows+workers-1)/workers, minRowsPerWorker)
	blocks := make([]rowBlock, 0, (rows+size-1)/size)
	for lo := 0; lo < rows; lo += size {
		blocks = append(blocks, rowBlock{lo: lo, hi: min(lo+size, rows)})
	}

	return blocks
}

// transform runs the two passes shared by CPM and Log2CPM.
// Implementation:
//   - Stage 1: Validate counts (non-nil).
//   - Stage 2: Column totals via matrix.ColSums (fixed i-ascending order).
//   - Stage 3: Allocate the output with the input's shape.
//   - Stage 4: Write cell(v, totals[j]) for every element; *Dense inputs are
//     split over row blocks, other Matrix implementations run serially via At.
//
// Behavior highlights:
//   - Zero totals are not special-cased: 0/0 yields NaN.
//   - Each worker reads the shared input and writes only its own rows.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) + O(c).
func (n *Normalizer) transform(op string, counts matrix.Matrix, cell cellFunc) (*matrix.Dense, error) {
	// Stage 1 (Validate).
	if err := matrix.ValidateNotNil(counts); err != nil {
		return nil, normalizeErrorf(op, err)
	}

	// Stage 2 (Reduce).
	totals, err := matrix.ColSums(counts)
	if err != nil {
		return nil, normalizeErrorf(op, err)
	}

	// Stage 3 (Prepare).
	r, c := counts.Rows(), counts.Cols()
	out, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, normalizeErrorf(op, err)
	}
	if r == 0 || c == 0 {
		return out, nil
	}

	// Stage 4 (Execute).
	src, ok := counts.(*matrix.Dense)
	if !ok {
		if err = scaleRowsAt(counts, out, totals, cell); err != nil {
			return nil, normalizeErrorf(op, err)
		}
		return out, nil
	}

	blocks := rowBlocks(r, n.opts.workers)
	if len(blocks) == 1 {
		scaleRows(src, out, totals, cell, blocks[0])
		return out, nil
	}

	var g errgroup.Group
	g.SetLimit(n.opts.workers)
	for _, b := range blocks {
		b := b // per-iteration copy; go.mod targets go1.21 loop semantics
		g.Go(func() error {
			scaleRows(src, out, totals, cell, b)
			return nil
		})
	}
	// scaleRows cannot fail; Wait only joins the workers.
	_ = g.Wait()

	return out, nil
}

// scaleRows is the Dense fast path over rows [b.lo, b.hi).
func scaleRows(src, dst *matrix.Dense, totals []float64, cell cellFunc, b rowBlock) {
	var i, j int
	for i = b.lo; i < b.hi; i++ {
		in, out := src.RawRowView(i), dst.RawRowView(i)
		for j = range in {
			out[j] = cell(in[j], totals[j])
		}
	}
}

// scaleRowsAt is the generic fallback for foreign Matrix implementations.
// It stays on the calling goroutine: nothing guarantees their At is safe
// for concurrent use.
func scaleRowsAt(src matrix.Matrix, dst *matrix.Dense, totals []float64, cell cellFunc) error {
	r, c := src.Rows(), src.Cols()

	var i, j int
	var v float64
	var err error
	for i = 0; i < r; i++ {
		out := dst.RawRowView(i)
		for j = 0; j < c; j++ {
			if v, err = src.At(i, j); err != nil {
				return err
			}
			out[j] = cell(v, totals[j])
		}
	}

	return nil
}
