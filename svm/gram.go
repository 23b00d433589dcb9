package svm

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/svmgo/core/parallel"
)

// gramParallelThreshold is the row count above which the Gram fill runs
// on multiple goroutines. Small matrices are not worth the overhead.
const gramParallelThreshold = 256

// gramMatrix caches every pairwise kernel value of one training session.
// It trades O(N²) memory for O(1) repeated lookups inside the optimizer;
// callers should skip it for large N.
type gramMatrix struct {
	m *mat.SymDense
}

// newGramMatrix evaluates the kernel over all row pairs. Each goroutine
// fills a disjoint band of rows of the upper triangle, so the fill needs
// no locking, and the result is identical regardless of scheduling.
func newGramMatrix(x [][]float64, kernel Kernel) *gramMatrix {
	n := len(x)
	m := mat.NewSymDense(n, nil)
	parallel.ParallelizeWithThreshold(n, gramParallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := i; j < n; j++ {
				m.SetSym(i, j, kernel.eval(x[i], x[j]))
			}
		}
	})
	return &gramMatrix{m: m}
}

func (g *gramMatrix) at(i, j int) float64 {
	return g.m.At(i, j)
}
