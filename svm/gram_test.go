package svm

import (
	"math"
	"math/rand"
	"testing"
)

func TestGramMatrixMatchesDirectEvaluation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n, d := 20, 3
	x := make([][]float64, n)
	for i := range x {
		x[i] = make([]float64, d)
		for j := range x[i] {
			x[i][j] = rng.NormFloat64()
		}
	}

	kernels := []struct {
		name   string
		kernel Kernel
	}{
		{"linear", LinearKernel()},
		{"rbf", RBFKernel(0.5)},
		{"poly", PolyKernel(2, 1.0)},
	}

	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			g := newGramMatrix(x, k.kernel)
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					want := k.kernel.eval(x[i], x[j])
					if got := g.at(i, j); math.Abs(got-want) > 1e-12 {
						t.Fatalf("at(%d, %d) = %v, want %v", i, j, got, want)
					}
				}
			}
		})
	}
}

func TestGramMatrixSymmetry(t *testing.T) {
	// Above the parallel threshold, so the concurrent fill path runs.
	rng := rand.New(rand.NewSource(2))
	n := gramParallelThreshold + 10
	x := make([][]float64, n)
	for i := range x {
		x[i] = []float64{rng.Float64(), rng.Float64()}
	}

	g := newGramMatrix(x, RBFKernel(1.0))
	for i := 0; i < n; i += 17 {
		for j := 0; j < n; j += 13 {
			if g.at(i, j) != g.at(j, i) {
				t.Fatalf("at(%d,%d) != at(%d,%d)", i, j, j, i)
			}
			want := RBFKernel(1.0).eval(x[i], x[j])
			if math.Abs(g.at(i, j)-want) > 1e-12 {
				t.Fatalf("at(%d,%d) = %v, want %v", i, j, g.at(i, j), want)
			}
		}
	}
}
