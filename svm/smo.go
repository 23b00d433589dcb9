package svm

import (
	"math"
	"math/rand"

	"github.com/YuminosukeSato/svmgo/pkg/errors"
	"github.com/YuminosukeSato/svmgo/pkg/log"
)

// optimizerState holds the mutable dual variables of one training
// session: the Lagrange multipliers (0 ≤ alpha_i ≤ C), the bias, and the
// pass bookkeeping. It is created zeroed by the driver, mutated only by
// the solver, and frozen into the support vector set when training ends.
type optimizerState struct {
	alpha     []float64
	bias      float64
	passes    int
	converged bool
}

// smoSolver runs the simplified sequential minimal optimization loop over
// a ±1 encoded dataset. The second index of each working pair is drawn
// uniformly at random, a simplification of textbook SMO's error-magnitude
// heuristic; convergence speed is sensitive to this choice, which is why
// the rand source is injected by the driver.
type smoSolver struct {
	x       [][]float64
	y       []float64
	kernel  Kernel
	c       float64
	tol     float64
	maxIter int
	rng     *rand.Rand
	gram    *gramMatrix
	logger  log.Logger

	state optimizerState
}

func (s *smoSolver) kernelAt(i, j int) float64 {
	if s.gram != nil {
		return s.gram.at(i, j)
	}
	return s.kernel.eval(s.x[i], s.x[j])
}

// outputIndex computes f(x_i) = bias + Σ_j alpha_j·y_j·K(x_j, x_i).
// Zero multipliers contribute nothing and are skipped.
func (s *smoSolver) outputIndex(i int) float64 {
	sum := s.state.bias
	for j := range s.x {
		if s.state.alpha[j] == 0 {
			continue
		}
		sum += s.state.alpha[j] * s.y[j] * s.kernelAt(j, i)
	}
	return sum
}

// solve repeats full passes over all example indices until a pass accepts
// no update or maxIter passes have elapsed. Running out of passes is not
// an error: the best multipliers found so far stand, and state.converged
// stays false so the driver can report the capped fit.
func (s *smoSolver) solve() error {
	n := len(s.x)
	for pass := 1; pass <= s.maxIter; pass++ {
		changed := 0
		for i := 0; i < n; i++ {
			if s.step(i) {
				changed++
			}
		}
		s.state.passes = pass

		if err := errors.CheckScalar("smo_pass", s.state.bias, pass); err != nil {
			return err
		}
		if s.logger != nil {
			s.logger.Debug("smo pass complete",
				log.IterationKey, pass,
				"updates", changed,
			)
		}

		if changed == 0 {
			s.state.converged = true
			break
		}
	}
	return nil
}

// step attempts one paired multiplier update with i as the first index.
// It reports whether alpha and bias were committed.
func (s *smoSolver) step(i int) bool {
	n := len(s.x)
	alphaI := s.state.alpha[i]
	yI := s.y[i]
	errI := s.outputIndex(i) - yI

	// KKT violation test within tolerance: only examples that can still
	// move inside the box are candidates.
	r := yI * errI
	if !((r < -s.tol && alphaI < s.c) || (r > s.tol && alphaI > 0)) {
		return false
	}

	// Second index drawn uniformly from the remaining ones.
	j := s.rng.Intn(n - 1)
	if j >= i {
		j++
	}

	alphaJ := s.state.alpha[j]
	yJ := s.y[j]
	errJ := s.outputIndex(j) - yJ

	// Bounds of the feasible segment for the new alpha_j, from the box
	// and the equality constraint Σ alpha·y = 0.
	var lo, hi float64
	if yI == yJ {
		lo = math.Max(0, alphaI+alphaJ-s.c)
		hi = math.Min(s.c, alphaI+alphaJ)
	} else {
		lo = math.Max(0, alphaJ-alphaI)
		hi = math.Min(s.c, s.c+alphaJ-alphaI)
	}
	if lo >= hi {
		return false
	}

	kII := s.kernelAt(i, i)
	kJJ := s.kernelAt(j, j)
	kIJ := s.kernelAt(i, j)

	// Second derivative of the dual objective along the constraint line.
	// A non-positive eta is a non-improving direction.
	eta := kII + kJJ - 2*kIJ
	if eta <= 0 {
		return false
	}

	alphaJNew := errors.ClipValue(alphaJ+yJ*(errI-errJ)/eta, lo, hi)
	if math.Abs(alphaJNew-alphaJ) < s.tol {
		return false
	}
	alphaINew := alphaI + yI*yJ*(alphaJ-alphaJNew)

	// Bias candidates from the KKT stationarity conditions at i and j.
	// The candidate whose multiplier lands strictly inside the box is
	// exact; otherwise the average is used.
	deltaI := yI * (alphaINew - alphaI)
	deltaJ := yJ * (alphaJNew - alphaJ)
	b1 := s.state.bias - errI - deltaI*kII - deltaJ*kIJ
	b2 := s.state.bias - errJ - deltaI*kIJ - deltaJ*kJJ
	switch {
	case alphaINew > 0 && alphaINew < s.c:
		s.state.bias = b1
	case alphaJNew > 0 && alphaJNew < s.c:
		s.state.bias = b2
	default:
		s.state.bias = (b1 + b2) / 2
	}

	s.state.alpha[i] = alphaINew
	s.state.alpha[j] = alphaJNew
	return true
}
