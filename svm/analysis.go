package svm

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/svmgo/pkg/errors"
)

// SupportVectorReport summarizes the support vector set of a fitted
// classifier.
type SupportVectorReport struct {
	// Count is the number of support vectors.
	Count int
	// Fraction is Count divided by the number of training samples. A
	// fraction near 1 suggests overfitting or a hard dataset.
	Fraction float64
	// Vectors holds copies of the support vectors.
	Vectors []SupportVector
}

// SupportVectors returns copies of the fitted support vectors. Mutating
// the returned slice does not affect the classifier.
func (svc *SVC) SupportVectors() ([]SupportVector, error) {
	if !svc.state.IsFitted() {
		return nil, errors.NewNotFittedError("SVC", "SupportVectors")
	}
	out := make([]SupportVector, len(svc.supportVectors_))
	for i, sv := range svc.supportVectors_ {
		x := make([]float64, len(sv.X))
		copy(x, sv.X)
		out[i] = SupportVector{X: x, Alpha: sv.Alpha, Y: sv.Y}
	}
	return out, nil
}

// NSupport returns the number of support vectors.
func (svc *SVC) NSupport() (int, error) {
	if !svc.state.IsFitted() {
		return 0, errors.NewNotFittedError("SVC", "NSupport")
	}
	return len(svc.supportVectors_), nil
}

// SupportFraction returns the share of training samples retained as
// support vectors.
func (svc *SVC) SupportFraction() (float64, error) {
	if !svc.state.IsFitted() {
		return 0, errors.NewNotFittedError("SVC", "SupportFraction")
	}
	return float64(len(svc.supportVectors_)) / float64(svc.nSamples_), nil
}

// SupportReport returns the support vector summary in one call.
func (svc *SVC) SupportReport() (SupportVectorReport, error) {
	vectors, err := svc.SupportVectors()
	if err != nil {
		return SupportVectorReport{}, err
	}
	return SupportVectorReport{
		Count:    len(vectors),
		Fraction: float64(len(vectors)) / float64(svc.nSamples_),
		Vectors:  vectors,
	}, nil
}

// MarginWidth estimates the geometric margin of the fitted classifier.
//
// For the linear kernel the margin is exact: 2/‖w‖ with
// w = Σ alpha_i·y_i·x_i. For the other kernels the primal weight vector
// lives in feature space and is not directly available, so the estimate
// falls back to the smallest input-space distance between support
// vectors of opposite classes.
func (svc *SVC) MarginWidth() (float64, error) {
	if !svc.state.IsFitted() {
		return 0, errors.NewNotFittedError("SVC", "MarginWidth")
	}
	if svc.kernel_.Kind() == KernelLinear {
		return svc.linearMargin()
	}
	return svc.nearestOppositeMargin()
}

func (svc *SVC) linearMargin() (float64, error) {
	w := make([]float64, svc.nFeatures_)
	for _, sv := range svc.supportVectors_ {
		floats.AddScaled(w, sv.Alpha*sv.Y, sv.X)
	}
	norm := floats.Norm(w, 2)
	if norm == 0 {
		return 0, errors.NewValueError("SVC.MarginWidth", "degenerate weight vector (zero norm)")
	}
	return 2 / norm, nil
}

func (svc *SVC) nearestOppositeMargin() (float64, error) {
	min := math.Inf(1)
	found := false
	for _, a := range svc.supportVectors_ {
		if a.Y > 0 {
			continue
		}
		for _, b := range svc.supportVectors_ {
			if b.Y < 0 {
				continue
			}
			found = true
			if d := floats.Distance(a.X, b.X, 2); d < min {
				min = d
			}
		}
	}
	if !found {
		return 0, errors.NewValueError("SVC.MarginWidth",
			"cannot estimate margin: one class has no support vectors")
	}
	return min, nil
}
