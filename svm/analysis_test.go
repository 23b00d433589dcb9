package svm

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestSupportVectorAccessors(t *testing.T) {
	X, y := linearlySeparable()

	clf, err := NewSVC(WithKernel(LinearKernel()), WithRandomState(42))
	if err != nil {
		t.Fatalf("NewSVC() error = %v", err)
	}
	if err := clf.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	svs, err := clf.SupportVectors()
	if err != nil {
		t.Fatalf("SupportVectors() error = %v", err)
	}
	if len(svs) == 0 {
		t.Fatal("expected at least one support vector")
	}

	n, err := clf.NSupport()
	if err != nil {
		t.Fatalf("NSupport() error = %v", err)
	}
	if n != len(svs) {
		t.Errorf("NSupport() = %d, want %d", n, len(svs))
	}

	frac, err := clf.SupportFraction()
	if err != nil {
		t.Fatalf("SupportFraction() error = %v", err)
	}
	if want := float64(n) / 4.0; frac != want {
		t.Errorf("SupportFraction() = %v, want %v", frac, want)
	}

	report, err := clf.SupportReport()
	if err != nil {
		t.Fatalf("SupportReport() error = %v", err)
	}
	if report.Count != n || report.Fraction != frac {
		t.Errorf("SupportReport() = {Count: %d, Fraction: %v}, want {%d, %v}",
			report.Count, report.Fraction, n, frac)
	}

	// Returned vectors are copies: mutating them must not reach the model.
	svs[0].X[0] = 1e9
	fresh, _ := clf.SupportVectors()
	if fresh[0].X[0] == 1e9 {
		t.Error("SupportVectors() exposed internal state")
	}
}

func TestMarginWidthLinear(t *testing.T) {
	// The optimum for this data puts w = (0.5, 0.5), so the exact margin
	// width is 2/‖w‖ = 2√2.
	X, y := linearlySeparable()

	clf, err := NewSVC(WithKernel(LinearKernel()), WithC(1.0), WithRandomState(42))
	if err != nil {
		t.Fatalf("NewSVC() error = %v", err)
	}
	if err := clf.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	width, err := clf.MarginWidth()
	if err != nil {
		t.Fatalf("MarginWidth() error = %v", err)
	}

	// The approximate solver lands near but not exactly on the optimum.
	want := 2 * math.Sqrt2
	if width < want*0.5 || width > want*2.0 {
		t.Errorf("MarginWidth() = %v, want within a factor of 2 of %v", width, want)
	}
}

func TestMarginWidthNonlinear(t *testing.T) {
	X, y := xorDataset()

	clf, err := NewSVC(WithKernel(RBFKernel(10.0)), WithC(100.0), WithRandomState(42))
	if err != nil {
		t.Fatalf("NewSVC() error = %v", err)
	}
	if err := clf.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	width, err := clf.MarginWidth()
	if err != nil {
		t.Fatalf("MarginWidth() error = %v", err)
	}
	// On XOR every pair of opposite-class corners is at distance 1 or √2;
	// the nearest-opposite estimate must report the minimum.
	if math.Abs(width-1.0) > 1e-9 {
		t.Errorf("MarginWidth() = %v, want 1", width)
	}
}

func TestAnalysisRequiresFit(t *testing.T) {
	clf, err := NewSVC()
	if err != nil {
		t.Fatalf("NewSVC() error = %v", err)
	}

	if _, err := clf.SupportVectors(); err == nil {
		t.Error("SupportVectors() on untrained model should fail")
	}
	if _, err := clf.NSupport(); err == nil {
		t.Error("NSupport() on untrained model should fail")
	}
	if _, err := clf.SupportFraction(); err == nil {
		t.Error("SupportFraction() on untrained model should fail")
	}
	if _, err := clf.MarginWidth(); err == nil {
		t.Error("MarginWidth() on untrained model should fail")
	}
	if _, err := clf.SupportReport(); err == nil {
		t.Error("SupportReport() on untrained model should fail")
	}
}

func TestSupportFractionBounded(t *testing.T) {
	X := mat.NewDense(8, 2, []float64{
		-3, -3,
		-2.5, -2,
		-2, -2.5,
		-1.5, -1.5,
		1.5, 1.5,
		2, 2.5,
		2.5, 2,
		3, 3,
	})
	y := mat.NewDense(8, 1, []float64{0, 0, 0, 0, 1, 1, 1, 1})

	clf, err := NewSVC(WithKernel(LinearKernel()), WithRandomState(9))
	if err != nil {
		t.Fatalf("NewSVC() error = %v", err)
	}
	if err := clf.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	frac, err := clf.SupportFraction()
	if err != nil {
		t.Fatalf("SupportFraction() error = %v", err)
	}
	if frac <= 0 || frac > 1 {
		t.Errorf("SupportFraction() = %v, want in (0, 1]", frac)
	}
}
