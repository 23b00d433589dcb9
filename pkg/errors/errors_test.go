package errors

import (
	"strings"
	"testing"
)

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("SVC", "Predict")

	var notFitted *NotFittedError
	if !As(err, &notFitted) {
		t.Fatalf("expected NotFittedError, got %T", err)
	}
	if notFitted.ModelName != "SVC" || notFitted.Method != "Predict" {
		t.Errorf("unexpected fields: %+v", notFitted)
	}
	if !strings.Contains(err.Error(), "not fitted") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestDimensionError(t *testing.T) {
	err := NewDimensionError("SVC.Predict", 2, 3, 1)

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Fatalf("expected DimensionError, got %T", err)
	}
	if dimErr.Expected != 2 || dimErr.Got != 3 || dimErr.Axis != 1 {
		t.Errorf("unexpected fields: %+v", dimErr)
	}
	if !strings.Contains(err.Error(), "features") {
		t.Errorf("axis 1 message should mention features, got %q", err.Error())
	}

	rowErr := NewDimensionError("SVC.Fit", 4, 3, 0)
	if !strings.Contains(rowErr.Error(), "rows") {
		t.Errorf("axis 0 message should mention rows, got %q", rowErr.Error())
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("C", "must be positive", -1.0)

	var validationErr *ValidationError
	if !As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if validationErr.ParamName != "C" {
		t.Errorf("ParamName = %q, want C", validationErr.ParamName)
	}
	if !strings.Contains(err.Error(), "must be positive") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestModelErrorUnwrap(t *testing.T) {
	err := NewModelError("SVC.Fit", "empty data", ErrEmptyData)

	if !Is(err, ErrEmptyData) {
		t.Error("ModelError should unwrap to its cause")
	}
}

func TestConvergenceWarningMessage(t *testing.T) {
	w := NewConvergenceWarning("SVC", 1000, "")
	if !strings.Contains(w.Error(), "failed to converge after 1000 iterations") {
		t.Errorf("message = %q", w.Error())
	}

	custom := NewConvergenceWarning("SVC", 10, "try a larger C")
	if !strings.Contains(custom.Error(), "try a larger C") {
		t.Errorf("message = %q", custom.Error())
	}
}

func TestWarningHandler(t *testing.T) {
	var got error
	SetWarningHandler(func(w error) { got = w })
	defer SetWarningHandler(func(w error) {})

	warning := NewConvergenceWarning("SVC", 5, "")
	Warn(warning)

	if got == nil {
		t.Fatal("handler was not called")
	}
	var convWarn *ConvergenceWarning
	if !As(got, &convWarn) || convWarn.Iterations != 5 {
		t.Errorf("handler received %v", got)
	}
}

func TestZerologWarnFuncTakesPriority(t *testing.T) {
	handlerCalled := false
	zerologCalled := false
	SetWarningHandler(func(w error) { handlerCalled = true })
	SetZerologWarnFunc(func(w error) { zerologCalled = true })
	defer func() {
		SetZerologWarnFunc(nil)
		SetWarningHandler(func(w error) {})
	}()

	Warn(NewConvergenceWarning("SVC", 1, ""))

	if !zerologCalled {
		t.Error("zerolog warn func was not called")
	}
	if handlerCalled {
		t.Error("fallback handler should be skipped when zerolog is wired")
	}
}

func TestWrapPreservesType(t *testing.T) {
	base := NewNotFittedError("SVC", "Score")
	wrapped := Wrap(base, "scoring failed")

	var notFitted *NotFittedError
	if !As(wrapped, &notFitted) {
		t.Error("wrapping should preserve the underlying type")
	}
	if !strings.Contains(wrapped.Error(), "scoring failed") {
		t.Errorf("message = %q", wrapped.Error())
	}
}
