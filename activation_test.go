package neuro

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestActivationValues(t *testing.T) {
	testCases := []struct {
		a       Activation
		x, y, d float64
	}{
		{Logistic(), 0, 0.5, 0.25},
		{Logistic(), math.Log(3), 0.75, 0.1875},
		{Tanh(), 0, 0, 1},
		{Tanh(), 1, math.Tanh(1), 1 - math.Tanh(1)*math.Tanh(1)},
		{Identity(), -2.5, -2.5, 1},
	}

	for _, tc := range testCases {
		y := tc.a.Value(tc.x)
		if math.Abs(y-tc.y) > tolerance {
			t.Errorf("%s.Value(%v) = %v, expected %v", tc.a.TypeString(), tc.x, y, tc.y)
		}
		if d := tc.a.Deriv(y); math.Abs(d-tc.d) > tolerance {
			t.Errorf("%s.Deriv(%v) = %v, expected %v", tc.a.TypeString(), y, d, tc.d)
		}
	}
}

func TestActivationByName(t *testing.T) {
	for _, name := range []string{"logistic", "tanh", "identity"} {
		a, err := ActivationByName(name)
		if err != nil {
			t.Errorf("ActivationByName(%q) failed: %v", name, err)
		} else if a.TypeString() != name {
			t.Errorf("ActivationByName(%q) gave %q", name, a.TypeString())
		}
	}

	if a, err := ActivationByName(""); err != nil || a.TypeString() != "logistic" {
		t.Errorf("Expected logistic for empty name, got %v, %v", a, err)
	}

	if _, err := ActivationByName("no-such-thing"); err == nil {
		t.Error("Expected error for unregistered name")
	}
}

func TestRegisterActivation(t *testing.T) {
	if err := RegisterActivation("logistic", Logistic); errors.Cause(err) != ErrRegisterTaken {
		t.Errorf("Expected ErrRegisterTaken, got %v", err)
	}

	if err := RegisterActivation("test-nil", nil); err == nil {
		t.Error("Expected error for nil constructor")
	}

	nilReturn := func() Activation { return nil }
	if err := RegisterActivation("test-nil-return", nilReturn); errors.Cause(err) != ErrRegisterNilReturn {
		t.Errorf("Expected ErrRegisterNilReturn, got %v", err)
	}

	if err := RegisterActivation("", Identity); err == nil {
		t.Error("Expected error for empty name")
	}

	if err := RegisterActivation("test-wrong-name", Identity); err == nil {
		t.Error("Expected error for constructor with a different name")
	}

	if _, err := ActivationByName("test-wrong-name"); err == nil {
		t.Error("Failed registration was still registered")
	}
}

func TestFunc(t *testing.T) {
	square := Func("test-square", func(x float64) float64 { return x * x }, func(y float64) float64 { return 2 * math.Sqrt(y) })
	if square.TypeString() != "test-square" || square.Value(3) != 9 || square.Deriv(9) != 6 {
		t.Errorf("Unexpected behavior from Func activation")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for nil function")
		}
	}()
	Func("test-bad", nil, nil)
}

func TestInitializers(t *testing.T) {
	u := Uniform().Bounds(2, -3).Seed(1)
	for i := 0; i < 1000; i++ {
		if v := u.Gen(); v < -3 || v >= 2 {
			t.Fatalf("Uniform value %v outside of [-3, 2)", v)
		}
	}

	a, b := Uniform().Seed(42), Uniform().Seed(42)
	for i := 0; i < 10; i++ {
		if a.Gen() != b.Gen() {
			t.Fatal("Uniform with the same seed gave different values")
		}
	}

	if c := Constant(0.3); c.Gen() != 0.3 || c.Gen() != 0.3 {
		t.Error("Constant did not give its value")
	}
}
