package costfuncs

import (
	"math"
	"testing"

	"github.com/sharnoff/neuro"
)

func TestCost(t *testing.T) {
	testCases := []struct {
		cf            neuro.CostFunction
		outs, targets []float64
		want          float64
	}{
		{MSE(), []float64{1, 0}, []float64{0, 0}, 0.5},
		{MSE(), []float64{0.5, 0.5, 0.5, 0.5}, []float64{0, 1, 0, 1}, 0.25},
		{L2(), []float64{3}, []float64{1}, 4},
		{Abs(), []float64{1, 0}, []float64{0, 0}, 0.5},
		{Abs(), []float64{-1, 2}, []float64{1, 1}, 1.5},
		{L1(), []float64{0.25}, []float64{0.75}, 0.5},
	}

	for _, tc := range testCases {
		if got := tc.cf.Cost(tc.outs, tc.targets); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("%s.Cost(%v, %v) = %v, expected %v", tc.cf.TypeString(), tc.outs, tc.targets, got, tc.want)
		}
	}
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{"mse", "abs", "squared-error"} {
		cf, err := neuro.CostFunctionByName(name)
		if err != nil {
			t.Errorf("CostFunctionByName(%q) failed: %v", name, err)
		} else if cf.TypeString() != name {
			t.Errorf("CostFunctionByName(%q) gave %q", name, cf.TypeString())
		}
	}

	if err := neuro.RegisterCostFunction("mse", func() neuro.CostFunction { return MSE() }); err == nil {
		t.Error("Expected error registering mse twice")
	}
}

func TestTestWithMSE(t *testing.T) {
	net, err := neuro.New(neuro.Config{Input: 1, Hidden: []int{1}, Output: 1, Init: neuro.Constant(0)})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	data, err := neuro.Data([][][]float64{{{1}, {1}}, {{0}, {0}}})
	if err != nil {
		t.Fatal(err)
	}

	// the output is always 0.5
	cost, _, err := net.Test(data, MSE(), nil)
	if err != nil {
		t.Fatalf("Test failed: %v", err)
	}
	if math.Abs(cost-0.25) > 1e-12 {
		t.Errorf("Expected cost 0.25, got %v", cost)
	}
}
