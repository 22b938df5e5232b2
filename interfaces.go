package neuro

import (
	"github.com/pkg/errors"
)

// CostFunction measures how far a set of outputs is from its targets. It is only used to report
// progress during Train and Test; TrainPattern always descends the squared error.
type CostFunction interface {
	// TypeString returns the name the CostFunction is registered under, e.g. "mse"
	TypeString() string

	// Cost can assume that both slices have the same length and that it is not zero.
	// arguments: actual values, target values.
	Cost(outs, targets []float64) float64
}

var costFunctions = map[string]func() CostFunction{}

// RegisterCostFunction makes a CostFunction available by name. Subpackages (such as costfuncs)
// register theirs when they are imported.
func RegisterCostFunction(name string, f func() CostFunction) error {
	if f == nil {
		return NilArgError{"CostFunction constructor"}
	} else if _, ok := costFunctions[name]; ok {
		return errors.Wrapf(ErrRegisterTaken, "Can't register CostFunction %q", name)
	} else if f() == nil {
		return errors.Wrapf(ErrRegisterNilReturn, "Can't register CostFunction %q", name)
	}

	costFunctions[name] = f
	return nil
}

// CostFunctionByName returns a new instance of the CostFunction registered under the given name
func CostFunctionByName(name string) (CostFunction, error) {
	f, ok := costFunctions[name]
	if !ok {
		return nil, errors.Errorf("No CostFunction registered with name %q", name)
	}

	return f(), nil
}
