package costfuncs

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

type abs bool

// Abs returns the Absolute Value cost function, which implements neuro.CostFunction.
func Abs() *abs {
	a := abs(false)
	return &a
}

// L1 is a proxy for Abs
func L1() *abs {
	return Abs()
}

func (a *abs) TypeString() string {
	return "abs"
}

func (a *abs) PrintOuts() *abs {
	*a = abs(true)
	return a
}

func (a *abs) NoPrint() *abs {
	*a = abs(false)
	return a
}

func (a *abs) Cost(outs, targets []float64) float64 {
	sum := floats.Distance(outs, targets, 1) / float64(len(outs))

	if bool(*a) {
		fmt.Println(targets, outs)
	}

	return sum
}
