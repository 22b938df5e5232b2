package costfuncs

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

type mse bool

// MSE returns the mean squared error cost function, which implements neuro.CostFunction.
func MSE() *mse {
	m := mse(false)
	return &m
}

// L2 is a proxy for MSE
func L2() *mse {
	return MSE()
}

func (m *mse) TypeString() string {
	return "mse"
}

// PrintOuts makes every call to Cost print the targets and outputs
func (m *mse) PrintOuts() *mse {
	*m = mse(true)
	return m
}

func (m *mse) NoPrint() *mse {
	*m = mse(false)
	return m
}

func (m *mse) Cost(outs, targets []float64) float64 {
	d := floats.Distance(outs, targets, 2)

	if bool(*m) {
		fmt.Println(targets, outs)
	}

	return d * d / float64(len(outs))
}
