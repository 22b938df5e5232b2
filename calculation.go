package neuro

import (
	"github.com/pkg/errors"
)

// setInputs gives each input Unit its value. The length must already have been checked.
func (net *Network) setInputs(inputs []float64) {
	for i, id := range net.input {
		net.units[id].SetNetInput(inputs[i])
	}
}

// feed sets the net input of every Unit in the layer from the outputs of its predecessors
func (net *Network) feed(layer []int) {
	for _, id := range layer {
		u := net.units[id]

		sum := u.bias
		for _, p := range u.preds {
			sum += net.units[p].Output() * u.edges[p]
		}

		u.SetNetInput(sum)
	}
}

// forward runs the full forward pass, without any checks
func (net *Network) forward(inputs []float64) {
	net.setInputs(inputs)

	for _, l := range net.hidden {
		net.feed(l)
	}

	net.feed(net.output)
}

// outputs returns a copy of the current output values
func (net *Network) outputs() []float64 {
	outs := make([]float64, len(net.output))
	for i, id := range net.output {
		outs[i] = net.units[id].Output()
	}

	return outs
}

// Evaluate feeds the given inputs forward through the Network, returning the value of each output
// Unit. If the number of inputs is not equal to InputSize(), Evaluate returns type
// SizeMismatchError and the Network is left unchanged.
//
// Apart from the stored net input of each Unit, Evaluate does not change the Network.
func (net *Network) Evaluate(inputs []float64) ([]float64, error) {
	if len(inputs) != len(net.input) {
		return nil, SizeMismatchError{len(net.input), len(inputs), "inputs"}
	}

	net.forward(inputs)
	return net.outputs(), nil
}

// TrainPattern runs a single step of online gradient descent on the given Datum: it evaluates the
// inputs, backpropagates the error terms from the output layer to the first hidden layer, and only
// then adjusts every weight. It returns the new LastErrorTerm.
//
// If either the inputs or the targets have the wrong length, TrainPattern returns type
// SizeMismatchError before anything is changed.
func (net *Network) TrainPattern(d Datum) (float64, error) {
	if len(d.Inputs) != len(net.input) {
		return 0, errors.Wrapf(SizeMismatchError{len(net.input), len(d.Inputs), "inputs"}, "Can't train pattern")
	} else if len(d.Outputs) != len(net.output) {
		return 0, errors.Wrapf(SizeMismatchError{len(net.output), len(d.Outputs), "targets"}, "Can't train pattern")
	}

	net.forward(d.Inputs)

	// error terms, indexed by unit id
	deltas := net.deltas(d.Outputs)

	net.adjust(deltas)

	var sum float64
	for _, id := range net.output {
		sum += deltas[id] * deltas[id]
	}
	net.lastErrorTerm = sum / 2
	net.longIter++

	return net.lastErrorTerm, nil
}

// deltas calculates the error term of every non-input Unit, given the targets for the current
// outputs. Layers are done from the output backwards, each using only the error terms of the layer
// after it.
func (net *Network) deltas(targets []float64) []float64 {
	deltas := make([]float64, len(net.units))

	for j, id := range net.output {
		u := net.units[id]
		deltas[id] = (targets[j] - u.Output()) * u.Gradient()
	}

	next := net.output
	for l := len(net.hidden) - 1; l >= 0; l-- {
		for _, id := range net.hidden[l] {
			u := net.units[id]

			var sum float64
			for _, s := range next {
				// successors own the edges to their predecessors
				sum += deltas[s] * net.units[s].edges[id]
			}

			deltas[id] = u.Gradient() * sum
		}

		next = net.hidden[l]
	}

	return deltas
}

// adjust applies the weight changes for the given error terms to every non-input Unit. The
// outputs of predecessors are unaffected by changing weights, because they come from the stored
// net inputs.
func (net *Network) adjust(deltas []float64) {
	step := func(layer []int) {
		for _, id := range layer {
			u := net.units[id]
			for _, p := range u.preds {
				u.edges[p] += net.learningRate * deltas[id] * net.units[p].Output()
			}
		}
	}

	for _, l := range net.hidden {
		step(l)
	}

	step(net.output)
}
