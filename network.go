package neuro

import (
	"fmt"
	"strings"
)

// InputSize returns the number of expected input values to the Network.
func (net *Network) InputSize() int {
	return len(net.input)
}

// OutputSize returns the number of output values the Network produces.
func (net *Network) OutputSize() int {
	return len(net.output)
}

// HiddenSizes returns the size of each hidden layer, in order. The slice is a copy.
func (net *Network) HiddenSizes() []int {
	sizes := make([]int, len(net.hidden))
	for i, l := range net.hidden {
		sizes[i] = len(l)
	}

	return sizes
}

// NumLayers returns the number of hidden layers. It grows by one with every call to AppendLayer.
func (net *Network) NumLayers() int {
	return len(net.hidden)
}

// LearningRate returns the learning rate the Network was constructed with. It does not change.
func (net *Network) LearningRate() float64 {
	return net.learningRate
}

// LastErrorTerm returns half the sum of the squared output error terms from the most recent
// call to TrainPattern, or 0 if the Network has not been trained.
func (net *Network) LastErrorTerm() float64 {
	return net.lastErrorTerm
}

// Activation returns the Activation used by every non-input Unit
func (net *Network) Activation() Activation {
	return net.act
}

// Iter returns the number of patterns the Network has been trained on.
func (net *Network) Iter() int {
	return net.longIter
}

// ResetIter resets the Network's tracked number of iterations to the provided value. ResetIter
// will return ErrNegativeIter if the iteration given is less than zero.
func (net *Network) ResetIter(iter int) error {
	if iter < 0 {
		return ErrNegativeIter
	}

	net.longIter = iter
	return nil
}

func (net *Network) unitsOf(layer []int) []*Unit {
	us := make([]*Unit, len(layer))
	for i, id := range layer {
		us[i] = net.units[id]
	}

	return us
}

// Input returns the Units of the input layer, in order.
func (net *Network) Input() []*Unit {
	return net.unitsOf(net.input)
}

// Hidden returns the Units of the n'th hidden layer, in order. Index-out-of-bounds panics are
// allowed to go through.
func (net *Network) Hidden(n int) []*Unit {
	return net.unitsOf(net.hidden[n])
}

// Output returns the Units of the output layer, in order.
func (net *Network) Output() []*Unit {
	return net.unitsOf(net.output)
}

// Units returns every Unit in the Network, sorted by ID such that Units()[n] has id=n. The slice
// is a copy; it will not update if more layers are appended.
func (net *Network) Units() []*Unit {
	us := make([]*Unit, len(net.units))
	copy(us, net.units)
	return us
}

// String gives the dimensions of the Network, e.g.:
//	input: 2, hidden: [2, 3], output: 1
func (net *Network) String() string {
	sizes := make([]string, len(net.hidden))
	for i, l := range net.hidden {
		sizes[i] = fmt.Sprint(len(l))
	}

	return fmt.Sprintf("input: %d, hidden: [%s], output: %d", len(net.input), strings.Join(sizes, ", "), len(net.output))
}
