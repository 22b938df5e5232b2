package neuro

import (
	"fmt"

	"github.com/pkg/errors"
)

// String returns a short description of the Unit:
//	<Is Input, id: %d>
// for input Units, and
//	<id: %d, Activation: %s>
// otherwise. If given a Unit that is nil, String will return:
//	<nil>
func (u *Unit) String() string {
	if u == nil {
		return "<nil>"
	} else if u.isInput {
		return fmt.Sprintf("<Is Input, id: %d>", u.id)
	}

	return fmt.Sprintf("<id: %d, Activation: %s>", u.id, u.act.TypeString())
}

// ID returns the non-negative integer given to the Unit as a member of its Network. IDs are unique
// within Networks and never change, even as layers are appended.
func (u *Unit) ID() int {
	return u.id
}

// IsInput returns whether or not the Unit is in the input layer.
func (u *Unit) IsInput() bool {
	return u.isInput
}

// Bias returns the constant added to the Unit's net input.
func (u *Unit) Bias() float64 {
	return u.bias
}

// SetBias sets the constant added to the Unit's net input. Biases are never changed by training
// and are not serialized.
func (u *Unit) SetBias(b float64) {
	u.bias = b
}

// NetInput returns the value last stored by SetNetInput
func (u *Unit) NetInput() float64 {
	return u.netInput
}

// Predecessors returns a copy of the list of Units that feed into this one. It is empty for
// input Units.
func (u *Unit) Predecessors() []*Unit {
	ps := make([]*Unit, len(u.preds))
	for i, id := range u.preds {
		ps[i] = u.host.units[id]
	}

	return ps
}

// NumPredecessors returns the number of Units that feed into this one
func (u *Unit) NumPredecessors() int {
	return len(u.preds)
}

// SetNetInput stores x as the current net input of the Unit. For input Units, this is the value
// that will be output.
func (u *Unit) SetNetInput(x float64) {
	u.netInput = x
}

// Output returns the net input for input Units, and the Activation applied to the net input for
// all others.
func (u *Unit) Output() float64 {
	if u.isInput {
		return u.netInput
	}

	return u.act.Value(u.netInput)
}

// Gradient returns the derivative of the Unit's Activation at its current output. It is only
// meaningful for non-input Units; input Units give 1.
func (u *Unit) Gradient() float64 {
	if u.isInput {
		return 1
	}

	return u.act.Deriv(u.Output())
}

// checkPeer returns TypeMismatchError if the other Unit cannot share an edge with u
func (u *Unit) checkPeer(other *Unit) error {
	if other == nil || other.host != u.host {
		return TypeMismatchError{other}
	}

	return nil
}

// Edge returns the weight of the edge between u and other, regardless of which of the two owns
// it: u.Edge(other) == other.Edge(u). If other is nil or from another Network, Edge returns type
// TypeMismatchError; if the two are not connected, ErrNotConnected.
func (u *Unit) Edge(other *Unit) (float64, error) {
	if err := u.checkPeer(other); err != nil {
		return 0, err
	}

	if w, ok := u.edges[other.id]; ok {
		return w, nil
	} else if w, ok := other.edges[u.id]; ok {
		return w, nil
	}

	return 0, errors.Wrapf(ErrNotConnected, "Can't get edge between %v and %v", u, other)
}

// UpdateEdge sets the weight of the edge between u and other on whichever of the two owns it.
// Errors are the same as for Edge; on error nothing is changed.
func (u *Unit) UpdateEdge(other *Unit, weight float64) error {
	if err := u.checkPeer(other); err != nil {
		return err
	}

	if _, ok := u.edges[other.id]; ok {
		u.edges[other.id] = weight
	} else if _, ok := other.edges[u.id]; ok {
		other.edges[u.id] = weight
	} else {
		return errors.Wrapf(ErrNotConnected, "Can't update edge between %v and %v", u, other)
	}

	return nil
}

// Serialize returns the weights of the edges to each predecessor, in predecessor order. Input
// Units give an empty (non-nil) slice.
func (u *Unit) Serialize() []float64 {
	ws := make([]float64, len(u.preds))
	for i, p := range u.preds {
		ws[i] = u.edges[p]
	}

	return ws
}

// setEdges replaces the predecessors of the Unit, discarding all edges it owned and drawing a
// fresh weight from the host's Initializer for each new predecessor.
func (u *Unit) setEdges(preds []int) {
	u.preds = make([]int, len(preds))
	copy(u.preds, preds)

	u.edges = make(map[int]float64, len(preds))
	for _, p := range u.preds {
		u.edges[p] = u.host.init.Gen()
	}
}
