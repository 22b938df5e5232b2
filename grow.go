package neuro

import (
	"github.com/pkg/errors"
)

// AppendLayer adds a new hidden layer of the given size between the current last hidden layer and
// the output layer. If size is <= 0, the new layer has the same size as the current last hidden
// layer.
//
// The new layer is fed by the previous last hidden layer. Every output Unit then drops its edges
// to the previous last hidden layer and is given fresh, randomly initialized edges to the new one,
// so after AppendLayer the output layer is again fed by the last hidden layer.
func (net *Network) AppendLayer(size int) error {
	if len(net.hidden) == 0 {
		return errors.Wrapf(ErrNoHidden, "Can't append layer")
	}

	last := net.hidden[len(net.hidden)-1]
	if size <= 0 {
		size = len(last)
	}

	l := net.createLayer(size, last)
	net.hidden = append(net.hidden, l)

	for _, id := range net.output {
		net.units[id].setEdges(l)
	}

	return nil
}
