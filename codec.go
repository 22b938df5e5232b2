package neuro

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// Format names a textual interchange format that a Network can be serialized as
type Format string

// FormatJSON is the only supported Format
const FormatJSON Format = "json"

// Record is the full weight state of a Network, along with everything needed to rebuild its
// shape. The weights of each Unit are listed in the order of its predecessors, so a Record can
// only be restored into a Network with the same topology.
//
// Biases are not included.
type Record struct {
	LearningRate float64 `json:"learning_rate_param"`
	InputSize    int     `json:"input_size"`
	HiddenSize   []int   `json:"hidden_size"`
	OutputSize   int     `json:"output_size"`
	NumLayers    int     `json:"num_layers"`

	// one (empty) list for each input Unit
	InputLayer [][]float64 `json:"input_layer"`

	// [hidden layer][unit][predecessor]
	HiddenLayers [][][]float64 `json:"hidden_layers"`

	// [unit][predecessor]
	OutputLayer [][]float64 `json:"output_layer"`

	// Activation is left out for the default, "logistic"
	Activation string `json:"activation,omitempty"`
}

func serializeLayer(us []*Unit) [][]float64 {
	ws := make([][]float64, len(us))
	for i, u := range us {
		ws[i] = u.Serialize()
	}

	return ws
}

// Marshal returns the Record describing the Network's current state
func (net *Network) Marshal() Record {
	r := Record{
		LearningRate: net.learningRate,
		InputSize:    len(net.input),
		HiddenSize:   net.HiddenSizes(),
		OutputSize:   len(net.output),
		NumLayers:    len(net.hidden),
		InputLayer:   serializeLayer(net.Input()),
		HiddenLayers: make([][][]float64, len(net.hidden)),
		OutputLayer:  serializeLayer(net.Output()),
	}

	for i := range net.hidden {
		r.HiddenLayers[i] = serializeLayer(net.Hidden(i))
	}

	if name := net.act.TypeString(); name != Logistic().TypeString() {
		r.Activation = name
	}

	return r
}

// MarshalJSON implements json.Marshaler, encoding the Network's Record
func (net *Network) MarshalJSON() ([]byte, error) {
	return json.Marshal(net.Marshal())
}

// Serialize renders the Network's Record in the given Format. Anything other than FormatJSON gives
// type UnsupportedFormatError.
func (net *Network) Serialize(f Format) (string, error) {
	if f != FormatJSON {
		return "", UnsupportedFormatError{f}
	}

	b, err := net.MarshalJSON()
	if err != nil {
		return "", errors.Wrapf(err, "Can't serialize network")
	}

	return string(b), nil
}

// check returns a FormatError if the dimensions within the Record are not consistent
func (r Record) check() error {
	if r.NumLayers != len(r.HiddenSize) {
		return FormatError{"num_layers", "does not match the number of hidden sizes (" +
			strconv.Itoa(r.NumLayers) + " != " + strconv.Itoa(len(r.HiddenSize)) + ")"}
	} else if len(r.HiddenLayers) != len(r.HiddenSize) {
		return FormatError{"hidden_layers", "does not match the number of hidden sizes (" +
			strconv.Itoa(len(r.HiddenLayers)) + " != " + strconv.Itoa(len(r.HiddenSize)) + ")"}
	}

	// input_layer may be left out entirely, but if it is given it must match
	if r.InputLayer != nil {
		if len(r.InputLayer) != r.InputSize {
			return FormatError{"input_layer", "does not match input_size"}
		}
		for i := range r.InputLayer {
			if len(r.InputLayer[i]) != 0 {
				return FormatError{"input_layer", "input units cannot have weights"}
			}
		}
	}

	checkLayer := func(field string, layer [][]float64, size, numPreds int) error {
		if len(layer) != size {
			return FormatError{field, "has " + strconv.Itoa(len(layer)) + " units, expected " + strconv.Itoa(size)}
		}

		for i := range layer {
			if len(layer[i]) != numPreds {
				return FormatError{field, "unit " + strconv.Itoa(i) + " has " + strconv.Itoa(len(layer[i])) +
					" weights, expected " + strconv.Itoa(numPreds)}
			}
		}

		return nil
	}

	prev := r.InputSize
	for i, size := range r.HiddenSize {
		if err := checkLayer("hidden_layers["+strconv.Itoa(i)+"]", r.HiddenLayers[i], size, prev); err != nil {
			return err
		}
		prev = size
	}

	return checkLayer("output_layer", r.OutputLayer, r.OutputSize, prev)
}

// Unmarshal builds a new Network from a Record: first one of the right shape (with random
// weights), then every stored weight is copied into place, Unit by Unit and predecessor by
// predecessor.
func Unmarshal(r Record) (*Network, error) {
	if r.OutputSize < 1 {
		return nil, FormatError{"output_size", "must be >= 1"}
	}

	cfg := Config{
		Input:        r.InputSize,
		Hidden:       r.HiddenSize,
		Output:       r.OutputSize,
		LearningRate: r.LearningRate,
		Activation:   r.Activation,
	}

	// Fail on the config first, so that bad sizes are reported as such, not as mismatched layers
	if _, err := cfg.withDefaults(); err != nil {
		return nil, errors.Wrapf(err, "Can't restore network from record")
	} else if err := r.check(); err != nil {
		return nil, err
	}

	net, err := New(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't restore network from record")
	}

	restore := func(us []*Unit, ws [][]float64) error {
		for i, u := range us {
			for p, pred := range u.Predecessors() {
				if err := u.UpdateEdge(pred, ws[i][p]); err != nil {
					return err
				}
			}
		}

		return nil
	}

	for i := range net.hidden {
		if err := restore(net.Hidden(i), r.HiddenLayers[i]); err != nil {
			return nil, errors.Wrapf(err, "Can't restore hidden layer %d", i)
		}
	}

	if err := restore(net.Output(), r.OutputLayer); err != nil {
		return nil, errors.Wrapf(err, "Can't restore output layer")
	}

	return net, nil
}

// FromSerialization parses a JSON-serialized Network, as produced by Serialize, and restores it
// with Unmarshal.
func FromSerialization(s string) (*Network, error) {
	var r Record
	if err := json.Unmarshal([]byte(s), &r); err != nil {
		return nil, errors.Wrapf(err, "Can't restore network, failed to decode JSON")
	}

	return Unmarshal(r)
}
