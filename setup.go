package neuro

import (
	"encoding/json"
	"math"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Config describes the shape and settings of a Network to construct. Only Input and Hidden are
// required; zero values of everything else take defaults.
type Config struct {
	// Input is the number of input Units. Must be >= 1.
	Input int `json:"input"`

	// Hidden lists the sizes of each hidden layer, in order from input to output. There must be
	// at least one, and each must be >= 1. In JSON a single number is one hidden layer.
	Hidden LayerSizes `json:"hidden"`

	// Output is the number of output Units. If 0, it is the same as Input.
	Output int `json:"output,omitempty"`

	// LearningRate scales every weight update. If 0, the package default (0.20, see SetDefault)
	// is used.
	LearningRate float64 `json:"learning_rate,omitempty"`

	// Activation is the registered name of the Activation used by every non-input Unit. If
	// empty, it is "logistic". It is ignored if Act is not nil.
	Activation string `json:"activation,omitempty"`

	// Act overrides Activation; this is how unregistered Activations (see Func) are given.
	Act Activation `json:"-"`

	// Init chooses the weight of each new edge. If nil, it is Uniform().
	Init Initializer `json:"-"`

	// Bias is given to every non-input Unit. It is never changed by training and is not
	// serialized.
	Bias float64 `json:"bias,omitempty"`
}

// LayerSizes is the list of hidden layer sizes in a Config. In JSON it may be given either as a
// list or as a single number, which is one hidden layer.
type LayerSizes []int

// UnmarshalJSON implements json.Unmarshaler, accepting a number or a list of numbers
func (s *LayerSizes) UnmarshalJSON(b []byte) error {
	if strings.TrimSpace(string(b)) == "null" {
		*s = nil
		return nil
	}

	var size int
	if err := json.Unmarshal(b, &size); err == nil {
		*s = LayerSizes{size}
		return nil
	}

	var sizes []int
	if err := json.Unmarshal(b, &sizes); err != nil {
		return errors.Errorf("hidden must be a number or a list of numbers, got %s", b)
	}

	*s = sizes
	return nil
}

// LoadConfig reads a JSON-encoded Config from the file at the given path.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "Can't load config, couldn't open %s", path)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err = dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "Can't load config, failed to decode JSON from %s", path)
	}

	return cfg, nil
}

// withDefaults returns a copy of the Config with all defaults filled in, or an error if the
// Config cannot describe a Network.
func (cfg Config) withDefaults() (Config, error) {
	if cfg.Input < 1 {
		return cfg, errors.Errorf("Input size must be >= 1 (%d)", cfg.Input)
	} else if len(cfg.Hidden) == 0 {
		return cfg, ErrNoHidden
	} else if cfg.Output < 0 {
		return cfg, errors.Errorf("Output size must be >= 0 (%d)", cfg.Output)
	}

	for i, s := range cfg.Hidden {
		if s < 1 {
			return cfg, errors.Errorf("Hidden layer %d must have size >= 1 (%d)", i, s)
		}
	}

	hidden := make([]int, len(cfg.Hidden))
	copy(hidden, cfg.Hidden)
	cfg.Hidden = hidden

	if cfg.Output == 0 {
		cfg.Output = cfg.Input
	}

	if cfg.LearningRate == 0 {
		cfg.LearningRate = defaultValue["learning-rate"]
	} else if math.IsNaN(cfg.LearningRate) || math.IsInf(cfg.LearningRate, 0) || cfg.LearningRate < 0 {
		return cfg, errors.Errorf("Learning rate is invalid (%v)", cfg.LearningRate)
	}

	if math.IsNaN(cfg.Bias) || math.IsInf(cfg.Bias, 0) {
		return cfg, errors.Errorf("Bias is invalid (%v)", cfg.Bias)
	}

	if cfg.Act == nil {
		act, err := ActivationByName(cfg.Activation)
		if err != nil {
			return cfg, err
		}
		cfg.Act = act
	}
	cfg.Activation = cfg.Act.TypeString()

	if cfg.Init == nil {
		cfg.Init = Uniform()
	}

	return cfg, nil
}

// New constructs a Network from the given Config. Weights are drawn from the Config's
// Initializer; every hidden layer is fed by the one before it (the first by the input layer) and
// the output layer by the last hidden layer.
//
// If New returns an error, the Config was invalid.
func New(cfg Config) (*Network, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, errors.Wrapf(err, "Can't construct network")
	}

	net := &Network{
		learningRate: cfg.LearningRate,
		act:          cfg.Act,
		init:         cfg.Init,
		bias:         cfg.Bias,
	}

	net.input = net.createLayer(cfg.Input, nil)

	prev := net.input
	for _, size := range cfg.Hidden {
		l := net.createLayer(size, prev)
		net.hidden = append(net.hidden, l)
		prev = l
	}

	net.output = net.createLayer(cfg.Output, prev)

	return net, nil
}

// NewAutoencoder constructs a Network that is meant to reproduce its input: unless the Config
// gives an Output at least as large as Input, Output is set to Input. More hidden layers can be
// added after training with AppendLayer, stacking the autoencoder.
func NewAutoencoder(cfg Config) (*Network, error) {
	if cfg.Output < cfg.Input {
		cfg.Output = cfg.Input
	}

	return New(cfg)
}

// createLayer adds 'size' new Units to the Network, each with the given predecessors (or as input
// Units, if preds is nil), returning their ids.
func (net *Network) createLayer(size int, preds []int) []int {
	layer := make([]int, size)
	for i := range layer {
		u := &Unit{
			id:      len(net.units),
			host:    net,
			isInput: preds == nil,
		}

		if !u.isInput {
			u.act = net.act
			u.bias = net.bias
		}

		u.setEdges(preds)

		net.units = append(net.units, u)
		layer[i] = u.id
	}

	return layer
}
