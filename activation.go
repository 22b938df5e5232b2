package neuro

import (
	"math"

	"github.com/pkg/errors"
)

// Activation is the scalar function applied to the net input of every non-input Unit, paired
// with its derivative.
type Activation interface {
	// TypeString returns the name the Activation is registered under. It is what gets written
	// when a Network is serialized.
	TypeString() string

	// Value applies the function to the given net input
	Value(x float64) float64

	// Deriv returns the derivative of the function, expressed in terms of the function's output
	// (not its input). For the logistic function that is y*(1-y).
	Deriv(y float64) float64
}

type logistic int8

// Logistic returns the logistic sigmoid, 1/(1+e^-x). It is the default Activation.
func Logistic() Activation {
	return logistic(0)
}

func (a logistic) TypeString() string {
	return "logistic"
}

func (a logistic) Value(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func (a logistic) Deriv(y float64) float64 {
	return y * (1 - y)
}

type tanh int8

// Tanh returns the hyperbolic tangent as an Activation.
func Tanh() Activation {
	return tanh(0)
}

func (a tanh) TypeString() string {
	return "tanh"
}

func (a tanh) Value(x float64) float64 {
	return math.Tanh(x)
}

func (a tanh) Deriv(y float64) float64 {
	return 1 - y*y
}

type identity int8

// Identity returns an Activation that passes its input through unchanged
func Identity() Activation {
	return identity(0)
}

func (a identity) TypeString() string {
	return "identity"
}

func (a identity) Value(x float64) float64 {
	return x
}

func (a identity) Deriv(y float64) float64 {
	return 1
}

type funcPair struct {
	name  string
	value func(float64) float64
	deriv func(float64) float64
}

// Func builds an Activation out of an arbitrary function and its derivative (in terms of the
// output). It is the extension point for activations not provided by this package.
//
// Networks using a Func can be serialized, but will only be restored with the same Activation if
// a constructor for it has been given to RegisterActivation under the same name.
func Func(name string, value, deriv func(float64) float64) Activation {
	if value == nil {
		panic(NilArgError{"Activation function"})
	} else if deriv == nil {
		panic(NilArgError{"Activation derivative"})
	}

	return funcPair{name, value, deriv}
}

func (a funcPair) TypeString() string {
	return a.name
}

func (a funcPair) Value(x float64) float64 {
	return a.value(x)
}

func (a funcPair) Deriv(y float64) float64 {
	return a.deriv(y)
}

var activations = map[string]func() Activation{}

func init() {
	list := []func() Activation{Logistic, Tanh, Identity}

	for _, f := range list {
		if err := RegisterActivation(f().TypeString(), f); err != nil {
			panic(err)
		}
	}
}

// RegisterActivation makes an Activation available by name, which allows Networks that use it
// to be loaded from their serialized form. Names cannot be registered twice.
func RegisterActivation(name string, f func() Activation) error {
	if f == nil {
		return NilArgError{"Activation constructor"}
	} else if name == "" {
		return errors.Errorf(`Can't register Activation, name cannot be ""`)
	} else if _, ok := activations[name]; ok {
		return errors.Wrapf(ErrRegisterTaken, "Can't register Activation %q", name)
	}

	a := f()
	if a == nil {
		return errors.Wrapf(ErrRegisterNilReturn, "Can't register Activation %q", name)
	} else if a.TypeString() != name {
		return errors.Errorf("Can't register Activation %q, constructor gives %q", name, a.TypeString())
	}

	activations[name] = f
	return nil
}

// ActivationByName returns a new instance of the Activation registered under the given name. The
// empty name gives the default, Logistic.
func ActivationByName(name string) (Activation, error) {
	if name == "" {
		return Logistic(), nil
	}

	f, ok := activations[name]
	if !ok {
		return nil, errors.Errorf("No Activation registered with name %q", name)
	}

	return f(), nil
}
