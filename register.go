package neuro

import (
	"math"

	"github.com/pkg/errors"
)

// default values, because 'default' is a keyword
var defaultValue = map[string]float64{
	"learning-rate": 0.20,
	"init-lower":    -1,
	"init-upper":    1,
}

// SetDefault sets the package-level defaults used when constructing Networks. The values that
// can be set are: "learning-rate", "init-lower", and "init-upper". Networks that have already
// been constructed are not affected.
func SetDefault(name string, value float64) error {
	if _, ok := defaultValue[name]; !ok {
		return errors.Errorf("Value with name %q does not exist", name)
	} else if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Errorf("Value is invalid (%v)", value)
	} else if name == "learning-rate" && value <= 0 {
		return errors.Errorf("Learning rate must be > 0 (%v)", value)
	}

	defaultValue[name] = value
	return nil
}

// SetDefault_Lazy simply calls SetDefault, but panics instead of returning an error
func SetDefault_Lazy(name string, value float64) {
	if err := SetDefault(name, value); err != nil {
		panic(err)
	}
}

// Default returns the current package default with the given name, and whether or not it exists.
func Default(name string) (float64, bool) {
	v, ok := defaultValue[name]
	return v, ok
}
