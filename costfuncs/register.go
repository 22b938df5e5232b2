// Package costfuncs provides the CostFunctions that can be used to report progress while training
// a neuro.Network. Importing the package registers each of them by name.
package costfuncs

import (
	"github.com/sharnoff/neuro"
)

func init() {
	list := map[string]func() neuro.CostFunction{
		MSE().TypeString(): func() neuro.CostFunction { return MSE() },
		Abs().TypeString(): func() neuro.CostFunction { return Abs() },
	}

	for s, f := range list {
		if err := neuro.RegisterCostFunction(s, f); err != nil {
			panic(err.Error())
		}
	}
}
