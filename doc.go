// Package neuro provides small feedforward neural networks (multilayer perceptrons), trained one
// pattern at a time by backpropagation.
//
// Creating Networks
//
// Networks are built in one shot from a Config:
//
//		net, err := neuro.New(neuro.Config{Input: 2, Hidden: []int{2}, Output: 1})
//		if err != nil {
//			return err
//		}
//
// Every hidden layer is fed by the layer before it, and the output layer by the last hidden layer.
// Each Unit owns the weights of the edges to its predecessors, so every weight is stored exactly
// once; Unit.Edge looks it up from either side. New weights are drawn uniformly from [-1, 1] by
// default (see Uniform and SetDefault). Units use the logistic function unless the Config names
// another registered Activation, or gives one directly with Func.
//
// Training and Evaluating
//
// Training is done one Datum at a time:
//
//		errTerm, err := net.TrainPattern(neuro.Datum{Inputs: []float64{0, 1}, Outputs: []float64{1}})
//
// TrainPattern evaluates the inputs, computes the error term of every Unit from the output layer
// backwards, and only then adjusts the weights. There is no stopping rule built in; callers loop
// for as long as they like, or use Train with a DataSupplier and TrainArgs, which also reports
// progress. Evaluate gives the outputs for a set of inputs without training.
//
// Biases are fixed: they can be set with Config.Bias or Unit.SetBias, but are never adjusted
// during training and are not serialized.
//
// Saving and Loading
//
// A Network's weights can be written as JSON with Serialize, and restored with
// FromSerialization. For files:
//
//		func (net *Network) Save(path string, overwrite bool) error
//		func Load(path string) (*Network, error)
//
// The subpackage store keeps many such checkpoints in a SQLite database.
//
// Stacked Autoencoders
//
// NewAutoencoder builds a Network whose output layer is the same size as its input. After
// training, AppendLayer adds another hidden layer in front of the output layer, re-wiring the
// output layer to it.
package neuro
