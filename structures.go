package neuro

// Network is the main structure: a layered perceptron that maps input vectors to output vectors
// and learns that mapping through TrainPattern. A Network is built with New or NewAutoencoder and
// is not safe for concurrent use.
type Network struct {
	// every Unit in the Network, stored such that its id is its index in this slice
	units []*Unit

	// the layers, as lists of Unit ids. Every Unit in a layer has the previous layer as its
	// predecessors; the input layer has none.
	input  []int
	hidden [][]int
	output []int

	learningRate float64

	// half the sum of the squared output error terms from the most recent call to TrainPattern
	lastErrorTerm float64

	act  Activation
	init Initializer

	// the bias given to every new non-input Unit
	bias float64

	// used to keep track of the current iteration during Train
	iter int

	// longIter counts every pattern the Network has been trained on, across calls to Train and
	// TrainPattern
	longIter int
}

// Units are the nodes of the Network. Each Unit owns the weights of the edges to its
// predecessors; the weight of an edge is therefore stored exactly once, on the successor side.
type Unit struct {
	// the index of the Unit in its host's list of units
	id int

	host *Network

	isInput bool

	// ids of the predecessors, in the same order as the layer they belong to
	preds []int

	// weights owned by this Unit, keyed by the id of the other endpoint
	edges map[int]float64

	bias float64

	// nil for input Units
	act Activation

	// the last value given by SetNetInput. For input Units this is also the output.
	netInput float64
}
