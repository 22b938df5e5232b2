package neuro

type squarederror bool

func init() {
	if err := RegisterCostFunction(SquaredError().TypeString(), SquaredError); err != nil {
		panic(err)
	}
}

// SquaredError returns half the sum of squared differences between outputs and targets. It is the
// cost that TrainPattern descends, and the default used by Test.
func SquaredError() CostFunction {
	return squarederror(false)
}

func (c squarederror) TypeString() string {
	return "squared-error"
}

func (c squarederror) Cost(values, targets []float64) float64 {
	var totalErr float64
	for i := range values {
		d := values[i] - targets[i]
		totalErr += d * d
	}

	return totalErr / 2
}
