package neuro

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CorrectRound returns whether every output rounds to its target. It assumes len(outs) ==
// len(targets).
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		if math.Round(outs[i]) != targets[i] {
			return false
		}
	}

	return true
}

// CorrectHighest just returns whether or not the largest value in each is at the same index
func CorrectHighest(outs, targets []float64) bool {
	if len(outs) != len(targets) {
		return false
	} else if len(outs) == 0 {
		return true
	}

	return floats.MaxIdx(outs) == floats.MaxIdx(targets)
}

// TrainUntil returns a function that satisfies TrainArgs.RunCondition
func TrainUntil(maxIterations int) func(int) bool {
	return func(iteration int) bool {
		return iteration < maxIterations
	}
}

// Every returns a function that satisfies TrainArgs.SendStatus or TrainArgs.ShouldTest
// 'frequency' is in units of iterations
//
// this function is self-explanatory from viewing the source
func Every(frequency int) func(int) bool {
	if frequency < 1 {
		return func(int) bool { return false }
	}

	return func(iteration int) bool {
		return iteration%frequency == 0
	}
}
