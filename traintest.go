package neuro

import (
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// Datum is a simple wrapper used to send training samples to the Network
type Datum struct {
	// Inputs is the input of the network. It must have the same size as that of the network's
	// inputs.
	Inputs []float64

	// Outputs is the expected output of the network, given the input.
	Outputs []float64
}

// Fits indicates whether or not a given Datum's dimensions match those of the Network, allowing
// it to be used for training or testing.
func (d Datum) Fits(net *Network) bool {
	return len(d.Inputs) == net.InputSize() && len(d.Outputs) == net.OutputSize()
}

// DataSupplier is the primary method of providing datasets to the Network, either for training or
// testing.
type DataSupplier interface {
	// Get returns the next piece of data, given the current iteration.
	Get(int) (Datum, error)

	// DoneTesting indicates whether or not the testing process has finished, given the number of
	// samples tested so far. This will only be called if the DataSupplier is actually used for
	// testing.
	DoneTesting(int) bool
}

// A wrapper for sending back the progress of the training or testing
type Result struct {
	// The iteration the result is being sent before
	Iteration int

	// Average cost, from TrainArgs.Cost (or the error term, if Cost is nil)
	Cost float64

	// The fraction correct, as per IsCorrect() from TrainArgs
	// 0 → 1
	Correct float64

	// The result is either from a test or a status update
	IsTest bool
}

// Progress allows a running call to Train to be observed, and stopped, from other goroutines.
// The zero value is ready to use. A Progress should only be given to one Train at a time.
type Progress struct {
	iter    atomic.Int64
	cost    atomic.Float64
	running atomic.Bool
	stop    atomic.Bool
}

// Iteration returns the number of patterns the current (or last) training run has completed
func (p *Progress) Iteration() int {
	return int(p.iter.Load())
}

// Cost returns the error term of the most recently trained pattern
func (p *Progress) Cost() float64 {
	return p.cost.Load()
}

// Running returns whether or not Train is currently using the Progress
func (p *Progress) Running() bool {
	return p.running.Load()
}

// Stop asks Train to return before its next iteration. It has no effect on a training run that
// starts after Train has already returned, because Train clears the request when it starts.
func (p *Progress) Stop() {
	p.stop.Store(true)
}

func (p *Progress) start() {
	p.iter.Store(0)
	p.stop.Store(false)
	p.running.Store(true)
}

type TrainArgs struct {
	TrainData DataSupplier

	// TestData is the source of cross-validation data while training. This can be nil if
	// ShouldTest is also nil
	TestData DataSupplier

	// ShouldTest indicates whether or not testing should be done before the current iteration.
	ShouldTest func(int) bool

	// SendStatus indicates whether or not to send back general information about the status of
	// the training since the last time 'true' was returned. SendStatus can be left nil to
	// represent an unconditional false.
	//
	// 'true' will be ignored on iteration 0.
	SendStatus func(int) bool

	// RunCondition will be called at each successive iteration to determine if training should
	// continue. Training will stop if 'false' is returned.
	RunCondition func(int) bool

	// IsCorrect returns whether or not the network outputs are correct, given the target outputs.
	// In order, it is given: outputs; targets.
	//
	// The length of both provided slices is guaranteed to be equal.
	IsCorrect func([]float64, []float64) bool

	// Cost is used to report the cost in status updates and tests. If nil, status updates report
	// the average error term from TrainPattern and tests use SquaredError.
	Cost CostFunction

	// Update is how testing and status updates are returned. If both ShouldTest and SendStatus
	// are nil, then Update can also be left nil.
	Update func(Result)

	// Progress, if not nil, is kept up to date throughout training.
	Progress *Progress
}

// Train repeatedly calls TrainPattern with data from args.TrainData until args.RunCondition
// returns false (or args.Progress is stopped). Each iteration trains exactly one Datum.
func (net *Network) Train(args TrainArgs) error {
	// handle error cases and set defaults
	{
		if args.Update == nil {
			args.Update = func(r Result) {}
		}

		if args.TrainData == nil {
			return NilArgError{"TrainData"}
		}

		if args.TestData == nil {
			if args.ShouldTest != nil {
				return errors.Errorf("TestData is nil but ShouldTest is not")
			}
			args.ShouldTest = func(i int) bool { return false }
		} else if args.ShouldTest == nil {
			args.ShouldTest = func(i int) bool { return false }
		}

		if args.SendStatus == nil {
			args.SendStatus = func(i int) bool { return false }
		}

		if args.RunCondition == nil {
			return NilArgError{"RunCondition"}
		}

		if args.IsCorrect == nil {
			args.IsCorrect = func(a, b []float64) bool { return false }
		}
	}

	if args.Progress != nil {
		args.Progress.start()
		defer args.Progress.running.Store(false)
	}

	net.iter = 0

	var statusCost, statusCorrect float64
	var statusSize int

	for {
		if args.SendStatus(net.iter) && net.iter != 0 && statusSize != 0 {
			args.Update(Result{
				Iteration: net.iter,
				Cost:      statusCost / float64(statusSize),
				Correct:   statusCorrect / float64(statusSize),
				IsTest:    false,
			})

			statusCost, statusCorrect = 0, 0
			statusSize = 0
		}

		if args.ShouldTest(net.iter) {
			cost, correct, err := net.Test(args.TestData, args.Cost, args.IsCorrect)
			if err != nil {
				return errors.Wrapf(err, "Testing on iteration %d failed", net.iter)
			}

			args.Update(Result{
				Iteration: net.iter,
				Cost:      cost,
				Correct:   correct,
				IsTest:    true,
			})
		}

		if !args.RunCondition(net.iter) {
			break
		} else if args.Progress != nil && args.Progress.stop.Load() {
			break
		}

		d, err := args.TrainData.Get(net.iter)
		if err != nil {
			return errors.Wrapf(err, "Failed to get training data on iteration %d", net.iter)
		}

		errTerm, err := net.TrainPattern(d)
		if err != nil {
			return errors.Wrapf(err, "Failed to train on iteration %d", net.iter)
		}

		// the outputs come from the stored net inputs, so these are still the values from
		// before the weights were adjusted
		outs := net.outputs()

		cost := errTerm
		if args.Cost != nil {
			cost = args.Cost.Cost(outs, d.Outputs)
		}

		statusCost += cost
		if args.IsCorrect(outs, d.Outputs) {
			statusCorrect += 1.0
		}
		statusSize++

		net.iter++

		if args.Progress != nil {
			args.Progress.cost.Store(errTerm)
			args.Progress.iter.Store(int64(net.iter))
		}
	}

	return nil
}

// Test evaluates the Network on every Datum from data until data.DoneTesting, returning the
// average cost (by cf, or SquaredError if cf is nil) and the fraction that isCorrect accepts.
// isCorrect may be nil, in which case the fraction is always 0.
func (net *Network) Test(data DataSupplier, cf CostFunction, isCorrect func([]float64, []float64) bool) (float64, float64, error) {
	if data == nil {
		return 0, 0, NilArgError{"Test data"}
	}

	if cf == nil {
		cf = SquaredError()
	}

	var avgCost, avgCorrect float64
	var testSize int

	for ; !data.DoneTesting(testSize); testSize++ {
		d, err := data.Get(testSize)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "Failed to get test sample %d", testSize)
		} else if len(d.Inputs) != len(net.input) {
			return 0, 0, errors.Wrapf(SizeMismatchError{len(net.input), len(d.Inputs), "inputs"},
				"Test sample %d does not fit Network", testSize)
		} else if len(d.Outputs) != len(net.output) {
			return 0, 0, errors.Wrapf(SizeMismatchError{len(net.output), len(d.Outputs), "targets"},
				"Test sample %d does not fit Network", testSize)
		}

		outs, err := net.Evaluate(d.Inputs)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "Failed to get Network outputs with test sample %d", testSize)
		}

		avgCost += cf.Cost(outs, d.Outputs)
		if isCorrect != nil && isCorrect(outs, d.Outputs) {
			avgCorrect += 1
		}
	}

	if testSize != 0 {
		avgCost /= float64(testSize)
		avgCorrect /= float64(testSize)
	}

	return avgCost, avgCorrect, nil
}

type internalSupplier struct {
	get         func(int) (Datum, error)
	doneTesting func(int) bool
}

func (s internalSupplier) Get(iter int) (Datum, error) {
	return s.get(iter)
}

func (s internalSupplier) DoneTesting(iter int) bool {
	return s.doneTesting(iter)
}

// Data converts a 3D dataset of float64 to a DataSupplier, which can be used for training or
// testing. dataset indexing is: [data index][inputs, outputs][values]. For training, the dataset
// is cycled through in order; for testing, each Datum is used once.
//
// N.B.: Data does not check if the data fit a certain network; that will be done during
// training/testing
func Data(dataset [][][]float64) (DataSupplier, error) {
	d := dataset
	if len(d) == 0 {
		return nil, errors.Errorf("dataset has no data (len == 0)")
	}

	// check we won't get indexes out of bounds
	for i := range d {
		if len(d[i]) < 2 {
			return nil, errors.Errorf("dataset lacks required data at index %d (len([%d]) < 2)", i, i)
		}
	}

	is := internalSupplier{
		get: func(iter int) (Datum, error) {
			i := iter % len(d)
			return Datum{d[i][0], d[i][1]}, nil
		},
		doneTesting: func(iter int) bool {
			return iter >= len(d)
		},
	}

	return is, nil
}
