package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sharnoff/neuro"
	"github.com/sharnoff/neuro/costfuncs"
	"github.com/sharnoff/neuro/store"
)

const (
	statusFrequency int = 8000
	testFrequency   int = 40000

	// name of the checkpoints in the database, if one is given
	checkpointName string = "xor"
)

var dataset = [][][]float64{
	{{0, 0}, {0}},
	{{0, 1}, {1}},
	{{1, 1}, {0}},
	{{1, 0}, {1}},
}

func format(r neuro.Result) string {
	kind := "status"
	if r.IsTest {
		kind = "test"
	}

	return fmt.Sprintf("%d, %s, %v, %v", r.Iteration, kind, r.Cost, r.Correct)
}

func train(net *neuro.Network, iterations int) {
	trainData, err := neuro.Data(dataset)
	if err != nil {
		panic(err.Error())
	}

	args := neuro.TrainArgs{
		TrainData:    trainData,
		TestData:     trainData,
		ShouldTest:   neuro.Every(testFrequency),
		SendStatus:   neuro.Every(statusFrequency),
		RunCondition: neuro.TrainUntil(iterations),
		IsCorrect:    neuro.CorrectRound,
		Cost:         costfuncs.MSE(),
		Update: func(r neuro.Result) {
			fmt.Println(format(r))
		},
	}

	fmt.Println("Starting training...")
	fmt.Println("Iteration, Kind, Cost, Percent")
	if err := net.Train(args); err != nil {
		panic(err.Error())
	}
	fmt.Println("Done training!")
}

func test(net *neuro.Network) {
	for _, d := range dataset {
		outs, err := net.Evaluate(d[0])
		if err != nil {
			panic(err.Error())
		}

		fmt.Printf("For input %v\t%v\n", d[0], outs)
	}
}

func main() {
	iterations := flag.Int("iterations", 400000, "Number of patterns to train on")
	learningRate := flag.Float64("rate", 0.20, "Learning rate")
	seed := flag.Int64("seed", 1, "Seed for the initial weights")
	path := flag.String("save", "xor-save/net.json", "Where to save the trained network")
	dbPath := flag.String("db", "", "Path to a checkpoint database (optional)")
	flag.Parse()

	if *iterations <= 0 {
		fmt.Printf("Error: number of iterations must be > 0 (%d)\n", *iterations)
		os.Exit(1)
	}

	fmt.Println("Setting up network...")
	net, err := neuro.New(neuro.Config{
		Input:        2,
		Hidden:       []int{2},
		Output:       1,
		LearningRate: *learningRate,
		Init:         neuro.Uniform().Seed(*seed),
	})
	if err != nil {
		panic(err.Error())
	}
	fmt.Println("Done!", net)

	train(net, *iterations)
	test(net)

	fmt.Println("Saving...")
	if err := net.Save(*path, true); err != nil {
		panic(err.Error())
	}

	fmt.Println("Loading...")
	if net, err = neuro.Load(*path); err != nil {
		panic(err.Error())
	}
	test(net)

	if *dbPath != "" {
		st, err := store.Open(*dbPath)
		if err != nil {
			panic(err.Error())
		}
		defer st.Close()

		id, err := st.Put(checkpointName, net)
		if err != nil {
			panic(err.Error())
		}
		fmt.Printf("Saved checkpoint %d to %s\n", id, *dbPath)
	}
}
