package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/sharnoff/neuro"
	"github.com/sharnoff/neuro/store"
)

const (
	numPatterns int = 10
	patternSize int = 3

	// how often the status of a running training is printed
	statusInterval time.Duration = 250 * time.Millisecond
)

// randomPatterns returns bit patterns, each used as both input and target
func randomPatterns(rng *rand.Rand) [][][]float64 {
	dataset := make([][][]float64, numPatterns)
	for i := range dataset {
		p := make([]float64, patternSize)
		for j := range p {
			p[j] = float64(rng.Intn(2))
		}
		dataset[i] = [][]float64{p, p}
	}

	return dataset
}

// trainAndPrint trains the network on every pattern 'epochs' times, printing the error term while
// it runs, then prints the rounded output for each pattern
func trainAndPrint(net *neuro.Network, dataset [][][]float64, epochs int) {
	data, err := neuro.Data(dataset)
	if err != nil {
		panic(err.Error())
	}

	prog := new(neuro.Progress)
	done := make(chan error)

	go func() {
		done <- net.Train(neuro.TrainArgs{
			TrainData:    data,
			RunCondition: neuro.TrainUntil(epochs * len(dataset)),
			Progress:     prog,
		})
	}()

	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()

	for {
		select {
		case err := <-done:
			if err != nil {
				panic(err.Error())
			}

			fmt.Printf("\rFor iteration #%d, error term is %v.\n", prog.Iteration(), prog.Cost())

			for _, d := range dataset {
				outs, err := net.Evaluate(d[0])
				if err != nil {
					panic(err.Error())
				}

				for i := range outs {
					outs[i] = math.Round(outs[i])
				}
				fmt.Printf("For input: %v,\tOutput: %v\n", d[0], outs)
			}
			return
		case <-ticker.C:
			fmt.Printf("\rFor iteration #%d, error term is %v.", prog.Iteration(), prog.Cost())
		}
	}
}

func main() {
	epochs := flag.Int("epochs", 10000, "Number of passes over the patterns, before and after appending")
	appendSize := flag.Int("append", patternSize, "Size of the appended hidden layer (0 for the same as the last)")
	configPath := flag.String("config", "", "JSON file with the network config (optional)")
	seed := flag.Int64("seed", 1, "Seed for the patterns and initial weights")
	dbPath := flag.String("db", "", "Path to a checkpoint database (optional)")
	flag.Parse()

	cfg := neuro.Config{Input: patternSize, Hidden: []int{2}}
	if *configPath != "" {
		var err error
		if cfg, err = neuro.LoadConfig(*configPath); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Init = neuro.Uniform().Seed(*seed)

	if cfg.Input != patternSize {
		fmt.Printf("Error: config input size must be %d (%d)\n", patternSize, cfg.Input)
		os.Exit(1)
	}

	net, err := neuro.NewAutoencoder(cfg)
	if err != nil {
		panic(err.Error())
	} else if net.OutputSize() != patternSize {
		fmt.Printf("Error: config output size must be %d (%d)\n", patternSize, net.OutputSize())
		os.Exit(1)
	}

	var st *store.Store
	if *dbPath != "" {
		if st, err = store.Open(*dbPath); err != nil {
			panic(err.Error())
		}
		defer st.Close()
	}

	checkpoint := func() {
		if st == nil {
			return
		}

		if _, err := st.Put("autoencoder", net); err != nil {
			panic(err.Error())
		}
	}

	dataset := randomPatterns(rand.New(rand.NewSource(*seed)))

	fmt.Println("Training", net)
	trainAndPrint(net, dataset, *epochs)
	checkpoint()

	if err := net.AppendLayer(*appendSize); err != nil {
		panic(err.Error())
	}
	fmt.Println("\nAppending a new layer!", net)

	trainAndPrint(net, dataset, *epochs)
	checkpoint()
}
