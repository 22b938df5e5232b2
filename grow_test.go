package neuro

import (
	"testing"
)

func TestAppendLayer(t *testing.T) {
	net, err := NewAutoencoder(Config{Input: 2, Hidden: []int{2}})
	if err != nil {
		t.Fatalf("NewAutoencoder failed: %v", err)
	}

	layers := net.NumLayers()
	oldLast := net.Hidden(0)
	numUnits := len(net.Units())

	if err := net.AppendLayer(0); err != nil {
		t.Fatalf("AppendLayer failed: %v", err)
	}

	if net.NumLayers() != layers+1 {
		t.Errorf("Expected %d hidden layers, got %d", layers+1, net.NumLayers())
	}

	if sizes := net.HiddenSizes(); len(sizes) != 2 || sizes[1] != 2 {
		t.Errorf("Expected new layer to default to the last hidden size 2, got %v", sizes)
	}

	if len(net.Units()) != numUnits+2 {
		t.Errorf("Expected %d units, got %d", numUnits+2, len(net.Units()))
	}

	checkConnectivity(t, net)

	// output units are no longer connected to the old last hidden layer
	for _, o := range net.Output() {
		for _, h := range oldLast {
			if _, err := o.Edge(h); err == nil {
				t.Errorf("Output %v is still connected to %v", o, h)
			}
		}
	}

	// the network still works
	if _, err := net.Evaluate([]float64{1, 1}); err != nil {
		t.Errorf("Evaluate failed after AppendLayer: %v", err)
	}
	if _, err := net.TrainPattern(Datum{Inputs: []float64{1, 1}, Outputs: []float64{1, 1}}); err != nil {
		t.Errorf("TrainPattern failed after AppendLayer: %v", err)
	}
	if _, err := net.Evaluate([]float64{1, 1}); err != nil {
		t.Errorf("Evaluate failed after training: %v", err)
	}
}

func TestAppendLayerSize(t *testing.T) {
	net, err := New(Config{Input: 3, Hidden: []int{2}, Output: 3})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for _, size := range []int{5, 1, -1} {
		if err := net.AppendLayer(size); err != nil {
			t.Fatalf("AppendLayer(%d) failed: %v", size, err)
		}
		checkConnectivity(t, net)
	}

	want := []int{2, 5, 1, 1}
	got := net.HiddenSizes()
	if len(got) != len(want) {
		t.Fatalf("Expected hidden sizes %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected hidden sizes %v, got %v", want, got)
			break
		}
	}

	for _, o := range net.Output() {
		if len(o.Serialize()) != 1 {
			t.Errorf("Expected output %v to have 1 weight, got %d", o, len(o.Serialize()))
		}
	}
}

func TestAppendLayerKeepsEarlierWeights(t *testing.T) {
	net, err := NewAutoencoder(Config{Input: 3, Hidden: []int{2}, Init: Uniform().Seed(11)})
	if err != nil {
		t.Fatalf("NewAutoencoder failed: %v", err)
	}

	before := net.Marshal()
	if err := net.AppendLayer(4); err != nil {
		t.Fatalf("AppendLayer failed: %v", err)
	}
	after := net.Marshal()

	for i := range before.HiddenLayers[0] {
		for j := range before.HiddenLayers[0][i] {
			if before.HiddenLayers[0][i][j] != after.HiddenLayers[0][i][j] {
				t.Errorf("Weight [0][%d][%d] changed from %v to %v", i, j, before.HiddenLayers[0][i][j], after.HiddenLayers[0][i][j])
			}
		}
	}

	if after.NumLayers != 2 || len(after.OutputLayer[0]) != 4 {
		t.Errorf("Unexpected record after AppendLayer: %d layers, %d output weights", after.NumLayers, len(after.OutputLayer[0]))
	}
}
