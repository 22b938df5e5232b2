package store

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/sharnoff/neuro"
)

func setupStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "db", "checkpoints.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func newNetwork(t *testing.T) *neuro.Network {
	t.Helper()

	net, err := neuro.New(neuro.Config{Input: 2, Hidden: []int{3}, Output: 1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	return net
}

func sameOutputs(t *testing.T, a, b *neuro.Network) {
	t.Helper()

	in := []float64{0.3, -0.7}
	want, _ := a.Evaluate(in)
	got, _ := b.Evaluate(in)

	if len(want) != len(got) {
		t.Fatalf("Different output sizes: %d != %d", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Errorf("Restored network gives %v, expected %v", got, want)
			return
		}
	}
}

func TestPutGet(t *testing.T) {
	s := setupStore(t)
	net := newNetwork(t)

	for i := 0; i < 25; i++ {
		if _, err := net.TrainPattern(neuro.Datum{Inputs: []float64{1, 0}, Outputs: []float64{1}}); err != nil {
			t.Fatal(err)
		}
	}

	id, err := s.Put("xor", net)
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	restored, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	sameOutputs(t, net, restored)
	if restored.Iter() != 25 {
		t.Errorf("Expected restored iteration 25, got %d", restored.Iter())
	}

	if _, err := s.Get(id + 100); errors.Cause(err) != ErrNoCheckpoint {
		t.Errorf("Expected ErrNoCheckpoint, got %v", err)
	}
}

func TestLatestAndList(t *testing.T) {
	s := setupStore(t)

	first, second := newNetwork(t), newNetwork(t)

	if _, err := s.Put("run", first); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, err := s.Put("other", first); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, err := s.Put("run", second); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	latest, err := s.Latest("run")
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	sameOutputs(t, second, latest)

	cps, err := s.List("run")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(cps) != 2 {
		t.Fatalf("Expected 2 checkpoints, got %d", len(cps))
	}
	if cps[0].ID >= cps[1].ID {
		t.Errorf("Checkpoints not listed oldest first: %d, %d", cps[0].ID, cps[1].ID)
	}
	for _, c := range cps {
		if c.Name != "run" || c.Shape != "input: 2, hidden: [3], output: 1" {
			t.Errorf("Unexpected checkpoint: %+v", c)
		}
	}

	if _, err := s.Latest("missing"); errors.Cause(err) != ErrNoCheckpoint {
		t.Errorf("Expected ErrNoCheckpoint, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := setupStore(t)
	net := newNetwork(t)

	for i := 0; i < 3; i++ {
		if _, err := s.Put("run", net); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}
	if _, err := s.Put("keep", net); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	n, err := s.Delete("run")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Expected 3 deleted checkpoints, got %d", n)
	}

	if cps, _ := s.List("run"); len(cps) != 0 {
		t.Errorf("Expected no checkpoints after Delete, got %d", len(cps))
	}
	if cps, _ := s.List("keep"); len(cps) != 1 {
		t.Errorf("Expected other checkpoints to remain, got %d", len(cps))
	}
}

func TestPutInvalid(t *testing.T) {
	s := setupStore(t)

	if _, err := s.Put("run", nil); err == nil {
		t.Error("Expected error for nil network")
	}
	if _, err := s.Put("", newNetwork(t)); err == nil {
		t.Error("Expected error for empty name")
	}
}
