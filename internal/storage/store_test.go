package storage

import (
	"strings"
	"testing"

	"github.com/san-kum/axesim/internal/dynamo"
)

func sampleResult() *dynamo.Result {
	return &dynamo.Result{
		States: []dynamo.State{
			{0, 2, 2, 8, 4, -7},
			{0.08, 2.04, 1.93, 8, 3.9, -7},
		},
		Times:   []float64{0, 0.01},
		Metrics: map[string]float64{"apex_height": 2.81},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := store.Save("axe", 0.01, 1.0, 42, "rk4", sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "axe_") {
		t.Errorf("run id should carry the model name, got %s", runID)
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Model != "axe" || meta.Integrator != "rk4" || meta.Seed != 42 {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if meta.Metrics["apex_height"] != 2.81 {
		t.Errorf("metrics not persisted: %+v", meta.Metrics)
	}

	states, times, err := store.LoadStates(runID)
	if err != nil {
		t.Fatalf("load states failed: %v", err)
	}
	if len(states) != 2 || len(times) != 2 {
		t.Fatalf("expected 2 rows, got %d states, %d times", len(states), len(times))
	}
	if len(states[0]) != 6 {
		t.Fatalf("expected 6 columns, got %d", len(states[0]))
	}
	if states[1][2] != 1.93 {
		t.Errorf("expected theta 1.93, got %f", states[1][2])
	}
}

func TestStoreList(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	if _, err := store.Save("axe", 0.01, 1.0, 1, "rk4", sampleResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreListMissingDir(t *testing.T) {
	store := New("/nonexistent/axesim-store")
	runs, err := store.List()
	if err != nil {
		t.Fatalf("list on missing dir should not fail: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStoreLoadUnknownRun(t *testing.T) {
	store := New(t.TempDir())
	if _, err := store.Load("axe_0"); err == nil {
		t.Error("expected error for unknown run")
	}
}

func TestExportJSON(t *testing.T) {
	var b strings.Builder
	if err := exportJSON(&b, "axe", "rk4", 0.01, 1.0, sampleResult()); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	out := b.String()
	for _, want := range []string{`"model": "axe"`, `"integrator": "rk4"`, `"steps": 2`, `"apex_height"`} {
		if !strings.Contains(out, want) {
			t.Errorf("export missing %s:\n%s", want, out)
		}
	}
}
