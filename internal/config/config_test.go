package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "axe" {
		t.Errorf("expected axe model, got %s", cfg.Model)
	}
	if cfg.Dt != 0.01 {
		t.Errorf("expected dt 0.01, got %f", cfg.Dt)
	}
	if cfg.Duration != 1.0 {
		t.Errorf("expected duration 1.0, got %f", cfg.Duration)
	}
	if cfg.InitState.Y != 2 || cfg.InitState.VX != 8 || cfg.InitState.Omega != -7 {
		t.Errorf("unexpected default throw: %+v", cfg.InitState)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Integrator = "rk45"
	cfg.InitState.Omega = -12
	cfg.Axe.Mass = 2.0

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Integrator != "rk45" {
		t.Errorf("expected rk45, got %s", loaded.Integrator)
	}
	if loaded.InitState.Omega != -12 {
		t.Errorf("expected omega -12, got %f", loaded.InitState.Omega)
	}
	if loaded.Axe.Mass != 2.0 {
		t.Errorf("expected mass 2.0, got %f", loaded.Axe.Mass)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetInitState(t *testing.T) {
	cfg := DefaultConfig()

	state := cfg.GetInitState()
	if len(state) != 6 {
		t.Fatalf("expected 6-component state, got %d", len(state))
	}
	want := []float64{0, 2, 2, 8, 4, -7}
	for i := range want {
		if state[i] != want[i] {
			t.Errorf("state[%d]: expected %f, got %f", i, want[i], state[i])
		}
	}

	cfg.Model = "projectile"
	state = cfg.GetInitState()
	if len(state) != 4 {
		t.Fatalf("expected 4-component state, got %d", len(state))
	}
	if state[2] != 8 || state[3] != 4 {
		t.Errorf("projectile state should drop theta and omega: %v", state)
	}
}

func TestBuildAxe(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Axe.Gravity = 3.7

	a := cfg.BuildAxe()
	if a.Gravity != 3.7 {
		t.Errorf("expected gravity 3.7, got %f", a.Gravity)
	}
	if a.BelowCOG != 0.6 || a.AboveCOG != 0.1 {
		t.Errorf("unexpected handle geometry: below=%f above=%f", a.BelowCOG, a.AboveCOG)
	}

	// Zero-valued fields fall back to defaults.
	cfg.Axe.Mass = 0
	a = cfg.BuildAxe()
	if a.Mass != 1.5 {
		t.Errorf("expected default mass, got %f", a.Mass)
	}
}

func TestPresets(t *testing.T) {
	p := GetPreset("axe", "classic")
	if p == nil {
		t.Fatal("classic preset missing")
	}
	if p.InitState.VX != 8 || p.InitState.Omega != -7 {
		t.Errorf("unexpected classic throw: %+v", p.InitState)
	}

	if GetPreset("axe", "nope") != nil {
		t.Error("expected nil for unknown preset")
	}
	if GetPreset("boat", "classic") != nil {
		t.Error("expected nil for unknown model")
	}

	names := ListPresets("axe")
	if len(names) == 0 {
		t.Error("expected axe presets")
	}
}
