package audio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestVolumeConversion(t *testing.T) {
	tests := []struct {
		vol float64
		min float64
		max float64
	}{
		{1.0, -0.01, 0.01},   // Full volume is unattenuated
		{0.5, -1.01, -0.99},  // Half volume is one halving
		{0.25, -2.01, -1.99}, // Quarter volume is two halvings
		{0.0, -200, -90},     // Zero volume should be very negative
	}

	for _, tt := range tests {
		db := volumeToDb(tt.vol)
		if db < tt.min || db > tt.max {
			t.Errorf("volumeToDb(%f) = %f, want between %f and %f", tt.vol, db, tt.min, tt.max)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestNewManager(t *testing.T) {
	m := New()
	if m == nil {
		t.Fatal("New() returned nil")
	}

	if m.GetMasterVolume() != 1.0 {
		t.Errorf("default master volume = %f, want 1.0", m.GetMasterVolume())
	}
	if m.GetSFXVolume() != 1.0 {
		t.Errorf("default SFX volume = %f, want 1.0", m.GetSFXVolume())
	}
	if m.IsInitialized() {
		t.Error("new manager should not be initialized")
	}
}

func TestSetVolume(t *testing.T) {
	m := New()

	m.SetMasterVolume(0.5)
	if m.GetMasterVolume() != 0.5 {
		t.Errorf("master volume = %f, want 0.5", m.GetMasterVolume())
	}

	m.SetMasterVolume(2.0)
	if m.GetMasterVolume() != 1.0 {
		t.Errorf("master volume = %f, want 1.0 (clamped)", m.GetMasterVolume())
	}

	m.SetSFXVolume(-1.0)
	if m.GetSFXVolume() != 0.0 {
		t.Errorf("sfx volume = %f, want 0.0 (clamped)", m.GetSFXVolume())
	}
}

func TestLoadCuesSkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "sounds"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sounds", "step.wav"), []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}
	abs := filepath.Join(dir, "hit.wav")
	if err := os.WriteFile(abs, []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}

	m := New()
	n := m.LoadCues(map[string]string{
		"FootL": "sounds/step.wav",
		"Hit":   abs,
		"FootR": "sounds/missing.wav",
		"Empty": "",
	}, dir)

	if n != 2 {
		t.Errorf("loaded %d cues, want 2", n)
	}
	for _, name := range []string{"FootL", "Hit"} {
		if !m.HasCue(name) {
			t.Errorf("cue %q not loaded", name)
		}
	}
	for _, name := range []string{"FootR", "Empty"} {
		if m.HasCue(name) {
			t.Errorf("cue %q should not be loaded", name)
		}
	}

	// Replacing the table drops old cues
	m.LoadCues(map[string]string{}, dir)
	if m.HasCue("FootL") {
		t.Error("cue survived reload")
	}
}

func TestPlayWithoutDevice(t *testing.T) {
	m := New()
	m.LoadCues(map[string]string{}, "")

	// Must not panic or block
	m.PlayCue("FootL")

	if err := m.PlaySFX([]byte("RIFF")); err == nil {
		t.Error("PlaySFX without Init should fail")
	}
}
