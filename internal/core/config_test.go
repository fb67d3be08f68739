package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60", cfg.TickRate)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0 (clock seed)", cfg.Seed)
	}
}
