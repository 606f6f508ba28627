package config

import "testing"

func TestDefaultMatchesOriginalConstants(t *testing.T) {
	cfg := Default()
	if cfg.LogicalResolution != [2]int{320, 180} {
		t.Fatalf("unexpected default logical resolution: %v", cfg.LogicalResolution)
	}
	if cfg.ConsoleFontSize != 8 {
		t.Fatalf("unexpected default console font size: %d", cfg.ConsoleFontSize)
	}
	if cfg.Bindings == nil || len(cfg.Bindings.Keys("move_forward")) == 0 {
		t.Fatalf("default config should seed builtin input bindings")
	}
}

func TestLoadMalformedKeepsDefaults(t *testing.T) {
	cfg := Load([]byte("not json"))
	def := Default()
	if cfg.WindowSize != def.WindowSize || cfg.ConsoleFontSize != def.ConsoleFontSize {
		t.Fatalf("malformed config should fall back to defaults entirely")
	}
}

func TestLoadOverridesFields(t *testing.T) {
	data := []byte(`{"window_size": 5, "fullscreen": true, "logical_resolution": [640, 360]}`)
	cfg := Load(data)
	if cfg.WindowSize != 5 || !cfg.Fullscreen || cfg.LogicalResolution != [2]int{640, 360} {
		t.Fatalf("unexpected overridden config: %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.WindowSize = 4
	data, err := Save(cfg)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	cfg2 := Load(data)
	if cfg2.WindowSize != 4 {
		t.Fatalf("round trip lost WindowSize: %+v", cfg2)
	}
}
