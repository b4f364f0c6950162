package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TEXTLAB_HOST", "")
	t.Setenv("TEXTLAB_PORT", "")
	t.Setenv("TEXTLAB_DEBUG", "")
	t.Setenv("TEXTLAB_SEED", "")
	t.Setenv("TEXTLAB_MAX_UPLOAD_MB", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DebugMode {
		t.Fatal("expected debug off by default")
	}
	if cfg.Seed != 0 {
		t.Fatalf("expected unseeded default, got %d", cfg.Seed)
	}
	if cfg.MaxUploadMB != 10 {
		t.Fatalf("expected default upload cap 10, got %d", cfg.MaxUploadMB)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("expected addr :8080, got %q", cfg.Addr())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TEXTLAB_HOST", "127.0.0.1")
	t.Setenv("TEXTLAB_PORT", "9100")
	t.Setenv("TEXTLAB_DEBUG", "yes")
	t.Setenv("TEXTLAB_SEED", "42")
	cfg := Load()
	if cfg.Addr() != "127.0.0.1:9100" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
	if !cfg.DebugMode {
		t.Fatal("expected debug on")
	}
	if cfg.Seed != 42 {
		t.Fatalf("expected seed 42, got %d", cfg.Seed)
	}
}

func TestLoadMalformedValuesFallBack(t *testing.T) {
	t.Setenv("TEXTLAB_SEED", "not-a-number")
	t.Setenv("TEXTLAB_DEBUG", "maybe")
	cfg := Load()
	if cfg.Seed != 0 {
		t.Fatalf("expected fallback seed 0, got %d", cfg.Seed)
	}
	if cfg.DebugMode {
		t.Fatal("expected unknown bool value to read as false")
	}
}
