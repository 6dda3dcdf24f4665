package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsZeroConfig(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.WithTime || cfg.HistoryLimit != 0 {
		t.Errorf("zero config expected, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	want := &Config{WithTime: true, HistoryLimit: 10}
	if err := Save(dir, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.WithTime != want.WithTime || got.HistoryLimit != want.HistoryLimit {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, configFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("Load of corrupt file succeeded, want error")
	}
}

func TestGetHistoryLimit(t *testing.T) {
	tests := []struct {
		cfg  *Config
		want int
	}{
		{nil, DefaultHistoryLimit},
		{&Config{}, DefaultHistoryLimit},
		{&Config{HistoryLimit: 7}, 7},
	}
	for _, tt := range tests {
		if got := tt.cfg.GetHistoryLimit(); got != tt.want {
			t.Errorf("GetHistoryLimit(%+v) = %d, want %d", tt.cfg, got, tt.want)
		}
	}
}
