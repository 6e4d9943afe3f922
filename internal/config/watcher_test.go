package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func waitFor(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := tempConfig(t, "[fold]\nlevel = 8")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	w, err := NewWatcher(cfg, zerolog.Nop(), WithReloadDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}
	defer func() { _ = w.Stop() }()

	if err := os.WriteFile(path, []byte("[fold]\nlevel = 2"), 0o644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	if !waitFor(3*time.Second, func() bool { return cfg.Fold().Level == 2 }) {
		t.Fatalf("config not reloaded, level still %d", cfg.Fold().Level)
	}
}

func TestWatcherSurvivesRenameReplace(t *testing.T) {
	path := tempConfig(t, "[fold]\nlevel = 8")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	w, err := NewWatcher(cfg, zerolog.Nop(), WithReloadDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}
	defer func() { _ = w.Stop() }()

	// Editors save by writing a temp file and renaming it into place.
	tmp := filepath.Join(filepath.Dir(path), "config.toml.tmp")
	if err := os.WriteFile(tmp, []byte("[fold]\nlevel = 3"), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("failed to rename: %v", err)
	}

	if !waitFor(3*time.Second, func() bool { return cfg.Fold().Level == 3 }) {
		t.Fatalf("config not reloaded after rename, level still %d", cfg.Fold().Level)
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	path := tempConfig(t, "[fold]\nlevel = 8")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	var reloads atomic.Int32
	cfg.OnChange(func(c Change) {
		if c.Type == ChangeReload {
			reloads.Add(1)
		}
	})

	w, err := NewWatcher(cfg, zerolog.Nop(), WithReloadDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}
	defer func() { _ = w.Stop() }()

	sibling := filepath.Join(filepath.Dir(path), "other.toml")
	if err := os.WriteFile(sibling, []byte("[fold]\nlevel = 1"), 0o644); err != nil {
		t.Fatalf("failed to write sibling: %v", err)
	}

	time.Sleep(100 * time.Millisecond)
	if got := reloads.Load(); got != 0 {
		t.Errorf("sibling write triggered %d reloads", got)
	}
	if cfg.Fold().Level != 8 {
		t.Errorf("level changed to %d", cfg.Fold().Level)
	}
}
