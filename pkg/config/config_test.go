package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	sheeterrors "github.com/go-drift/sheets/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "sheets.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestResolveDefaults(t *testing.T) {
	r, err := (&Config{}).Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.AnimationDuration != DefaultAnimationDuration {
		t.Errorf("AnimationDuration = %v, want %v", r.AnimationDuration, DefaultAnimationDuration)
	}
	if r.ReverseAnimationDuration != DefaultReverseAnimationDuration {
		t.Errorf("ReverseAnimationDuration = %v, want %v", r.ReverseAnimationDuration, DefaultReverseAnimationDuration)
	}
	if r.ScrimDuration != DefaultScrimDuration {
		t.Errorf("ScrimDuration = %v, want %v", r.ScrimDuration, DefaultScrimDuration)
	}
	if !r.Dismissible {
		t.Error("Dismissible should default to true")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("missing sheets.yaml should not be an error, got %v", err)
	}
	if cfg == nil {
		t.Fatal("expected empty config")
	}
}

func TestLoadAndResolve(t *testing.T) {
	dir := writeConfig(t, `
sheets:
  animation_duration: 150ms
  reverse_animation_duration: 100ms
  dismissible: false
scrim:
  duration: 80ms
  reverse_duration: 60ms
`)

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.AnimationDuration != 150*time.Millisecond {
		t.Errorf("AnimationDuration = %v, want 150ms", r.AnimationDuration)
	}
	if r.ReverseAnimationDuration != 100*time.Millisecond {
		t.Errorf("ReverseAnimationDuration = %v, want 100ms", r.ReverseAnimationDuration)
	}
	if r.ScrimDuration != 80*time.Millisecond {
		t.Errorf("ScrimDuration = %v, want 80ms", r.ScrimDuration)
	}
	if r.ScrimReverseDuration != 60*time.Millisecond {
		t.Errorf("ScrimReverseDuration = %v, want 60ms", r.ScrimReverseDuration)
	}
	if r.Dismissible {
		t.Error("Dismissible = true, want false")
	}
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	dir := writeConfig(t, `
sheets:
  animation_duration: 1s
`)

	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.AnimationDuration != time.Second {
		t.Errorf("AnimationDuration = %v, want 1s", r.AnimationDuration)
	}
	if r.ReverseAnimationDuration != DefaultReverseAnimationDuration {
		t.Errorf("ReverseAnimationDuration = %v, want default", r.ReverseAnimationDuration)
	}
	if !r.Dismissible {
		t.Error("Dismissible should keep its default")
	}
}

func TestInvalidDuration(t *testing.T) {
	dir := writeConfig(t, `
sheets:
  animation_duration: soon
`)

	_, err := Resolve(dir)
	if err == nil {
		t.Fatal("expected an error for an unparseable duration")
	}
	var serr *sheeterrors.Error
	if !stderrors.As(err, &serr) || serr.Kind != sheeterrors.KindConfig {
		t.Errorf("error = %v, want kind config", err)
	}
}

func TestNegativeDuration(t *testing.T) {
	dir := writeConfig(t, `
scrim:
  duration: -10ms
`)

	if _, err := Resolve(dir); err == nil {
		t.Fatal("expected an error for a negative duration")
	}
}

func TestMalformedYAML(t *testing.T) {
	dir := writeConfig(t, "sheets: [unclosed")

	_, err := LoadOptional(dir)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	var serr *sheeterrors.Error
	if !stderrors.As(err, &serr) || serr.Kind != sheeterrors.KindConfig {
		t.Errorf("error = %v, want kind config", err)
	}
}
