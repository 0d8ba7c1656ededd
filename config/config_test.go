package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/domino14/heapsolver/game"
)

// chdir changes the working directory for the duration of the test.
// It stands in for t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := DefaultConfig()
	assert.NoError(t, cfg.Load())
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.Evolution)
	assert.Equal(t, []int{1, 3, 5, 7}, cfg.Bounds)

	b, err := cfg.GameBounds()
	assert.NoError(t, err)
	assert.Equal(t, game.DefaultBounds(), b)
}

func TestEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HEAPSOLVER_DEBUG", "true")
	t.Setenv("HEAPSOLVER_EVOLUTION", "true")

	cfg := DefaultConfig()
	assert.NoError(t, cfg.Load())
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.Evolution)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "debug: true\nbounds: [1, 1, 1, 1]\n"
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "heapsolver.yaml"), []byte(yaml), 0644))
	chdir(t, dir)

	cfg := DefaultConfig()
	assert.NoError(t, cfg.Load())
	assert.True(t, cfg.Debug)

	b, err := cfg.GameBounds()
	assert.NoError(t, err)
	assert.Equal(t, game.Bounds{1, 1, 1, 1}, b)
}

func TestGameBoundsValidation(t *testing.T) {
	cfg := &Config{Bounds: []int{1, 3, 5}}
	_, err := cfg.GameBounds()
	assert.Error(t, err)

	cfg = &Config{Bounds: []int{1, 3, 5, 300}}
	_, err = cfg.GameBounds()
	assert.Error(t, err)

	cfg = &Config{Bounds: []int{1, 3, 5, -1}}
	_, err = cfg.GameBounds()
	assert.Error(t, err)
}
