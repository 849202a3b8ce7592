package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/freeze/internal/app"
	"go.trai.ch/freeze/internal/core/domain"
)

func cleanConfig(t *testing.T) domain.BuildConfig {
	t.Helper()
	root := t.TempDir()

	cfg := domain.DefaultBuildConfig()
	cfg.Script = filepath.Join(root, "tool.py")
	cfg.OutputDir = filepath.Join(root, "dist")
	cfg.WorkDir = filepath.Join(root, "build")

	require.NoError(t, os.MkdirAll(filepath.Join(cfg.OutputDir, "nested"), 0o750))
	require.NoError(t, os.WriteFile(cfg.ArtifactPath(), []byte("MZ"), 0o600))
	require.NoError(t, os.MkdirAll(cfg.WorkDir, 0o750))
	require.NoError(t, os.WriteFile(cfg.Script, []byte("print('hi')\n"), 0o600))
	return cfg
}

func TestClean_RemovesPackagerOutputs(t *testing.T) {
	h := newHarness(t)
	cfg := cleanConfig(t)
	spec := cfg.SpecFile()
	require.NoError(t, os.WriteFile(spec, []byte("# spec"), 0o600))
	t.Cleanup(func() { _ = os.Remove(spec) })

	h.loader.EXPECT().Load("clean.yaml").Return(cfg, nil)

	err := h.app.Clean(context.Background(), app.CleanOptions{ConfigPath: "clean.yaml"})

	require.NoError(t, err)
	assert.NoDirExists(t, cfg.OutputDir)
	assert.NoDirExists(t, cfg.WorkDir)
	assert.NoFileExists(t, spec)
	assert.FileExists(t, cfg.Script, "sources are left alone")
}

func TestClean_MissingPathsAreIgnored(t *testing.T) {
	h := newHarness(t)
	cfg := domain.DefaultBuildConfig()
	root := t.TempDir()
	cfg.OutputDir = filepath.Join(root, "dist")
	cfg.WorkDir = ""

	h.loader.EXPECT().Load("clean.yaml").Return(cfg, nil)

	err := h.app.Clean(context.Background(), app.CleanOptions{ConfigPath: "clean.yaml"})

	require.NoError(t, err)
}

func TestClean_AllResetsHistory(t *testing.T) {
	h := newHarness(t)
	cfg := cleanConfig(t)

	h.loader.EXPECT().Load("clean.yaml").Return(cfg, nil)
	h.store.EXPECT().Reset().Return(nil)
	h.runLogs.EXPECT().Reset().Return(nil)

	err := h.app.Clean(context.Background(), app.CleanOptions{ConfigPath: "clean.yaml", All: true})

	require.NoError(t, err)
	assert.NoDirExists(t, cfg.OutputDir)
}

func TestClean_HistoryResetError(t *testing.T) {
	h := newHarness(t)
	cfg := cleanConfig(t)

	h.loader.EXPECT().Load("clean.yaml").Return(cfg, nil)
	h.store.EXPECT().Reset().Return(errors.New("permission denied"))
	h.runLogs.EXPECT().Reset().Return(nil)

	err := h.app.Clean(context.Background(), app.CleanOptions{ConfigPath: "clean.yaml", All: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reset build history")
}

func TestClean_ConfigError(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load("clean.yaml").Return(domain.BuildConfig{}, exitFailure(domain.ErrInvalidConfig))

	err := h.app.Clean(context.Background(), app.CleanOptions{ConfigPath: "clean.yaml"})

	require.ErrorIs(t, err, domain.ErrInvalidConfig)
}
