package engineconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ondrachi/hyperchess/engineconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := engineconfig.Default()
	assert.Equal(t, "hyperchess", cfg.Name)
	assert.Equal(t, 5, cfg.InfiniteDepth)
	assert.Equal(t, 3, cfg.MovetimeDepth)
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := engineconfig.Load("")
	require.NoError(t, err)
	assert.Equal(t, engineconfig.Default(), cfg)
}

func TestLoadOverridesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.toml")
	contents := `
name = "testengine"
author = "tester"
infinite_depth = 7
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := engineconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "testengine", cfg.Name)
	assert.Equal(t, "tester", cfg.Author)
	assert.Equal(t, 7, cfg.InfiniteDepth)
	// Fields absent from the file keep their default.
	assert.Equal(t, 3, cfg.MovetimeDepth)
	assert.True(t, cfg.UseEndgameKingPST)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := engineconfig.Load("/nonexistent/path/engine.toml")
	assert.Error(t, err)
}
