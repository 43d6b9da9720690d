package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "docs")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("site:\n  base: /me/\n  public_dir: \"\"\nassets:\n  wasm: \"\"\n"), 0o644))

	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--config", dir, "build", "--out", out})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="/me/assets/site.css"`)
	assert.FileExists(t, filepath.Join(out, "assets", "site.css"))
	assert.FileExists(t, filepath.Join(out, "build.json"))
	assert.Contains(t, stdout.String(), "into "+out)
}

func TestBuildCommandRejectsBadOutDir(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", t.TempDir(), "build", "--out", "/"})

	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
