package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/grapplerig/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReloadGate_SkipsUnchangedMtime(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scripts"), 0o755))
	rig := filepath.Join(dir, "rig.yaml")
	script := filepath.Join(dir, "scripts", "glide.tengo")
	require.NoError(t, os.WriteFile(rig, []byte("name: a\n"), 0o644))
	require.NoError(t, os.WriteFile(script, []byte("x := 1\n"), 0o644))

	gate := newReloadGate(prefabs.Loader{Dir: dir})

	assert.True(t, gate.Changed(rig))
	assert.False(t, gate.Changed(rig), "same mtime")
	assert.True(t, gate.Changed(script))
	assert.False(t, gate.Changed(script))

	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(rig, later, later))
	assert.True(t, gate.Changed(rig))
	assert.False(t, gate.Changed(rig))

	require.NoError(t, os.Remove(rig))
	assert.True(t, gate.Changed(rig), "removed files fall back to the embedded copy")
	require.NoError(t, os.WriteFile(rig, []byte("name: b\n"), 0o644))
	assert.True(t, gate.Changed(rig))
}
