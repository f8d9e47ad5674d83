package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/boolmin/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.Execute()
	return out.String(), err
}

func settingsFile(t *testing.T) (path, eqntott, espresso string) {
	t.Helper()
	eqntott, espresso = testutils.FakeTools(t)
	path = filepath.Join(t.TempDir(), "settings.cfg")
	body := "[Executables]\neqntott = " + eqntott + "\nespresso = " + espresso + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path, eqntott, espresso
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"minimize", "batch", "accepting", "serve", "mcp", "config", "version", "cache"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestConfigCommand(t *testing.T) {
	path, eqntott, espresso := settingsFile(t)

	out, err := execute(t, "", "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, eqntott)
	assert.Contains(t, out, espresso)
}

func TestMinimizeCommand_PassesToolFlags(t *testing.T) {
	path, eqntott, espresso := settingsFile(t)

	out, err := execute(t, "f = a | b", "minimize", "-", "--config", path, "--exact", "--reduce")
	require.NoError(t, err)
	assert.Contains(t, out, "f = a | b")
	assert.NotContains(t, out, ";")

	assert.Equal(t, []string{"-f -l -r /dev/stdin"}, testutils.RecordedArgs(t, eqntott))
	assert.Equal(t, []string{"-o eqntott -Dexact"}, testutils.RecordedArgs(t, espresso))
}

func TestMinimizeCommand_RequiresInput(t *testing.T) {
	_, err := execute(t, "", "minimize")
	assert.Error(t, err)
}

func TestCachePurgeCommand(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.Set("boolmin:result:abc", "f = a;")

	out, err := execute(t, "", "cache", "purge", "--redis-addr", mr.Addr())
	require.NoError(t, err)
	assert.Contains(t, out, "removed 1 cached results")
	assert.False(t, mr.Exists("boolmin:result:abc"))
}
