package testutils

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// FakeEqntott echoes its input between PLA-style header and trailer lines
// and appends its argv to eqntott.args next to the script.
const FakeEqntott = `#!/bin/sh
for a in "$@"; do last="$a"; done
echo "$@" >> "$(dirname "$0")/eqntott.args"
printf '.i 2\n.o 1\n'
cat "$last"
printf '\n.e\n'
`

// FakeEspresso prints a ".na" annotation followed by every assignment line of its input
// and appends its argv to espresso.args next to the script.
const FakeEspresso = `#!/bin/sh
echo "$@" >> "$(dirname "$0")/espresso.args"
input=$(cat)
name=$(printf '%s\n' "$input" | grep '=' | head -n 1 | sed 's/ *=.*//')
printf '.na %s\n' "$name"
printf '%s\n' "$input" | grep '='
`

// FailingTool writes to both streams and exits with status 3.
const FailingTool = `#!/bin/sh
cat > /dev/null
echo "partial output"
echo "syntax error near line 1" >&2
exit 3
`

// WriteScript writes an executable shell script into dir and returns its path.
// Tests relying on it are skipped where /bin/sh is unavailable.
func WriteScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures require a POSIX shell")
	}

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0755), "Failed to write script %s", name)
	return path
}

// FakeTools installs the fake eqntott and espresso into a temp dir and returns their paths.
func FakeTools(t *testing.T) (eqntott, espresso string) {
	t.Helper()
	dir := t.TempDir()
	return WriteScript(t, dir, "eqntott", FakeEqntott), WriteScript(t, dir, "espresso", FakeEspresso)
}

// RecordedArgs returns the argv lines a fake tool logged, one per invocation.
func RecordedArgs(t *testing.T, script string) []string {
	t.Helper()
	data, err := os.ReadFile(script + ".args")
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}
