package process_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aretw0/boolmin/internal/testutils"
	"github.com/aretw0/boolmin/pkg/adapters/process"
	"github.com/aretw0/boolmin/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Run(t *testing.T) {
	dir := t.TempDir()
	cat := testutils.WriteScript(t, dir, "cat", "#!/bin/sh\necho \"args: $@\" >&2\ncat\n")
	failing := testutils.WriteScript(t, dir, "failing", testutils.FailingTool)

	runner := process.NewRunner(process.WithRegistry(process.Registry(map[string]string{
		"cat":     cat,
		"failing": failing,
		"empty":   "",
	}, nil)))

	t.Run("Pipes Stdin To Stdout", func(t *testing.T) {
		out, err := runner.Run(context.Background(), "cat", []string{"-x"}, []byte("f = a & b;\n"))
		require.NoError(t, err)
		assert.Equal(t, "f = a & b;\n", string(out))
	})

	t.Run("Nil Stdin Reads Nothing", func(t *testing.T) {
		out, err := runner.Run(context.Background(), "cat", nil, nil)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("Nonzero Exit Carries Both Streams", func(t *testing.T) {
		_, err := runner.Run(context.Background(), "failing", nil, []byte("x"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrToolFailed)

		var toolErr *domain.ToolError
		require.True(t, errors.As(err, &toolErr))
		assert.Equal(t, "failing", toolErr.Tool)
		assert.Equal(t, 3, toolErr.ExitCode)
		assert.Contains(t, toolErr.Stdout, "partial output")
		assert.Contains(t, toolErr.Stderr, "syntax error")
	})

	t.Run("Fails For Unregistered Tool", func(t *testing.T) {
		_, err := runner.Run(context.Background(), "rm", []string{"-rf", "/"}, nil)
		assert.ErrorIs(t, err, domain.ErrToolNotConfigured)

		_, err = runner.Run(context.Background(), "empty", nil, nil)
		assert.ErrorIs(t, err, domain.ErrToolNotConfigured, "blank commands are not registered")
	})

	t.Run("Missing Executable Is Not A ToolError", func(t *testing.T) {
		r := process.NewRunner()
		r.Register("ghost", dir+"/does-not-exist")
		_, err := r.Run(context.Background(), "ghost", nil, nil)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrToolFailed)
	})
}

func TestRunner_RegisteredArgsComeFirst(t *testing.T) {
	dir := t.TempDir()
	echo := testutils.WriteScript(t, dir, "echo", "#!/bin/sh\necho \"$@\"\n")

	r := process.NewRunner()
	r.Register("echo", echo, "-o", "eqntott")

	out, err := r.Run(context.Background(), "echo", []string{"-s"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "-o eqntott -s\n", string(out))
}

func TestRunner_Hooks(t *testing.T) {
	dir := t.TempDir()
	ok := testutils.WriteScript(t, dir, "ok", "#!/bin/sh\nexit 0\n")
	failing := testutils.WriteScript(t, dir, "failing", testutils.FailingTool)

	var started []string
	var finished []error
	hooks := process.Hooks{
		OnStart: func(ctx context.Context, tool string) { started = append(started, tool) },
		OnFinish: func(ctx context.Context, tool string, elapsed time.Duration, err error) {
			assert.GreaterOrEqual(t, elapsed, time.Duration(0))
			finished = append(finished, err)
		},
	}

	r := process.NewRunner(process.WithHooks(hooks), process.WithHooks(process.Hooks{}))
	r.Register("ok", ok)
	r.Register("failing", failing)

	_, err := r.Run(context.Background(), "ok", nil, nil)
	require.NoError(t, err)
	_, err = r.Run(context.Background(), "failing", nil, []byte("x"))
	require.Error(t, err)

	assert.Equal(t, []string{"ok", "failing"}, started)
	require.Len(t, finished, 2)
	assert.NoError(t, finished[0])
	assert.ErrorIs(t, finished[1], domain.ErrToolFailed)
}

func TestRunner_Cancellation(t *testing.T) {
	dir := t.TempDir()
	slow := testutils.WriteScript(t, dir, "slow", "#!/bin/sh\nexec sleep 10\n")

	r := process.NewRunner()
	r.Register("slow", slow)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := r.Run(ctx, "slow", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, domain.ErrToolFailed)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRunner_Environment(t *testing.T) {
	t.Setenv("BOOLMIN_INHERITED", "inherited")
	dir := t.TempDir()
	printenv := testutils.WriteScript(t, dir, "printenv", "#!/bin/sh\nprintf '%s|%s' \"$BOOLMIN_LICENSE\" \"$BOOLMIN_INHERITED\"\n")

	r := process.NewRunner(process.WithRegistry(process.Registry(
		map[string]string{"printenv": printenv},
		map[string]string{"BOOLMIN_LICENSE": "academic"},
	)))

	out, err := r.Run(context.Background(), "printenv", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "academic|inherited", string(out), "settings variables are added to the inherited environment")
}
