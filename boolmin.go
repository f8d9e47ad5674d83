package boolmin

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/aretw0/boolmin/pkg/adapters/process"
	"github.com/aretw0/boolmin/pkg/config"
	"github.com/aretw0/boolmin/pkg/domain"
	"github.com/aretw0/boolmin/pkg/equation"
	"github.com/aretw0/boolmin/pkg/ports"
)

// Minimizer is the high-level entry point for the boolmin library.
// It drives eqntott and espresso as subprocesses and restores the caller's
// naming and terminator conventions on their output.
type Minimizer struct {
	runner ports.ToolRunner
	cache  ports.ResultCache
	hooks  []process.Hooks
	logger *slog.Logger
	// commands identifies the executables in cache keys.
	commands []string
}

// Option defines a functional option for configuring the Minimizer.
type Option func(*Minimizer)

// WithRunner injects a custom ToolRunner, bypassing the settings-based process runner.
func WithRunner(r ports.ToolRunner) Option {
	return func(m *Minimizer) {
		m.runner = r
	}
}

// WithCache enables caching of raw espresso output.
func WithCache(c ports.ResultCache) Option {
	return func(m *Minimizer) {
		m.cache = c
	}
}

// WithHooks registers invocation hooks on the default process runner.
func WithHooks(h process.Hooks) Option {
	return func(m *Minimizer) {
		m.hooks = append(m.hooks, h)
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Minimizer) {
		m.logger = logger
	}
}

// New initializes a Minimizer from explicit settings.
// settings may be nil only when WithRunner is given.
func New(settings *config.Settings, opts ...Option) (*Minimizer, error) {
	m := &Minimizer{}
	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if settings != nil {
		for name, command := range settings.Commands() {
			m.commands = append(m.commands, name+"="+command)
		}
		sort.Strings(m.commands)
	}

	if m.runner == nil {
		if settings == nil {
			return nil, fmt.Errorf("settings are required when no custom runner is provided")
		}
		if err := settings.Validate(); err != nil {
			return nil, err
		}

		runnerOpts := []process.RunnerOption{
			process.WithRegistry(process.Registry(settings.Commands(), settings.Environment)),
			process.WithLogger(m.logger),
		}
		for _, h := range m.hooks {
			runnerOpts = append(runnerOpts, process.WithHooks(h))
		}
		m.runner = process.NewRunner(runnerOpts...)
	}

	return m, nil
}

// Minimize runs a single expression through eqntott and espresso.
// A missing name or terminator is injected for the tools and removed from the result.
func (m *Minimizer) Minimize(ctx context.Context, src domain.Source, flags domain.Flags) (domain.Result, error) {
	if strings.TrimSpace(src.Text) == "" {
		return domain.Result{}, fmt.Errorf("%w: empty expression", domain.ErrInvalidInput)
	}

	eq := equation.Prepare(src.Text)

	// An untouched file is handed to eqntott by path; anything else goes through stdin.
	path := ""
	if src.IsFile() && eq.Text == src.Text {
		path = src.Path
	}

	raw, err := m.pipe(ctx, eq, path, flags)
	if err != nil {
		return domain.Result{}, err
	}

	m.logger.Info("Minimized", "source", src.Name, "added_name", eq.AddedName, "added_terminator", eq.AddedTerminator)
	return domain.Result{Source: src.Name, Text: equation.Restore(raw, eq)}, nil
}

// MinimizeMany splits semicolon-terminated expressions and minimizes each in order.
// The first failure aborts the whole batch.
func (m *Minimizer) MinimizeMany(ctx context.Context, src domain.Source, flags domain.Flags) (domain.Result, error) {
	fragments := equation.Split(src.Text)
	if len(fragments) == 0 {
		return domain.Result{}, fmt.Errorf("%w: no expressions in %s", domain.ErrInvalidInput, src.Name)
	}

	result := domain.Result{Source: src.Name, Fragments: make([]string, 0, len(fragments))}
	var sb strings.Builder
	for i, frag := range fragments {
		res, err := m.Minimize(ctx, domain.Source{Name: src.Name, Text: frag}, flags)
		if err != nil {
			return domain.Result{}, fmt.Errorf("expression %d of %d: %w", i+1, len(fragments), err)
		}
		text := equation.StripNameLines(res.Text)
		result.Fragments = append(result.Fragments, text)
		sb.WriteString(text)
	}
	result.Text = sb.String()

	m.logger.Info("Minimized batch", "source", src.Name, "expressions", len(fragments))
	return result, nil
}

// MinimizeAccepting extracts ACCEPTING and INITACCEPTING records from serialized
// model-checking output and minimizes each, prefixing every result with the source name.
func (m *Minimizer) MinimizeAccepting(ctx context.Context, src domain.Source, flags domain.Flags) (domain.Result, error) {
	records, err := equation.ExtractAccepting(src.Text)
	if err != nil {
		return domain.Result{}, err
	}

	result := domain.Result{Source: src.Name, Fragments: make([]string, 0, len(records))}
	var sb strings.Builder
	for _, rec := range records {
		eq := equation.Prepare(rec)
		raw, err := m.pipe(ctx, eq, "", flags)
		if err != nil {
			return domain.Result{}, fmt.Errorf("record %q: %w", rec, err)
		}
		text := equation.RemoveFixups(equation.ReplaceNameLines(raw, src.Name), eq)
		result.Fragments = append(result.Fragments, text)
		sb.WriteString(text)
	}
	result.Text = sb.String()

	m.logger.Info("Minimized accepting records", "source", src.Name, "records", len(records))
	return result, nil
}

// pipe feeds eq to eqntott, pipes the PLA into espresso and returns espresso's raw output.
// When path is set eqntott reads that file instead of stdin.
func (m *Minimizer) pipe(ctx context.Context, eq domain.Equation, path string, flags domain.Flags) (string, error) {
	eqntottArgs := flags.EqntottArgs()
	espressoArgs := flags.EspressoArgs()
	key := cacheKey(m.commands, eqntottArgs, espressoArgs, eq.Text)

	// Diagnostic output describes one particular run and is never replayed.
	cache := m.cache
	if flags.Diagnostic() {
		cache = nil
	}

	if cache != nil {
		if val, ok, err := cache.Get(ctx, key); err != nil {
			m.logger.Warn("Cache lookup failed", "error", err)
		} else if ok {
			m.logger.Debug("Cache hit", "key", key)
			return val, nil
		}
	}

	var stdin []byte
	if path != "" {
		eqntottArgs = append(eqntottArgs, path)
	} else {
		eqntottArgs = append(eqntottArgs, domain.StdinPath)
		stdin = []byte(eq.Text)
	}

	pla, err := m.runner.Run(ctx, domain.ToolEqntott, eqntottArgs, stdin)
	if err != nil {
		return "", err
	}

	out, err := m.runner.Run(ctx, domain.ToolEspresso, espressoArgs, pla)
	if err != nil {
		return "", err
	}

	if cache != nil {
		if err := cache.Set(ctx, key, string(out)); err != nil {
			m.logger.Warn("Cache store failed", "error", err)
		}
	}
	return string(out), nil
}

func cacheKey(commands, eqntottArgs, espressoArgs []string, text string) string {
	h := sha256.New()
	for _, part := range [][]string{commands, {domain.ToolEqntott}, eqntottArgs, {domain.ToolEspresso}, espressoArgs, {text}} {
		for _, s := range part {
			h.Write([]byte(s))
			h.Write([]byte{0})
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
