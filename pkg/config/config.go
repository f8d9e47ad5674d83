// Package config resolves the locations of the external executables from a settings file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/boolmin/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the settings file is looked up when none is given.
const DefaultPath = "Dependencies/settings.cfg"

// SectionExecutables names the section holding the tool paths.
const SectionExecutables = "Executables"

// SectionEnvironment names the optional section of variables added to both tools' environment.
const SectionEnvironment = "Environment"

// Executables maps each tool to the command used to run it.
type Executables struct {
	Eqntott  string `mapstructure:"eqntott" yaml:"eqntott" json:"eqntott"`
	Espresso string `mapstructure:"espresso" yaml:"espresso" json:"espresso"`
}

// Settings is the explicit configuration handed to the minimizer.
type Settings struct {
	// Path is the settings file the values were read from, if any.
	Path        string            `yaml:"-" json:"path,omitempty"`
	Executables Executables       `yaml:"executables" json:"executables"`
	Environment map[string]string `yaml:"environment,omitempty" json:"environment,omitempty"`
}

// New builds Settings directly from two commands, bypassing any file.
func New(eqntott, espresso string) *Settings {
	return &Settings{Executables: Executables{Eqntott: eqntott, Espresso: espresso}}
}

// Load reads the settings file at path.
// INI (.cfg, .ini or no extension), YAML and JSON are accepted.
// A missing file or a missing executable key is an error; there is no fallback.
func Load(path string) (*Settings, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat settings file: %w", err)
	}

	var (
		doc map[string]map[string]any
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err = loadStructured(path, yaml.Unmarshal)
	case ".json":
		doc, err = loadStructured(path, json.Unmarshal)
	default:
		doc, err = loadINI(path)
	}
	if err != nil {
		return nil, err
	}

	section, ok := doc[strings.ToLower(SectionExecutables)]
	if !ok {
		return nil, fmt.Errorf("%w: section %q not found", domain.ErrToolNotConfigured, SectionExecutables)
	}
	var exe Executables
	if err := decode(section, &exe); err != nil {
		return nil, fmt.Errorf("failed to decode %s section: %w", SectionExecutables, err)
	}

	var env map[string]string
	if section, ok := doc[strings.ToLower(SectionEnvironment)]; ok {
		if err := decode(section, &env); err != nil {
			return nil, fmt.Errorf("failed to decode %s section: %w", SectionEnvironment, err)
		}
	}

	// Anchor to an absolute directory so "./eqntott" never collapses into a bare $PATH name.
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve settings directory: %w", err)
	}
	s := &Settings{
		Path: path,
		Executables: Executables{
			Eqntott:  resolve(dir, exe.Eqntott),
			Espresso: resolve(dir, exe.Espresso),
		},
		Environment: env,
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func decode(input map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// Validate checks that both executables are set.
func (s *Settings) Validate() error {
	if s.Executables.Eqntott == "" {
		return fmt.Errorf("%w: missing key %q in section %q", domain.ErrToolNotConfigured, domain.ToolEqntott, SectionExecutables)
	}
	if s.Executables.Espresso == "" {
		return fmt.Errorf("%w: missing key %q in section %q", domain.ErrToolNotConfigured, domain.ToolEspresso, SectionExecutables)
	}
	return nil
}

// Commands returns the tool name to command mapping.
func (s *Settings) Commands() map[string]string {
	return map[string]string{
		domain.ToolEqntott:  s.Executables.Eqntott,
		domain.ToolEspresso: s.Executables.Espresso,
	}
}

// loadINI returns every section keyed by its lowercased name.
// Key case is preserved so environment variable names survive.
func loadINI(path string) (map[string]map[string]any, error) {
	file, err := ini.LoadSources(ini.LoadOptions{InsensitiveSections: true}, path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	doc := make(map[string]map[string]any)
	for _, sec := range file.Sections() {
		values := make(map[string]any)
		for k, v := range sec.KeysHash() {
			values[k] = v
		}
		doc[strings.ToLower(sec.Name())] = values
	}
	return doc, nil
}

func loadStructured(path string, unmarshal func([]byte, any) error) (map[string]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var raw map[string]any
	if err := unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	doc := make(map[string]map[string]any)
	for key, val := range raw {
		name := strings.ToLower(key)
		if name != strings.ToLower(SectionExecutables) && name != strings.ToLower(SectionEnvironment) {
			continue
		}
		section, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("section %q must be a mapping, got %T", key, val)
		}
		doc[name] = section
	}
	return doc, nil
}

// resolve anchors relative commands to the settings directory.
// Bare names that do not exist there are left for $PATH lookup.
func resolve(dir, value string) string {
	value = strings.TrimSpace(value)
	if value == "" || filepath.IsAbs(value) {
		return value
	}

	joined := filepath.Join(dir, value)
	if strings.ContainsAny(value, `/\`) {
		return joined
	}
	if _, err := os.Stat(joined); err == nil {
		return joined
	}
	return value
}
