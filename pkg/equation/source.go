package equation

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/boolmin/pkg/domain"
)

// Resolve turns a caller argument into a Source.
// An existing regular file is read; anything else is taken as a literal expression.
// Blank input fails with domain.ErrInvalidInput so no process is ever spawned for it.
func Resolve(arg string) (domain.Source, error) {
	if strings.TrimSpace(arg) == "" {
		return domain.Source{}, fmt.Errorf("%w: empty argument", domain.ErrInvalidInput)
	}

	info, err := os.Stat(arg)
	if err != nil || info.IsDir() {
		return Literal(arg)
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return domain.Source{}, fmt.Errorf("failed to read input file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return domain.Source{}, fmt.Errorf("%w: input file %s is empty", domain.ErrInvalidInput, arg)
	}

	return domain.Source{Name: arg, Path: arg, Text: string(data)}, nil
}

// Literal wraps expression text that must never be interpreted as a path.
func Literal(text string) (domain.Source, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Source{}, fmt.Errorf("%w: empty expression", domain.ErrInvalidInput)
	}
	return domain.Source{Name: domain.StdinName, Text: text}, nil
}
