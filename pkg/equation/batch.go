package equation

import (
	"strings"

	"github.com/aretw0/boolmin/pkg/domain"
	"github.com/samber/lo"
)

// Split breaks multi-equation text on the terminator and re-terminates every fragment.
// Blank fragments are dropped; order is preserved.
func Split(text string) []string {
	trimmed := strings.Trim(strings.TrimSpace(text), domain.Terminator)
	return lo.FilterMap(strings.Split(trimmed, domain.Terminator), func(part string, _ int) (string, bool) {
		part = strings.TrimSpace(part)
		return part + domain.Terminator, part != ""
	})
}
