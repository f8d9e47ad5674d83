package equation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aretw0/boolmin/pkg/domain"
	mapset "github.com/deckarep/golang-set/v2"
)

// acceptingReplacer flattens a serialized record such as
// ({'INITACCEPTING': 'x&y', 'ACCEPTING': 'x|y'}) into eqntott statements.
var acceptingReplacer = strings.NewReplacer(
	":", " =",
	",", ";",
	"})", "",
	"({", "",
	"{", "",
	"}", "",
	"'", "",
	`"`, "",
)

var (
	acceptingRecord     = regexp.MustCompile(`\bACCEPTING\s*=[^;]*;`)
	initAcceptingRecord = regexp.MustCompile(`\bINITACCEPTING\s*=[^;]*;`)
)

// NormalizeAccepting strips the record markup and guarantees a trailing terminator.
func NormalizeAccepting(text string) string {
	out := strings.TrimSpace(acceptingReplacer.Replace(text))
	if !strings.HasSuffix(out, domain.Terminator) {
		out += domain.Terminator
	}
	return out
}

// ExtractAccepting returns every ACCEPTING statement followed by every INITACCEPTING statement.
// Repeated statements are kept once.
func ExtractAccepting(text string) ([]string, error) {
	normalized := NormalizeAccepting(text)

	found := append(
		acceptingRecord.FindAllString(normalized, -1),
		initAcceptingRecord.FindAllString(normalized, -1)...,
	)

	seen := mapset.NewThreadUnsafeSet[string]()
	records := make([]string, 0, len(found))
	for _, rec := range found {
		rec = strings.TrimSpace(rec)
		if seen.Add(rec) {
			records = append(records, rec)
		}
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w in %d bytes of input", domain.ErrNoAcceptingRecords, len(text))
	}
	return records, nil
}
