package naming

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// IsCanonicalID reports whether s is a canonically hyphenated 128-bit
// identifier (8-4-4-4-12 hex digits). The check is purely syntactic: it
// never verifies the identifier exists. uuid.Parse also accepts braced,
// URN, and plain-hex forms, so the length guard rejects those.
func IsCanonicalID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// CleanFileName replaces every non-alphanumeric rune with an underscore
// to produce a filesystem-friendly name fragment.
func CleanFileName(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			out = append(out, r)
		} else {
			out = append(out, '_')
		}
	}
	return string(out)
}

// OutputFileName returns the markdown output file name for one processed
// lakehouse: delta_schemas_{workspace}_{lakehouse}_{timestamp}.md.
func OutputFileName(workspace, lakehouse string, t time.Time) string {
	return fmt.Sprintf("delta_schemas_%s_%s_%s.md",
		CleanFileName(workspace), CleanFileName(lakehouse), t.Format("20060102_150405"))
}
