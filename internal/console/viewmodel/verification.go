package viewmodel

import (
	"regexp"
	"strings"
)

// TestEntry is one structured result extracted from an unstructured
// verification log blob.
type TestEntry struct {
	Name   string
	Passed bool
}

// AllTestsPassedEntry is the synthetic entry emitted when a blob reports OK
// without any structured failures.
const AllTestsPassedEntry = "all tests passed"

const okMarker = "OK"

var (
	failLinePattern = regexp.MustCompile(`^\s*(FAIL|ERROR):\s*`)
	identifierToken = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)
)

// ParseVerificationLog extracts pass/fail test entries from raw test-runner
// output. It is a heuristic over unstructured text: each line starting with
// "FAIL:" or "ERROR:" contributes one failure named after the first bare
// identifier that follows the prefix; a blob with no such lines but an "OK"
// marker yields one synthetic all-passed entry; anything else yields nothing.
// Never errors, stateless, idempotent.
func ParseVerificationLog(blob string) []TestEntry {
	if strings.TrimSpace(blob) == "" {
		return nil
	}

	var entries []TestEntry
	for _, line := range strings.Split(blob, "\n") {
		loc := failLinePattern.FindStringIndex(line)
		if loc == nil {
			continue
		}
		name := identifierToken.FindString(line[loc[1]:])
		if name == "" {
			continue
		}
		entries = append(entries, TestEntry{Name: name, Passed: false})
	}

	if len(entries) == 0 && strings.Contains(blob, okMarker) {
		return []TestEntry{{Name: AllTestsPassedEntry, Passed: true}}
	}
	return entries
}
