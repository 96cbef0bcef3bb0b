package feedextract

import (
	"regexp"
	"strings"
)

// bulletSuffixRE matches a suffix introduced by a bullet or pipe separator
// with surrounding whitespace, e.g. "Jane Doe • Senior Engineer".
var bulletSuffixRE = regexp.MustCompile(`\s+[•|]\s+.*$`)

// SanitizeName repairs a raw identity string scraped from contaminated
// markup: exact self-concatenation ("AcmeAcme"), duplicated word sequences
// ("John Smith John Smith"), and trailing role/company contamination
// ("Jane Doe • Senior Engineer", "Jane Doe at Acme").
//
// SanitizeName is idempotent: applying it to its own output returns the
// output unchanged.
func SanitizeName(raw string) string {
	name := strings.TrimSpace(raw)

	// The trailing truncation steps can re-expose a duplicated prefix
	// ("JohnJohn at Acme"), so the pass runs until a fixpoint. Each
	// changing pass strictly shortens the string, so this terminates.
	for {
		next := sanitizeNamePass(name)
		if next == name {
			return name
		}
		name = next
	}
}

func sanitizeNamePass(name string) string {
	// 1. Strip any suffix beginning with a bullet or pipe separator.
	name = strings.TrimSpace(bulletSuffixRE.ReplaceAllString(name, ""))

	// 2. Exact self-concatenation: first half equals second half.
	if runes := []rune(name); len(runes) > 0 && len(runes)%2 == 0 {
		half := len(runes) / 2
		if string(runes[:half]) == string(runes[half:]) {
			name = strings.TrimSpace(string(runes[:half]))
		}
	}

	// 3. Duplicated word sequence: the word list splits into two equal,
	// identical halves.
	if words := strings.Fields(name); len(words) >= 2 && len(words)%2 == 0 {
		half := len(words) / 2
		if strings.Join(words[:half], " ") == strings.Join(words[half:], " ") {
			name = strings.Join(words[:half], " ")
		}
	}

	// 4. Generalized repetition: shortest prefix p with name == p repeated.
	if p, ok := shortestRepeatingPrefix(name); ok {
		name = strings.TrimSpace(p)
	}

	// 5. Residual contamination after the duplication checks.
	if i := strings.Index(name, "•"); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}
	if i := strings.Index(name, " at "); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}

	return strings.TrimSpace(name)
}

// shortestRepeatingPrefix finds the shortest proper prefix p such that the
// whole string equals p repeated two or more times.
func shortestRepeatingPrefix(s string) (string, bool) {
	n := len(s)
	for l := 1; l <= n/2; l++ {
		if n%l != 0 {
			continue
		}
		if strings.Repeat(s[:l], n/l) == s {
			return s[:l], true
		}
	}
	return "", false
}
