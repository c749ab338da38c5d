// Package pathmap translates raw media paths into the canonical path space
// used by the transfer ledger.
package pathmap

import (
	"strings"
)

// Rule maps a source path prefix onto a canonical prefix. Prefixes are
// compared case-insensitively after slash normalization, so a Windows-style
// source prefix like "F:\emby" matches "f:/emby/...".
type Rule struct {
	Source    string
	Canonical string
}

// ParseRules parses newline-separated "source:canonical" mapping lines.
// The split point is the LAST colon on the line so that a Windows drive
// letter on the source side keeps its own colon. Lines without a colon and
// rules whose source prefix is empty after trimming are skipped. Rule order
// is preserved; Translate applies the first match.
func ParseRules(text string) []Rule {
	var rules []Rule

	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, ":") {
			continue
		}

		idx := strings.LastIndex(line, ":")
		source := normalize(strings.TrimSpace(line[:idx]))
		canonical := normalize(strings.TrimSpace(line[idx+1:]))

		if source == "" {
			continue
		}

		rules = append(rules, Rule{Source: source, Canonical: canonical})
	}

	return rules
}

// Translate maps a raw filesystem path onto the canonical path space.
// Backslashes are normalized to forward slashes first. The first rule whose
// source prefix matches (case-insensitively) wins; its canonical prefix is
// substituted and any resulting double slash collapsed. When no rule matches
// the slash-normalized path is returned unchanged.
func Translate(rawPath string, rules []Rule) string {
	if rawPath == "" {
		return rawPath
	}

	path := normalize(rawPath)

	for _, rule := range rules {
		if len(path) < len(rule.Source) {
			continue
		}
		if !strings.EqualFold(path[:len(rule.Source)], rule.Source) {
			continue
		}

		translated := rule.Canonical + path[len(rule.Source):]
		return strings.ReplaceAll(translated, "//", "/")
	}

	return path
}

func normalize(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}
