package taxonomy

import (
	"regexp"
	"strings"
)

var reSeparators = regexp.MustCompile(`[\s-]+`)

// NormalizeSkill maps one free-text token onto a canonical skill identifier.
// Resolution order: exact alias, exact canonical id, alias substring scan,
// canonical substring scan, and finally the token itself as a custom skill.
// It never fails; unknown tokens are accepted, not rejected.
func NormalizeSkill(input string) string {
	normalized := reSeparators.ReplaceAllString(strings.TrimSpace(strings.ToLower(input)), "_")
	if normalized == "" {
		// Whitespace-only input; would otherwise hit every substring check.
		return ""
	}

	if skill, ok := aliasExact[normalized]; ok {
		return skill
	}
	if IsCanonical(normalized) {
		return normalized
	}

	// Fuzzy fallback: first alias that overlaps the token in either direction.
	for _, a := range aliases {
		if strings.Contains(normalized, a.key) || strings.Contains(a.key, normalized) {
			return a.skill
		}
	}

	// Then the first canonical id containing the token, or whose leading word
	// appears inside it.
	for _, skill := range validSkills {
		head, _, _ := strings.Cut(skill, "_")
		if strings.Contains(skill, normalized) || strings.Contains(normalized, head) {
			return skill
		}
	}

	return normalized
}

// Normalize maps a list of free-text skill tokens onto canonical identifiers,
// dropping empty entries and deduplicating while preserving first-occurrence
// order. The result may be shorter than the input but never contains
// duplicates; an all-empty input yields an empty list.
func Normalize(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		mapped := NormalizeSkill(s)
		if mapped == "" {
			continue
		}
		if _, ok := seen[mapped]; ok {
			continue
		}
		seen[mapped] = struct{}{}
		out = append(out, mapped)
	}
	return out
}
