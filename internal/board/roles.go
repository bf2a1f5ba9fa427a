package board

import (
	"strings"
	"unicode"
)

// DefaultExperienceLevel is assigned when a member's role prefix is not in
// the experience table.
const DefaultExperienceLevel = 10

// defaultExperience maps role prefixes to experience levels (years), taken
// from the backend's role personality profiles. Identities look like
// "chairperson" or "technical_expert_2"; the prefix is everything before
// the first underscore.
var defaultExperience = map[string]int{
	"chairperson": 12,
	"secretary":   8,
	"synthesizer": 10,
	"technical":   10,
	"ethical":     10,
	"user":        8,
	"pragmatist":  10,
	"innovator":   7,
	"devils":      8,
	"facilitator": 10,
	"futurist":    12,
	"strategic":   12,
	"financial":   8,
}

// RolePrefix returns the identity's role token: the substring before the
// first underscore, or the whole identity when it has none.
func RolePrefix(identity string) string {
	if idx := strings.IndexByte(identity, '_'); idx >= 0 {
		return identity[:idx]
	}
	return identity
}

// ExperienceLevel looks up the experience level for an identity by its role
// prefix. Overrides (typically from config) take precedence over the
// built-in table; unrecognized prefixes get DefaultExperienceLevel.
func ExperienceLevel(identity string, overrides map[string]int) int {
	prefix := RolePrefix(identity)

	if level, ok := overrides[prefix]; ok {
		return level
	}
	if level, ok := defaultExperience[prefix]; ok {
		return level
	}
	return DefaultExperienceLevel
}

// DisplayName renders an identity for humans: underscore separators become
// spaces and each word is capitalized ("chair_1" → "Chair 1").
func DisplayName(identity string) string {
	words := strings.Split(identity, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
