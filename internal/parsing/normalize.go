// Package parsing provides text normalization and structured extraction for
// candidate and job documents.
package parsing

import "strings"

// NormalizeSkillToken lowers and trims a skill name into token form.
// Skill tokens are the canonical keys of skill maps and requirement sets.
func NormalizeSkillToken(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// NormalizeSkillTokens normalizes a list of skill names, dropping empties.
func NormalizeSkillTokens(skills []string) []string {
	tokens := make([]string, 0, len(skills))
	for _, skill := range skills {
		token := NormalizeSkillToken(skill)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// WordSet lower-cases a free-text line and splits it into a set of
// whitespace-delimited words. Membership tests against the set treat
// repeated words in one line as a single occurrence.
func WordSet(text string) map[string]bool {
	words := strings.Fields(strings.ToLower(text))
	set := make(map[string]bool, len(words))
	for _, word := range words {
		set[word] = true
	}
	return set
}
