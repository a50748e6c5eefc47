package types

import "strings"

// skillSynonyms maps common skill aliases to their canonical lowercase form.
// Applied before any set comparison so that "ReactJS" and "react.js" count as
// the same skill on both sides of a match.
var skillSynonyms = map[string]string{
	// Programming languages
	"js":      "javascript",
	"ts":      "typescript",
	"py":      "python",
	"python3": "python",
	"golang":  "go",
	// Web frameworks
	"reactjs":  "react",
	"react.js": "react",
	"nodejs":   "node",
	"node.js":  "node",
	"vuejs":    "vue",
	"vue.js":   "vue",
	// Databases
	"postgres":   "postgresql",
	"mongo":      "mongodb",
	// Cloud and infrastructure
	"amazon web services": "aws",
	"google cloud":        "gcp",
	"microsoft azure":     "azure",
	"k8s":                 "kubernetes",
}

// NormalizeSkill returns the canonical lowercase form of a skill name.
// Empty and whitespace-only names normalize to "".
func NormalizeSkill(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := skillSynonyms[normalized]; ok {
		return canonical
	}
	return normalized
}

// NormalizeSkillSet normalizes every name in the slice and returns the result
// as a set, dropping empties and duplicates.
func NormalizeSkillSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		if normalized := NormalizeSkill(name); normalized != "" {
			set[normalized] = true
		}
	}
	return set
}
