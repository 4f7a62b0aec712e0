// Package updater rewrites outdated TensorFlow Java version references in
// documentation files (Maven and Gradle dependency snippets, plain version
// mentions, snapshot versions, and Java runtime requirement lines).
package updater

import (
	"fmt"
	"os"
	"regexp"
)

// Version mappings.
const (
	OldVersion  = "0.3.3"
	NewVersion  = "1.1.0"
	OldSnapshot = "0.4.0-SNAPSHOT"
	NewSnapshot = "1.2.0-SNAPSHOT"
)

type rule struct {
	pattern *regexp.Regexp
	replace string
	note    string
}

// versionRules are applied in order; the specific dependency forms come
// first so their change notes name the context they matched in.
var versionRules = []rule{
	{
		pattern: regexp.MustCompile(`<version>` + regexp.QuoteMeta(OldVersion) + `</version>`),
		replace: "<version>" + NewVersion + "</version>",
		note:    "Maven dependency version: " + OldVersion + " -> " + NewVersion,
	},
	{
		pattern: regexp.MustCompile(`version: '` + regexp.QuoteMeta(OldVersion) + `'`),
		replace: "version: '" + NewVersion + "'",
		note:    "Gradle dependency version: " + OldVersion + " -> " + NewVersion,
	},
	{
		pattern: regexp.MustCompile(`version: "` + regexp.QuoteMeta(OldVersion) + `"`),
		replace: `version: "` + NewVersion + `"`,
		note:    "Gradle dependency version: " + OldVersion + " -> " + NewVersion,
	},
	{
		pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(OldVersion) + `\b`),
		replace: NewVersion,
		note:    "version reference: " + OldVersion + " -> " + NewVersion,
	},
	{
		pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(OldSnapshot) + `\b`),
		replace: NewSnapshot,
		note:    "snapshot version: " + OldSnapshot + " -> " + NewSnapshot,
	},
}

// javaRequirement matches requirement phrasings like "Java 8 and above",
// "Java 8 or higher" and "Java 8+".
var javaRequirement = regexp.MustCompile(`(?i)(Java\s+)8(\s+(?:and\s+)?above|(?:\s+or\s+)?higher|\+)`)

// UpdateContent applies all rewrite rules to the given content. It returns
// the updated content and a note for each rule that changed something.
func UpdateContent(content string) (string, []string) {
	updated := content
	var changes []string

	for _, r := range versionRules {
		next := r.pattern.ReplaceAllString(updated, r.replace)
		if next != updated {
			changes = append(changes, "updated "+r.note)
			updated = next
		}
	}

	next := javaRequirement.ReplaceAllString(updated, "${1}11${2}")
	if next != updated {
		changes = append(changes, "updated Java requirement from 8+ to 11+")
		updated = next
	}

	return updated, changes
}

// ProcessFile rewrites a single file in place. In dry-run mode the file is
// left untouched. Returns true when the file changed (or would change).
func ProcessFile(path string, dryRun bool) (bool, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, nil, err
	}

	updated, changes := UpdateContent(string(data))
	if updated == string(data) {
		return false, nil, nil
	}

	if !dryRun {
		if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
			return false, nil, fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return true, changes, nil
}
