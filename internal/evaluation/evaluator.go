// Package evaluation decides correctness of free-text answers.
package evaluation

import "strings"

// Evaluate reports whether userAnswer matches referenceAnswer under a
// permissive containment heuristic: after trimming and lower-casing, either
// string containing the other counts as correct. An empty reference makes
// containment trivially true.
func Evaluate(userAnswer, referenceAnswer string) bool {
	user := normalize(userAnswer)
	ref := normalize(referenceAnswer)
	return strings.Contains(user, ref) || strings.Contains(ref, user)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
