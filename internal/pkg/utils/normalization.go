package utils

import "strings"

// NormalizeAnswer canonicalizes raw answer text before response-map
// lookup: lower-case, trim, collapse internal whitespace runs to a
// single space.
func NormalizeAnswer(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	return strings.Join(strings.Fields(lowered), " ")
}

// Platform extracts the platform tag from a form id. Form ids may be
// prefixed "platform:rest"; without a colon the platform is unknown.
func Platform(formID string) string {
	if idx := strings.Index(formID, ":"); idx > 0 {
		return formID[:idx]
	}
	return ""
}

// SafeFileComponent replaces path-hostile characters in an identifier
// so it can be used as a directory name in the mapping store.
func SafeFileComponent(id string) string {
	replaced := strings.ReplaceAll(id, "/", "_")
	return strings.ReplaceAll(replaced, ":", "_")
}
