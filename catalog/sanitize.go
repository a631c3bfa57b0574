package catalog

import (
	"strings"
)

// Sanitize prepares user-authored help text for embedding inside the string
// literals of a generated completion script. Completion menus are single
// line, so everything from the first newline on is dropped. Backticks and
// double quotes survive two rounds of shell interpretation (our templating
// plus the shell parsing the generated script) only behind a triple
// backslash; square brackets delimit candidate descriptions in the generated
// syntax and need a double backslash so they don't terminate the
// description early.
//
// Sanitize is applied exactly once, when the catalog is built. It is not a
// no-op on already-sanitized text.
func Sanitize(description string) string {
	if i := strings.IndexByte(description, '\n'); i >= 0 {
		description = description[:i]
	}
	description = strings.ReplaceAll(description, "`", "\\\\\\`")
	description = strings.ReplaceAll(description, `"`, "\\\\\\\"")
	description = strings.ReplaceAll(description, "[", "\\\\[")
	description = strings.ReplaceAll(description, "]", "\\\\]")
	return description
}
