package blankline

import "regexp"

// Placeholder is the token carried inside marker comments. The random tail
// keeps it from colliding with comments that genuinely occur in source; it
// is stable across versions so tooling can match it.
const Placeholder = "__BLANK_LINE_PLACEHOLDER_R9XK2M4FQ7ZD83WVJT6H0__"

// Pattern matches one printed marker comment: a line holding nothing but
// optional indentation, the comment delimiter, and the placeholder token.
// A marker line erases completely, indentation included.
var Pattern = regexp.MustCompile(`(?m)^[ \t]*//[ \t]*` + regexp.QuoteMeta(Placeholder) + `[ \t]*\n`)

// Restore replaces every marker line in printed output with a blank line.
// N consecutive markers become N blank lines. Text without markers passes
// through unchanged.
func Restore(text string) string {
	return Pattern.ReplaceAllString(text, "\n")
}
