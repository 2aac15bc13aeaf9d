package coffee

import "strings"

// extractCode keeps only the indented code blocks of a literate source.
// Prose lines are blanked rather than removed so diagnostics keep the
// original line numbers.
func extractCode(src string) string {
	lines := strings.Split(src, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "    "):
			lines[i] = line[4:]
		case strings.HasPrefix(line, "\t"):
			lines[i] = line[1:]
		default:
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}
