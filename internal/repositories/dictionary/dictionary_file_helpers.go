package dictionary

import "strings"

func formatEntryLine(name, value string) string {
	return name + " = " + value + "\n"
}

// parseEntryLine splits a "name = value" line at the first '='. Comments,
// blank lines and lines with an empty side are rejected.
func parseEntryLine(line string) (name string, value string, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	i := strings.IndexByte(trimmed, '=')
	if i < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(trimmed[:i])
	value = strings.TrimSpace(trimmed[i+1:])
	if name == "" || value == "" {
		return "", "", false
	}
	return name, value, true
}
