package rules

import "strings"

// Payload pattern tables for the application-layer detectors. Matching is
// case-insensitive substring search over the captured payload; any hit
// fires immediately, independent of the classifier's verdict for the
// same flow.
var (
	sqlInjectionPatterns = []string{
		"' or '1'='1",
		"' or 1=1",
		"or 1=1--",
		"union select",
		"union all select",
		"'; drop table",
		"admin'--",
		"' or ''='",
		"information_schema",
		"xp_cmdshell",
	}

	xssPatterns = []string{
		"<script",
		"</script>",
		"javascript:",
		"onerror=",
		"onload=",
		"onmouseover=",
		"document.cookie",
		"alert(",
		"<iframe",
	}

	commandInjectionPatterns = []string{
		"; cat /etc/passwd",
		"| cat /etc/passwd",
		"&& whoami",
		"; whoami",
		"; rm -rf",
		"$(",
		"`id`",
		"; wget ",
		"; curl ",
		"| nc ",
		"/bin/sh -i",
		"/bin/bash -i",
	}
)

// IsPatternLabel reports whether a rule label came from payload pattern
// matching rather than a windowed counter.
func IsPatternLabel(label string) bool {
	switch label {
	case LabelSQLInjection, LabelXSS, LabelCommandInjection:
		return true
	}
	return false
}

// matchPayload returns the label of the first pattern family matching the
// payload, or "" when nothing matches.
func matchPayload(payload []byte) string {
	if len(payload) == 0 {
		return ""
	}
	text := strings.ToLower(string(payload))
	for _, p := range sqlInjectionPatterns {
		if strings.Contains(text, p) {
			return LabelSQLInjection
		}
	}
	for _, p := range xssPatterns {
		if strings.Contains(text, p) {
			return LabelXSS
		}
	}
	for _, p := range commandInjectionPatterns {
		if strings.Contains(text, p) {
			return LabelCommandInjection
		}
	}
	return ""
}
