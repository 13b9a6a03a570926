// Package redact provides utilities for redacting sensitive information from strings
// before they are logged. Errors from the model service routinely embed its URL,
// host and port, and provider API keys; none of that should reach a log line verbatim.
package redact

import "regexp"

// Placeholders substituted for redacted content.
const (
	RedactedURLPlaceholder        = "[REDACTED_URL]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedStackTracePlaceholder = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order; each rule sees the output of the ones before it.
var rules = []rule{
	// Stack trace fragments
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), RedactedStackTracePlaceholder},
	// Google API keys
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`), RedactedKeyPlaceholder},
	// Bearer tokens
	{regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]+=*`), RedactedCredentialPlaceholder},
	// key=value style credentials
	{
		regexp.MustCompile(`(?i)(api[_-]?key|token|secret|password|passwd|key)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{6,}`),
		RedactedKeyPlaceholder,
	},
	// URLs, including any userinfo, query string and path
	{regexp.MustCompile(`(?i)\b[a-z][a-z0-9+.\-]*://[^\s"'<>]+`), RedactedURLPlaceholder},
	// File paths
	{regexp.MustCompile(`(/[\w.\-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\\s:]+(\\[^\\\s:]+)+`), RedactedPathPlaceholder},
	// IPv4 addresses with optional port
	{regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}(?::\d{1,5})?\b`), RedactedHostPlaceholder},
	// Host names with optional port
	{
		regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`),
		RedactedHostPlaceholder,
	},
	// localhost with port
	{regexp.MustCompile(`(?i)\blocalhost:\d{1,5}\b`), RedactedHostPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
