package utils

import "regexp"

// sensitiveKeyRe marks keys whose values must not appear in logs in full.
var sensitiveKeyRe = regexp.MustCompile(`(?i)(key|token|secret|password)`)

// MaskSensitive shortens value for log output when key names a credential.
//
// A value is masked when the key contains KEY, TOKEN, SECRET or PASSWORD
// (case-insensitive) and the value is longer than ten characters; the masked
// form keeps the first and last three characters, e.g. "ghp...f9a". Short
// values and non-sensitive keys pass through unchanged.
func MaskSensitive(key, value string) string {
	if !sensitiveKeyRe.MatchString(key) || len(value) <= 10 {
		return value
	}
	return value[:3] + "..." + value[len(value)-3:]
}
