// Package errmsg turns backend errors into messages fit for end users.
package errmsg

import (
	"regexp"
	"strings"
)

var (
	vendorPrefixes = []string{"Firebase:", "FirebaseError:", "auth/", "mongo:"}
	// "(auth/wrong-password)." style suffixes emitted by identity SDKs.
	codeWrapper = regexp.MustCompile(`\(([a-z]+)/([a-z0-9-]+)\)\.?`)
)

// Sanitize strips vendor prefixes from err's message. A nil error yields "".
func Sanitize(err error) string {
	if err == nil {
		return ""
	}
	return SanitizeString(err.Error())
}

// SanitizeString is Sanitize for raw messages.
func SanitizeString(msg string) string {
	msg = codeWrapper.ReplaceAllString(msg, "($2).")
	for _, prefix := range vendorPrefixes {
		msg = strings.ReplaceAll(msg, prefix, "")
	}
	return strings.TrimSpace(msg)
}
