// File: internal/pipeline/filename.go
package pipeline

import (
	"net/url"
	"strings"
)

// DocumentExtension is the extension of rendered report documents.
const DocumentExtension = ".docx"

// defaultLabel names the document when the report has no system name.
const defaultLabel = "pentest-report"

// FilenameFromHeader recovers a display filename from a Content-Disposition
// header value. The fallback chain is, in order:
//
//  1. the extended parameter (filename*): strip the RFC 5987 encoding
//     prefix and percent-decode the remainder; a decode failure falls
//     through rather than surfacing;
//  2. the legacy parameter (filename=): the value up to the next parameter
//     delimiter, with surrounding quotes stripped.
//
// It reports false when the header is absent or neither parameter parses;
// the caller then synthesizes a default with DefaultFilename.
func FilenameFromHeader(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	var legacy string
	var haveLegacy bool

	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		key, value, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "filename*":
			if name, ok := decodeExtendedValue(strings.TrimSpace(value)); ok {
				return name, true
			}
			// Undecodable extended value: recover via the legacy parameter.
		case "filename":
			legacy = strings.Trim(strings.TrimSpace(value), `"`)
			haveLegacy = legacy != ""
		}
	}

	if haveLegacy {
		return legacy, true
	}
	return "", false
}

// decodeExtendedValue decodes an RFC 5987 value of the form
// charset'language'percent-encoded-bytes.
func decodeExtendedValue(value string) (string, bool) {
	parts := strings.SplitN(value, "'", 3)
	if len(parts) != 3 {
		return "", false
	}
	decoded, err := url.PathUnescape(parts[2])
	if err != nil || decoded == "" {
		return "", false
	}
	return decoded, true
}

// DefaultFilename synthesizes a save name from the report's system name,
// falling back to a generic label when the name is blank.
func DefaultFilename(systemName string) string {
	systemName = strings.TrimSpace(systemName)
	if systemName == "" {
		systemName = defaultLabel
	}
	return systemName + DocumentExtension
}
