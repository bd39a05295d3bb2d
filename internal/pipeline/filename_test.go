// File: internal/pipeline/filename_test.go
package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilenameFromHeader_ExtendedParameter(t *testing.T) {
	name, ok := FilenameFromHeader(`attachment; filename*=UTF-8''%E6%8A%A5%E5%91%8A.docx`)
	require.True(t, ok)
	assert.Equal(t, "报告.docx", name)
}

func TestFilenameFromHeader_LegacyParameter(t *testing.T) {
	name, ok := FilenameFromHeader(`attachment; filename="plain.docx"`)
	require.True(t, ok)
	assert.Equal(t, "plain.docx", name)

	// Unquoted values are accepted too.
	name, ok = FilenameFromHeader(`attachment; filename=report.docx; size=120`)
	require.True(t, ok)
	assert.Equal(t, "report.docx", name)
}

func TestFilenameFromHeader_ExtendedWins(t *testing.T) {
	name, ok := FilenameFromHeader(`attachment; filename="fallback.docx"; filename*=UTF-8''%E6%8A%A5%E5%91%8A.docx`)
	require.True(t, ok)
	assert.Equal(t, "报告.docx", name)
}

func TestFilenameFromHeader_BadExtendedFallsThrough(t *testing.T) {
	// %E6%8A is a truncated UTF-8 escape: percent-decoding of the dangling
	// "%" fails and the legacy parameter must be used instead.
	name, ok := FilenameFromHeader(`attachment; filename*=UTF-8''%ZZbroken; filename="plain.docx"`)
	require.True(t, ok)
	assert.Equal(t, "plain.docx", name)

	// Missing encoding prefix is also a decode failure.
	name, ok = FilenameFromHeader(`attachment; filename*=noquotes.docx; filename="plain.docx"`)
	require.True(t, ok)
	assert.Equal(t, "plain.docx", name)
}

func TestFilenameFromHeader_Unrecoverable(t *testing.T) {
	_, ok := FilenameFromHeader("")
	assert.False(t, ok)

	_, ok = FilenameFromHeader("attachment")
	assert.False(t, ok)

	_, ok = FilenameFromHeader(`attachment; filename*=UTF-8''%ZZ`)
	assert.False(t, ok)
}

func TestDefaultFilename(t *testing.T) {
	assert.Equal(t, "Billing Portal.docx", DefaultFilename("Billing Portal"))
	assert.Equal(t, "pentest-report.docx", DefaultFilename(""))
	assert.Equal(t, "pentest-report.docx", DefaultFilename("   "))
}
