// File: internal/storage/saver_test.go
package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSaver_Save(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalSaver(dir)

	path, err := s.Save("报告.docx", []byte("content"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "报告.docx"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)
}

func TestLocalSaver_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	s := NewLocalSaver(dir)

	path, err := s.Save("report.docx", []byte("x"))
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestLocalSaver_StripsTraversal(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalSaver(dir)

	// A hostile Content-Disposition must not escape the output directory.
	path, err := s.Save("../../etc/passwd.docx", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "passwd.docx"), path)
}

func TestLocalSaver_RejectsUnusableNames(t *testing.T) {
	s := NewLocalSaver(t.TempDir())

	_, err := s.Save("   ", []byte("x"))
	assert.Error(t, err)

	_, err = s.Save("..", []byte("x"))
	assert.Error(t, err)
}

func TestNewLocalSaver_DefaultsToCurrentDir(t *testing.T) {
	s := NewLocalSaver("")
	assert.Equal(t, ".", s.Dir)
}
