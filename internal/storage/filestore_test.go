package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadFile(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, "http://localhost:8080/files/")

	url, err := store.UploadFile("Logo.PNG", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	// URL carries the base (trailing slash trimmed), the uploads prefix and a
	// generated name with the lowercased original extension
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/files/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.NotContains(t, url, "Logo")

	name := url[strings.LastIndex(url, "/")+1:]
	data, err := os.ReadFile(filepath.Join(dir, UploadPrefix, name))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestUploadFileUniqueNames(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, "http://example.com")

	first, err := store.UploadFile("a.txt", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := store.UploadFile("a.txt", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestUploadFileNoExtension(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, "http://example.com")

	url, err := store.UploadFile("README", strings.NewReader("text"))
	require.NoError(t, err)
	assert.NotContains(t, url[strings.LastIndex(url, "/")+1:], ".")
}
