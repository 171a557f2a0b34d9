package storage

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadFromBytesAndDownload(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	assert.NoError(t, err)

	content := []byte("100000000001#~#RAMESH KUMAR#~#10000#~#7500#~#7500#~#7500#~#900#~#625#~#275#~#0#~#0")
	path, err := store.UploadFromBytes(content, "ecr_072026.txt", "returns")
	assert.NoError(t, err)
	assert.NotEmpty(t, path)
	assert.True(t, store.Exists(path))

	size, err := store.GetSize(path)
	assert.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)

	file, err := store.Download(path)
	assert.NoError(t, err)
	defer file.Close()

	data, err := io.ReadAll(file)
	assert.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestDelete(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	assert.NoError(t, err)

	path, err := store.UploadFromBytes([]byte("data"), "file.txt", "returns")
	assert.NoError(t, err)

	assert.NoError(t, store.Delete(path))
	assert.False(t, store.Exists(path))
}

func TestSafeFullPathRejectsTraversal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	assert.NoError(t, err)

	for _, path := range []string{"../etc/passwd", "returns/../../secret", "/etc/passwd"} {
		_, err := store.SafeFullPath(path)
		assert.Error(t, err, path)
	}
}

func TestValidReturnExtension(t *testing.T) {
	assert.True(t, ValidReturnExtension("ecr_072026.txt"))
	assert.True(t, ValidReturnExtension("ECR.TXT"))
	assert.False(t, ValidReturnExtension("ecr.pdf"))
	assert.False(t, ValidReturnExtension("ecr"))
}

func TestIsValidContentType(t *testing.T) {
	assert.True(t, IsValidContentType("text/plain"))
	assert.True(t, IsValidContentType("text/plain; charset=utf-8"))
	assert.True(t, IsValidContentType("application/octet-stream"))
	assert.False(t, IsValidContentType("application/pdf"))
}
