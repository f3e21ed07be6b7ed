package checkout

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const proofSizeCap = 2 * 1024 * 1024

func TestValidateProof(t *testing.T) {
	tests := []struct {
		name    string
		fh      *multipart.FileHeader
		wantErr error
	}{
		{"nil header", nil, ErrProofMissing},
		{"empty file", &multipart.FileHeader{Filename: "transfer.jpg", Size: 0}, ErrProofMissing},
		{"jpg accepted", &multipart.FileHeader{Filename: "transfer.jpg", Size: 1024}, nil},
		{"jpeg accepted", &multipart.FileHeader{Filename: "transfer.jpeg", Size: 1024}, nil},
		{"png accepted", &multipart.FileHeader{Filename: "transfer.png", Size: 1024}, nil},
		{"uppercase extension accepted", &multipart.FileHeader{Filename: "TRANSFER.JPEG", Size: 1024}, nil},
		{"gif rejected", &multipart.FileHeader{Filename: "transfer.gif", Size: 1024}, ErrProofType},
		{"executable rejected", &multipart.FileHeader{Filename: "transfer.exe", Size: 1024}, ErrProofType},
		{"no extension rejected", &multipart.FileHeader{Filename: "transfer", Size: 1024}, ErrProofType},
		{"at the cap accepted", &multipart.FileHeader{Filename: "transfer.png", Size: proofSizeCap}, nil},
		{"over the cap rejected", &multipart.FileHeader{Filename: "transfer.png", Size: proofSizeCap + 1}, ErrProofTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProof(tt.fh, proofSizeCap)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// makeFileHeader builds a real multipart file header so Open() works in tests
func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("proof", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["proof"]
	require.Len(t, files, 1)
	return files[0]
}

func TestDiskProofStoreSave(t *testing.T) {
	baseDir := t.TempDir()
	store := NewProofStore(baseDir)

	content := []byte("fake image bytes")
	fh := makeFileHeader(t, "Transfer.JPG", content)

	relPath, err := store.Save(context.Background(), fh, "user-123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(relPath, "payment_proofs"+string(filepath.Separator)))
	assert.Contains(t, relPath, "payment_user-123_")
	assert.True(t, strings.HasSuffix(relPath, ".jpg"), "extension should be lowercased, got %s", relPath)

	stored, err := os.ReadFile(filepath.Join(baseDir, relPath))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestDiskProofStoreSaveCreatesNamespace(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), "nested", "storage")
	store := NewProofStore(baseDir)

	fh := makeFileHeader(t, "bukti.png", []byte{0x89, 0x50, 0x4e, 0x47})

	relPath, err := store.Save(context.Background(), fh, "user-456")
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(baseDir, relPath))
	require.NoError(t, err)
	assert.Equal(t, fh.Size, info.Size())
}
