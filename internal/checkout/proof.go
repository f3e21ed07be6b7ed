package checkout

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// proofNamespace is the directory proofs are stored under, relative to the
// configured upload root.
const proofNamespace = "payment_proofs"

var allowedProofExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ValidateProof checks an uploaded proof before any storage I/O. Rules apply
// in order: presence, extension allow-list (case-insensitive), size cap.
// Extension checking is a weak guarantee; no content sniffing is done and the
// proof is verified manually by an admin anyway.
func ValidateProof(fh *multipart.FileHeader, maxSize int64) error {
	if fh == nil || fh.Size == 0 {
		return ErrProofMissing
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedProofExtensions[ext] {
		return fmt.Errorf("%w: got %q", ErrProofType, ext)
	}

	if fh.Size > maxSize {
		return fmt.Errorf("%w: %d bytes", ErrProofTooLarge, fh.Size)
	}

	return nil
}

// ProofStore persists validated payment proofs
type ProofStore interface {
	// Save writes the proof and returns its storage path. The write is
	// verified before the path is returned.
	Save(ctx context.Context, fh *multipart.FileHeader, userID string) (string, error)
}

type diskProofStore struct {
	baseDir string
}

// NewProofStore creates a proof store rooted at baseDir
func NewProofStore(baseDir string) ProofStore {
	return &diskProofStore{baseDir: baseDir}
}

func (p *diskProofStore) Save(ctx context.Context, fh *multipart.FileHeader, userID string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	filename := fmt.Sprintf("payment_%s_%d%s", userID, time.Now().Unix(), ext)
	relPath := filepath.Join(proofNamespace, filename)
	absPath := filepath.Join(p.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrProofStorage, err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProofStorage, err)
	}
	defer src.Close()

	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProofStorage, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("%w: %v", ErrProofStorage, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrProofStorage, err)
	}

	// Verify the artifact is retrievable; a failed verification is fatal
	// for this attempt.
	info, err := os.Stat(absPath)
	if err != nil || info.Size() != fh.Size {
		return "", fmt.Errorf("%w: verification failed for %s", ErrProofStorage, relPath)
	}

	return relPath, nil
}
