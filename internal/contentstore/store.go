package contentstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/oakfield-labs/docuflow/internal/entity"
	"github.com/oakfield-labs/docuflow/internal/repository"
)

// Store is the content-addressed byte store. Every distinct content hash
// maps to exactly one PhysicalFile record and one blob on disk; repeated
// uploads of identical bytes only bump the reference count.
type Store struct {
	root   string
	files  repository.PhysicalFileRepository
	logger *slog.Logger
}

// Result is the outcome of storing one upload.
type Result struct {
	File           *entity.PhysicalFile
	DuplicateFound bool
	HashHex        string
}

func New(root string, files repository.PhysicalFileRepository, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{root: root, files: files, logger: logger}
}

// Hash computes the content hash used as the dedup key.
func Hash(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// Store persists the bytes (content-addressed, so the write is idempotent)
// and creates or references the PhysicalFile record. Duplicate content is a
// normal outcome, not an error.
func (s *Store) Store(ctx context.Context, data []byte) (Result, error) {
	if len(data) == 0 {
		return Result{}, fmt.Errorf("empty upload")
	}
	hash := Hash(data)
	hashHex := hex.EncodeToString(hash)
	relPath := filepath.Join(hashHex[:2], hashHex)

	// Blob lands before the record: identical content always maps to the
	// same path, so a concurrent writer produces the same bytes.
	absPath := filepath.Join(s.root, relPath)
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return Result{}, fmt.Errorf("create storage dir: %w", err)
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		if err := os.WriteFile(absPath, data, 0o644); err != nil {
			return Result{}, fmt.Errorf("write blob: %w", err)
		}
	}

	file, dup, err := s.files.CreateOrRef(ctx, hash, len(data), relPath)
	if err != nil {
		return Result{}, err
	}
	s.logger.Info("content stored", "file_id", file.ID, "hash", hashHex, "size", len(data), "duplicate", dup)
	return Result{File: file, DuplicateFound: dup, HashHex: hashHex}, nil
}

// Release drops one reference; when the record is destroyed the blob is
// removed as well.
func (s *Store) Release(ctx context.Context, fileID uuid.UUID) error {
	deleted, storagePath, err := s.files.Release(ctx, fileID)
	if err != nil {
		return err
	}
	if deleted && storagePath != "" {
		if err := os.Remove(filepath.Join(s.root, storagePath)); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("failed to remove blob", "file_id", fileID, "path", storagePath, "error", err)
		}
	}
	return nil
}

// ReadFile loads stored bytes by storage path; used by the parse cache.
func (s *Store) ReadFile(_ context.Context, storagePath string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.root, storagePath))
}

// RemoveBlob deletes stored bytes after a record was destroyed elsewhere
// (extraction deletion cascading to the file).
func (s *Store) RemoveBlob(storagePath string) {
	if storagePath == "" {
		return
	}
	if err := os.Remove(filepath.Join(s.root, storagePath)); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove blob", "path", storagePath, "error", err)
	}
}
