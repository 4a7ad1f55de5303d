package contentstore

import (
	"bytes"
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield-labs/docuflow/internal/common"
	"github.com/oakfield-labs/docuflow/internal/entity"
)

type memFiles struct {
	byHash   map[string]*entity.PhysicalFile
	released map[uuid.UUID]int
	liveExt  map[uuid.UUID]bool
}

func newMemFiles() *memFiles {
	return &memFiles{
		byHash:   make(map[string]*entity.PhysicalFile),
		released: make(map[uuid.UUID]int),
		liveExt:  make(map[uuid.UUID]bool),
	}
}

func (m *memFiles) GetByID(_ context.Context, id uuid.UUID) (*entity.PhysicalFile, error) {
	for _, f := range m.byHash {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *memFiles) GetByHash(_ context.Context, hash []byte) (*entity.PhysicalFile, error) {
	f, ok := m.byHash[hex.EncodeToString(hash)]
	if !ok {
		return nil, common.ErrNotFound
	}
	return f, nil
}

func (m *memFiles) CreateOrRef(_ context.Context, hash []byte, size int, storagePath string) (*entity.PhysicalFile, bool, error) {
	key := hex.EncodeToString(hash)
	if existing, ok := m.byHash[key]; ok {
		existing.RefCount++
		return existing, true, nil
	}
	f := &entity.PhysicalFile{
		ID:          uuid.New(),
		ContentHash: hash,
		FileSize:    size,
		StoragePath: storagePath,
		RefCount:    1,
	}
	m.byHash[key] = f
	return f, false, nil
}

func (m *memFiles) Release(_ context.Context, id uuid.UUID) (bool, string, error) {
	for key, f := range m.byHash {
		if f.ID != id {
			continue
		}
		if f.RefCount <= 1 && m.liveExt[id] {
			return false, "", common.ErrReferentialIntegrity
		}
		m.released[id]++
		if f.RefCount > 1 {
			f.RefCount--
			return false, "", nil
		}
		delete(m.byHash, key)
		return true, f.StoragePath, nil
	}
	return false, "", common.ErrNotFound
}

func (m *memFiles) SetDiscovery(_ context.Context, _ uuid.UUID, _ string, _ *uuid.UUID) error {
	return nil
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("stores bytes content-addressed", func(t *testing.T) {
		root := t.TempDir()
		s := New(root, newMemFiles(), nil)

		res, err := s.Store(ctx, []byte("document bytes"))
		require.NoError(t, err)
		assert.False(t, res.DuplicateFound)
		assert.Equal(t, 1, res.File.RefCount)
		assert.Equal(t, res.HashHex[:2]+string(os.PathSeparator)+res.HashHex, res.File.StoragePath)

		stored, err := os.ReadFile(filepath.Join(root, res.File.StoragePath))
		require.NoError(t, err)
		assert.True(t, bytes.Equal([]byte("document bytes"), stored))
	})

	t.Run("identical content deduplicates", func(t *testing.T) {
		root := t.TempDir()
		s := New(root, newMemFiles(), nil)

		first, err := s.Store(ctx, []byte("same bytes"))
		require.NoError(t, err)
		second, err := s.Store(ctx, []byte("same bytes"))
		require.NoError(t, err)

		assert.True(t, second.DuplicateFound)
		assert.Equal(t, first.File.ID, second.File.ID)
		assert.Equal(t, 2, second.File.RefCount)

		// one blob on disk
		entries, err := os.ReadDir(filepath.Join(root, first.HashHex[:2]))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("different content stays separate", func(t *testing.T) {
		s := New(t.TempDir(), newMemFiles(), nil)

		a, err := s.Store(ctx, []byte("aaa"))
		require.NoError(t, err)
		b, err := s.Store(ctx, []byte("bbb"))
		require.NoError(t, err)

		assert.NotEqual(t, a.File.ID, b.File.ID)
		assert.NotEqual(t, a.HashHex, b.HashHex)
	})

	t.Run("empty upload rejected", func(t *testing.T) {
		s := New(t.TempDir(), newMemFiles(), nil)
		_, err := s.Store(ctx, nil)
		assert.Error(t, err)
	})

	t.Run("read back through blob reader", func(t *testing.T) {
		s := New(t.TempDir(), newMemFiles(), nil)
		res, err := s.Store(ctx, []byte("roundtrip"))
		require.NoError(t, err)

		data, err := s.ReadFile(ctx, res.File.StoragePath)
		require.NoError(t, err)
		assert.Equal(t, []byte("roundtrip"), data)
	})
}

func TestRelease(t *testing.T) {
	ctx := context.Background()

	t.Run("last release removes the blob", func(t *testing.T) {
		root := t.TempDir()
		s := New(root, newMemFiles(), nil)
		res, err := s.Store(ctx, []byte("short lived"))
		require.NoError(t, err)

		require.NoError(t, s.Release(ctx, res.File.ID))
		_, err = os.Stat(filepath.Join(root, res.File.StoragePath))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("earlier references keep the blob", func(t *testing.T) {
		root := t.TempDir()
		files := newMemFiles()
		s := New(root, files, nil)
		first, err := s.Store(ctx, []byte("shared"))
		require.NoError(t, err)
		_, err = s.Store(ctx, []byte("shared"))
		require.NoError(t, err)

		require.NoError(t, s.Release(ctx, first.File.ID))
		_, err = os.Stat(filepath.Join(root, first.File.StoragePath))
		assert.NoError(t, err, "blob survives while a reference remains")
	})

	t.Run("live extraction blocks release", func(t *testing.T) {
		files := newMemFiles()
		s := New(t.TempDir(), files, nil)
		res, err := s.Store(ctx, []byte("referenced"))
		require.NoError(t, err)
		files.liveExt[res.File.ID] = true

		err = s.Release(ctx, res.File.ID)
		assert.ErrorIs(t, err, common.ErrReferentialIntegrity)
	})
}
