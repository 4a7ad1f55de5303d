package repository

import (
	"context"
	"crypto/sha256"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield-labs/docuflow/internal/common"
	"github.com/oakfield-labs/docuflow/internal/entity"
)

func openTestDB(t *testing.T) (context.Context, PhysicalFileRepository, ExtractionRepository, TemplateRepository) {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client, err := OpenSQLite(ctx, "file:"+t.Name()+"?mode=memory&cache=shared&_pragma=foreign_keys(1)", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return ctx,
		NewPhysicalFileRepository(client, logger),
		NewExtractionRepository(client, logger),
		NewTemplateRepository(client, logger)
}

// Walks a file through upload, extraction, release, and extraction delete:
// the reference count must track each step and the file must be destroyed
// exactly when the last reference goes.
func TestExtractionLifecycleRefcount(t *testing.T) {
	ctx, files, extractions, templates := openTestDB(t)

	tpl, err := templates.Create(ctx, "standard-invoice", "Invoice", []entity.FieldDefinition{
		{Name: "total_amount", Type: entity.FieldNumber, Required: true},
	})
	require.NoError(t, err)

	hash := sha256.Sum256([]byte("lifecycle bytes"))
	file, dup, err := files.CreateOrRef(ctx, hash[:], 15, "ab/cdef")
	require.NoError(t, err)
	assert.False(t, dup)
	assert.Equal(t, 1, file.RefCount)

	ext, err := extractions.Create(ctx, file.ID, tpl.ID)
	require.NoError(t, err)

	got, err := files.GetByID(ctx, file.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.RefCount, "extraction holds its own reference")

	// Release the upload reference; the extraction keeps the file alive.
	deleted, _, err := files.Release(ctx, file.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	// Deleting the last extraction drops the count to zero and destroys
	// the file, returning the storage path for byte cleanup.
	fileDeleted, storagePath, err := extractions.Delete(ctx, ext.ID)
	require.NoError(t, err)
	assert.True(t, fileDeleted)
	assert.Equal(t, "ab/cdef", storagePath)

	_, err = files.GetByID(ctx, file.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

// Deleting the only extraction while the upload reference is still held
// keeps the file alive; destruction needs every reference gone.
func TestExtractionDeleteKeepsHeldUpload(t *testing.T) {
	ctx, files, extractions, templates := openTestDB(t)

	tpl, err := templates.Create(ctx, "standard-invoice", "Invoice", []entity.FieldDefinition{
		{Name: "total_amount", Type: entity.FieldNumber},
	})
	require.NoError(t, err)

	hash := sha256.Sum256([]byte("held upload"))
	file, _, err := files.CreateOrRef(ctx, hash[:], 11, "cd/0011")
	require.NoError(t, err)

	ext, err := extractions.Create(ctx, file.ID, tpl.ID)
	require.NoError(t, err)

	fileDeleted, _, err := extractions.Delete(ctx, ext.ID)
	require.NoError(t, err)
	assert.False(t, fileDeleted)

	got, err := files.GetByID(ctx, file.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.RefCount, "upload reference survives the extraction")

	// Releasing the upload afterwards destroys the file.
	deleted, storagePath, err := files.Release(ctx, file.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, "cd/0011", storagePath)
}
