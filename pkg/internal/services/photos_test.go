package services

import (
	"context"
	"strings"
	"testing"

	"github.com/evelanca/backstage/pkg/internal/database"
	"github.com/evelanca/backstage/pkg/internal/models"
	"github.com/evelanca/backstage/pkg/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func photoCategory(t *testing.T) models.Category {
	t.Helper()
	category, err := NewCategory(models.CategoryKindPhoto, "Backstage", "")
	require.NoError(t, err)
	return category
}

func photoUpload(size int) *storage.Upload {
	return &storage.Upload{
		Filename:    "shot.jpg",
		ContentType: "image/jpeg",
		Size:        int64(size),
		Content:     strings.NewReader(strings.Repeat("x", size)),
	}
}

func TestNewPhotoWithUpload(t *testing.T) {
	mem := setupTest(t)
	category := photoCategory(t)

	item, err := NewPhoto(context.Background(), models.Photo{
		Name:       "Soundcheck",
		Event:      "Summer Tour",
		CategoryID: category.ID,
	}, photoUpload(64))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(item.FilePath, "gallery/"))
	assert.True(t, mem.Has(storage.BucketPhotos, item.FilePath))

	stored, err := GetPhoto(item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.FilePath, stored.FilePath)
	assert.Equal(t, AssetURL(storage.BucketPhotos, item.FilePath), stored.FileURL)
}

func TestNewPhotoOversizeLeavesNothingBehind(t *testing.T) {
	mem := setupTest(t)
	category := photoCategory(t)

	_, err := NewPhoto(context.Background(), models.Photo{
		Name:       "Too Big",
		CategoryID: category.ID,
	}, &storage.Upload{
		Filename:    "huge.jpg",
		ContentType: "image/jpeg",
		Size:        50 << 20,
		Content:     strings.NewReader(""),
	})

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)

	count, err := CountPhoto(database.C)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	assert.Equal(t, 0, mem.Len(), "a rejected upload must never reach the bucket")
}

func TestEditPhotoFailedUploadKeepsPreviousAsset(t *testing.T) {
	mem := setupTest(t)
	category := photoCategory(t)

	item, err := NewPhoto(context.Background(), models.Photo{
		Name:       "Original",
		CategoryID: category.ID,
	}, photoUpload(32))
	require.NoError(t, err)
	original := item.FilePath

	mem.FailPuts = true
	item.Name = "Patched"
	_, err = EditPhoto(context.Background(), item, photoUpload(32), false)

	var transientErr *models.TransientStoreError
	require.ErrorAs(t, err, &transientErr)

	stored, err := GetPhoto(item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", stored.Name, "a failed replacement must not patch the record")
	assert.Equal(t, original, stored.FilePath)
	assert.True(t, mem.Has(storage.BucketPhotos, original))
}

func TestEditPhotoReplacesAsset(t *testing.T) {
	mem := setupTest(t)
	category := photoCategory(t)

	item, err := NewPhoto(context.Background(), models.Photo{
		Name:       "Original",
		CategoryID: category.ID,
	}, photoUpload(32))
	require.NoError(t, err)
	original := item.FilePath

	updated, err := EditPhoto(context.Background(), item, photoUpload(48), false)
	require.NoError(t, err)

	assert.NotEqual(t, original, updated.FilePath)
	assert.True(t, mem.Has(storage.BucketPhotos, updated.FilePath))
	assert.False(t, mem.Has(storage.BucketPhotos, original), "the replaced blob is released")
	assert.Equal(t, 1, mem.Len())
}

func TestEditPhotoKeepsAssetWithoutNewFile(t *testing.T) {
	mem := setupTest(t)
	category := photoCategory(t)

	item, err := NewPhoto(context.Background(), models.Photo{
		Name:       "Original",
		CategoryID: category.ID,
	}, photoUpload(32))
	require.NoError(t, err)
	original := item.FilePath

	item.Name = "Renamed"
	item.FilePath = "" // callers patch fields, the stored asset must survive
	updated, err := EditPhoto(context.Background(), item, nil, false)
	require.NoError(t, err)

	assert.Equal(t, original, updated.FilePath)
	assert.True(t, mem.Has(storage.BucketPhotos, original))
}

func TestEditPhotoClearsAsset(t *testing.T) {
	mem := setupTest(t)
	category := photoCategory(t)

	item, err := NewPhoto(context.Background(), models.Photo{
		Name:       "Original",
		CategoryID: category.ID,
	}, photoUpload(32))
	require.NoError(t, err)
	original := item.FilePath

	updated, err := EditPhoto(context.Background(), item, nil, true)
	require.NoError(t, err)

	assert.Empty(t, updated.FilePath)
	assert.False(t, mem.Has(storage.BucketPhotos, original))
}

func TestDeletePhotoSurvivesStorageOutage(t *testing.T) {
	mem := setupTest(t)
	category := photoCategory(t)

	item, err := NewPhoto(context.Background(), models.Photo{
		Name:       "Doomed",
		CategoryID: category.ID,
	}, photoUpload(32))
	require.NoError(t, err)
	path := item.FilePath

	mem.FailDeletes = true
	require.NoError(t, DeletePhoto(item), "a blob outage must not block the record delete")

	_, err = GetPhoto(item.ID)
	var notFoundErr *models.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)

	var orphans []models.OrphanAsset
	require.NoError(t, database.C.Find(&orphans).Error)
	require.Len(t, orphans, 1)
	assert.Equal(t, storage.BucketPhotos, orphans[0].Bucket)
	assert.Equal(t, path, orphans[0].Path)

	// the sweep drains the queue once the store is back
	mem.FailDeletes = false
	DoAutoOrphanCleanup()

	require.NoError(t, database.C.Find(&orphans).Error)
	assert.Empty(t, orphans)
	assert.False(t, mem.Has(storage.BucketPhotos, path))
}

func TestOrphanSweepKeepsFailingEntries(t *testing.T) {
	mem := setupTest(t)
	category := photoCategory(t)

	item, err := NewPhoto(context.Background(), models.Photo{
		Name:       "Doomed",
		CategoryID: category.ID,
	}, photoUpload(32))
	require.NoError(t, err)

	mem.FailDeletes = true
	require.NoError(t, DeletePhoto(item))
	DoAutoOrphanCleanup()

	var orphans []models.OrphanAsset
	require.NoError(t, database.C.Find(&orphans).Error)
	require.Len(t, orphans, 1)
	assert.Equal(t, 2, orphans[0].Attempts)
	assert.NotEmpty(t, orphans[0].LastError)
}
