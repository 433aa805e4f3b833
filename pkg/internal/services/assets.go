package services

import (
	"context"

	"github.com/evelanca/backstage/pkg/internal/database"
	"github.com/evelanca/backstage/pkg/internal/models"
	"github.com/evelanca/backstage/pkg/internal/storage"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm/clause"
)

// CleanupAsset best-effort deletes a blob whose owning record mutation has
// already succeeded. A failure here must not surface to the caller, so it is
// logged and the path is queued for the orphan sweep instead.
func CleanupAsset(bucket, path string) {
	if len(path) == 0 {
		return
	}

	if err := storage.DeleteFile(context.Background(), bucket, path); err != nil {
		log.Warn().Err(err).
			Str("bucket", bucket).
			Str("path", path).
			Msg("Unable to delete asset, queueing it as an orphan...")
		enqueueOrphanAsset(bucket, path, err)
	}
}

func enqueueOrphanAsset(bucket, path string, cause error) {
	orphan := models.OrphanAsset{
		Bucket:    bucket,
		Path:      path,
		Attempts:  1,
		LastError: cause.Error(),
	}

	if err := database.C.Clauses(clause.OnConflict{DoNothing: true}).Create(&orphan).Error; err != nil {
		log.Error().Err(err).
			Str("bucket", bucket).
			Str("path", path).
			Msg("Unable to queue orphan asset, the blob leaks until the next manual sweep...")
	}
}

// AssetURL exposes the pure URL derivation to the presentation layer.
func AssetURL(bucket, path string) string {
	return storage.FileURL(bucket, path)
}
