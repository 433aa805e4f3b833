package services

import (
	"context"

	"github.com/evelanca/backstage/pkg/internal/database"
	"github.com/evelanca/backstage/pkg/internal/models"
	"github.com/evelanca/backstage/pkg/internal/storage"
	"github.com/rs/zerolog/log"
)

// DoAutoOrphanCleanup retries the deletion of every queued orphan blob.
// Scheduled from main, also reachable via the admin maintenance endpoint.
func DoAutoOrphanCleanup() {
	var orphans []models.OrphanAsset
	if err := database.C.Find(&orphans).Error; err != nil {
		log.Error().Err(err).Msg("Unable to list orphan assets for cleanup...")
		return
	}
	if len(orphans) == 0 {
		return
	}

	var swept int
	for _, orphan := range orphans {
		if err := storage.DeleteFile(context.Background(), orphan.Bucket, orphan.Path); err != nil {
			orphan.Attempts++
			orphan.LastError = err.Error()
			database.C.Save(&orphan)
			continue
		}

		database.C.Delete(&orphan)
		swept++
	}

	log.Info().
		Int("swept", swept).
		Int("total", len(orphans)).
		Msg("Orphan asset sweep finished.")
}
