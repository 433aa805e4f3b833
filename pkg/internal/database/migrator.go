package database

import (
	"github.com/evelanca/backstage/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Category{},
	&models.Video{},
	&models.Photo{},
	&models.Publication{},
	&models.OrphanAsset{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(AutoMaintainRange...); err != nil {
		return err
	}

	return nil
}
