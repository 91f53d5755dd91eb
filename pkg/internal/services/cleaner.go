package services

import (
	"time"

	"github.com/inkstream/inkstream/pkg/internal/database"
	"github.com/inkstream/inkstream/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

const deletedRecordRetention = 30 * 24 * time.Hour

// DoAutoDatabaseCleanup hard-deletes soft-deleted posts and comments once
// their retention window has passed.
func DoAutoDatabaseCleanup() {
	deadline := time.Now().Add(-deletedRecordRetention)
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up entire database...")

	var count int64
	for _, model := range []any{&models.Post{}, &models.Comment{}} {
		tx := database.C.Unscoped().
			Where("deleted_at IS NOT NULL").
			Where("deleted_at < ?", deadline).
			Delete(model)
		if tx.Error != nil {
			log.Error().Err(tx.Error).Msg("An error occurred when running auto cleanup...")
		}
		count += tx.RowsAffected
	}

	log.Debug().Int64("affected", count).Msg("Done cleaning up entire database.")
}
