package database

import (
	"turfbook/internal/blocks"
	"turfbook/internal/bookings"
	"turfbook/internal/events"
	"turfbook/internal/pricing"
	"turfbook/internal/turfs"
	"turfbook/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 defaults on the models need the extension present.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&users.User{},
		&turfs.Turf{},
		&blocks.BlockedEntry{},
		&pricing.PeakRule{},
		&events.Event{},
		&bookings.Booking{},
	)
}
