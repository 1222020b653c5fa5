package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds indexes the admission and availability paths
// depend on. The overlap invariant itself is enforced by the advisory-lock
// protocol in the bookings service, not by a table constraint: two live
// bookings may legally share an interval when one of them is an expired
// hold awaiting the reaper.
func MigrateConstraints(db *gorm.DB) error {
	// Admission and availability both scan bookings by (turf, date).
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_turf_date
		ON bookings (turf_id, booking_date);
	`).Error
	if err != nil {
		return err
	}

	// The reaper scans for stale holds by status and creation time.
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_status_created
		ON bookings (status, created_at);
	`).Error
	if err != nil {
		return err
	}

	// One blocked entry per (turf, start date); merges update in place.
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_blocked_entries_turf_date
		ON blocked_entries (turf_id, start_date);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
