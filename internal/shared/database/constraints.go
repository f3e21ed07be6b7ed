package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds database constraints the checkout flow depends on
// for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// One seat row per (studio, chair label); find-or-create relies on this
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_seat_per_studio
		ON seats (studio_id, chair_number);
	`).Error
	if err != nil {
		return err
	}

	// A seat can carry only one live ticket per showtime. Cancelled tickets
	// are excluded so a seat can be resold after a failed payment.
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_ticket_per_showtime_seat
		ON tickets (showtime_id, seat_id)
		WHERE status IN ('Reserved', 'Paid');
	`).Error
	if err != nil {
		return err
	}

	// Booking codes are shown to users as the transaction reference
	err = db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_transaction_booking_code
		ON transactions (booking_code);
	`).Error
	if err != nil {
		return err
	}

	// Transaction lookups during admin verification
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_user_status
		ON transactions (user_id, payment_status);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
