package database

import (
	"beeos/internal/checkout"
	"beeos/internal/shows"
	"beeos/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&shows.Film{},
		&shows.Studio{},
		&shows.Showtime{},
		&shows.Seat{},
		&checkout.Transaction{},
		&checkout.Ticket{},
		&checkout.TransactionDetail{},
	)
}
