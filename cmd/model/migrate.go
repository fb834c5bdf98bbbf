package model

import "gorm.io/gorm"

// AutoMigrate migrates every table the api owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Video{},
		&Playlist{},
		&PlaylistVideo{},
		&Comment{},
		&Like{},
		&Subscription{},
		&Tweet{},
	)
}
