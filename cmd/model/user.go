package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID         string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Fullname   string    `gorm:"type:varchar(128);not null" json:"fullname"`
	Username   string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"username"`
	Email      string    `gorm:"type:varchar(128);not null;uniqueIndex" json:"email"`
	Avatar     string    `gorm:"type:varchar(512)" json:"avatar"`
	CoverImage string    `gorm:"type:varchar(512)" json:"coverImage"`
	Password   string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
