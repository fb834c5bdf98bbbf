package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tweet struct {
	ID        string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	OwnerId   string    `gorm:"type:char(36);not null;index" json:"owner"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *Tweet) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
