package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Video struct {
	ID               string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Title            string    `gorm:"type:varchar(255);not null" json:"title"`
	Description      string    `gorm:"type:text;not null" json:"description"`
	VideoUrl         string    `gorm:"type:varchar(512);not null" json:"videoUrl"`
	CloudId          string    `gorm:"type:varchar(255)" json:"cloudId"`
	Thumbnail        string    `gorm:"type:varchar(512)" json:"thumbnail"`
	ThumbnailCloudId string    `gorm:"type:varchar(255)" json:"thumbnailCloudId"`
	Duration         float64   `gorm:"not null;default:0" json:"duration"`
	Views            int64     `gorm:"not null;default:0" json:"views"`
	IsPublished      bool      `gorm:"not null;default:true" json:"isPublished"`
	OwnerId          string    `gorm:"type:char(36);not null;index" json:"owner"`
	CreatedAt        time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// Playlist keeps its ordered video ids in playlist_videos. Videos is filled by the dal.
type Playlist struct {
	ID          string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	OwnerId     string    `gorm:"type:char(36);not null;index" json:"owner"`
	Videos      []string  `gorm:"-" json:"videos"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *Playlist) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PlaylistVideo is one member of a playlist. The composite key makes membership a set.
type PlaylistVideo struct {
	PlaylistId string    `gorm:"primaryKey;type:char(36)"`
	VideoId    string    `gorm:"primaryKey;type:char(36)"`
	Position   int64     `gorm:"not null;index"`
	CreatedAt  time.Time
}
