package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscription: SubscriberId follows the channel ChannelId. One row per pair.
type Subscription struct {
	ID           string    `gorm:"primaryKey;type:char(36)" json:"id"`
	SubscriberId string    `gorm:"type:char(36);not null;uniqueIndex:idx_subscriber_channel,priority:1" json:"subscriberId"`
	ChannelId    string    `gorm:"type:char(36);not null;uniqueIndex:idx_subscriber_channel,priority:2;index" json:"channelId"`
	Subscriber   *User     `gorm:"foreignKey:SubscriberId" json:"subscriber,omitempty"`
	Channel      *User     `gorm:"foreignKey:ChannelId" json:"channel,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
