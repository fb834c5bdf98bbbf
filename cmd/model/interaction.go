package model

import (
	"time"

	"VideoTube.com/pkg/constants"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;type:char(36)" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	VideoId   string    `gorm:"type:char(36);not null;index" json:"video"`
	OwnerId   string    `gorm:"type:char(36);not null;index" json:"owner"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Like targets exactly one of video, comment or tweet. Each (likedBy, target)
// pair is unique; NULL targets do not collide in the composite indexes.
type Like struct {
	ID        string    `gorm:"primaryKey;type:char(36)" json:"id"`
	LikedBy   string    `gorm:"type:char(36);not null;uniqueIndex:idx_like_video,priority:1;uniqueIndex:idx_like_comment,priority:1;uniqueIndex:idx_like_tweet,priority:1" json:"likedBy"`
	VideoId   *string   `gorm:"type:char(36);uniqueIndex:idx_like_video,priority:2" json:"video,omitempty"`
	CommentId *string   `gorm:"type:char(36);uniqueIndex:idx_like_comment,priority:2" json:"comment,omitempty"`
	TweetId   *string   `gorm:"type:char(36);uniqueIndex:idx_like_tweet,priority:2" json:"tweet,omitempty"`
	Video     *Video    `gorm:"foreignKey:VideoId" json:"videoDetail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// Target returns the kind and id of the liked record.
func (l *Like) Target() (string, string) {
	switch {
	case l.VideoId != nil:
		return constants.LikeTargetVideo, *l.VideoId
	case l.CommentId != nil:
		return constants.LikeTargetComment, *l.CommentId
	case l.TweetId != nil:
		return constants.LikeTargetTweet, *l.TweetId
	}
	return "", ""
}
