package constants

import "time"

const (
	IdentityKey = "identity"

	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	DefaultSortBy   = "createdAt"
	DefaultSortType = "desc"

	ChannelStatsTTL = 60 * time.Second

	// Sentinel resource guarding video publishing.
	PublishVideoResource = "publish_video"

	VideoFolder     = "videos"
	ThumbnailFolder = "thumbnails"
)

// Like targets.
const (
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"
)

// Event types published to the events exchange.
const (
	EventVideoLike          = "video_like"
	EventCommentLike        = "comment_like"
	EventTweetLike          = "tweet_like"
	EventSubscription       = "subscription"
	EventVideoPublish       = "video_publish"
	EventVideoDelete        = "video_delete"
	EventVideoTogglePublish = "video_toggle_publish"
	EventVideoView          = "video_view"

	ActionAdded   = "added"
	ActionRemoved = "removed"
)
