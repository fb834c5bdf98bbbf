package main

import (
	"context"

	handler_interaction "VideoTube.com/cmd/api/handlers/interaction"
	handler_relation "VideoTube.com/cmd/api/handlers/relation"
	handler_tweet "VideoTube.com/cmd/api/handlers/tweet"
	handler_user "VideoTube.com/cmd/api/handlers/user"
	handler_video "VideoTube.com/cmd/api/handlers/video"
	"VideoTube.com/cmd/api/router/authfunc"
	"VideoTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type apiHandlers struct {
	user         *handler_user.Handler
	tweet        *handler_tweet.Handler
	subscription *handler_relation.Handler
	comment      *handler_interaction.CommentHandler
	like         *handler_interaction.LikeHandler
	video        *handler_video.VideoHandler
	playlist     *handler_video.PlaylistHandler
	dashboard    *handler_video.DashboardHandler
}

func register(r *server.Hertz, h *apiHandlers) {
	r.GET("/ping", func(ctx context.Context, c *app.RequestContext) {
		c.JSON(consts.StatusOK, utils.H{"message": "pong"})
	})

	v1 := r.Group("/api/v1")

	users := v1.Group("/users")
	users.POST("/register", h.user.Register)
	users.POST("/login", h.user.Login)
	users.POST("/refresh-token", jwt.JwtMiddleware.RefreshHandler)
	users.GET("/current", append(authfunc.Auth(), h.user.CurrentUser)...)
	users.GET("/:userId", append(authfunc.Auth(), h.user.GetUser)...)
	users.GET("/:userId/playlists", append(authfunc.Auth(), h.playlist.GetUserPlaylists)...)
	users.POST("/:userId/tweets", append(authfunc.Auth(), h.tweet.CreateTweet)...)
	users.GET("/:userId/tweets", append(authfunc.Auth(), h.tweet.GetUserTweets)...)

	auth := v1.Group("", authfunc.Auth()...)

	videos := auth.Group("/videos")
	videos.GET("", h.video.GetAllVideos)
	videos.GET("/:videoId", h.video.GetVideoById)
	videos.PATCH("/:videoId", h.video.UpdateVideo)
	videos.DELETE("/:videoId", h.video.DeleteVideo)
	videos.PATCH("/:videoId/publish", h.video.TogglePublishStatus)
	videos.GET("/:videoId/comments", h.comment.GetVideoComments)
	videos.POST("/:videoId/comments", h.comment.AddComment)
	videos.POST("/:videoId/like", h.like.ToggleVideoLike)
	// Publishing carries its own auth so the flow guard runs after it.
	v1.POST("/videos", append(authfunc.PublishGuard(), h.video.PublishVideo)...)

	comments := auth.Group("/comments")
	comments.PATCH("", h.comment.UpdateComment)
	comments.PATCH("/:commentId", h.comment.UpdateComment)
	comments.DELETE("/:commentId", h.comment.DeleteComment)
	comments.POST("/:commentId/like", h.like.ToggleCommentLike)

	tweets := auth.Group("/tweets")
	tweets.PATCH("", h.tweet.UpdateTweet)
	tweets.PATCH("/:tweetId", h.tweet.UpdateTweet)
	tweets.DELETE("/:tweetId", h.tweet.DeleteTweet)
	tweets.POST("/:tweetId/like", h.like.ToggleTweetLike)

	auth.GET("/likes/videos", h.like.GetLikedVideos)

	playlists := auth.Group("/playlists")
	playlists.POST("", h.playlist.CreatePlaylist)
	playlists.GET("/:playlistId", h.playlist.GetPlaylistById)
	playlists.PATCH("/:playlistId", h.playlist.UpdatePlaylist)
	playlists.DELETE("/:playlistId", h.playlist.DeletePlaylist)
	playlists.PATCH("/:playlistId/videos/:videoId", h.playlist.AddVideoToPlaylist)
	playlists.DELETE("/:playlistId/videos/:videoId", h.playlist.RemoveVideoFromPlaylist)

	auth.POST("/channels/:channelId/subscribe", h.subscription.ToggleSubscription)
	auth.GET("/subscriptions/subscribers", h.subscription.GetUserChannelSubscribers)
	auth.GET("/subscribers/:subscriberId/channels", h.subscription.GetSubscribedChannels)

	dashboard := auth.Group("/dashboard")
	dashboard.GET("/stats", h.dashboard.GetChannelStats)
	dashboard.GET("/videos", h.dashboard.GetChannelVideos)
}
