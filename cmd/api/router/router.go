package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"vidtube.com/cmd/api/handlers"
	"vidtube.com/cmd/api/router/authfunc"
)

// Register wires every route group under /api/v1.
func Register(h *server.Hertz) {
	v1 := h.Group("/api/v1")

	v1.GET("/healthcheck", handlers.Healthcheck)

	users := v1.Group("/users")
	{
		users.POST("/register", handlers.Register)
		users.POST("/login", handlers.Login)

		secured := users.Group("", authfunc.Auth())
		secured.POST("/logout", handlers.Logout)
		secured.POST("/refresh-token", handlers.RefreshToken)
		secured.POST("/change-password", handlers.ChangePassword)
		secured.GET("/current-user", handlers.CurrentUser)
		secured.PATCH("/update-account", handlers.UpdateAccount)
		secured.PATCH("/update-avatar", handlers.UpdateAvatar)
		secured.PATCH("/update-coverImage", handlers.UpdateCoverImage)
		secured.GET("/channel/:username", handlers.ChannelProfile)
		secured.GET("/watch-history", handlers.WatchHistory)
	}

	videos := v1.Group("/videos", authfunc.Auth())
	{
		videos.GET("", handlers.ListVideos)
		videos.POST("", handlers.PublishVideo)
		videos.GET("/:videoId", handlers.GetVideo)
		videos.PATCH("/:videoId", handlers.UpdateVideo)
		videos.DELETE("/:videoId", handlers.DeleteVideo)
		videos.PATCH("/toggle/:videoId", handlers.TogglePublishStatus)
	}

	comments := v1.Group("/comments", authfunc.Auth())
	{
		comments.GET("/:videoId", handlers.ListComments)
		comments.POST("/:videoId", handlers.AddComment)
		comments.PATCH("/:commentId", handlers.UpdateComment)
		comments.DELETE("/:commentId", handlers.DeleteComment)
	}

	likes := v1.Group("/likes", authfunc.Auth())
	{
		likes.POST("/toggle/v/:videoId", handlers.ToggleVideoLike)
		likes.POST("/toggle/c/:commentId", handlers.ToggleCommentLike)
		likes.POST("/toggle/t/:tweetId", handlers.ToggleTweetLike)
		likes.GET("/videos", handlers.LikedVideos)
	}

	subscriptions := v1.Group("/subscriptions", authfunc.Auth())
	{
		subscriptions.POST("/c/:channelId", handlers.ToggleSubscription)
		subscriptions.GET("/u/:channelId", handlers.ChannelSubscribers)
		subscriptions.GET("/s/:subscriberId", handlers.SubscribedChannels)
	}

	tweets := v1.Group("/tweets", authfunc.Auth())
	{
		tweets.POST("", handlers.CreateTweet)
		tweets.GET("/user/:userId", handlers.ListUserTweets)
		tweets.PATCH("/:tweetId", handlers.UpdateTweet)
		tweets.DELETE("/:tweetId", handlers.DeleteTweet)
	}

	playlists := v1.Group("/playlists", authfunc.Auth())
	{
		playlists.POST("", handlers.CreatePlaylist)
		playlists.GET("/user/:userId", handlers.ListUserPlaylists)
		playlists.GET("/:playlistId", handlers.GetPlaylist)
		playlists.PATCH("/add/:videoId/:playlistId", handlers.AddVideoToPlaylist)
		playlists.PATCH("/remove/:videoId/:playlistId", handlers.RemoveVideoFromPlaylist)
		playlists.PATCH("/:playlistId", handlers.UpdatePlaylist)
		playlists.DELETE("/:playlistId", handlers.DeletePlaylist)
	}

	dashboard := v1.Group("/dashboard", authfunc.Auth())
	{
		dashboard.GET("/stats", handlers.ChannelStats)
		dashboard.GET("/videos", handlers.ChannelVideos)
	}
}
