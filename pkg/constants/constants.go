package constants

import "time"

const (
	TimeFormat = "2006-01-02 15:04:05"

	IdentityKey = "user_id"

	AccessTokenExpire  = 15 * time.Minute
	RefreshTokenExpire = 7 * 24 * time.Hour

	DefaultPage  = 1
	DefaultLimit = 10

	VideoFolder     = "videotube/videos/"
	ThumbnailFolder = "videotube/thumbnails/"
	AvatarFolder    = "videotube/avatars/"
	CoverFolder     = "videotube/covers/"

	MinUsernameLen = 3
	MinPasswordLen = 8
)
