package db

import "vidtube.com/cmd/model"

// Shared scan targets for the joined read models. Every join projects the
// same safe owner subset; password and storage keys are never selected.

const ownerSelect = "users.user_id AS owner_id, users.username AS owner_username, " +
	"users.full_name AS owner_full_name, users.avatar_url AS owner_avatar"

type ownerRow struct {
	OwnerId       int64  `gorm:"column:owner_id"`
	OwnerUsername string `gorm:"column:owner_username"`
	OwnerFullName string `gorm:"column:owner_full_name"`
	OwnerAvatar   string `gorm:"column:owner_avatar"`
}

func (r ownerRow) toSummary() model.UserSummary {
	return model.UserSummary{
		UserId:   r.OwnerId,
		UserName: r.OwnerUsername,
		FullName: r.OwnerFullName,
		Avatar:   r.OwnerAvatar,
	}
}

const videoSummarySelect = "videos.video_id, videos.title, videos.description, " +
	"videos.video_url, videos.thumbnail_url, videos.duration, videos.views, videos.likes"

type videoSummaryRow struct {
	VideoId      int64  `gorm:"column:video_id"`
	Title        string `gorm:"column:title"`
	Description  string `gorm:"column:description"`
	VideoUrl     string `gorm:"column:video_url"`
	ThumbnailUrl string `gorm:"column:thumbnail_url"`
	Duration     int64  `gorm:"column:duration"`
	Views        int64  `gorm:"column:views"`
	Likes        int64  `gorm:"column:likes"`
}

func (r videoSummaryRow) toSummary() model.VideoSummary {
	return model.VideoSummary{
		VideoId:     r.VideoId,
		Title:       r.Title,
		Description: r.Description,
		VideoUrl:    r.VideoUrl,
		Thumbnail:   r.ThumbnailUrl,
		Duration:    r.Duration,
		Views:       r.Views,
		Likes:       r.Likes,
	}
}
