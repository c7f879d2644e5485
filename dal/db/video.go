package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
)

func InsertVideo(ctx context.Context, video *model.Video) error {
	return DB.WithContext(ctx).Create(video).Error
}

func GetVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).Take(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// DeleteVideo removes only the video row. Comments, likes, playlist entries
// and watch history referring to it are left in place.
func DeleteVideo(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Video{}).Error
}

func UpdateVideoDetails(ctx context.Context, videoId int64, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now().Format(constants.TimeFormat)
	return DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Updates(fields).Error
}

func SetPublishStatus(ctx context.Context, videoId int64, published bool) error {
	return DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Update("is_published", published).Error
}

// IncrementViews bumps the view counter in place; views only ever grow.
func IncrementViews(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// VideoFilter narrows the paginated listing. Query is a case-insensitive
// substring match on title or description.
type VideoFilter struct {
	Query   string
	OwnerId int64
	SortBy  string // createdAt, views, duration, title
	SortAsc bool
}

var videoSortColumns = map[string]string{
	"createdAt": "videos.created_at",
	"views":     "videos.views",
	"duration":  "videos.duration",
	"title":     "videos.title",
}

type videoOwnerRow struct {
	model.Video
	ownerRow
}

const videoSelect = "videos.video_id, videos.user_id, videos.title, videos.description, " +
	"videos.video_url, videos.thumbnail_url, videos.duration, videos.views, videos.likes, " +
	"videos.is_published, videos.created_at, videos.updated_at"

// ListVideos pages through published videos joined with their owner summary
// and returns the total match count for totalPages.
func ListVideos(ctx context.Context, filter VideoFilter, page, limit int64) ([]*model.VideoWithOwner, int64, error) {
	base := DB.WithContext(ctx).Model(&model.Video{}).Where("videos.is_published = ?", true)
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		base = base.Where("videos.title LIKE ? OR videos.description LIKE ?", pattern, pattern)
	}
	if filter.OwnerId != 0 {
		base = base.Where("videos.user_id = ?", filter.OwnerId)
	}

	var count int64
	if err := base.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, errors.WithMessage(err, "Failed to count videos")
	}

	column, ok := videoSortColumns[filter.SortBy]
	if !ok {
		column = videoSortColumns["createdAt"]
	}
	direction := "DESC"
	if filter.SortAsc {
		direction = "ASC"
	}

	rows := make([]*videoOwnerRow, 0)
	err := base.Session(&gorm.Session{}).
		Select(videoSelect + ", " + ownerSelect).
		Joins("JOIN users ON users.user_id = videos.user_id").
		Order(column + " " + direction + ", videos.video_id " + direction).
		Limit(int(limit)).
		Offset(int((page - 1) * limit)).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, errors.WithMessage(err, "Failed to list videos")
	}

	videos := make([]*model.VideoWithOwner, 0, len(rows))
	for _, r := range rows {
		videos = append(videos, &model.VideoWithOwner{Video: r.Video, Owner: r.ownerRow.toSummary()})
	}
	return videos, count, nil
}

// GetVideoWithOwner returns one published video joined with its owner summary.
func GetVideoWithOwner(ctx context.Context, videoId int64) (*model.VideoWithOwner, error) {
	var row videoOwnerRow
	err := DB.WithContext(ctx).Table("videos").
		Select(videoSelect+", "+ownerSelect).
		Joins("JOIN users ON users.user_id = videos.user_id").
		Where("videos.video_id = ? AND videos.is_published = ?", videoId, true).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &model.VideoWithOwner{Video: row.Video, Owner: row.ownerRow.toSummary()}, nil
}

// ListChannelVideos returns the published videos a channel owns, newest first.
func ListChannelVideos(ctx context.Context, ownerId int64) ([]*model.VideoSummary, error) {
	rows := make([]*videoSummaryRow, 0)
	err := DB.WithContext(ctx).Table("videos").
		Select(videoSummarySelect).
		Where("videos.user_id = ? AND videos.is_published = ?", ownerId, true).
		Order("videos.created_at DESC, videos.video_id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to list channel videos")
	}
	videos := make([]*model.VideoSummary, 0, len(rows))
	for _, r := range rows {
		summary := r.toSummary()
		videos = append(videos, &summary)
	}
	return videos, nil
}
