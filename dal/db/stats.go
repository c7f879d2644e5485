package db

import (
	"context"

	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
)

type videoTotalsRow struct {
	TotalVideos int64 `gorm:"column:total_videos"`
	TotalViews  int64 `gorm:"column:total_views"`
	TotalLikes  int64 `gorm:"column:total_likes"`
}

// GetChannelStats aggregates a channel's totals: subscriber count plus video
// count and the view/like sums across all owned videos.
func GetChannelStats(ctx context.Context, userId int64) (*model.ChannelStats, error) {
	user, err := GetUserById(ctx, userId)
	if err != nil {
		return nil, err
	}
	stats := &model.ChannelStats{
		UserId:     user.UserId,
		UserName:   user.UserName,
		FullName:   user.FullName,
		Email:      user.Email,
		Avatar:     user.AvatarUrl,
		CoverImage: user.CoverImageUrl,
	}

	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", userId).
		Count(&stats.TotalSubscribers).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to count subscribers")
	}

	var totals videoTotalsRow
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Select("COUNT(*) AS total_videos, COALESCE(SUM(views), 0) AS total_views, COALESCE(SUM(likes), 0) AS total_likes").
		Where("user_id = ?", userId).
		Scan(&totals).Error; err != nil {
		return nil, errors.WithMessage(err, "Failed to aggregate video totals")
	}
	stats.TotalVideos = totals.TotalVideos
	stats.TotalViews = totals.TotalViews
	stats.TotalLikes = totals.TotalLikes
	return stats, nil
}
