package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
)

func CreateUser(ctx context.Context, user *model.User) error {
	return DB.WithContext(ctx).Create(user).Error
}

func GetUserById(ctx context.Context, userId int64) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Where("user_id = ?", userId).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByName(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Where("username = ?", username).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Where("email = ?", email).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UserExists reports whether username or email is already taken.
func UserExists(ctx context.Context, username, email string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func UpdateUserAccount(ctx context.Context, userId int64, fullName, email string) error {
	return DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).
		Updates(map[string]interface{}{
			"full_name":  fullName,
			"email":      email,
			"updated_at": time.Now().Format(constants.TimeFormat),
		}).Error
}

func UpdateUserPassword(ctx context.Context, userId int64, hashedPassword string) error {
	return DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).
		Updates(map[string]interface{}{
			"password":   hashedPassword,
			"updated_at": time.Now().Format(constants.TimeFormat),
		}).Error
}

func UpdateUserAvatar(ctx context.Context, userId int64, url, key string) error {
	return DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).
		Updates(map[string]interface{}{"avatar_url": url, "avatar_key": key}).Error
}

func UpdateUserCoverImage(ctx context.Context, userId int64, url, key string) error {
	return DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).
		Updates(map[string]interface{}{"cover_image_url": url, "cover_image_key": key}).Error
}

// AddWatchHistory records a video into the user's watch history. Re-watching
// refreshes watched_at instead of adding a second row.
func AddWatchHistory(ctx context.Context, userId, videoId int64) error {
	now := time.Now().Format(constants.TimeFormat)
	res := DB.WithContext(ctx).Model(&model.WatchHistory{}).
		Where("user_id = ? AND video_id = ?", userId, videoId).
		Update("watched_at", now)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	return DB.WithContext(ctx).Create(&model.WatchHistory{
		UserId:    userId,
		VideoId:   videoId,
		WatchedAt: now,
	}).Error
}

type watchHistoryRow struct {
	videoSummaryRow
	ownerRow
	WatchedAt string `gorm:"column:watched_at"`
}

// GetWatchHistory joins the watched videos and their owners, most recent
// watch first.
func GetWatchHistory(ctx context.Context, userId int64) ([]*model.WatchHistoryEntry, error) {
	rows := make([]*watchHistoryRow, 0)
	err := DB.WithContext(ctx).Table("watch_histories").
		Select(videoSummarySelect + ", " + ownerSelect + ", watch_histories.watched_at").
		Joins("JOIN videos ON videos.video_id = watch_histories.video_id").
		Joins("JOIN users ON users.user_id = videos.user_id").
		Where("watch_histories.user_id = ?", userId).
		Order("watch_histories.watched_at DESC, watch_histories.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to fetch watch history")
	}
	entries := make([]*model.WatchHistoryEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, &model.WatchHistoryEntry{
			Video:     r.videoSummaryRow.toSummary(),
			Owner:     r.ownerRow.toSummary(),
			WatchedAt: r.WatchedAt,
		})
	}
	return entries, nil
}

// GetChannelProfile resolves a channel page by username, including the
// subscriber counts and whether actingUserId already subscribes.
func GetChannelProfile(ctx context.Context, username string, actingUserId int64) (*model.ChannelProfile, error) {
	user, err := GetUserByName(ctx, username)
	if err != nil {
		return nil, err
	}
	profile := &model.ChannelProfile{
		UserId:     user.UserId,
		UserName:   user.UserName,
		FullName:   user.FullName,
		Avatar:     user.AvatarUrl,
		CoverImage: user.CoverImageUrl,
	}
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", user.UserId).
		Count(&profile.SubscriberCount).Error; err != nil {
		return nil, err
	}
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", user.UserId).
		Count(&profile.SubscribedTo).Error; err != nil {
		return nil, err
	}
	var subscribed int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", actingUserId, user.UserId).
		Count(&subscribed).Error; err != nil {
		return nil, err
	}
	profile.IsSubscribed = subscribed > 0
	return profile, nil
}

// IsRecordNotFound normalizes the gorm sentinel so callers outside dal do not
// import gorm for it.
func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
