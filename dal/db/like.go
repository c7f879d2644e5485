package db

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/utils"
)

// ToggleLike flips the like relation for (target, user). The relation row and
// the denormalized counter on the target move in one transaction, so the
// counter always matches the row count even under concurrent toggles.
func ToggleLike(ctx context.Context, target model.LikeTarget, userId int64) (added bool, err error) {
	err = DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var like model.Like
		res := tx.Where("user_id = ? AND target_type = ? AND target_id = ?",
			userId, string(target.Kind), target.Id).Take(&like)
		switch {
		case res.Error == nil:
			if err := tx.Where("like_id = ?", like.LikeId).Delete(&model.Like{}).Error; err != nil {
				return err
			}
			added = false
			return bumpLikeCounter(tx, target, -1)
		case errors.Is(res.Error, gorm.ErrRecordNotFound):
			like = model.Like{
				LikeId:     utils.GenerateID(),
				UserId:     userId,
				TargetType: string(target.Kind),
				TargetId:   target.Id,
				CreatedAt:  time.Now().Format(constants.TimeFormat),
			}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			added = true
			return bumpLikeCounter(tx, target, 1)
		default:
			return res.Error
		}
	})
	return added, err
}

func bumpLikeCounter(tx *gorm.DB, target model.LikeTarget, delta int64) error {
	expr := gorm.Expr("likes + ?", delta)
	switch target.Kind {
	case model.TargetVideo:
		return tx.Model(&model.Video{}).Where("video_id = ?", target.Id).
			UpdateColumn("likes", expr).Error
	case model.TargetComment:
		return tx.Model(&model.Comment{}).Where("comment_id = ?", target.Id).
			UpdateColumn("likes", expr).Error
	case model.TargetTweet:
		return tx.Model(&model.Tweet{}).Where("tweet_id = ?", target.Id).
			UpdateColumn("likes", expr).Error
	}
	return fmt.Errorf("unknown like target kind: %s", target.Kind)
}

// CountLikes recounts the like rows of a target.
func CountLikes(ctx context.Context, target model.LikeTarget) (int64, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? AND target_id = ?", string(target.Kind), target.Id).
		Count(&count).Error
	return count, err
}

// SetLikeCounter overwrites the materialized counter with a recounted value.
// The reconciler uses it to repair drift.
func SetLikeCounter(ctx context.Context, target model.LikeTarget, count int64) error {
	switch target.Kind {
	case model.TargetVideo:
		return DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", target.Id).
			UpdateColumn("likes", count).Error
	case model.TargetComment:
		return DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", target.Id).
			UpdateColumn("likes", count).Error
	case model.TargetTweet:
		return DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", target.Id).
			UpdateColumn("likes", count).Error
	}
	return fmt.Errorf("unknown like target kind: %s", target.Kind)
}

// GetLikeCounter reads the materialized counter off the target row.
func GetLikeCounter(ctx context.Context, target model.LikeTarget) (int64, error) {
	var count int64
	var err error
	switch target.Kind {
	case model.TargetVideo:
		err = DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", target.Id).
			Pluck("likes", &count).Error
	case model.TargetComment:
		err = DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", target.Id).
			Pluck("likes", &count).Error
	case model.TargetTweet:
		err = DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", target.Id).
			Pluck("likes", &count).Error
	default:
		err = fmt.Errorf("unknown like target kind: %s", target.Kind)
	}
	return count, err
}

// HasLike reports whether the like relation exists.
func HasLike(ctx context.Context, target model.LikeTarget, userId int64) (bool, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_type = ? AND target_id = ?",
			userId, string(target.Kind), target.Id).
		Count(&count).Error
	return count > 0, err
}

type likedVideoRow struct {
	videoSummaryRow
	LikeId        int64  `gorm:"column:like_id"`
	LikeCreatedAt string `gorm:"column:like_created_at"`
}

// ListLikedVideos joins the user's video likes with the liked videos,
// newest like first.
func ListLikedVideos(ctx context.Context, userId int64) ([]*model.LikedVideoEntry, error) {
	rows := make([]*likedVideoRow, 0)
	err := DB.WithContext(ctx).Table("likes").
		Select(videoSummarySelect+", likes.like_id, likes.created_at AS like_created_at").
		Joins("JOIN videos ON videos.video_id = likes.target_id").
		Where("likes.user_id = ? AND likes.target_type = ?", userId, string(model.TargetVideo)).
		Order("likes.created_at DESC, likes.like_id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to list liked videos")
	}
	entries := make([]*model.LikedVideoEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, &model.LikedVideoEntry{
			LikeId:    r.LikeId,
			Video:     r.videoSummaryRow.toSummary(),
			CreatedAt: r.LikeCreatedAt,
		})
	}
	return entries, nil
}
