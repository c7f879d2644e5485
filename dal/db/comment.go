package db

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	return DB.WithContext(ctx).Create(comment).Error
}

func GetComment(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comment model.Comment
	if err := DB.WithContext(ctx).Where("comment_id = ?", commentId).Take(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func UpdateCommentContent(ctx context.Context, commentId int64, content string) error {
	return DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now().Format(constants.TimeFormat),
		}).Error
}

// DeleteComment removes only the comment row; likes pointing at it survive.
func DeleteComment(ctx context.Context, commentId int64) error {
	return DB.WithContext(ctx).Where("comment_id = ?", commentId).Delete(&model.Comment{}).Error
}

type commentOwnerRow struct {
	model.Comment
	ownerRow
}

const commentSelect = "comments.comment_id, comments.video_id, comments.user_id, " +
	"comments.content, comments.likes, comments.created_at, comments.updated_at"

// ListVideoComments returns at most `count` most-recent comments of a video
// joined with their owner summary. The cap is absolute from the newest
// comment, not a skip window.
func ListVideoComments(ctx context.Context, videoId, count int64) ([]*model.CommentWithOwner, error) {
	rows := make([]*commentOwnerRow, 0)
	err := DB.WithContext(ctx).Table("comments").
		Select(commentSelect+", "+ownerSelect).
		Joins("JOIN users ON users.user_id = comments.user_id").
		Where("comments.video_id = ?", videoId).
		Order("comments.created_at DESC, comments.comment_id DESC").
		Limit(int(count)).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to list comments")
	}
	comments := make([]*model.CommentWithOwner, 0, len(rows))
	for _, r := range rows {
		comments = append(comments, &model.CommentWithOwner{Comment: r.Comment, Owner: r.ownerRow.toSummary()})
	}
	return comments, nil
}
