package service

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/dal/db"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

func (s *CommentService) Add(videoId, userId int64, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errno.ParamErr.WithMessage("Content is required")
	}
	if _, err := db.GetVideo(s.ctx, videoId); err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("Video not found")
		}
		return nil, errors.WithMessage(err, "dal.GetVideo failed")
	}

	comment := &model.Comment{
		CommentId: utils.GenerateID(),
		VideoId:   videoId,
		UserId:    userId,
		Content:   content,
		CreatedAt: time.Now().Format(constants.TimeFormat),
		UpdatedAt: time.Now().Format(constants.TimeFormat),
	}
	if err := db.CreateComment(s.ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dal.CreateComment failed")
	}
	return comment, nil
}

// List returns the newest page*limit comments of a video. The window grows
// with the page number so earlier pages stay stable while scrolling. An
// explicit zero page or limit is a caller error, not a shorthand for the
// defaults.
func (s *CommentService) List(videoId, page, limit int64) ([]*model.CommentWithOwner, error) {
	if _, err := db.GetVideo(s.ctx, videoId); err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("Video not found")
		}
		return nil, errors.WithMessage(err, "dal.GetVideo failed")
	}
	count := page * limit
	if count == 0 {
		return nil, errno.ParamErr.WithMessage("Minimum 1 document should be asked")
	}
	comments, err := db.ListVideoComments(s.ctx, videoId, count)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.ListVideoComments failed")
	}
	return comments, nil
}

func (s *CommentService) Update(commentId, userId int64, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errno.ParamErr.WithMessage("Content is required")
	}
	comment, err := s.ownedComment(commentId, userId)
	if err != nil {
		return nil, err
	}
	if err := db.UpdateCommentContent(s.ctx, commentId, content); err != nil {
		return nil, errors.WithMessage(err, "dal.UpdateCommentContent failed")
	}
	comment.Content = content
	return comment, nil
}

func (s *CommentService) Delete(commentId, userId int64) error {
	if _, err := s.ownedComment(commentId, userId); err != nil {
		return err
	}
	if err := db.DeleteComment(s.ctx, commentId); err != nil {
		return errors.WithMessage(err, "dal.DeleteComment failed")
	}
	return nil
}

func (s *CommentService) ownedComment(commentId, userId int64) (*model.Comment, error) {
	comment, err := db.GetComment(s.ctx, commentId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("Comment not found")
		}
		return nil, errors.WithMessage(err, "dal.GetComment failed")
	}
	if comment.UserId != userId {
		return nil, errno.PermissionErr.WithMessage("Only the comment owner can modify it")
	}
	return comment, nil
}
