package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"vidtube.com/cmd/interaction/service"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
)

type AddCommentParam struct {
	Content string `json:"content"`
}

func AddComment(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	videoId, err := PathInt64(c, "videoId")
	if err != nil {
		SendError(c, err)
		return
	}
	var req AddCommentParam
	if err := c.BindAndValidate(&req); err != nil {
		SendError(c, errno.ParamErr)
		return
	}
	comment, err := service.NewCommentService(ctx).Add(videoId, userId, req.Content)
	if err != nil {
		SendError(c, err)
		return
	}
	SendSuccess(c, int64(consts.StatusCreated), comment, "Comment added successfully")
}

type ListCommentsParam struct {
	Page  string `query:"page"`
	Limit string `query:"limit"`
}

func ListComments(ctx context.Context, c *app.RequestContext) {
	videoId, err := PathInt64(c, "videoId")
	if err != nil {
		SendError(c, err)
		return
	}
	var req ListCommentsParam
	if err := c.BindAndValidate(&req); err != nil {
		SendError(c, errno.ParamErr)
		return
	}
	page, err := QueryInt64(req.Page, constants.DefaultPage)
	if err != nil {
		SendError(c, err)
		return
	}
	limit, err := QueryInt64(req.Limit, constants.DefaultLimit)
	if err != nil {
		SendError(c, err)
		return
	}
	comments, err := service.NewCommentService(ctx).List(videoId, page, limit)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, comments, "Comments fetched successfully")
}

type UpdateCommentParam struct {
	Content string `json:"content"`
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	commentId, err := PathInt64(c, "commentId")
	if err != nil {
		SendError(c, err)
		return
	}
	var req UpdateCommentParam
	if err := c.BindAndValidate(&req); err != nil {
		SendError(c, errno.ParamErr)
		return
	}
	comment, err := service.NewCommentService(ctx).Update(commentId, userId, req.Content)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, comment, "Comment updated successfully")
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	commentId, err := PathInt64(c, "commentId")
	if err != nil {
		SendError(c, err)
		return
	}
	if err := service.NewCommentService(ctx).Delete(commentId, userId); err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, nil, "Comment deleted successfully")
}

func toggleLike(ctx context.Context, c *app.RequestContext, kind model.TargetKind, param string) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	targetId, err := PathInt64(c, param)
	if err != nil {
		SendError(c, err)
		return
	}
	target := model.LikeTarget{Kind: kind, Id: targetId}
	result, err := service.NewLikeService(ctx).Toggle(target, userId)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, result, "Like toggled successfully")
}

func ToggleVideoLike(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, model.TargetVideo, "videoId")
}

func ToggleCommentLike(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, model.TargetComment, "commentId")
}

func ToggleTweetLike(ctx context.Context, c *app.RequestContext) {
	toggleLike(ctx, c, model.TargetTweet, "tweetId")
}

func LikedVideos(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	videos, err := service.NewLikeService(ctx).LikedVideos(userId)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, videos, "Liked videos fetched successfully")
}
