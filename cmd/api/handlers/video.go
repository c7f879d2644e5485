package handlers

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"vidtube.com/cmd/video/service"
	"vidtube.com/pkg/errno"
)

type PublishVideoParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

func PublishVideo(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	var req PublishVideoParam
	if err := c.BindAndValidate(&req); err != nil {
		SendError(c, errno.ParamErr)
		return
	}
	videoPath, err := stageUpload(c, "videoFile", true)
	if err != nil {
		SendError(c, err)
		return
	}
	thumbPath, err := stageUpload(c, "thumbnail", true)
	if err != nil {
		removeStaged(videoPath)
		SendError(c, err)
		return
	}
	defer removeStaged(videoPath, thumbPath)

	video, err := service.NewVideoService(ctx).Publish(userId, &service.PublishRequest{
		Title:         req.Title,
		Description:   req.Description,
		VideoPath:     videoPath,
		ThumbnailPath: thumbPath,
	})
	if err != nil {
		SendError(c, err)
		return
	}
	SendSuccess(c, int64(consts.StatusCreated), video, "Video uploaded successfully")
}

func GetVideo(ctx context.Context, c *app.RequestContext) {
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
	video, err := service.NewVideoService(ctx).Get(videoId, userId)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, video, "Video fetched successfully")
}

type ListVideosParam struct {
	Page     int64  `query:"page"`
	Limit    int64  `query:"limit"`
	Query    string `query:"query"`
	UserId   int64  `query:"userId"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
}

func ListVideos(ctx context.Context, c *app.RequestContext) {
	var req ListVideosParam
	if err := c.BindAndValidate(&req); err != nil {
		SendError(c, errno.ParamErr)
		return
	}
	page, err := service.NewVideoService(ctx).List(&service.ListRequest{
		Page:    req.Page,
		Limit:   req.Limit,
		Query:   req.Query,
		OwnerId: req.UserId,
		SortBy:  req.SortBy,
		SortAsc: strings.EqualFold(req.SortType, "asc"),
	})
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, page, "Videos fetched successfully")
}

type UpdateVideoParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
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
	var req UpdateVideoParam
	if err := c.BindAndValidate(&req); err != nil {
		SendError(c, errno.ParamErr)
		return
	}
	thumbPath, err := stageUpload(c, "thumbnail", false)
	if err != nil {
		SendError(c, err)
		return
	}
	defer removeStaged(thumbPath)

	video, err := service.NewVideoService(ctx).Update(videoId, userId, &service.UpdateRequest{
		Title:         req.Title,
		Description:   req.Description,
		ThumbnailPath: thumbPath,
	})
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, video, "Video updated successfully")
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
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
	if err := service.NewVideoService(ctx).Delete(videoId, userId); err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, nil, "Video deleted successfully")
}

func TogglePublishStatus(ctx context.Context, c *app.RequestContext) {
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
	video, err := service.NewVideoService(ctx).TogglePublishStatus(videoId, userId)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, video, "Publish status toggled successfully")
}
