package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"vidtube.com/cmd/playlist/service"
	"vidtube.com/pkg/errno"
)

type CreatePlaylistParam struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	var req CreatePlaylistParam
	if err := c.BindAndValidate(&req); err != nil {
		SendError(c, errno.ParamErr)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).Create(userId, req.Name, req.Description)
	if err != nil {
		SendError(c, err)
		return
	}
	SendSuccess(c, int64(consts.StatusCreated), playlist, "Playlist created successfully")
}

func ListUserPlaylists(ctx context.Context, c *app.RequestContext) {
	userId, err := PathInt64(c, "userId")
	if err != nil {
		SendError(c, err)
		return
	}
	playlists, err := service.NewPlaylistService(ctx).ListByUser(userId)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, playlists, "Playlists fetched successfully")
}

func GetPlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := PathInt64(c, "playlistId")
	if err != nil {
		SendError(c, err)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).Get(playlistId)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, playlist, "Playlist fetched successfully")
}

func AddVideoToPlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	playlistId, err := PathInt64(c, "playlistId")
	if err != nil {
		SendError(c, err)
		return
	}
	videoId, err := PathInt64(c, "videoId")
	if err != nil {
		SendError(c, err)
		return
	}
	playlist, alreadyPresent, err := service.NewPlaylistService(ctx).AddVideo(playlistId, videoId, userId)
	if err != nil {
		SendError(c, err)
		return
	}
	message := "Video added to playlist"
	if alreadyPresent {
		message = "Video already in the playlist"
	}
	SendResponse(c, nil, playlist, message)
}

func RemoveVideoFromPlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	playlistId, err := PathInt64(c, "playlistId")
	if err != nil {
		SendError(c, err)
		return
	}
	videoId, err := PathInt64(c, "videoId")
	if err != nil {
		SendError(c, err)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).RemoveVideo(playlistId, videoId, userId)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, playlist, "Video removed from playlist")
}

type UpdatePlaylistParam struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	playlistId, err := PathInt64(c, "playlistId")
	if err != nil {
		SendError(c, err)
		return
	}
	var req UpdatePlaylistParam
	if err := c.BindAndValidate(&req); err != nil {
		SendError(c, errno.ParamErr)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).Update(playlistId, userId, req.Name, req.Description)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, playlist, "Playlist updated successfully")
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	playlistId, err := PathInt64(c, "playlistId")
	if err != nil {
		SendError(c, err)
		return
	}
	if err := service.NewPlaylistService(ctx).Delete(playlistId, userId); err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, nil, "Playlist deleted successfully")
}
