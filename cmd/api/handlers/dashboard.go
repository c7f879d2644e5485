package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/dashboard/service"
)

func ChannelStats(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	stats, err := service.NewDashboardService(ctx).Stats(userId)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, stats, "Channel stats fetched successfully")
}

func ChannelVideos(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	videos, err := service.NewDashboardService(ctx).Videos(userId)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, videos, "Channel videos fetched successfully")
}
