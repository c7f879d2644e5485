package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/relation/service"
)

func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	channelId, err := PathInt64(c, "channelId")
	if err != nil {
		SendError(c, err)
		return
	}
	result, sub, err := service.NewRelationService(ctx).ToggleSubscription(userId, channelId)
	if err != nil {
		SendError(c, err)
		return
	}
	data := map[string]interface{}{"result": result, "subscription": sub}
	SendResponse(c, nil, data, "Subscription toggled successfully")
}

func ChannelSubscribers(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	channelId, err := PathInt64(c, "channelId")
	if err != nil {
		SendError(c, err)
		return
	}
	subscribers, err := service.NewRelationService(ctx).Subscribers(channelId, userId)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, subscribers, "Subscribers fetched successfully")
}

func SubscribedChannels(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	subscriberId, err := PathInt64(c, "subscriberId")
	if err != nil {
		SendError(c, err)
		return
	}
	channels, err := service.NewRelationService(ctx).SubscribedChannels(subscriberId, userId)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, channels, "Subscribed channels fetched successfully")
}
