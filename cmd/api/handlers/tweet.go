package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"vidtube.com/cmd/tweet/service"
	"vidtube.com/pkg/errno"
)

type CreateTweetParam struct {
	Content string `json:"content"`
}

func CreateTweet(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	var req CreateTweetParam
	if err := c.BindAndValidate(&req); err != nil {
		SendError(c, errno.ParamErr)
		return
	}
	tweet, err := service.NewTweetService(ctx).Create(userId, req.Content)
	if err != nil {
		SendError(c, err)
		return
	}
	SendSuccess(c, int64(consts.StatusCreated), tweet, "Tweet created successfully")
}

func ListUserTweets(ctx context.Context, c *app.RequestContext) {
	userId, err := PathInt64(c, "userId")
	if err != nil {
		SendError(c, err)
		return
	}
	tweets, err := service.NewTweetService(ctx).ListByUser(userId)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, tweets, "Tweets fetched successfully")
}

type UpdateTweetParam struct {
	Content string `json:"content"`
}

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	tweetId, err := PathInt64(c, "tweetId")
	if err != nil {
		SendError(c, err)
		return
	}
	var req UpdateTweetParam
	if err := c.BindAndValidate(&req); err != nil {
		SendError(c, errno.ParamErr)
		return
	}
	tweet, err := service.NewTweetService(ctx).Update(tweetId, userId, req.Content)
	if err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, tweet, "Tweet updated successfully")
}

func DeleteTweet(ctx context.Context, c *app.RequestContext) {
	userId, err := ActingUserId(ctx, c)
	if err != nil {
		SendError(c, err)
		return
	}
	tweetId, err := PathInt64(c, "tweetId")
	if err != nil {
		SendError(c, err)
		return
	}
	if err := service.NewTweetService(ctx).Delete(tweetId, userId); err != nil {
		SendError(c, err)
		return
	}
	SendResponse(c, nil, nil, "Tweet deleted successfully")
}
