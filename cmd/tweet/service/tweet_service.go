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

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

func (s *TweetService) Create(userId int64, content string) (*model.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errno.ParamErr.WithMessage("Content is required")
	}
	tweet := &model.Tweet{
		TweetId:   utils.GenerateID(),
		UserId:    userId,
		Content:   content,
		CreatedAt: time.Now().Format(constants.TimeFormat),
		UpdatedAt: time.Now().Format(constants.TimeFormat),
	}
	if err := db.CreateTweet(s.ctx, tweet); err != nil {
		return nil, errors.WithMessage(err, "dal.CreateTweet failed")
	}
	return tweet, nil
}

func (s *TweetService) ListByUser(userId int64) ([]*model.TweetWithOwner, error) {
	if _, err := db.GetUserById(s.ctx, userId); err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("User not found")
		}
		return nil, errors.WithMessage(err, "dal.GetUserById failed")
	}
	tweets, err := db.ListUserTweets(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.ListUserTweets failed")
	}
	return tweets, nil
}

func (s *TweetService) Update(tweetId, userId int64, content string) (*model.Tweet, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errno.ParamErr.WithMessage("Content is required")
	}
	tweet, err := s.ownedTweet(tweetId, userId)
	if err != nil {
		return nil, err
	}
	if err := db.UpdateTweetContent(s.ctx, tweetId, content); err != nil {
		return nil, errors.WithMessage(err, "dal.UpdateTweetContent failed")
	}
	tweet.Content = content
	return tweet, nil
}

func (s *TweetService) Delete(tweetId, userId int64) error {
	if _, err := s.ownedTweet(tweetId, userId); err != nil {
		return err
	}
	if err := db.DeleteTweet(s.ctx, tweetId); err != nil {
		return errors.WithMessage(err, "dal.DeleteTweet failed")
	}
	return nil
}

func (s *TweetService) ownedTweet(tweetId, userId int64) (*model.Tweet, error) {
	tweet, err := db.GetTweet(s.ctx, tweetId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("Tweet not found")
		}
		return nil, errors.WithMessage(err, "dal.GetTweet failed")
	}
	if tweet.UserId != userId {
		return nil, errno.PermissionErr.WithMessage("Only the tweet owner can modify it")
	}
	return tweet, nil
}
