package db

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
)

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	return DB.WithContext(ctx).Create(tweet).Error
}

func GetTweet(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	var tweet model.Tweet
	if err := DB.WithContext(ctx).Where("tweet_id = ?", tweetId).Take(&tweet).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

func UpdateTweetContent(ctx context.Context, tweetId int64, content string) error {
	return DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now().Format(constants.TimeFormat),
		}).Error
}

// DeleteTweet removes only the tweet row; likes pointing at it survive.
func DeleteTweet(ctx context.Context, tweetId int64) error {
	return DB.WithContext(ctx).Where("tweet_id = ?", tweetId).Delete(&model.Tweet{}).Error
}

type tweetOwnerRow struct {
	model.Tweet
	ownerRow
}

const tweetSelect = "tweets.tweet_id, tweets.user_id, tweets.content, tweets.likes, " +
	"tweets.created_at, tweets.updated_at"

// ListUserTweets joins a user's tweets with the owner summary, newest first.
func ListUserTweets(ctx context.Context, userId int64) ([]*model.TweetWithOwner, error) {
	rows := make([]*tweetOwnerRow, 0)
	err := DB.WithContext(ctx).Table("tweets").
		Select(tweetSelect+", "+ownerSelect).
		Joins("JOIN users ON users.user_id = tweets.user_id").
		Where("tweets.user_id = ?", userId).
		Order("tweets.created_at DESC, tweets.tweet_id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to list tweets")
	}
	tweets := make([]*model.TweetWithOwner, 0, len(rows))
	for _, r := range rows {
		tweets = append(tweets, &model.TweetWithOwner{Tweet: r.Tweet, Owner: r.ownerRow.toSummary()})
	}
	return tweets, nil
}
