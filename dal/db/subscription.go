package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/utils"
)

// ToggleSubscription flips the (subscriber, channel) relation. Unlike likes
// there is no denormalized counter to maintain.
func ToggleSubscription(ctx context.Context, subscriberId, channelId int64) (added bool, sub *model.Subscription, err error) {
	err = DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Subscription
		res := tx.Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
			Take(&existing)
		switch {
		case res.Error == nil:
			added = false
			return tx.Where("subscription_id = ?", existing.SubscriptionId).
				Delete(&model.Subscription{}).Error
		case errors.Is(res.Error, gorm.ErrRecordNotFound):
			created := model.Subscription{
				SubscriptionId: utils.GenerateID(),
				SubscriberId:   subscriberId,
				ChannelId:      channelId,
				CreatedAt:      time.Now().Format(constants.TimeFormat),
			}
			if err := tx.Create(&created).Error; err != nil {
				return err
			}
			added = true
			sub = &created
			return nil
		default:
			return res.Error
		}
	})
	return added, sub, err
}

func IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
		Count(&count).Error
	return count > 0, err
}

type subscriptionUserRow struct {
	ownerRow
	SubscriptionId int64  `gorm:"column:subscription_id"`
	SubCreatedAt   string `gorm:"column:sub_created_at"`
}

// ListChannelSubscribers joins a channel's subscriptions with the subscriber
// user summary, newest subscription first.
func ListChannelSubscribers(ctx context.Context, channelId int64) ([]*model.SubscriberEntry, error) {
	rows := make([]*subscriptionUserRow, 0)
	err := DB.WithContext(ctx).Table("subscriptions").
		Select(ownerSelect+", subscriptions.subscription_id, subscriptions.created_at AS sub_created_at").
		Joins("JOIN users ON users.user_id = subscriptions.subscriber_id").
		Where("subscriptions.channel_id = ?", channelId).
		Order("subscriptions.created_at DESC, subscriptions.subscription_id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to list subscribers")
	}
	entries := make([]*model.SubscriberEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, &model.SubscriberEntry{
			SubscriptionId: r.SubscriptionId,
			Subscriber:     r.ownerRow.toSummary(),
			CreatedAt:      r.SubCreatedAt,
		})
	}
	return entries, nil
}

// ListSubscribedChannels joins a user's subscriptions with the channel user
// summary, newest subscription first.
func ListSubscribedChannels(ctx context.Context, subscriberId int64) ([]*model.SubscribedChannelEntry, error) {
	rows := make([]*subscriptionUserRow, 0)
	err := DB.WithContext(ctx).Table("subscriptions").
		Select(ownerSelect+", subscriptions.subscription_id, subscriptions.created_at AS sub_created_at").
		Joins("JOIN users ON users.user_id = subscriptions.channel_id").
		Where("subscriptions.subscriber_id = ?", subscriberId).
		Order("subscriptions.created_at DESC, subscriptions.subscription_id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to list subscribed channels")
	}
	entries := make([]*model.SubscribedChannelEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, &model.SubscribedChannelEntry{
			SubscriptionId: r.SubscriptionId,
			Channel:        r.ownerRow.toSummary(),
			CreatedAt:      r.SubCreatedAt,
		})
	}
	return entries, nil
}
