package service

import (
	"context"

	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/dal/db"
	"vidtube.com/pkg/errno"
)

type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

// ToggleSubscription subscribes the acting user to the channel, or removes
// the subscription when one already exists. Subscribing to yourself is
// rejected before any row is touched.
func (s *RelationService) ToggleSubscription(subscriberId, channelId int64) (*model.ToggleResult, *model.Subscription, error) {
	if _, err := db.GetUserById(s.ctx, channelId); err != nil {
		if db.IsRecordNotFound(err) {
			return nil, nil, errno.NotFoundErr.WithMessage("Channel not found")
		}
		return nil, nil, errors.WithMessage(err, "dal.GetUserById failed")
	}
	if subscriberId == channelId {
		return nil, nil, errno.PermissionErr.WithMessage("One cannot subscribe his own channel")
	}

	added, sub, err := db.ToggleSubscription(s.ctx, subscriberId, channelId)
	if err != nil {
		return nil, nil, errors.WithMessage(err, "dal.ToggleSubscription failed")
	}
	result := &model.ToggleResult{State: "removed", CounterDelta: -1}
	if added {
		result = &model.ToggleResult{State: "added", CounterDelta: 1}
	}
	return result, sub, nil
}

// Subscribers lists who follows the channel. Only the channel owner may see
// the list.
func (s *RelationService) Subscribers(channelId, actingUserId int64) ([]*model.SubscriberEntry, error) {
	if channelId != actingUserId {
		return nil, errno.PermissionErr.WithMessage("Permission Denied")
	}
	entries, err := db.ListChannelSubscribers(s.ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.ListChannelSubscribers failed")
	}
	return entries, nil
}

// SubscribedChannels lists the channels a user follows. Users may only read
// their own list.
func (s *RelationService) SubscribedChannels(subscriberId, actingUserId int64) ([]*model.SubscribedChannelEntry, error) {
	if subscriberId != actingUserId {
		return nil, errno.PermissionErr.WithMessage("Permission Denied")
	}
	entries, err := db.ListSubscribedChannels(s.ctx, subscriberId)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.ListSubscribedChannels failed")
	}
	return entries, nil
}
