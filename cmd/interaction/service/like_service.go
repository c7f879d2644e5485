package service

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/mq"
)

// likeProducer is optional: when rabbitmq is not configured toggles still
// work, only the async reconciliation is skipped.
var likeProducer *mq.Producer

func InitLikeProducer(p *mq.Producer) {
	likeProducer = p
}

type LikeService struct {
	ctx context.Context
}

func NewLikeService(ctx context.Context) *LikeService {
	return &LikeService{ctx: ctx}
}

// Toggle flips the like relation for the target and reports which way it
// went. The target entity must exist first.
func (s *LikeService) Toggle(target model.LikeTarget, userId int64) (*model.ToggleResult, error) {
	if err := s.assertTargetExists(target); err != nil {
		return nil, err
	}

	added, err := db.ToggleLike(s.ctx, target, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.ToggleLike failed")
	}

	result := &model.ToggleResult{State: "removed", CounterDelta: -1}
	if added {
		result = &model.ToggleResult{State: "added", CounterDelta: 1}
	}
	s.publishEvent(target, userId, result.State)
	return result, nil
}

func (s *LikeService) assertTargetExists(target model.LikeTarget) error {
	var err error
	switch target.Kind {
	case model.TargetVideo:
		_, err = db.GetVideo(s.ctx, target.Id)
		if db.IsRecordNotFound(err) {
			return errno.NotFoundErr.WithMessage("Video file not found")
		}
	case model.TargetComment:
		_, err = db.GetComment(s.ctx, target.Id)
		if db.IsRecordNotFound(err) {
			return errno.NotFoundErr.WithMessage("Comment not found")
		}
	case model.TargetTweet:
		_, err = db.GetTweet(s.ctx, target.Id)
		if db.IsRecordNotFound(err) {
			return errno.NotFoundErr.WithMessage("Tweet not found")
		}
	default:
		return errno.ParamErr.WithMessage("Unknown like target")
	}
	if err != nil {
		return errors.WithMessage(err, "dal lookup failed")
	}
	return nil
}

func (s *LikeService) publishEvent(target model.LikeTarget, userId int64, state string) {
	if likeProducer == nil {
		return
	}
	action := "like"
	if state == "removed" {
		action = "unlike"
	}
	event := &mq.LikeEvent{
		EventId:    uuid.NewString(),
		UserId:     userId,
		TargetType: string(target.Kind),
		TargetId:   target.Id,
		Action:     action,
		Timestamp:  time.Now().Unix(),
	}
	if err := likeProducer.PublishLikeEvent(s.ctx, event); err != nil {
		hlog.Errorf("failed to publish like event: %v", err)
	}
}

// LikedVideos lists the videos the user liked, newest like first.
func (s *LikeService) LikedVideos(userId int64) ([]*model.LikedVideoEntry, error) {
	entries, err := db.ListLikedVideos(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.ListLikedVideos failed")
	}
	if len(entries) == 0 {
		return nil, errno.NotFoundErr.WithMessage("No liked videos found")
	}
	return entries, nil
}

// ReconcileLikeCounter recounts the like rows for the event target and
// overwrites the materialized counter, repairing any drift.
func ReconcileLikeCounter(ctx context.Context, event *mq.LikeEvent) error {
	target := model.LikeTarget{Kind: model.TargetKind(event.TargetType), Id: event.TargetId}
	if !target.Kind.Valid() {
		hlog.Warnf("skipping like event %s with unknown target %q", event.EventId, event.TargetType)
		return nil
	}
	count, err := db.CountLikes(ctx, target)
	if err != nil {
		return errors.WithMessage(err, "dal.CountLikes failed")
	}
	return db.SetLikeCounter(ctx, target, count)
}
