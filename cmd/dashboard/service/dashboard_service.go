package service

import (
	"context"

	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/dal/db"
	"vidtube.com/pkg/errno"
)

type DashboardService struct {
	ctx context.Context
}

func NewDashboardService(ctx context.Context) *DashboardService {
	return &DashboardService{ctx: ctx}
}

// Stats aggregates the channel-wide counters for the acting user.
func (s *DashboardService) Stats(userId int64) (*model.ChannelStats, error) {
	stats, err := db.GetChannelStats(s.ctx, userId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("Channel not found")
		}
		return nil, errors.WithMessage(err, "dal.GetChannelStats failed")
	}
	return stats, nil
}

// Videos lists the channel's published uploads; drafts stay hidden.
func (s *DashboardService) Videos(userId int64) ([]*model.VideoSummary, error) {
	videos, err := db.ListChannelVideos(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.ListChannelVideos failed")
	}
	if len(videos) == 0 {
		return nil, errno.NotFoundErr.WithMessage("No videos found")
	}
	return videos, nil
}
