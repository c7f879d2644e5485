package service

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/dal/db"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/oss"
	"vidtube.com/pkg/utils"
)

// MediaStore is the slice of object storage the video flows need.
type MediaStore interface {
	Upload(ctx context.Context, localPath, folder string) (*oss.Object, error)
	Delete(ctx context.Context, key string) error
}

var (
	mediaStore    MediaStore = oss.Store{}
	probeDuration            = utils.GetVideoDuration
)

type VideoService struct {
	ctx context.Context
}

func NewVideoService(ctx context.Context) *VideoService {
	return &VideoService{ctx: ctx}
}

type PublishRequest struct {
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

// Publish uploads the media files, probes the duration and inserts the row.
// If the insert fails the uploaded objects are removed again so storage does
// not accumulate orphans.
func (s *VideoService) Publish(userId int64, req *PublishRequest) (*model.Video, error) {
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Description) == "" {
		return nil, errno.ParamErr.WithMessage("Title or description shouldn't be empty")
	}
	if req.VideoPath == "" || req.ThumbnailPath == "" {
		return nil, errno.ParamErr.WithMessage("Video and thumbnail files are required")
	}

	videoObj, err := mediaStore.Upload(s.ctx, req.VideoPath, constants.VideoFolder)
	if err != nil {
		return nil, errors.WithMessage(err, "video upload failed")
	}
	thumbObj, err := mediaStore.Upload(s.ctx, req.ThumbnailPath, constants.ThumbnailFolder)
	if err != nil {
		s.discard(videoObj.Key)
		return nil, errors.WithMessage(err, "thumbnail upload failed")
	}

	duration, err := probeDuration(req.VideoPath)
	if err != nil {
		s.discard(videoObj.Key, thumbObj.Key)
		return nil, errors.WithMessage(err, "ffprobe failed")
	}

	now := time.Now().Format(constants.TimeFormat)
	video := &model.Video{
		VideoId:      utils.GenerateID(),
		UserId:       userId,
		Title:        req.Title,
		Description:  req.Description,
		VideoUrl:     videoObj.Url,
		VideoKey:     videoObj.Key,
		ThumbnailUrl: thumbObj.Url,
		ThumbnailKey: thumbObj.Key,
		Duration:     duration,
		IsPublished:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.InsertVideo(s.ctx, video); err != nil {
		s.discard(videoObj.Key, thumbObj.Key)
		return nil, errors.WithMessage(err, "dal.InsertVideo failed")
	}
	return video, nil
}

func (s *VideoService) discard(keys ...string) {
	for _, key := range keys {
		if err := mediaStore.Delete(s.ctx, key); err != nil {
			hlog.Errorf("failed to remove object %s: %v", key, err)
		}
	}
}

// Get returns the video joined with its owner, bumps the view counter and
// records the watch in the viewer's history.
func (s *VideoService) Get(videoId, actingUserId int64) (*model.VideoWithOwner, error) {
	video, err := db.GetVideoWithOwner(s.ctx, videoId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("Video not found")
		}
		return nil, errors.WithMessage(err, "dal.GetVideoWithOwner failed")
	}
	if err := db.IncrementViews(s.ctx, videoId); err != nil {
		return nil, errors.WithMessage(err, "dal.IncrementViews failed")
	}
	video.Views++
	if err := db.AddWatchHistory(s.ctx, actingUserId, videoId); err != nil {
		return nil, errors.WithMessage(err, "dal.AddWatchHistory failed")
	}
	return video, nil
}

type ListRequest struct {
	Page    int64
	Limit   int64
	Query   string
	OwnerId int64
	SortBy  string
	SortAsc bool
}

func (s *VideoService) List(req *ListRequest) (*model.VideoPage, error) {
	page, limit := utils.NormalizePage(req.Page, req.Limit)
	filter := db.VideoFilter{
		Query:   req.Query,
		OwnerId: req.OwnerId,
		SortBy:  req.SortBy,
		SortAsc: req.SortAsc,
	}
	videos, total, err := db.ListVideos(s.ctx, filter, page, limit)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.ListVideos failed")
	}
	return &model.VideoPage{
		Page:       page,
		TotalPages: utils.TotalPages(total, limit),
		Videos:     videos,
	}, nil
}

type UpdateRequest struct {
	Title         string
	Description   string
	ThumbnailPath string
}

// Update changes title, description and optionally the thumbnail. A new
// thumbnail is uploaded first and the old object removed only after the row
// change succeeded, so a failed update never loses the current image.
func (s *VideoService) Update(videoId, userId int64, req *UpdateRequest) (*model.Video, error) {
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Description) == "" {
		return nil, errno.ParamErr.WithMessage("Title or description shouldn't be empty")
	}
	video, err := s.ownedVideo(videoId, userId)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
	}
	oldThumbKey := ""
	if req.ThumbnailPath != "" {
		thumbObj, err := mediaStore.Upload(s.ctx, req.ThumbnailPath, constants.ThumbnailFolder)
		if err != nil {
			return nil, errors.WithMessage(err, "thumbnail upload failed")
		}
		fields["thumbnail_url"] = thumbObj.Url
		fields["thumbnail_key"] = thumbObj.Key
		oldThumbKey = video.ThumbnailKey
		video.ThumbnailUrl = thumbObj.Url
		video.ThumbnailKey = thumbObj.Key
	}
	if err := db.UpdateVideoDetails(s.ctx, videoId, fields); err != nil {
		if key, ok := fields["thumbnail_key"].(string); ok {
			s.discard(key)
		}
		return nil, errors.WithMessage(err, "dal.UpdateVideoDetails failed")
	}
	if oldThumbKey != "" {
		s.discard(oldThumbKey)
	}
	video.Title = req.Title
	video.Description = req.Description
	return video, nil
}

// Delete removes the remote media first and the row after.
func (s *VideoService) Delete(videoId, userId int64) error {
	video, err := s.ownedVideo(videoId, userId)
	if err != nil {
		return err
	}
	s.discard(video.VideoKey, video.ThumbnailKey)
	if err := db.DeleteVideo(s.ctx, videoId); err != nil {
		return errors.WithMessage(err, "dal.DeleteVideo failed")
	}
	return nil
}

func (s *VideoService) TogglePublishStatus(videoId, userId int64) (*model.Video, error) {
	video, err := s.ownedVideo(videoId, userId)
	if err != nil {
		return nil, err
	}
	video.IsPublished = !video.IsPublished
	if err := db.SetPublishStatus(s.ctx, videoId, video.IsPublished); err != nil {
		return nil, errors.WithMessage(err, "dal.SetPublishStatus failed")
	}
	return video, nil
}

func (s *VideoService) ownedVideo(videoId, userId int64) (*model.Video, error) {
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("Video not found")
		}
		return nil, errors.WithMessage(err, "dal.GetVideo failed")
	}
	if video.UserId != userId {
		return nil, errno.PermissionErr.WithMessage("Only the video owner can modify it")
	}
	return video, nil
}
