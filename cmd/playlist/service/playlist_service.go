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

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

func (s *PlaylistService) Create(userId int64, name, description string) (*model.Playlist, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, errno.ParamErr.WithMessage("Name and description are required")
	}
	playlist := &model.Playlist{
		PlaylistId:  utils.GenerateID(),
		UserId:      userId,
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().Format(constants.TimeFormat),
		UpdatedAt:   time.Now().Format(constants.TimeFormat),
	}
	if err := db.CreatePlaylist(s.ctx, playlist); err != nil {
		return nil, errors.WithMessage(err, "dal.CreatePlaylist failed")
	}
	return playlist, nil
}

func (s *PlaylistService) ListByUser(userId int64) ([]*model.PlaylistView, error) {
	views, err := db.ListUserPlaylists(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.ListUserPlaylists failed")
	}
	if len(views) == 0 {
		return nil, errno.NotFoundErr.WithMessage("No playlists found")
	}
	return views, nil
}

func (s *PlaylistService) Get(playlistId int64) (*model.PlaylistView, error) {
	view, err := db.GetPlaylistView(s.ctx, playlistId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("Playlist not found")
		}
		return nil, errors.WithMessage(err, "dal.GetPlaylistView failed")
	}
	return view, nil
}

// AddVideo appends a video to a playlist. The acting user must own both the
// playlist and the video; re-adding an existing video is not an error, the
// returned flag tells the caller the playlist was already holding it.
func (s *PlaylistService) AddVideo(playlistId, videoId, userId int64) (*model.PlaylistView, bool, error) {
	playlist, err := s.ownedPlaylist(playlistId, userId)
	if err != nil {
		return nil, false, err
	}
	video, err := db.GetVideo(s.ctx, videoId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, false, errno.NotFoundErr.WithMessage("Video not found")
		}
		return nil, false, errors.WithMessage(err, "dal.GetVideo failed")
	}
	if video.UserId != userId {
		return nil, false, errno.PermissionErr.WithMessage("Video owner and playlist owner should be same")
	}

	present, err := db.PlaylistHasVideo(s.ctx, playlistId, videoId)
	if err != nil {
		return nil, false, errors.WithMessage(err, "dal.PlaylistHasVideo failed")
	}
	if !present {
		if err := db.AddVideoToPlaylist(s.ctx, playlistId, videoId); err != nil {
			return nil, false, errors.WithMessage(err, "dal.AddVideoToPlaylist failed")
		}
	}
	view, err := s.Get(playlist.PlaylistId)
	if err != nil {
		return nil, false, err
	}
	return view, present, nil
}

func (s *PlaylistService) RemoveVideo(playlistId, videoId, userId int64) (*model.PlaylistView, error) {
	if _, err := s.ownedPlaylist(playlistId, userId); err != nil {
		return nil, err
	}
	present, err := db.PlaylistHasVideo(s.ctx, playlistId, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dal.PlaylistHasVideo failed")
	}
	if !present {
		return nil, errno.NotFoundErr.WithMessage("Video not found in the playlist")
	}
	if err := db.RemoveVideoFromPlaylist(s.ctx, playlistId, videoId); err != nil {
		return nil, errors.WithMessage(err, "dal.RemoveVideoFromPlaylist failed")
	}
	return s.Get(playlistId)
}

func (s *PlaylistService) Update(playlistId, userId int64, name, description string) (*model.Playlist, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, errno.ParamErr.WithMessage("Name and description are required")
	}
	playlist, err := s.ownedPlaylist(playlistId, userId)
	if err != nil {
		return nil, err
	}
	fields := map[string]interface{}{"name": name, "description": description}
	if err := db.UpdatePlaylistDetails(s.ctx, playlistId, fields); err != nil {
		return nil, errors.WithMessage(err, "dal.UpdatePlaylistDetails failed")
	}
	playlist.Name = name
	playlist.Description = description
	return playlist, nil
}

func (s *PlaylistService) Delete(playlistId, userId int64) error {
	if _, err := s.ownedPlaylist(playlistId, userId); err != nil {
		return err
	}
	if err := db.DeletePlaylist(s.ctx, playlistId); err != nil {
		return errors.WithMessage(err, "dal.DeletePlaylist failed")
	}
	return nil
}

func (s *PlaylistService) ownedPlaylist(playlistId, userId int64) (*model.Playlist, error) {
	playlist, err := db.GetPlaylist(s.ctx, playlistId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.NotFoundErr.WithMessage("Playlist not found")
		}
		return nil, errors.WithMessage(err, "dal.GetPlaylist failed")
	}
	if playlist.UserId != userId {
		return nil, errno.PermissionErr.WithMessage("Only the playlist owner can modify it")
	}
	return playlist, nil
}
