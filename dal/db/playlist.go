package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	return DB.WithContext(ctx).Create(playlist).Error
}

func GetPlaylist(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).Take(&playlist).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

func UpdatePlaylistDetails(ctx context.Context, playlistId int64, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now().Format(constants.TimeFormat)
	return DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).
		Updates(fields).Error
}

func DeletePlaylist(ctx context.Context, playlistId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("playlist_id = ?", playlistId).Delete(&model.Playlist{}).Error
	})
}

// PlaylistHasVideo reports whether the video is already in the sequence.
func PlaylistHasVideo(ctx context.Context, playlistId, videoId int64) (bool, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
		Count(&count).Error
	return count > 0, err
}

// AddVideoToPlaylist appends the video at the end of the sequence. The caller
// checks for duplicates first; the unique index is the backstop.
func AddVideoToPlaylist(ctx context.Context, playlistId, videoId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPos int64
		if err := tx.Model(&model.PlaylistVideo{}).
			Where("playlist_id = ?", playlistId).
			Select("COALESCE(MAX(position), 0)").
			Scan(&maxPos).Error; err != nil {
			return err
		}
		return tx.Create(&model.PlaylistVideo{
			PlaylistId: playlistId,
			VideoId:    videoId,
			Position:   maxPos + 1,
		}).Error
	})
}

func RemoveVideoFromPlaylist(ctx context.Context, playlistId, videoId int64) error {
	return DB.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{}).Error
}

type playlistOwnerRow struct {
	model.Playlist
	ownerRow
}

const playlistSelect = "playlists.playlist_id, playlists.user_id, playlists.name, " +
	"playlists.description, playlists.created_at, playlists.updated_at"

// GetPlaylistView joins one playlist with its owner summary and its ordered
// video sequence.
func GetPlaylistView(ctx context.Context, playlistId int64) (*model.PlaylistView, error) {
	var row playlistOwnerRow
	err := DB.WithContext(ctx).Table("playlists").
		Select(playlistSelect+", "+ownerSelect).
		Joins("JOIN users ON users.user_id = playlists.user_id").
		Where("playlists.playlist_id = ?", playlistId).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	videos, err := listPlaylistVideos(ctx, playlistId)
	if err != nil {
		return nil, err
	}
	return &model.PlaylistView{
		Playlist: row.Playlist,
		Owner:    row.ownerRow.toSummary(),
		Videos:   videos,
	}, nil
}

// ListUserPlaylists returns a user's playlists with owner summary and videos,
// newest playlist first.
func ListUserPlaylists(ctx context.Context, userId int64) ([]*model.PlaylistView, error) {
	rows := make([]*playlistOwnerRow, 0)
	err := DB.WithContext(ctx).Table("playlists").
		Select(playlistSelect+", "+ownerSelect).
		Joins("JOIN users ON users.user_id = playlists.user_id").
		Where("playlists.user_id = ?", userId).
		Order("playlists.created_at DESC, playlists.playlist_id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.WithMessage(err, "Failed to list playlists")
	}
	views := make([]*model.PlaylistView, 0, len(rows))
	for _, r := range rows {
		videos, err := listPlaylistVideos(ctx, r.Playlist.PlaylistId)
		if err != nil {
			return nil, err
		}
		views = append(views, &model.PlaylistView{
			Playlist: r.Playlist,
			Owner:    r.ownerRow.toSummary(),
			Videos:   videos,
		})
	}
	return views, nil
}

func listPlaylistVideos(ctx context.Context, playlistId int64) ([]model.VideoSummary, error) {
	rows := make([]*videoSummaryRow, 0)
	err := DB.WithContext(ctx).Table("playlist_videos").
		Select(videoSummarySelect).
		Joins("JOIN videos ON videos.video_id = playlist_videos.video_id").
		Where("playlist_videos.playlist_id = ?", playlistId).
		Order("playlist_videos.position ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	videos := make([]model.VideoSummary, 0, len(rows))
	for _, r := range rows {
		videos = append(videos, r.toSummary())
	}
	return videos, nil
}
