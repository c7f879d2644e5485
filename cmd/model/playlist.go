package model

type Playlist struct {
	PlaylistId  int64  `json:"playlistId" gorm:"column:playlist_id;primaryKey"`
	UserId      int64  `json:"owner" gorm:"column:user_id;index"`
	Name        string `json:"name" gorm:"column:name;size:256"`
	Description string `json:"description" gorm:"column:description"`
	CreatedAt   string `json:"createdAt" gorm:"column:created_at;size:32"`
	UpdatedAt   string `json:"updatedAt" gorm:"column:updated_at;size:32"`
}

func (Playlist) TableName() string { return "playlists" }

// PlaylistVideo keeps the ordered video sequence of a playlist. The unique
// index suppresses duplicate entries, position preserves insertion order.
type PlaylistVideo struct {
	Id         int64 `json:"-" gorm:"column:id;primaryKey;autoIncrement"`
	PlaylistId int64 `json:"playlistId" gorm:"column:playlist_id;uniqueIndex:idx_playlist_video"`
	VideoId    int64 `json:"videoId" gorm:"column:video_id;uniqueIndex:idx_playlist_video"`
	Position   int64 `json:"position" gorm:"column:position"`
}

func (PlaylistVideo) TableName() string { return "playlist_videos" }
