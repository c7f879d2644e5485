package model

type User struct {
	UserId        int64  `json:"userId" gorm:"column:user_id;primaryKey"`
	UserName      string `json:"username" gorm:"column:username;uniqueIndex;size:64"`
	Email         string `json:"email" gorm:"column:email;uniqueIndex;size:128"`
	FullName      string `json:"fullName" gorm:"column:full_name;size:128"`
	Password      string `json:"-" gorm:"column:password;size:128"`
	AvatarUrl     string `json:"avatar" gorm:"column:avatar_url"`
	AvatarKey     string `json:"-" gorm:"column:avatar_key"`
	CoverImageUrl string `json:"coverImage" gorm:"column:cover_image_url"`
	CoverImageKey string `json:"-" gorm:"column:cover_image_key"`
	CreatedAt     string `json:"createdAt" gorm:"column:created_at;size:32"`
	UpdatedAt     string `json:"updatedAt" gorm:"column:updated_at;size:32"`
}

func (User) TableName() string { return "users" }

// WatchHistory is the ordered set of videos a user has opened: one row per
// (user, video), re-watching only refreshes watched_at.
type WatchHistory struct {
	Id        int64  `json:"-" gorm:"column:id;primaryKey;autoIncrement"`
	UserId    int64  `json:"userId" gorm:"column:user_id;uniqueIndex:idx_watch_user_video"`
	VideoId   int64  `json:"videoId" gorm:"column:video_id;uniqueIndex:idx_watch_user_video"`
	WatchedAt string `json:"watchedAt" gorm:"column:watched_at;size:32"`
}

func (WatchHistory) TableName() string { return "watch_histories" }
