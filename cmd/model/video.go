package model

type Video struct {
	VideoId      int64  `json:"videoId" gorm:"column:video_id;primaryKey"`
	UserId       int64  `json:"owner" gorm:"column:user_id;index"`
	Title        string `json:"title" gorm:"column:title;size:256"`
	Description  string `json:"description" gorm:"column:description"`
	VideoUrl     string `json:"videoFile" gorm:"column:video_url"`
	VideoKey     string `json:"-" gorm:"column:video_key"`
	ThumbnailUrl string `json:"thumbnail" gorm:"column:thumbnail_url"`
	ThumbnailKey string `json:"-" gorm:"column:thumbnail_key"`
	Duration     int64  `json:"duration" gorm:"column:duration"`
	Views        int64  `json:"views" gorm:"column:views;default:0"`
	Likes        int64  `json:"likes" gorm:"column:likes;default:0"`
	IsPublished  bool   `json:"isPublished" gorm:"column:is_published;default:true"`
	CreatedAt    string `json:"createdAt" gorm:"column:created_at;size:32"`
	UpdatedAt    string `json:"updatedAt" gorm:"column:updated_at;size:32"`
}

func (Video) TableName() string { return "videos" }
