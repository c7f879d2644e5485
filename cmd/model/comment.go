package model

type Comment struct {
	CommentId int64  `json:"commentId" gorm:"column:comment_id;primaryKey"`
	VideoId   int64  `json:"video" gorm:"column:video_id;index"`
	UserId    int64  `json:"owner" gorm:"column:user_id;index"`
	Content   string `json:"content" gorm:"column:content"`
	Likes     int64  `json:"likes" gorm:"column:likes;default:0"`
	CreatedAt string `json:"createdAt" gorm:"column:created_at;size:32"`
	UpdatedAt string `json:"updatedAt" gorm:"column:updated_at;size:32"`
}

func (Comment) TableName() string { return "comments" }
