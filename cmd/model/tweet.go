package model

type Tweet struct {
	TweetId   int64  `json:"tweetId" gorm:"column:tweet_id;primaryKey"`
	UserId    int64  `json:"owner" gorm:"column:user_id;index"`
	Content   string `json:"content" gorm:"column:content"`
	Likes     int64  `json:"likes" gorm:"column:likes;default:0"`
	CreatedAt string `json:"createdAt" gorm:"column:created_at;size:32"`
	UpdatedAt string `json:"updatedAt" gorm:"column:updated_at;size:32"`
}

func (Tweet) TableName() string { return "tweets" }
