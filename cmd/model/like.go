package model

// TargetKind names the single entity a like points at.
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetTweet   TargetKind = "tweet"
)

func (k TargetKind) Valid() bool {
	switch k {
	case TargetVideo, TargetComment, TargetTweet:
		return true
	}
	return false
}

// LikeTarget is a tagged reference: exactly one kind, one id. Modeling the
// target this way rules out zero- or multi-target like rows.
type LikeTarget struct {
	Kind TargetKind
	Id   int64
}

type Like struct {
	LikeId     int64  `json:"likeId" gorm:"column:like_id;primaryKey"`
	UserId     int64  `json:"likedBy" gorm:"column:user_id;uniqueIndex:idx_like_user_target"`
	TargetType string `json:"targetType" gorm:"column:target_type;size:16;uniqueIndex:idx_like_user_target"`
	TargetId   int64  `json:"targetId" gorm:"column:target_id;uniqueIndex:idx_like_user_target"`
	CreatedAt  string `json:"createdAt" gorm:"column:created_at;size:32"`
}

func (Like) TableName() string { return "likes" }

func (l *Like) Target() LikeTarget {
	return LikeTarget{Kind: TargetKind(l.TargetType), Id: l.TargetId}
}
