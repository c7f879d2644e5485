package model

// Read-model shapes returned by the joined queries in dal/db. Only safe user
// fields ever appear here; password and storage keys stay behind.

type UserSummary struct {
	UserId   int64  `json:"userId"`
	UserName string `json:"username"`
	FullName string `json:"fullName,omitempty"`
	Avatar   string `json:"avatar"`
}

type VideoSummary struct {
	VideoId     int64  `json:"videoId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoUrl    string `json:"videoFile"`
	Thumbnail   string `json:"thumbnail"`
	Duration    int64  `json:"duration"`
	Views       int64  `json:"views"`
	Likes       int64  `json:"likes"`
}

type VideoWithOwner struct {
	Video
	Owner UserSummary `json:"ownerInfo"`
}

type CommentWithOwner struct {
	Comment
	Owner UserSummary `json:"ownerInfo"`
}

type TweetWithOwner struct {
	Tweet
	Owner UserSummary `json:"ownerInfo"`
}

type LikedVideoEntry struct {
	LikeId    int64        `json:"likeId"`
	Video     VideoSummary `json:"video"`
	CreatedAt string       `json:"createdAt"`
}

type SubscriberEntry struct {
	SubscriptionId int64       `json:"subscriptionId"`
	Subscriber     UserSummary `json:"subscriber"`
	CreatedAt      string      `json:"createdAt"`
}

type SubscribedChannelEntry struct {
	SubscriptionId int64       `json:"subscriptionId"`
	Channel        UserSummary `json:"subscribedTo"`
	CreatedAt      string      `json:"createdAt"`
}

type PlaylistView struct {
	Playlist
	Owner  UserSummary    `json:"ownerInfo"`
	Videos []VideoSummary `json:"videos"`
}

type WatchHistoryEntry struct {
	Video     VideoSummary `json:"video"`
	Owner     UserSummary  `json:"ownerInfo"`
	WatchedAt string       `json:"watchedAt"`
}

// VideoPage is the paginated video listing envelope payload.
type VideoPage struct {
	Page       int64             `json:"page"`
	TotalPages int64             `json:"totalPages"`
	Videos     []*VideoWithOwner `json:"videos"`
}

// ChannelStats aggregates a channel's totals for the dashboard.
type ChannelStats struct {
	UserId           int64  `json:"userId"`
	UserName         string `json:"username"`
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	Avatar           string `json:"avatar"`
	CoverImage       string `json:"coverImage"`
	TotalSubscribers int64  `json:"totalSubscribers"`
	TotalVideos      int64  `json:"totalVideos"`
	TotalViews       int64  `json:"totalViews"`
	TotalLikes       int64  `json:"totalLikes"`
}

// ChannelProfile is the public channel page of a user.
type ChannelProfile struct {
	UserId          int64  `json:"userId"`
	UserName        string `json:"username"`
	FullName        string `json:"fullName"`
	Avatar          string `json:"avatar"`
	CoverImage      string `json:"coverImage"`
	SubscriberCount int64  `json:"subscribersCount"`
	SubscribedTo    int64  `json:"channelsSubscribedToCount"`
	IsSubscribed    bool   `json:"isSubscribed"`
}

// ToggleResult reports which way a toggle flipped.
type ToggleResult struct {
	State        string `json:"state"` // "added" or "removed"
	CounterDelta int64  `json:"counterDelta"`
}
