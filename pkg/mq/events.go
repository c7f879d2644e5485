package mq

// LikeEvent is published after a like toggle commits. The reconciler consumes
// it to recount the target's like rows and repair counter drift.
type LikeEvent struct {
	EventId    string `json:"event_id"`
	UserId     int64  `json:"user_id"`
	TargetType string `json:"target_type"` // video, comment, tweet
	TargetId   int64  `json:"target_id"`
	Action     string `json:"action"` // like, unlike
	Timestamp  int64  `json:"timestamp"`
}

const (
	LikeEventExchange = "like_events"
	LikeEventQueue    = "like_event_queue"
	LikeEventKey      = "like.toggled"
)
