package model

type Subscription struct {
	SubscriptionId int64  `json:"subscriptionId" gorm:"column:subscription_id;primaryKey"`
	SubscriberId   int64  `json:"subscriber" gorm:"column:subscriber_id;uniqueIndex:idx_sub_pair"`
	ChannelId      int64  `json:"channel" gorm:"column:channel_id;uniqueIndex:idx_sub_pair"`
	CreatedAt      string `json:"createdAt" gorm:"column:created_at;size:32"`
}

func (Subscription) TableName() string { return "subscriptions" }
