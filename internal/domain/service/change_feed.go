package service

import "context"

// Live query topics.
const (
	TopicMenu          = "menu"
	TopicOrders        = "orders"
	TopicDeletedOrders = "deleted_orders"
	TopicUsers         = "users"
)

// NotificationsTopic returns the topic of a user's notification list.
func NotificationsTopic(userID string) string {
	return "notifications:" + userID
}

// UserTopic returns the topic of a single user's record.
func UserTopic(userID string) string {
	return "user:" + userID
}

// ChangeFeed broadcasts "topic changed" signals between writers and live query watchers.
type ChangeFeed interface {
	// Publish signals that data behind topic changed.
	Publish(ctx context.Context, topic string) error

	// Subscribe returns a channel receiving each changed topic until ctx is done.
	Subscribe(ctx context.Context) (<-chan string, error)

	// Close releases the feed.
	Close() error
}
