package kafka

import "time"

// Event is a domain event published after a successful write.
type Event struct {
	EventID          string    `json:"event_id"`
	EventType        string    `json:"event_type"`
	ClientID         int64     `json:"client_id,omitempty"`
	ProductID        int64     `json:"product_id,omitempty"`
	FavoritesRemoved int       `json:"favorites_removed,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeClientDeleted   = "client.deleted"
	EventTypeProductDeleted  = "product.deleted"
	EventTypeFavoriteAdded   = "favorite.added"
	EventTypeFavoriteRemoved = "favorite.removed"
)

// Kafka topics
const (
	TopicClientDeleted   = "client-deleted"
	TopicProductDeleted  = "product-deleted"
	TopicFavoriteAdded   = "favorite-added"
	TopicFavoriteRemoved = "favorite-removed"
)

var topics = map[string]string{
	EventTypeClientDeleted:   TopicClientDeleted,
	EventTypeProductDeleted:  TopicProductDeleted,
	EventTypeFavoriteAdded:   TopicFavoriteAdded,
	EventTypeFavoriteRemoved: TopicFavoriteRemoved,
}

// TopicFor returns the topic an event type is published to.
func TopicFor(eventType string) (string, bool) {
	topic, ok := topics[eventType]
	return topic, ok
}

func ClientDeleted(clientID int64, favoritesRemoved int) Event {
	return Event{EventType: EventTypeClientDeleted, ClientID: clientID, FavoritesRemoved: favoritesRemoved}
}

func ProductDeleted(productID int64, favoritesRemoved int) Event {
	return Event{EventType: EventTypeProductDeleted, ProductID: productID, FavoritesRemoved: favoritesRemoved}
}

func FavoriteAdded(clientID, productID int64) Event {
	return Event{EventType: EventTypeFavoriteAdded, ClientID: clientID, ProductID: productID}
}

func FavoriteRemoved(clientID, productID int64) Event {
	return Event{EventType: EventTypeFavoriteRemoved, ClientID: clientID, ProductID: productID}
}
