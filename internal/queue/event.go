// Package queue defines message payloads exchanged over the message broker.
package queue

// Activity types carried by ProductActivityEvent.
const (
    ActivityCreated   = "created"
    ActivityPublished = "published"
    ActivityLiked     = "liked"
)

// ProductActivityEvent is published when a product is created, made active
// on the marketplace, or liked. It carries enough information for
// downstream consumers to log or trigger analytics without querying the
// primary database.
type ProductActivityEvent struct {
    Type       string `json:"type"`
    ProductID  uint64 `json:"product_id"`
    ArtisanID  uint64 `json:"artisan_id"`
    Title      string `json:"title"`
    Category   string `json:"category"`
    OccurredAt string `json:"occurred_at"`
}
