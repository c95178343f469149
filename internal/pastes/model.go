package pastes

import "time"

// Paste is an immutable text record identified by a short string id.
type Paste struct {
	ID        string    `bson:"_id"`
	Title     string    `bson:"title"`
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"created_at"`
}
