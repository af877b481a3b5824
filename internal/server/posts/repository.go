package posts

import (
	"context"
)

// Repository owns the persisted post collection. All reads and writes of
// the backing storage go through it.
type Repository interface {
	// ListAll returns the full collection in insertion order.
	ListAll(ctx context.Context) ([]Post, error)

	// Append validates the post's date, assigns a fresh unique id, and
	// durably appends the post to the end of the collection. The returned
	// post carries the assigned id.
	Append(ctx context.Context, post Post) (*Post, error)
}
