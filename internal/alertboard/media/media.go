package media

import "context"

// Asset identifies a stored image: URL is publicly fetchable, Key is the
// handle needed to delete the object and stays server-internal.
type Asset struct {
	URL string
	Key string
}

// Store is the integration boundary to the remote image hosting service.
// Upload failure aborts the enclosing operation; Delete failure is tolerated
// by callers (worst case an orphaned asset remains).
type Store interface {
	Upload(ctx context.Context, data []byte, contentType string) (*Asset, error)
	Delete(ctx context.Context, key string) error
}
