package service

import "context"

// MediaStore defines the interface for storing fetched media objects
// (user avatars). Implementations write to an object-store bucket and return
// the stored key.
type MediaStore interface {
	// Save writes the object under the given key and returns the key as
	// stored (implementations may prefix it).
	Save(ctx context.Context, key, contentType string, data []byte) (string, error)
}
