// Package imagestore uploads avatar images to an S3-compatible object
// store and hands back public URLs.
package imagestore

import "context"

// Store uploads an object and returns its public URL.
type Store interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
