package storage

import "context"

// StorageService defines the interface for media storage operations.
type StorageService interface {
	// UploadFile uploads a local file and returns its secure delivery URL.
	UploadFile(ctx context.Context, localFilePath, folder string) (string, error)
	// DeleteFile removes an asset by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
	// PublicIDFromURL derives the asset public ID from a delivery URL.
	PublicIDFromURL(deliveryURL string) string
}
