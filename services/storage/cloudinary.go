package storage

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	cld           *cloudinary.Cloudinary
	defaultFolder string
}

// NewStorageService creates a Cloudinary-backed StorageService. Uploads with
// an empty folder land in defaultFolder.
func NewStorageService(cld *cloudinary.Cloudinary, defaultFolder string) StorageService {
	return &CloudinaryStorageService{cld: cld, defaultFolder: defaultFolder}
}

func (s *CloudinaryStorageService) UploadFile(ctx context.Context, localFilePath, folder string) (string, error) {
	if folder == "" {
		folder = s.defaultFolder
	}
	resp, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("storage: upload failed: %w", err)
	}
	return resp.SecureURL, nil
}

func (s *CloudinaryStorageService) DeleteFile(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("storage: destroy failed: %w", err)
	}
	return nil
}

// PublicIDFromURL extracts "<folder>/<name>" from a Cloudinary delivery URL,
// e.g. https://res.cloudinary.com/demo/image/upload/v1700000000/TourTravels/goa.jpg
// yields "TourTravels/goa".
func (s *CloudinaryStorageService) PublicIDFromURL(deliveryURL string) string {
	u, err := url.Parse(deliveryURL)
	if err != nil {
		return ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, p := range parts {
		if p != "upload" {
			continue
		}
		rest := parts[i+1:]
		// Skip the version segment ("v" followed by digits) if present.
		if len(rest) > 0 && isVersionSegment(rest[0]) {
			rest = rest[1:]
		}
		if len(rest) == 0 {
			return ""
		}
		id := strings.Join(rest, "/")
		return strings.TrimSuffix(id, path.Ext(id))
	}
	return ""
}

func isVersionSegment(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
