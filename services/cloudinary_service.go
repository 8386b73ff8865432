package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

var cloudinaryService *CloudinaryService

// InitCloudinary wires the global Cloudinary service used by the admin
// panels for image uploads and deletions.
func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	var err error
	cloudinaryService, err = NewCloudinaryService(cloudName, apiKey, apiSecret)
	return err
}

// GetCloudinaryService returns the global Cloudinary service.
func GetCloudinaryService() *CloudinaryService {
	return cloudinaryService
}

// ImageKey builds the collision-avoiding public ID for an upload:
// upload time in unix millis plus the original filename without its
// extension. Mirrors the keys the menu has always used.
func ImageKey(filename string, now time.Time) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%d_%s", now.UnixMilli(), base)
}

// UploadImage uploads a single image and returns its public delivery URL.
func (s *CloudinaryService) UploadImage(ctx context.Context, file multipart.File, filename string, folder string) (string, error) {
	overwrite := false
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		PublicID:     ImageKey(filename, time.Now()),
		ResourceType: "image",
		Overwrite:    &overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}
	return result.SecureURL, nil
}

// DeleteImage deletes an image by its public ID.
func (s *CloudinaryService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	return err
}

// DeleteImageByURL derives the public ID from a stored delivery URL and
// deletes the asset. Used on entity deletion, where image removal is
// best effort.
func (s *CloudinaryService) DeleteImageByURL(ctx context.Context, url string) error {
	publicID, ok := PublicIDFromURL(url)
	if !ok {
		return fmt.Errorf("not a cloudinary delivery URL: %s", url)
	}
	return s.DeleteImage(ctx, publicID)
}

// PublicIDFromURL extracts the public ID (folder/key, no extension) from
// a Cloudinary delivery URL such as
// https://res.cloudinary.com/demo/image/upload/v1717000000/categories/1717000000123_tapas.jpg
func PublicIDFromURL(url string) (string, bool) {
	const marker = "/upload/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return "", false
	}
	rest := strings.Trim(url[idx+len(marker):], "/")
	if rest == "" {
		return "", false
	}
	// Drop transformation and version segments preceding the public ID.
	parts := strings.Split(rest, "/")
	for len(parts) > 1 && isVersionOrTransformation(parts[0]) {
		parts = parts[1:]
	}
	publicID := strings.Join(parts, "/")
	if ext := filepath.Ext(publicID); ext != "" {
		publicID = strings.TrimSuffix(publicID, ext)
	}
	if publicID == "" {
		return "", false
	}
	return publicID, true
}

func isVersionOrTransformation(segment string) bool {
	if len(segment) > 1 && segment[0] == 'v' {
		allDigits := true
		for _, r := range segment[1:] {
			if r < '0' || r > '9' {
				allDigits = false
				break
			}
		}
		if allDigits {
			return true
		}
	}
	// Transformation segments are comma-joined key_value pairs.
	return strings.Contains(segment, ",")
}
