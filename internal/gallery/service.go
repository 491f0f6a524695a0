package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Tezay/mariam/internal/audit"
	"github.com/Tezay/mariam/internal/storage"
)

var ErrUnsupportedImage = errors.New("unsupported image type, use jpg, png or webp")

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type Service struct {
	repo  Repository
	store storage.ObjectStore
	audit audit.Recorder
}

func NewService(repo Repository, store storage.ObjectStore, recorder audit.Recorder) *Service {
	return &Service{repo: repo, store: store, audit: recorder}
}

// UploadImage stores the file and its database record. The storage key
// is namespaced per restaurant so one restaurant's images can never
// shadow another's.
func (s *Service) UploadImage(ctx context.Context, userID string, restaurantID int, filename, caption string, body io.Reader) (*Image, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		return nil, ErrUnsupportedImage
	}

	key := fmt.Sprintf("gallery/%d/%s%s", restaurantID, uuid.New().String(), ext)

	url, err := s.store.Put(ctx, key, contentType, body)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	img := &Image{
		RestaurantID: restaurantID,
		StorageKey:   key,
		URL:          url,
		Filename:     filename,
		Caption:      caption,
	}

	if err := s.repo.Create(ctx, img); err != nil {
		// The record is the source of truth; drop the orphaned blob.
		_ = s.store.Delete(ctx, key)
		return nil, err
	}

	err = s.audit.Record(ctx, audit.Entry{
		UserID:     userID,
		Action:     audit.ActionGalleryUpload,
		TargetType: "gallery_image",
		TargetID:   img.ID,
		Details:    map[string]any{"filename": filename},
	})
	if err != nil {
		return nil, err
	}

	return img, nil
}

func (s *Service) ListImages(ctx context.Context, restaurantID int) ([]*Image, error) {
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

func (s *Service) DeleteImage(ctx context.Context, imageID int) error {
	img, err := s.repo.GetByID(ctx, imageID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, imageID); err != nil {
		return err
	}

	_ = s.store.Delete(ctx, img.StorageKey)
	return nil
}
