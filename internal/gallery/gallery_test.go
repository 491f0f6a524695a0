package gallery

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Tezay/mariam/internal/audit"
	"github.com/Tezay/mariam/internal/storage"
)

func newService() (*Service, *InMemoryRepository, *storage.InMemoryStore, *audit.InMemoryRecorder) {
	repo := NewInMemoryRepository()
	store := storage.NewInMemoryStore()
	recorder := audit.NewInMemoryRecorder()
	return NewService(repo, store, recorder), repo, store, recorder
}

func TestUploadImage(t *testing.T) {
	service, _, store, recorder := newService()

	img, err := service.UploadImage(context.Background(), "user-1", 1, "salle.jpg", "La salle", strings.NewReader("jpeg bytes"))
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}

	if img.ID == 0 {
		t.Error("expected an id")
	}
	if img.URL == "" {
		t.Error("expected a public url")
	}
	if !strings.HasPrefix(img.StorageKey, "gallery/1/") {
		t.Errorf("storage key = %q, want restaurant namespace", img.StorageKey)
	}
	if _, ok := store.Objects[img.StorageKey]; !ok {
		t.Error("blob not stored")
	}
	if len(recorder.Entries) != 1 || recorder.Entries[0].Action != audit.ActionGalleryUpload {
		t.Errorf("audit entries = %v", recorder.Entries)
	}
}

func TestUploadImageRejectsUnknownType(t *testing.T) {
	service, _, _, _ := newService()

	_, err := service.UploadImage(context.Background(), "user-1", 1, "menu.pdf", "", strings.NewReader("%PDF"))
	if !errors.Is(err, ErrUnsupportedImage) {
		t.Errorf("err = %v, want ErrUnsupportedImage", err)
	}
}

func TestDeleteImageRemovesBlob(t *testing.T) {
	service, _, store, _ := newService()

	img, err := service.UploadImage(context.Background(), "user-1", 1, "salle.png", "", strings.NewReader("png bytes"))
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}

	if err := service.DeleteImage(context.Background(), img.ID); err != nil {
		t.Fatalf("DeleteImage: %v", err)
	}

	if _, ok := store.Objects[img.StorageKey]; ok {
		t.Error("blob still stored after delete")
	}
	if _, err := service.repo.GetByID(context.Background(), img.ID); !errors.Is(err, ErrNotFound) {
		t.Error("record still present after delete")
	}
}

func TestListImagesOrdersByDisplayOrder(t *testing.T) {
	service, repo, _, _ := newService()
	ctx := context.Background()

	first := &Image{RestaurantID: 1, StorageKey: "a", URL: "u1", DisplayOrder: 2}
	second := &Image{RestaurantID: 1, StorageKey: "b", URL: "u2", DisplayOrder: 1}
	other := &Image{RestaurantID: 2, StorageKey: "c", URL: "u3"}
	for _, img := range []*Image{first, second, other} {
		if err := repo.Create(ctx, img); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	images, err := service.ListImages(ctx, 1)
	if err != nil {
		t.Fatalf("ListImages: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("images = %d, want 2", len(images))
	}
	if images[0].ID != second.ID || images[1].ID != first.ID {
		t.Error("images not ordered by display_order")
	}
}
