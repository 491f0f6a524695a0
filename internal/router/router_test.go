package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Tezay/mariam/internal/audit"
	"github.com/Tezay/mariam/internal/auth"
	"github.com/Tezay/mariam/internal/events"
	"github.com/Tezay/mariam/internal/gallery"
	"github.com/Tezay/mariam/internal/importer"
	"github.com/Tezay/mariam/internal/menu"
	"github.com/Tezay/mariam/internal/restaurant"
	"github.com/Tezay/mariam/internal/storage"
)

func testEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)

	recorder := audit.NewInMemoryRecorder()
	menuRepo := menu.NewInMemoryRepository()
	restaurantService := restaurant.NewService(restaurant.NewInMemoryRepository(), recorder)
	importService := importer.NewService(
		importer.NewInMemorySessionStore(),
		importer.NewInMemoryMenuStore(menuRepo, recorder),
	)
	eventService := events.NewService(events.NewInMemoryRepository(), recorder)
	galleryService := gallery.NewService(gallery.NewInMemoryRepository(), storage.NewInMemoryStore(), recorder)

	return New(Handlers{
		Auth:       auth.NewHandler(auth.NewService(auth.NewInMemoryUserRepository()), recorder),
		Restaurant: restaurant.NewHandler(restaurantService),
		Menu:       menu.NewHandler(menu.NewService(menuRepo, recorder)),
		Importer:   importer.NewHandler(importService, restaurantService),
		Events:     events.NewHandler(eventService),
		Gallery:    gallery.NewHandler(galleryService),
	})
}

func TestHealthCheck(t *testing.T) {
	r := testEngine()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestEditorRoutesRequireAuth(t *testing.T) {
	r := testEngine()

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/import/upload"},
		{http.MethodPost, "/import/preview"},
		{http.MethodPost, "/import/confirm"},
		{http.MethodPut, "/menus/1/2025-01-06"},
		{http.MethodPost, "/restaurants/1/events"},
		{http.MethodPost, "/restaurants/1/gallery"},
	}

	for _, tc := range paths {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token = %d, want 401", tc.method, tc.path, w.Code)
		}
	}
}

func TestPublicRoutesNeedNoToken(t *testing.T) {
	r := testEngine()

	req := httptest.NewRequest(http.MethodGet, "/public/restaurants", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("public restaurants = %d, want 200", w.Code)
	}
}

func TestAdminRouteRejectsEditors(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testEngine()

	token, err := auth.GenerateToken("user-1", "editor@example.com", auth.RoleEditor)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/admin/restaurants", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("admin route with editor token = %d, want 403", w.Code)
	}
}
