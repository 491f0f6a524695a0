package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Tezay/mariam/internal/auth"
	"github.com/Tezay/mariam/internal/events"
	"github.com/Tezay/mariam/internal/gallery"
	"github.com/Tezay/mariam/internal/importer"
	"github.com/Tezay/mariam/internal/menu"
	"github.com/Tezay/mariam/internal/middleware"
	"github.com/Tezay/mariam/internal/restaurant"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Auth       *auth.Handler
	Restaurant *restaurant.Handler
	Menu       *menu.Handler
	Importer   *importer.Handler
	Events     *events.Handler
	Gallery    *gallery.Handler
}

// New builds the gin engine and registers every route. Public reads
// need no token; everything that writes goes through the auth
// middleware and an editor or admin role check.
func New(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
	}

	// ───────────────────────── PUBLIC ─────────────────────────
	public := r.Group("/public")
	{
		public.GET("/restaurants", h.Restaurant.List)
		public.GET("/restaurants/:restaurant_id/config", h.Restaurant.GetConfig)
		public.GET("/menus/:restaurant_id", h.Menu.ListPublic)
		public.GET("/menus/:restaurant_id/:date", h.Menu.GetPublic)
		public.GET("/restaurants/:restaurant_id/events", h.Events.ListPublic)
		public.GET("/restaurants/:restaurant_id/gallery", h.Gallery.List)
	}

	editor := middleware.RequireRole(auth.RoleEditor, auth.RoleAdmin)

	// ───────────────────────── MENUS ─────────────────────────
	menus := r.Group("/menus")
	menus.Use(middleware.AuthMiddleware(), editor)
	{
		menus.GET("/:restaurant_id", h.Menu.List)
		menus.GET("/:restaurant_id/:date", h.Menu.Get)
		menus.PUT("/:restaurant_id/:date", h.Menu.Save)
		menus.POST("/:restaurant_id/:date/publish", h.Menu.Publish)
		menus.DELETE("/:restaurant_id/:date", h.Menu.Delete)
	}

	// ───────────────────────── IMPORT ─────────────────────────
	importGroup := r.Group("/import")
	importGroup.Use(middleware.AuthMiddleware(), editor)
	{
		importGroup.POST("/upload", h.Importer.Upload)
		importGroup.POST("/preview", h.Importer.Preview)
		importGroup.POST("/confirm", h.Importer.Confirm)
	}

	// ───────────────────────── EVENTS ─────────────────────────
	eventWrites := r.Group("/")
	eventWrites.Use(middleware.AuthMiddleware(), editor)
	{
		eventWrites.POST("/restaurants/:restaurant_id/events", h.Events.Create)
		eventWrites.GET("/restaurants/:restaurant_id/events", h.Events.List)
		eventWrites.PUT("/events/:id", h.Events.Update)
		eventWrites.POST("/events/:id/publish", h.Events.Publish)
		eventWrites.POST("/events/:id/unpublish", h.Events.Unpublish)
		eventWrites.DELETE("/events/:id", h.Events.Delete)

		eventWrites.POST("/restaurants/:restaurant_id/gallery", h.Gallery.Upload)
		eventWrites.DELETE("/gallery/:id", h.Gallery.Delete)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/restaurants", h.Restaurant.Create)
	}

	return r
}
