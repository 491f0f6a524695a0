package menu

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func restaurantIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("restaurant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return 0, false
	}
	return id, true
}

// --------------------------------------------------
// PUT /menus/:restaurant_id/:date  (editor)
// --------------------------------------------------
func (h *Handler) Save(c *gin.Context) {
	restaurantID, ok := restaurantIDParam(c)
	if !ok {
		return
	}

	var m Menu
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	m.RestaurantID = restaurantID
	m.Date = c.Param("date")

	if err := h.service.SaveMenu(c.Request.Context(), c.GetString("userID"), &m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, m)
}

// --------------------------------------------------
// GET /menus/:restaurant_id/:date  (editor)
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	restaurantID, ok := restaurantIDParam(c)
	if !ok {
		return
	}

	m, err := h.service.GetMenu(c.Request.Context(), restaurantID, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, m)
}

// --------------------------------------------------
// GET /menus/:restaurant_id?from=&to=  (editor)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	restaurantID, ok := restaurantIDParam(c)
	if !ok {
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query params are required"})
		return
	}

	menus, err := h.service.ListMenus(c.Request.Context(), restaurantID, from, to)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"menus": menus})
}

// --------------------------------------------------
// POST /menus/:restaurant_id/:date/publish  (editor)
// --------------------------------------------------
func (h *Handler) Publish(c *gin.Context) {
	restaurantID, ok := restaurantIDParam(c)
	if !ok {
		return
	}

	m, err := h.service.GetMenu(c.Request.Context(), restaurantID, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.PublishMenu(c.Request.Context(), c.GetString("userID"), m.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "menu published", "menu_id": m.ID})
}

// --------------------------------------------------
// DELETE /menus/:restaurant_id/:date  (editor)
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	restaurantID, ok := restaurantIDParam(c)
	if !ok {
		return
	}

	m, err := h.service.GetMenu(c.Request.Context(), restaurantID, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.DeleteMenu(c.Request.Context(), c.GetString("userID"), m.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "menu deleted"})
}

// --------------------------------------------------
// GET /public/menus/:restaurant_id/:date  (no auth)
// --------------------------------------------------
func (h *Handler) GetPublic(c *gin.Context) {
	restaurantID, ok := restaurantIDParam(c)
	if !ok {
		return
	}

	m, err := h.service.GetPublishedMenu(c.Request.Context(), restaurantID, c.Param("date"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no published menu for this date"})
		return
	}

	c.JSON(http.StatusOK, m)
}

// --------------------------------------------------
// GET /public/menus/:restaurant_id?from=&to=  (no auth)
// --------------------------------------------------
func (h *Handler) ListPublic(c *gin.Context) {
	restaurantID, ok := restaurantIDParam(c)
	if !ok {
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query params are required"})
		return
	}

	menus, err := h.service.ListPublishedMenus(c.Request.Context(), restaurantID, from, to)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"menus": menus})
}
