package restaurant

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

type createRequest struct {
	Name    string `json:"name"`
	Code    string `json:"code"`
	Address string `json:"address"`
}

// --------------------------------------------------
// POST /admin/restaurants
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	restaurant, err := h.service.CreateRestaurant(
		c.Request.Context(),
		c.GetString("userID"),
		req.Name,
		req.Code,
		req.Address,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, restaurant)
}

// --------------------------------------------------
// GET /restaurants
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	restaurants, err := h.service.ListRestaurants(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// --------------------------------------------------
// GET /public/restaurants/:restaurant_id/config
// --------------------------------------------------
func (h *Handler) GetConfig(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("restaurant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	restaurant, err := h.service.GetRestaurant(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":              restaurant.ID,
		"name":            restaurant.Name,
		"code":            restaurant.Code,
		"menu_categories": restaurant.Categories(),
	})
}
