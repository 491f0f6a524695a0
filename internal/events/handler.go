package events

import (
	"errors"
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

func eventIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return 0, false
	}
	return id, true
}

// --------------------------------------------------
// POST /restaurants/:restaurant_id/events  (editor)
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	restaurantID, ok := restaurantIDParam(c)
	if !ok {
		return
	}

	var e Event
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	e.RestaurantID = restaurantID

	if err := h.service.CreateEvent(c.Request.Context(), c.GetString("userID"), &e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, e)
}

// --------------------------------------------------
// GET /restaurants/:restaurant_id/events  (editor)
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	restaurantID, ok := restaurantIDParam(c)
	if !ok {
		return
	}

	events, err := h.service.ListEvents(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// --------------------------------------------------
// PUT /events/:id  (editor)
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	var e Event
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	e.ID = eventID

	if err := h.service.UpdateEvent(c.Request.Context(), c.GetString("userID"), &e); err != nil {
		c.JSON(statusForEventError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, e)
}

// --------------------------------------------------
// POST /events/:id/publish  (editor)
// --------------------------------------------------
func (h *Handler) Publish(c *gin.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	if err := h.service.PublishEvent(c.Request.Context(), c.GetString("userID"), eventID); err != nil {
		c.JSON(statusForEventError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event published"})
}

// --------------------------------------------------
// POST /events/:id/unpublish  (editor)
// --------------------------------------------------
func (h *Handler) Unpublish(c *gin.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	if err := h.service.UnpublishEvent(c.Request.Context(), c.GetString("userID"), eventID); err != nil {
		c.JSON(statusForEventError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event unpublished"})
}

// --------------------------------------------------
// DELETE /events/:id  (editor)
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteEvent(c.Request.Context(), c.GetString("userID"), eventID); err != nil {
		c.JSON(statusForEventError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

// --------------------------------------------------
// GET /public/restaurants/:restaurant_id/events
// --------------------------------------------------
func (h *Handler) ListPublic(c *gin.Context) {
	restaurantID, ok := restaurantIDParam(c)
	if !ok {
		return
	}

	events, err := h.service.ListPublicEvents(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

func statusForEventError(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
