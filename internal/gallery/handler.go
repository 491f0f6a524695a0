package gallery

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

// --------------------------------------------------
// POST /restaurants/:restaurant_id/gallery  (editor)
// --------------------------------------------------
func (h *Handler) Upload(c *gin.Context) {
	restaurantID, ok := restaurantIDParam(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read file"})
		return
	}
	defer file.Close()

	img, err := h.service.UploadImage(
		c.Request.Context(),
		c.GetString("userID"),
		restaurantID,
		fileHeader.Filename,
		c.PostForm("caption"),
		file,
	)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrUnsupportedImage) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, img)
}

// --------------------------------------------------
// GET /public/restaurants/:restaurant_id/gallery
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	restaurantID, ok := restaurantIDParam(c)
	if !ok {
		return
	}

	images, err := h.service.ListImages(c.Request.Context(), restaurantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"images": images})
}

// --------------------------------------------------
// DELETE /gallery/:id  (editor)
// --------------------------------------------------
func (h *Handler) Delete(c *gin.Context) {
	imageID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image id"})
		return
	}

	if err := h.service.DeleteImage(c.Request.Context(), imageID); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "image deleted"})
}
