package importer

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tezay/mariam/internal/restaurant"
)

// maxUploadBytes caps uploaded file size at 10 MB.
const maxUploadBytes = 10 << 20

// RestaurantResolver resolves the target restaurant, falling back to
// the first active one when the request names none.
type RestaurantResolver interface {
	Resolve(ctx context.Context, id *int) (*restaurant.Restaurant, error)
}

type Handler struct {
	service     *Service
	restaurants RestaurantResolver
}

func NewHandler(service *Service, restaurants RestaurantResolver) *Handler {
	return &Handler{service: service, restaurants: restaurants}
}

// --------------------------------------------------
// POST /import/upload  (editor)
// --------------------------------------------------
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read file"})
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read file"})
		return
	}

	result, err := h.service.Upload(c.Request.Context(), c.GetString("userID"), fileHeader.Filename, raw)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// POST /import/preview  (editor)
// --------------------------------------------------

type previewRequest struct {
	FileID        string        `json:"file_id"`
	RestaurantID  *int          `json:"restaurant_id"`
	ColumnMapping ColumnMapping `json:"column_mapping"`
	DateConfig    DateConfig    `json:"date_config"`
}

func (h *Handler) Preview(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	target, err := h.restaurants.Resolve(c.Request.Context(), req.RestaurantID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Preview(c.Request.Context(), c.GetString("userID"), req.FileID, target.ID, req.ColumnMapping, req.DateConfig)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// POST /import/confirm  (editor)
// --------------------------------------------------

type confirmRequest struct {
	FileID          string        `json:"file_id"`
	RestaurantID    *int          `json:"restaurant_id"`
	ColumnMapping   ColumnMapping `json:"column_mapping"`
	DateConfig      DateConfig    `json:"date_config"`
	DuplicateAction string        `json:"duplicate_action"`
	AutoPublish     bool          `json:"auto_publish"`
}

func (h *Handler) Confirm(c *gin.Context) {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	target, err := h.restaurants.Resolve(c.Request.Context(), req.RestaurantID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Confirm(
		c.Request.Context(),
		c.GetString("userID"),
		req.FileID,
		target.ID,
		req.ColumnMapping,
		req.DateConfig,
		req.DuplicateAction,
		req.AutoPublish,
		c.ClientIP(),
	)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnsupportedFormat),
		errors.Is(err, ErrNoColumns),
		errors.Is(err, ErrNoRows),
		errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
