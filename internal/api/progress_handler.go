package api

import (
	"errors"
	"net/http"
	"time"

	"dmarins/fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgressHandler holds the progress service dependency.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// --- DTOs ---

type LogWeightRequest struct {
	WeightKg float64    `json:"weightKg" binding:"required,gt=0"`
	LoggedAt *time.Time `json:"loggedAt"`
	Notes    string     `json:"notes"`
}

type WeightLogResponse struct {
	ID        string    `json:"id"`
	WeightKg  float64   `json:"weightKg"`
	LoggedAt  time.Time `json:"loggedAt"`
	Notes     string    `json:"notes,omitempty"`
	PhotoURL  string    `json:"photoUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type PhotoUploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// --- Handler Methods ---

// LogWeight stores a new weight entry.
func (h *ProgressHandler) LogWeight(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req LogWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	var loggedAt time.Time
	if req.LoggedAt != nil {
		loggedAt = *req.LoggedAt
	}

	entry, err := h.progressService.LogWeight(c.Request.Context(), userID, req.WeightKg, loggedAt, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrInvalidWeight) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to log weight.")
		}
		return
	}

	c.JSON(http.StatusCreated, WeightLogResponse{
		ID:        entry.ID.Hex(),
		WeightKg:  entry.WeightKg,
		LoggedAt:  entry.LoggedAt,
		Notes:     entry.Notes,
		CreatedAt: entry.CreatedAt,
	})
}

// WeightHistory returns the user's logs newest first, with presigned photo
// URLs where available.
func (h *ProgressHandler) WeightHistory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entries, err := h.progressService.History(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve weight history.")
		return
	}

	responses := make([]WeightLogResponse, len(entries))
	for i, entry := range entries {
		responses[i] = WeightLogResponse{
			ID:        entry.ID.Hex(),
			WeightKg:  entry.WeightKg,
			LoggedAt:  entry.LoggedAt,
			Notes:     entry.Notes,
			PhotoURL:  entry.PhotoURL,
			CreatedAt: entry.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, responses)
}

// DeleteWeightLog removes the entry and its photo object when present.
func (h *ProgressHandler) DeleteWeightLog(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	logID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.progressService.DeleteLog(c.Request.Context(), userID, logID); err != nil {
		if errors.Is(err, service.ErrWeightLogNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete weight log.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// PhotoUploadURL issues a presigned PUT URL for the log's progress photo.
func (h *ProgressHandler) PhotoUploadURL(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	logID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req PhotoUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	target, err := h.progressService.PhotoUploadURL(c.Request.Context(), userID, logID, req.ContentType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWeightLogNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidPhotoType):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL.")
		}
		return
	}

	c.JSON(http.StatusOK, target)
}
