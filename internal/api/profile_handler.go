package api

import (
	"errors"
	"net/http"
	"time"

	"dmarins/fittrack/internal/domain"
	"dmarins/fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- DTOs ---

// UpdateProfileRequest accepts free-text objectives, level, and weekdays;
// normalization to canonical values happens in the service layer.
type UpdateProfileRequest struct {
	DisplayName  string   `json:"displayName"`
	WeightKg     float64  `json:"weightKg" binding:"omitempty,gt=0"`
	HeightCm     float64  `json:"heightCm" binding:"omitempty,gt=0"`
	AgeYears     int      `json:"ageYears" binding:"omitempty,gt=0"`
	Sex          string   `json:"sex" binding:"omitempty,oneof=male female"`
	Objectives   []string `json:"objectives"`
	Level        string   `json:"level"`
	TrainingDays []string `json:"trainingDays"`
}

type ProfileResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	DisplayName  string    `json:"displayName,omitempty"`
	WeightKg     float64   `json:"weightKg,omitempty"`
	HeightCm     float64   `json:"heightCm,omitempty"`
	AgeYears     int       `json:"ageYears,omitempty"`
	Sex          string    `json:"sex,omitempty"`
	Objectives   []string  `json:"objectives"`
	Level        string    `json:"level,omitempty"`
	TrainingDays []string  `json:"trainingDays"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// MapProfileToResponse converts a domain.Profile to ProfileResponse DTO.
func MapProfileToResponse(profile *domain.Profile) ProfileResponse {
	if profile == nil {
		return ProfileResponse{}
	}
	objectives := make([]string, len(profile.Objectives))
	for i, tag := range profile.Objectives {
		objectives[i] = string(tag)
	}
	days := make([]string, len(profile.TrainingDays))
	for i, day := range profile.TrainingDays {
		days[i] = string(day)
	}
	return ProfileResponse{
		ID:           profile.ID.Hex(),
		UserID:       profile.UserID.Hex(),
		DisplayName:  profile.DisplayName,
		WeightKg:     profile.WeightKg,
		HeightCm:     profile.HeightCm,
		AgeYears:     profile.AgeYears,
		Sex:          profile.Sex,
		Objectives:   objectives,
		Level:        string(profile.Level),
		TrainingDays: days,
		UpdatedAt:    profile.UpdatedAt,
	}
}

// --- Handler Methods ---

// GetProfile returns the authenticated user's profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, "Profile not set up yet")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load profile")
		}
		return
	}

	c.JSON(http.StatusOK, MapProfileToResponse(profile))
}

// UpdateProfile creates or replaces the authenticated user's profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), userID, service.ProfileUpdate{
		DisplayName:  req.DisplayName,
		WeightKg:     req.WeightKg,
		HeightCm:     req.HeightCm,
		AgeYears:     req.AgeYears,
		Sex:          req.Sex,
		Objectives:   req.Objectives,
		Level:        req.Level,
		TrainingDays: req.TrainingDays,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	c.JSON(http.StatusOK, MapProfileToResponse(profile))
}

// HealthMetrics returns the computed health summary for the stored profile.
// Fields the profile lacks inputs for are simply absent from the response.
func (h *ProfileHandler) HealthMetrics(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	summary, err := h.profileService.HealthMetrics(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, "Profile not set up yet")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to compute health metrics")
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}
