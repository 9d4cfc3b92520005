package api

import (
	"errors"
	"net/http"

	"dmarins/fittrack/internal/domain"
	"dmarins/fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

// TemplateHandler holds the template and import service dependencies.
type TemplateHandler struct {
	templateService service.TemplateService
	importService   service.ImportService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService service.TemplateService, importService service.ImportService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService, importService: importService}
}

// --- DTOs ---

// TemplateResponse is the DTO for one catalog entry. The embedded day
// structure is passed through as stored; clients render it directly.
type TemplateResponse struct {
	ID                   string               `json:"id"`
	Title                string               `json:"title"`
	ShortDescription     string               `json:"shortDescription,omitempty"`
	Objective            string               `json:"objective"`
	Level                string               `json:"level"`
	SuggestedDaysPerWeek *int                 `json:"suggestedDaysPerWeek,omitempty"`
	SplitType            *string              `json:"splitType,omitempty"`
	Days                 []domain.TemplateDay `json:"days"`
}

// MapTemplateToResponse converts a domain.TemplateWorkout to its DTO.
func MapTemplateToResponse(template *domain.TemplateWorkout) TemplateResponse {
	if template == nil {
		return TemplateResponse{}
	}
	resp := TemplateResponse{
		ID:                   template.ID.Hex(),
		Title:                template.Title,
		ShortDescription:     template.ShortDescription,
		Objective:            string(template.Objective),
		Level:                string(template.Level),
		SuggestedDaysPerWeek: template.SuggestedDaysPerWeek,
		Days:                 template.Structure.Days,
	}
	if template.SplitType != nil {
		split := string(*template.SplitType)
		resp.SplitType = &split
	}
	return resp
}

// --- Handler Methods ---

// ListTemplates returns the full template catalog.
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.templateService.List(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve templates.")
		return
	}
	responses := make([]TemplateResponse, len(templates))
	for i := range templates {
		responses[i] = MapTemplateToResponse(&templates[i])
	}
	c.JSON(http.StatusOK, responses)
}

// GetTemplate returns one catalog entry by id.
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	templateID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	template, err := h.templateService.GetByID(c.Request.Context(), templateID)
	if err != nil {
		if errors.Is(err, service.ErrTemplateNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve template.")
		}
		return
	}

	c.JSON(http.StatusOK, MapTemplateToResponse(template))
}

// RecommendedTemplate returns the best catalog match for the user's profile.
func (h *TemplateHandler) RecommendedTemplate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	template, err := h.templateService.Recommended(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoTemplates) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to compute recommendation.")
		}
		return
	}

	c.JSON(http.StatusOK, MapTemplateToResponse(template))
}

// ImportTemplate materializes the template into the user's workout list.
func (h *TemplateHandler) ImportTemplate(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	templateID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	result, err := h.importService.ImportTemplate(c.Request.Context(), userID, templateID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTemplateNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrEmptyTemplate):
			abortWithError(c, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, service.ErrNoMatchingExercises):
			abortWithError(c, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, service.ErrStaleAuth):
			abortWithError(c, http.StatusUnauthorized, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Import failed.")
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}
