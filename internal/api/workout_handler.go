package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"dmarins/fittrack/internal/domain"
	"dmarins/fittrack/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

// WorkoutExerciseRequest is one row in a create/replace payload. Rows are
// ordered by their position; any submitted order value is ignored.
type WorkoutExerciseRequest struct {
	ExerciseID string   `json:"exerciseId" binding:"required"`
	Sets       int      `json:"sets" binding:"omitempty,gt=0"`
	Reps       int      `json:"reps" binding:"omitempty,gt=0"`
	Load       *float64 `json:"load" binding:"omitempty,gte=0"`
	Notes      *string  `json:"notes"`
}

type WorkoutRequest struct {
	Name         string                   `json:"name" binding:"required"`
	TrainingDays []string                 `json:"trainingDays"`
	Exercises    []WorkoutExerciseRequest `json:"exercises"`
}

type WorkoutExerciseResponse struct {
	ID         string   `json:"id"`
	ExerciseID string   `json:"exerciseId"`
	Order      int      `json:"order"`
	Sets       int      `json:"sets"`
	Reps       int      `json:"reps"`
	Load       *float64 `json:"load,omitempty"`
	Notes      *string  `json:"notes,omitempty"`
}

type WorkoutResponse struct {
	ID           string                    `json:"id"`
	Name         string                    `json:"name"`
	TrainingDays []string                  `json:"trainingDays"`
	Exercises    []WorkoutExerciseResponse `json:"exercises,omitempty"`
	CreatedAt    time.Time                 `json:"createdAt"`
	UpdatedAt    time.Time                 `json:"updatedAt"`
}

type LogSessionRequest struct {
	PerformedAt *time.Time `json:"performedAt"`
}

type SessionResponse struct {
	ID          string    `json:"id"`
	WorkoutID   string    `json:"workoutId"`
	PerformedAt time.Time `json:"performedAt"`
}

// MapWorkoutToResponse converts a domain.Workout (without rows) to its DTO.
func MapWorkoutToResponse(workout *domain.Workout) WorkoutResponse {
	if workout == nil {
		return WorkoutResponse{}
	}
	days := make([]string, len(workout.TrainingDays))
	for i, day := range workout.TrainingDays {
		days[i] = string(day)
	}
	return WorkoutResponse{
		ID:           workout.ID.Hex(),
		Name:         workout.Name,
		TrainingDays: days,
		CreatedAt:    workout.CreatedAt,
		UpdatedAt:    workout.UpdatedAt,
	}
}

// MapWorkoutDetailToResponse adds the exercise rows to the workout DTO.
func MapWorkoutDetailToResponse(detail *service.WorkoutDetail) WorkoutResponse {
	if detail == nil {
		return WorkoutResponse{}
	}
	resp := MapWorkoutToResponse(detail.Workout)
	resp.Exercises = make([]WorkoutExerciseResponse, len(detail.Exercises))
	for i, row := range detail.Exercises {
		resp.Exercises[i] = WorkoutExerciseResponse{
			ID:         row.ID.Hex(),
			ExerciseID: row.ExerciseID.Hex(),
			Order:      row.Order,
			Sets:       row.Sets,
			Reps:       row.Reps,
			Load:       row.Load,
			Notes:      row.Notes,
		}
	}
	return resp
}

func mapWorkoutInput(req WorkoutRequest) (service.WorkoutInput, error) {
	input := service.WorkoutInput{
		Name:         req.Name,
		TrainingDays: req.TrainingDays,
		Exercises:    make([]service.WorkoutExerciseInput, len(req.Exercises)),
	}
	for i, row := range req.Exercises {
		exerciseID, err := primitive.ObjectIDFromHex(row.ExerciseID)
		if err != nil {
			return service.WorkoutInput{}, errors.New("invalid exerciseId: " + row.ExerciseID)
		}
		input.Exercises[i] = service.WorkoutExerciseInput{
			ExerciseID: exerciseID,
			Sets:       row.Sets,
			Reps:       row.Reps,
			Load:       row.Load,
			Notes:      row.Notes,
		}
	}
	return input, nil
}

func mapWorkoutServiceError(c *gin.Context, err error, failMessage string) {
	switch {
	case errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrWorkoutNameMissing), errors.Is(err, service.ErrUnknownExercise):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, failMessage)
	}
}

// --- Handler Methods ---

// CreateWorkout creates a workout with its exercise rows in one call.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	input, err := mapWorkoutInput(req)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	detail, err := h.workoutService.Create(c.Request.Context(), userID, input)
	if err != nil {
		mapWorkoutServiceError(c, err, "Failed to create workout.")
		return
	}

	c.JSON(http.StatusCreated, MapWorkoutDetailToResponse(detail))
}

// ListWorkouts returns the user's workouts without exercise rows.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	workouts, err := h.workoutService.List(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		return
	}

	responses := make([]WorkoutResponse, len(workouts))
	for i := range workouts {
		responses[i] = MapWorkoutToResponse(&workouts[i])
	}
	c.JSON(http.StatusOK, responses)
}

// GetWorkout returns one workout with its exercise rows.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	workoutID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	detail, err := h.workoutService.Get(c.Request.Context(), userID, workoutID)
	if err != nil {
		mapWorkoutServiceError(c, err, "Failed to retrieve workout.")
		return
	}

	c.JSON(http.StatusOK, MapWorkoutDetailToResponse(detail))
}

// UpdateWorkout replaces the workout's fields and its full exercise list.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	workoutID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	input, err := mapWorkoutInput(req)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	detail, err := h.workoutService.Update(c.Request.Context(), userID, workoutID, input)
	if err != nil {
		mapWorkoutServiceError(c, err, "Failed to update workout.")
		return
	}

	c.JSON(http.StatusOK, MapWorkoutDetailToResponse(detail))
}

// DeleteWorkout removes the workout and its exercise rows.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	workoutID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.workoutService.Delete(c.Request.Context(), userID, workoutID); err != nil {
		mapWorkoutServiceError(c, err, "Failed to delete workout.")
		return
	}

	c.Status(http.StatusNoContent)
}

// LogSession records a completion of the workout, defaulting to now.
func (h *WorkoutHandler) LogSession(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	workoutID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req LogSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	var performedAt time.Time
	if req.PerformedAt != nil {
		performedAt = *req.PerformedAt
	}

	session, err := h.workoutService.LogSession(c.Request.Context(), userID, workoutID, performedAt)
	if err != nil {
		mapWorkoutServiceError(c, err, "Failed to log session.")
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{
		ID:          session.ID.Hex(),
		WorkoutID:   session.WorkoutID.Hex(),
		PerformedAt: session.PerformedAt,
	})
}

// SessionHistory returns the user's completed sessions, newest first.
func (h *WorkoutHandler) SessionHistory(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	sessions, err := h.workoutService.SessionHistory(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve session history.")
		return
	}

	responses := make([]SessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = SessionResponse{
			ID:          session.ID.Hex(),
			WorkoutID:   session.WorkoutID.Hex(),
			PerformedAt: session.PerformedAt,
		}
	}
	c.JSON(http.StatusOK, responses)
}
