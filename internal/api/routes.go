package api

import (
	"net/http"

	"dmarins/fittrack/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	profileService service.ProfileService,
	exerciseService service.ExerciseService,
	templateService service.TemplateService,
	importService service.ImportService,
	workoutService service.WorkoutService,
	progressService service.ProgressService,
) {
	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	templateHandler := NewTemplateHandler(templateService, importService)
	workoutHandler := NewWorkoutHandler(workoutService)
	progressHandler := NewProgressHandler(progressService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", authHandler.Me)

		protected.GET("/profile", profileHandler.GetProfile)
		protected.PUT("/profile", profileHandler.UpdateProfile)
		protected.GET("/health-metrics", profileHandler.HealthMetrics)

		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
		}

		templateGroup := protected.Group("/templates")
		{
			// "recommended" must be registered before ":id" would shadow it;
			// gin resolves static segments first, so both coexist.
			templateGroup.GET("", templateHandler.ListTemplates)
			templateGroup.GET("/recommended", templateHandler.RecommendedTemplate)
			templateGroup.GET("/:id", templateHandler.GetTemplate)
			templateGroup.POST("/:id/import", templateHandler.ImportTemplate)
		}

		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
			workoutGroup.POST("/:id/sessions", workoutHandler.LogSession)
		}

		protected.GET("/sessions", workoutHandler.SessionHistory)

		weightLogGroup := protected.Group("/weight-logs")
		{
			weightLogGroup.POST("", progressHandler.LogWeight)
			weightLogGroup.GET("", progressHandler.WeightHistory)
			weightLogGroup.DELETE("/:id", progressHandler.DeleteWeightLog)
			weightLogGroup.POST("/:id/photo-upload-url", progressHandler.PhotoUploadURL)
		}
	}
}
