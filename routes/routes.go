package routes

import (
	"net/http"

	"github.com/JaiyeofGod/Dualforce/controllers"
	"github.com/JaiyeofGod/Dualforce/middlewares"
	"github.com/JaiyeofGod/Dualforce/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, mailer services.Mailer) *gin.Engine {
	hub := services.NewRealtimeHub()
	services.InitEventDeps(hub)

	goalSvc := services.NewGoalService(db)
	authCtl := controllers.NewAuthController(services.NewAuthService(db, mailer))
	goalCtl := controllers.NewGoalController(goalSvc)
	workoutCtl := controllers.NewWorkoutController(services.NewWorkoutService(db))
	studyCtl := controllers.NewStudyController(services.NewStudyService(db))
	sleepCtl := controllers.NewSleepController(services.NewSleepService(db))
	calorieCtl := controllers.NewCalorieController(services.NewCalorieService(db))
	dashboardCtl := controllers.NewDashboardController(services.NewDashboardService(db, goalSvc))
	reportCtl := controllers.NewReportController(services.NewReportService(db))
	realtimeCtl := controllers.NewRealtimeController(hub)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/request-otp", authCtl.RequestOTP)
		auth.POST("/verify-otp", authCtl.VerifyOTP)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/me", authCtl.Me)

		api.GET("/goals", goalCtl.GetGoal)
		api.PUT("/goals", goalCtl.UpdateGoal)

		api.GET("/workouts", workoutCtl.List)
		api.POST("/workouts", workoutCtl.Create)
		api.DELETE("/workouts/:id", workoutCtl.Delete)

		api.GET("/study", studyCtl.List)
		api.POST("/study", studyCtl.Create)
		api.DELETE("/study/:id", studyCtl.Delete)

		api.GET("/sleep", sleepCtl.List)
		api.POST("/sleep", sleepCtl.Create)
		api.DELETE("/sleep/:id", sleepCtl.Delete)

		api.GET("/calories", calorieCtl.List)
		api.POST("/calories", calorieCtl.Create)
		api.DELETE("/calories/:id", calorieCtl.Delete)

		api.GET("/dashboard", dashboardCtl.GetDashboard)
		api.GET("/report/weekly", reportCtl.GetWeeklyReport)

		api.GET("/ws", realtimeCtl.EventsWS)
	}

	return r
}
