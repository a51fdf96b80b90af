package routes

import (
	"medimeal/config"
	"medimeal/controllers"
	"medimeal/middlewares"
	"medimeal/models"
	"medimeal/repository"
	"medimeal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	users := repository.NewUserRepository(db)
	patients := repository.NewPatientRepository(db)
	charts := repository.NewDietChartRepository(db)
	tasks := repository.NewTaskRepository(db)
	pantries := repository.NewPantryRepository(db)
	stats := repository.NewStatsRepository(db)

	authSvc := services.NewAuthService(users, cfg.JWTSecret)
	patientSvc := services.NewPatientService(patients)
	chartSvc := services.NewDietChartService(charts, patients)
	taskSvc := services.NewTaskService(tasks, users)
	staffSvc := services.NewStaffService(users)
	pantrySvc := services.NewPantryService(pantries, users)
	dashSvc := services.NewDashboardService(stats)

	authCtl := controllers.NewAuthController(authSvc)
	patientCtl := controllers.NewPatientController(patientSvc)
	chartCtl := controllers.NewDietChartController(chartSvc)
	taskCtl := controllers.NewPantryTaskController(taskSvc)
	deliveryCtl := controllers.NewDeliveryController(taskSvc)
	managerCtl := controllers.NewManagerController(dashSvc)
	staffCtl := controllers.NewStaffController(staffSvc, authSvc)
	pantryCtl := controllers.NewPantryController(pantrySvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	authed := r.Group("/")
	authed.Use(middlewares.AuthMiddleware(cfg, users))

	// Patients: manager writes, pantry reads.
	patientsGrp := authed.Group("/patients")
	{
		patientsGrp.GET("", middlewares.RequireRoles(models.RoleManager, models.RolePantry), patientCtl.List)
		patientsGrp.GET("/:id", middlewares.RequireRoles(models.RoleManager, models.RolePantry), patientCtl.Get)
		patientsGrp.POST("", middlewares.RequireRoles(models.RoleManager), patientCtl.Create)
		patientsGrp.PUT("/:id", middlewares.RequireRoles(models.RoleManager), patientCtl.Update)
		patientsGrp.DELETE("/:id", middlewares.RequireRoles(models.RoleManager), patientCtl.Delete)
	}

	// Diet charts: manager writes, pantry reads.
	chartsGrp := authed.Group("/diet-charts")
	{
		chartsGrp.GET("", middlewares.RequireRoles(models.RoleManager, models.RolePantry), chartCtl.List)
		chartsGrp.GET("/:id", middlewares.RequireRoles(models.RoleManager, models.RolePantry), chartCtl.Get)
		chartsGrp.POST("", middlewares.RequireRoles(models.RoleManager), chartCtl.Create)
		chartsGrp.PUT("/:id", middlewares.RequireRoles(models.RoleManager), chartCtl.Update)
		chartsGrp.DELETE("/:id", middlewares.RequireRoles(models.RoleManager), chartCtl.Delete)
		chartsGrp.PUT("/:id/meals/:mealId", middlewares.RequireRoles(models.RoleManager), chartCtl.UpdateMeal)
	}

	// Pantry task surface.
	pantryGrp := authed.Group("/pantry", middlewares.RequireRoles(models.RolePantry))
	{
		pantryGrp.GET("/tasks", taskCtl.List)
		pantryGrp.PUT("/tasks/:id/status", taskCtl.UpdateStatus)
		pantryGrp.PUT("/tasks/:id/assign", taskCtl.Assign)
	}

	// Legacy task surface, kept for existing clients; same service underneath.
	legacyGrp := authed.Group("/pantry-tasks")
	{
		legacyGrp.GET("", taskCtl.List)
		legacyGrp.GET("/my-tasks", taskCtl.MyTasks)
		legacyGrp.PUT("/:id/status", taskCtl.UpdateStatus)
		legacyGrp.PUT("/:id/assign-delivery", middlewares.RequireRoles(models.RolePantry), taskCtl.AssignDelivery)
	}

	deliveryGrp := authed.Group("/delivery", middlewares.RequireRoles(models.RoleDelivery))
	{
		deliveryGrp.GET("/tasks", deliveryCtl.Tasks)
		deliveryGrp.PUT("/tasks/:id/status", deliveryCtl.UpdateStatus)
	}

	managerGrp := authed.Group("/manager", middlewares.RequireRoles(models.RoleManager))
	{
		managerGrp.GET("/dashboard-stats", managerCtl.DashboardStats)
		managerGrp.GET("/reports", managerCtl.Reports)
		managerGrp.GET("/staff", staffCtl.List)
		managerGrp.POST("/staff", staffCtl.Create)
		managerGrp.PUT("/staff/:id", staffCtl.Update)
		managerGrp.DELETE("/staff/:id", staffCtl.Delete)
	}

	pantriesGrp := authed.Group("/pantries", middlewares.RequireRoles(models.RoleManager))
	{
		pantriesGrp.GET("", pantryCtl.List)
		pantriesGrp.POST("", pantryCtl.Create)
		pantriesGrp.PUT("/:id", pantryCtl.Update)
		pantriesGrp.POST("/:id/staff", pantryCtl.AddStaff)
	}

	return r
}
