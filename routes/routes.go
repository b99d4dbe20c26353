package routes

import (
	"os"

	"github.com/sultumov/AllergyTrackerr/config"
	"github.com/sultumov/AllergyTrackerr/controllers"
	"github.com/sultumov/AllergyTrackerr/middlewares"
	"github.com/sultumov/AllergyTrackerr/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub, push *services.PushService) *gin.Engine {
	r := gin.Default()

	store := services.NewDBRecordStore(config.DB)
	recent := services.NewRecentProductsService(store)
	profile := services.NewProfileService(store)
	products := services.NewProductService(recent, services.NewBarcodeListService(), services.NewOpenFoodFactsService())
	catalogPath := os.Getenv("ALLERGEN_CATALOG_PATH")
	if catalogPath == "" {
		catalogPath = "data/allergens.json"
	}
	catalog := services.NewCatalogService(catalogPath)
	reminders := services.NewReminderService(store)
	reactions := services.NewReactionService(store)

	productCtl := controllers.NewProductController(products, recent, profile)
	allergenCtl := controllers.NewAllergenController(
		catalog, profile,
		services.NewPubMedService(),
		services.NewWikipediaService(),
		services.NewTranslationService(),
	)
	reminderCtl := controllers.NewReminderController(reminders)
	reactionCtl := controllers.NewReactionController(reactions)
	recipeCtl := controllers.NewRecipeController(services.NewRecipeService(), profile)
	realtimeCtl := controllers.NewRealtimeController(hub)
	deviceCtl := controllers.NewDeviceController(push)
	devCtl := controllers.NewDevController(push)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.DELETE("/profile", controllers.DeleteAccount)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)

		user.GET("/allergens", allergenCtl.ListUserAllergens)
		user.POST("/allergens", allergenCtl.AddUserAllergen)
		user.DELETE("/allergens/:name", allergenCtl.RemoveUserAllergen)
	}

	products2 := r.Group("/products")
	products2.Use(middlewares.AuthMiddleware())
	{
		products2.GET("/scan/:barcode", productCtl.Scan)
		products2.GET("/recent", productCtl.ListRecent)
		products2.GET("/search", productCtl.Search)
		products2.GET("/safe", productCtl.SafeWithoutAllergen)
	}

	allergens := r.Group("/allergens")
	allergens.Use(middlewares.AuthMiddleware())
	{
		allergens.GET("", allergenCtl.List)
		allergens.GET("/categories", allergenCtl.Categories)
		allergens.GET("/:id", allergenCtl.Get)
		allergens.GET("/:id/research", allergenCtl.Research)
		allergens.GET("/:id/encyclopedia", allergenCtl.Encyclopedia)
	}

	medications := r.Group("/medications")
	medications.Use(middlewares.AuthMiddleware())
	{
		medications.GET("", reminderCtl.List)
		medications.POST("", reminderCtl.Add)
		medications.PUT("/:id", reminderCtl.Update)
		medications.DELETE("/:id", reminderCtl.Delete)
		medications.GET("/upcoming", reminderCtl.Upcoming)
	}

	reactions2 := r.Group("/reactions")
	reactions2.Use(middlewares.AuthMiddleware())
	{
		reactions2.GET("", reactionCtl.List)
		reactions2.POST("", reactionCtl.Add)
		reactions2.DELETE("/:id", reactionCtl.Delete)
		reactions2.GET("/statistics", reactionCtl.Statistics)
	}

	recipes := r.Group("/recipes")
	recipes.Use(middlewares.AuthMiddleware())
	{
		recipes.GET("/search", recipeCtl.Search)
	}

	devices := r.Group("/devices")
	devices.Use(middlewares.AuthMiddleware())
	{
		devices.POST("/register", deviceCtl.Register)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", realtimeCtl.AlertsWS)
	}

	dev := r.Group("/dev")
	dev.Use(middlewares.AuthMiddleware())
	{
		dev.POST("/push-test", devCtl.PushTest)
		dev.POST("/upload-image", controllers.DevUploadImage)
	}

	return r
}
