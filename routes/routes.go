package routes

import (
	"github.com/ColdCodePlay/FoodFusion/configs"
	"github.com/ColdCodePlay/FoodFusion/controllers"
	"github.com/ColdCodePlay/FoodFusion/middlewares"
	"github.com/ColdCodePlay/FoodFusion/repository"
	"github.com/ColdCodePlay/FoodFusion/services"
	"github.com/ColdCodePlay/FoodFusion/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	store := repository.NewGormStore(configs.DB())

	// Services
	authSvc := services.NewAuthService(store, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(store)
	cartSvc := services.NewCartService(store)
	orderSvc := services.NewOrderService(store)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(catalogSvc)
	menuCtrl := controllers.NewMenuController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	trackWS := ws.NewTrackingHandler(orderSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	identity := middlewares.IdentityMiddleware(cfg.JWTSecret)

	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Catalog (public)
	api.GET("/restaurants", restCtrl.List)
	api.GET("/restaurants/:id", restCtrl.Detail)
	api.GET("/restaurants/:id/categories", restCtrl.Categories)
	api.GET("/restaurants/:id/menu", restCtrl.Menu)
	api.GET("/menu-items/:id", menuCtrl.Detail)
	api.GET("/categories/:id/menu-items", menuCtrl.ByCategory)

	// Cart: guests allowed, identity resolved per request
	cart := api.Group("/cart", identity)
	{
		cart.GET("", cartCtrl.Get)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:id", cartCtrl.UpdateQuantity)
		cart.DELETE("/items/:id", cartCtrl.Remove)
	}

	// Orders: guests may check out, but history and tracking need a login
	api.POST("/orders", identity, orderCtrl.Create)
	api.GET("/orders", auth, orderCtrl.ListForMe)
	api.GET("/orders/:id", auth, orderCtrl.Detail)

	// Live tracking stream
	r.GET("/ws/orders/:id/track", middlewares.WSAuthMiddleware(cfg.JWTSecret), trackWS.Stream)
}
