package routes

import (
	"fmt"

	"github.com/Subhashreel/orders/configs"
	"github.com/Subhashreel/orders/controllers"
	"github.com/Subhashreel/orders/entity"
	"github.com/Subhashreel/orders/middlewares"
	"github.com/Subhashreel/orders/repository"
	"github.com/Subhashreel/orders/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	policy, err := services.ParseTransitionTable(cfg.Transitions)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Repositories
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	staffRepo := repository.NewStaffRepository(db)

	// Services
	orderSvc := services.NewOrderService(db, orderRepo, restRepo, menuRepo)
	orderSvc.Location = loc
	orderSvc.Policy = policy

	// Controllers
	authCtrl := controllers.NewAuthController(services.NewAuthService(staffRepo, cfg.JWTSecret, cfg.JWTTTL))
	restCtrl := controllers.NewRestaurantController(services.NewRestaurantService(restRepo))
	menuCtrl := controllers.NewMenuController(services.NewMenuService(menuRepo, restRepo))
	orderCtrl := controllers.NewOrderController(orderSvc)

	staffOnly := middlewares.AuthMiddleware(cfg.JWTSecret, cfg.AuthEnabled, entity.RoleAdmin, entity.RoleStaff)

	api := r.Group("/api")

	// Auth (public)
	api.POST("/auth/login", authCtrl.Login)

	rest := api.Group("/restaurants")
	{
		rest.GET("", restCtrl.List)
		rest.GET("/:id", restCtrl.Get)
		rest.POST("", staffOnly, restCtrl.Upsert)
		rest.DELETE("/:id", staffOnly, restCtrl.Delete)
	}

	menu := api.Group("/menu")
	{
		menu.GET("/restaurant/:restaurantId", menuCtrl.ListByRestaurant)
		menu.POST("", staffOnly, menuCtrl.Upsert)
		menu.DELETE("/:itemId", staffOnly, menuCtrl.Delete)
	}

	orders := api.Group("/orders")
	{
		orders.POST("", orderCtrl.Create)
		orders.GET("/restaurant/:restaurantId", orderCtrl.ListForRestaurant)
		orders.GET("/:orderId", orderCtrl.Detail)
		orders.PUT("/:orderId/status", staffOnly, orderCtrl.UpdateStatus)
	}
	return nil
}
