package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/manufacturing-pro/internal/application/auth"
	"github.com/tu-usuario/manufacturing-pro/internal/application/inventory"
	"github.com/tu-usuario/manufacturing-pro/internal/application/manufacturing"
	"github.com/tu-usuario/manufacturing-pro/internal/application/usecase"
	"github.com/tu-usuario/manufacturing-pro/internal/domain/entity"
	"github.com/tu-usuario/manufacturing-pro/internal/infrastructure/realtime"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *inventory.ProductUseCase
	AdjustUC    *inventory.AdjustStockUseCase
	BOMUC       *manufacturing.BOMUseCase
	WorkOrderUC *manufacturing.WorkOrderUseCase
	CompleteUC  *manufacturing.CompleteWorkOrderUseCase
	WorkCenter  *usecase.WorkCenterUseCase
	UserUC      *usecase.UserUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	Hub         *realtime.Hub // nil si el canal realtime está deshabilitado
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	manage := RequireRole(entity.RoleAdmin, entity.RoleManager)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Products + kardex (protegido; escritura solo ADMIN/MANAGER)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	bomHandler := NewBOMHandler(deps.BOMUC)
	products.Post("/", manage, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.Get)
	products.Post("/:id/reconcile", manage, productHandler.Reconcile)
	products.Get("/:id/bom", bomHandler.ResolveActive)
	products.Get("/:id/boms", bomHandler.ListByProduct)

	// Ajustes manuales de inventario (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustUC)
	invGroup.Post("/adjustments", manage, inventoryHandler.Adjust)

	// Recetas (protegido; escritura solo ADMIN/MANAGER)
	boms := protected.Group("/boms")
	boms.Post("/components", manage, bomHandler.AddComponent)
	boms.Delete("/components/:id", manage, bomHandler.RemoveComponent)
	boms.Post("/:id/activate", manage, bomHandler.Activate)

	// Órdenes de trabajo (protegido; cualquier rol autenticado opera)
	workOrders := protected.Group("/work-orders")
	workOrderHandler := NewWorkOrderHandler(deps.WorkOrderUC, deps.CompleteUC)
	workOrders.Post("/", workOrderHandler.Create)
	workOrders.Get("/", workOrderHandler.List)
	workOrders.Get("/:id", workOrderHandler.Get)
	workOrders.Patch("/:id/status", workOrderHandler.UpdateStatus)
	workOrders.Post("/:id/comments", workOrderHandler.AddComment)
	workOrders.Get("/:id/comments", workOrderHandler.ListComments)
	workOrders.Get("/:id/traveler.pdf", workOrderHandler.TravelerPDF)

	// Centros de trabajo (protegido; escritura solo ADMIN/MANAGER)
	workCenters := protected.Group("/work-centers")
	workCenterHandler := NewWorkCenterHandler(deps.WorkCenter)
	workCenters.Post("/", manage, workCenterHandler.Create)
	workCenters.Get("/", workCenterHandler.List)
	workCenters.Patch("/:id/status", manage, workCenterHandler.UpdateStatus)

	// Usuarios (protegido; roles solo ADMIN)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", adminOnly, userHandler.List)
	users.Patch("/me", userHandler.UpdateProfile)
	users.Patch("/:id/role", adminOnly, userHandler.UpdateRole)

	// Analítica (protegido)
	analytics := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analytics.Get("/dashboard", analyticsHandler.Dashboard)

	// Canal realtime: mejor esfuerzo, su ausencia nunca bloquea la API.
	if deps.Hub != nil {
		app.Use("/ws", realtime.Upgrade())
		app.Get("/ws", deps.Hub.Handler())
	}
}
