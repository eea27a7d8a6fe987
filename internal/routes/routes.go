package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/restoservice/repair-admin/internal/audit"
	"github.com/restoservice/repair-admin/internal/cache"
	"github.com/restoservice/repair-admin/internal/config"
	"github.com/restoservice/repair-admin/internal/handlers"
	infraRepo "github.com/restoservice/repair-admin/internal/infra/repository"
	"github.com/restoservice/repair-admin/internal/middleware"
	"github.com/restoservice/repair-admin/internal/payments"
	"github.com/restoservice/repair-admin/internal/storage"
	"github.com/restoservice/repair-admin/internal/store"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	orderRepo := infraRepo.NewOrderGormRepository(db)
	technicianRepo := infraRepo.NewTechnicianGormRepository(db)
	credentialChecker := infraRepo.NewGormCredentialChecker(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	trackingCache := cache.NewTrackingCache(cfg.RedisAddr, cfg.RedisPassword)

	var uploader storage.Uploader = storage.NewMemoryUploader()
	if cfg.S3Enabled() {
		uploader = storage.NewS3Uploader(cfg)
	}

	var paymentProvider payments.Provider
	if cfg.PaymentsEnabled() {
		if mp, err := payments.NewMercadoPago(cfg.MercadoPagoToken); err == nil {
			paymentProvider = mp
		}
	}

	// ======================================================
	// STORES
	// ======================================================
	orderStore := store.NewOrderStore(orderRepo)
	technicianStore := store.NewTechnicianStore(technicianRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, credentialChecker, auditDispatcher)
	meHandler := handlers.NewMeHandler(db)
	branchHandler := handlers.NewBranchHandler(db)

	orderHandler := handlers.NewOrderHandler(db, orderStore, auditDispatcher, trackingCache, paymentProvider)
	photoHandler := handlers.NewPhotoHandler(orderStore, uploader, auditDispatcher, trackingCache)
	technicianHandler := handlers.NewTechnicianHandler(technicianStore, auditDispatcher)
	dashboardHandler := handlers.NewDashboardHandler(orderStore)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(orderStore, trackingCache)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/track/:orderNumber", publicHandler.Track)
			publicAPI.POST("/track/:orderNumber/review", publicHandler.SubmitReview)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/branch", branchHandler.GetMeBranch)
			secured.PATCH("/me/branch", branchHandler.UpdateMeBranch)

			// ------------------------------
			// ORDERS
			// ------------------------------
			secured.GET("/orders", orderHandler.List)
			secured.POST("/orders", orderHandler.Create)
			secured.PATCH("/orders/:id", orderHandler.Update)

			secured.POST("/orders/:id/budget", orderHandler.SetBudget)
			secured.PATCH("/orders/:id/budget/approve", orderHandler.ApproveBudget)
			secured.PATCH("/orders/:id/budget/reject", orderHandler.RejectBudget)

			secured.POST("/orders/:id/photos", photoHandler.Upload)

			// ------------------------------
			// TECHNICIANS
			// ------------------------------
			secured.GET("/technicians", technicianHandler.List)
			secured.POST("/technicians", technicianHandler.Create)
			secured.PATCH("/technicians/:id", technicianHandler.Update)
			secured.DELETE("/technicians/:id", technicianHandler.Delete)

			secured.GET("/technicians/:id/orders", orderHandler.TechnicianOrders)

			secured.GET("/technicians/:id/schedule", technicianHandler.GetSchedule)
			secured.PUT("/technicians/:id/schedule", technicianHandler.UpdateSchedule)

			secured.GET("/technicians/selected", technicianHandler.Selected)
			secured.PUT("/technicians/:id/select", technicianHandler.Select)
			secured.DELETE("/technicians/select", technicianHandler.ClearSelection)

			// ------------------------------
			// DASHBOARD
			// ------------------------------
			secured.GET("/dashboard/stats", dashboardHandler.Stats)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
