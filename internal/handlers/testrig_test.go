package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/restoservice/repair-admin/internal/audit"
	"github.com/restoservice/repair-admin/internal/config"
	dbpkg "github.com/restoservice/repair-admin/internal/db"
	"github.com/restoservice/repair-admin/internal/handlers"
	infraRepo "github.com/restoservice/repair-admin/internal/infra/repository"
	"github.com/restoservice/repair-admin/internal/middleware"
	"github.com/restoservice/repair-admin/internal/seed"
	"github.com/restoservice/repair-admin/internal/storage"
	"github.com/restoservice/repair-admin/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testRig struct {
	db       *gorm.DB
	router   *gin.Engine
	orders   *store.OrderStore
	uploader *storage.MemoryUploader
}

// fakeAuth stands in for the JWT middleware and injects the seeded
// admin identity.
func fakeAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "1")
		c.Set(middleware.ContextBranchID, "1")
		c.Set(middleware.ContextUserRole, "admin")
		c.Next()
	}
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := seed.Run(db); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}

	orderStore := store.NewOrderStore(infraRepo.NewOrderGormRepository(db))
	technicianStore := store.NewTechnicianStore(infraRepo.NewTechnicianGormRepository(db))

	dispatcher := audit.NewDispatcher(audit.New(db))
	uploader := storage.NewMemoryUploader()

	cfg := &config.Config{JWTSecret: "test-secret", ServerPort: "8080"}

	authHandler := handlers.NewAuthHandler(db, cfg, infraRepo.NewGormCredentialChecker(db), dispatcher)
	orderHandler := handlers.NewOrderHandler(db, orderStore, dispatcher, nil, nil)
	photoHandler := handlers.NewPhotoHandler(orderStore, uploader, dispatcher, nil)
	technicianHandler := handlers.NewTechnicianHandler(technicianStore, dispatcher)
	dashboardHandler := handlers.NewDashboardHandler(orderStore)
	publicHandler := handlers.NewPublicHandler(orderStore, nil)

	r := gin.New()

	api := r.Group("/api")
	{
		api.GET("/public/track/:orderNumber", publicHandler.Track)
		api.POST("/public/track/:orderNumber/review", publicHandler.SubmitReview)

		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(fakeAuth())
		{
			secured.GET("/orders", orderHandler.List)
			secured.POST("/orders", orderHandler.Create)
			secured.PATCH("/orders/:id", orderHandler.Update)

			secured.POST("/orders/:id/budget", orderHandler.SetBudget)
			secured.PATCH("/orders/:id/budget/approve", orderHandler.ApproveBudget)
			secured.PATCH("/orders/:id/budget/reject", orderHandler.RejectBudget)

			secured.POST("/orders/:id/photos", photoHandler.Upload)

			secured.GET("/technicians", technicianHandler.List)
			secured.POST("/technicians", technicianHandler.Create)
			secured.PATCH("/technicians/:id", technicianHandler.Update)
			secured.DELETE("/technicians/:id", technicianHandler.Delete)
			secured.GET("/technicians/:id/orders", orderHandler.TechnicianOrders)

			secured.GET("/dashboard/stats", dashboardHandler.Stats)
		}
	}

	return &testRig{
		db:       db,
		router:   r,
		orders:   orderStore,
		uploader: uploader,
	}
}

func (rig *testRig) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	rig.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}
