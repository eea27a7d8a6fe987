package main

import (
	"log"
	"net/http"

	"github.com/restoservice/repair-admin/internal/config"
	dbpkg "github.com/restoservice/repair-admin/internal/db"
	"github.com/restoservice/repair-admin/internal/middleware"
	"github.com/restoservice/repair-admin/internal/routes"
	"github.com/restoservice/repair-admin/internal/seed"
	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if err := seed.Run(db); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
