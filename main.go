package main

import (
	"log"

	"github.com/ColdCodePlay/FoodFusion/configs"
	"github.com/ColdCodePlay/FoodFusion/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if cfg.SeedData {
		if err := configs.SeedCatalog(); err != nil {
			log.Fatalf("seed catalog failed: %v", err)
		}
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg)

	log.Println("listening on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
