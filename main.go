package main

import (
	"errors"
	"log"
	"time"

	"focusdash-app/config"
	"focusdash-app/database"
	routes "focusdash-app/internal/app/http"
	"focusdash-app/internal/infra/payments"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	pc, err := payments.NewFromEnv()
	if err != nil {
		if errors.Is(err, payments.ErrNotConfigured) {
			log.Println("Stripe not configured; checkout endpoints will report an error")
		} else {
			log.Fatal("payments init:", err)
		}
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, pc)

	r.Run(":" + config.PORT)
}
