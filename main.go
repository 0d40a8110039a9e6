package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"pizza-store/cli"
	"pizza-store/config"
	"pizza-store/console"
	"pizza-store/routes"
	"pizza-store/store"

	"github.com/gin-gonic/gin"
)

func main() {
	serve := flag.Bool("serve", false, "run the HTTP API instead of the interactive console")
	flag.Parse()

	// Initialize database
	config.InitDB()
	gw := store.New(config.DB)

	if *serve {
		runServer(gw)
		return
	}

	// Interactive console session
	c := console.New(os.Stdin, os.Stdout)
	if err := cli.Run(gw, c); err != nil {
		log.Fatal("Session ended with error:", err)
	}
}

func runServer(gw *store.Gateway) {
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Pizza Store API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r, gw)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
