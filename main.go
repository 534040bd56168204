package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Pen-Clock/BodiaStore/cache"
	"github.com/Pen-Clock/BodiaStore/middleware"
	"github.com/Pen-Clock/BodiaStore/models"
	"github.com/Pen-Clock/BodiaStore/routes"
)

func main() {
	log.Println("Starting BodiaStore API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Item{},
		&models.Customer{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderLine{},
		&models.Payment{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, initCache(), identityResolver())

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect DB: %v", err)
	}
	return db
}

// initCache picks the read-cache backend: Redis when REDIS_ADDR is set,
// the in-process cache otherwise.
func initCache() cache.TagCache {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		log.Printf("Using Redis read cache at %s", addr)
		return cache.NewRedis(addr)
	}
	return cache.NewMemory()
}

// identityResolver builds the customer resolution strategy. The current
// deployment pins everyone to one demo customer; setting JWT_SECRET turns
// on per-request resolution from a customer_id claim.
func identityResolver() middleware.CustomerResolver {
	fallback := uint(1)
	if raw := os.Getenv("DEFAULT_CUSTOMER_ID"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id > 0 {
			fallback = uint(id)
		}
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return middleware.JWTCustomer{Secret: []byte(secret), Fallback: fallback}
	}
	return middleware.FixedCustomer{ID: fallback}
}
