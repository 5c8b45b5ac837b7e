package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"wearspace-api/internal/handler"
	"wearspace-api/internal/middleware"
	"wearspace-api/internal/model"
	"wearspace-api/internal/repository"
	"wearspace-api/internal/service"
	"wearspace-api/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	db.AutoMigrate(
		&model.User{},
		&model.Brand{},
		&model.Product{},
		&model.Transaction{},
		&model.Favorite{},
		&model.Inspiration{},
	)

	// 3. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	brandRepo := repository.NewBrandRepo(db)
	productRepo := repository.NewProductRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	favoriteRepo := repository.NewFavoriteRepo(db)
	inspirationRepo := repository.NewInspirationRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo, db)
	brandService := service.NewBrandService(brandRepo)
	productService := service.NewProductService(productRepo, brandRepo, db)
	txService := service.NewTransactionService(txRepo, productRepo, db)
	favoriteService := service.NewFavoriteService(favoriteRepo, productRepo, userRepo)
	inspirationService := service.NewInspirationService(inspirationRepo)
	dashService := service.NewDashboardService(txRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	brandHandler := handler.NewBrandHandler(brandService)
	productHandler := handler.NewProductHandler(productService)
	txHandler := handler.NewTransactionHandler(txService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	inspirationHandler := handler.NewInspirationHandler(inspirationService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 4. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Wearspace API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowCredentials: true,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// 5. Routes
	api := app.Group("/api")

	// Auth Routes (No authentication required)
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)

	// User Routes
	api.Get("/users", userHandler.GetAllUsers)
	api.Post("/users", userHandler.CreateUser)
	api.Get("/users/:id", userHandler.GetUser)
	api.Put("/users/:id", userHandler.UpdateUser)
	api.Delete("/users/:id", userHandler.DeleteUser)

	// Brand Routes
	api.Get("/brands", brandHandler.GetAllBrands)
	api.Post("/brands", brandHandler.CreateBrand)
	api.Get("/brands/:id", brandHandler.GetBrand)
	api.Put("/brands/:id", brandHandler.UpdateBrand)
	api.Delete("/brands/:id", brandHandler.DeleteBrand)

	// Product Routes
	api.Get("/products", productHandler.GetAllProducts)
	api.Post("/products", productHandler.CreateProduct)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)

	// Transaction Routes (checkout terbuka untuk tamu)
	api.Get("/transactions", txHandler.GetAllTransactions)
	api.Post("/transactions", middleware.OptionalAuth(userRepo), txHandler.CreateTransaction)
	api.Get("/transactions/:id", txHandler.GetTransaction)
	api.Put("/transactions/:id", txHandler.UpdateTransaction)
	api.Delete("/transactions/:id", txHandler.DeleteTransaction)

	// Favorite Routes (authenticated only)
	favorites := api.Group("/favorites", middleware.RequireAuth(userRepo))
	favorites.Get("/", favoriteHandler.ListFavorites)
	favorites.Post("/", favoriteHandler.AddFavorite)
	favorites.Delete("/:product_id", favoriteHandler.RemoveFavorite)

	// Inspiration Routes
	api.Get("/inspirations", inspirationHandler.GetAllInspirations)
	api.Post("/inspirations", inspirationHandler.CreateInspiration)
	api.Get("/inspirations/:id", inspirationHandler.GetInspiration)
	api.Put("/inspirations/:id", inspirationHandler.UpdateInspiration)
	api.Delete("/inspirations/:id", inspirationHandler.DeleteInspiration)

	// Dashboard Routes (authenticated users can view)
	api.Get("/dashboard/stats", middleware.RequireAuth(userRepo), dashHandler.GetDashboardStats)

	// 6. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
