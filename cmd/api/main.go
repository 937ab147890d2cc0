package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/aynul321/Vokzo-mvp/internal/database"
	"github.com/aynul321/Vokzo-mvp/internal/middleware"
	"github.com/aynul321/Vokzo-mvp/internal/modules/admin"
	"github.com/aynul321/Vokzo-mvp/internal/modules/auth"
	"github.com/aynul321/Vokzo-mvp/internal/modules/booking"
	"github.com/aynul321/Vokzo-mvp/internal/modules/catalog"
	"github.com/aynul321/Vokzo-mvp/internal/modules/provider"
	"github.com/aynul321/Vokzo-mvp/internal/modules/review"
	"github.com/aynul321/Vokzo-mvp/internal/notification"
	jwtsvc "github.com/aynul321/Vokzo-mvp/internal/pkg/jwt"
	"github.com/aynul321/Vokzo-mvp/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cityRepo := repository.NewCityRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)

	hub := notification.NewHub()
	notifService := notification.NewService(notification.NewRepository(db), hub)
	notifHandler := notification.NewHandler(notifService, hub)

	authService := auth.NewService(userRepo, providerRepo, cityRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(catalogRepo, providerRepo, cityRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	providerService := provider.NewService(providerRepo, catalogRepo, reviewRepo, bookingRepo)
	providerHandler := provider.NewHandler(providerService)

	bookingService := booking.NewService(bookingRepo, providerRepo, userRepo, catalogRepo, settingsRepo, notifService)
	bookingHandler := booking.NewHandler(bookingService)

	reviewService := review.NewService(reviewRepo, bookingRepo, providerRepo, userRepo, notifService)
	reviewHandler := review.NewHandler(reviewService)

	adminService := admin.NewService(providerRepo, bookingRepo, userRepo, catalogRepo, settingsRepo, notifService)
	adminHandler := admin.NewHandler(adminService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		authHandler.RegisterPublicRoutes(api)
		catalogHandler.RegisterPublicRoutes(api)
		providerHandler.RegisterPublicRoutes(api)
		reviewHandler.RegisterPublicRoutes(api)

		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			reviewHandler.RegisterRoutes(protected)
			notifHandler.RegisterRoutes(protected)

			providerGroup := protected.Group("/")
			providerGroup.Use(middleware.ProviderOnly())
			{
				providerHandler.RegisterProviderRoutes(providerGroup)
			}

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminGroup)
				catalogHandler.RegisterAdminRoutes(adminGroup)
			}
		}
	}

	log.Printf("listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
