package router

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/college-compass/catalog"
	"github.com/sahilchouksey/college-compass/database"
	"github.com/sahilchouksey/college-compass/handlers"
	admin_handlers "github.com/sahilchouksey/college-compass/handlers/admin"
	auth_handlers "github.com/sahilchouksey/college-compass/handlers/auth"
	catalog_handlers "github.com/sahilchouksey/college-compass/handlers/catalog"
	enquiry_handlers "github.com/sahilchouksey/college-compass/handlers/enquiry"
	"github.com/sahilchouksey/college-compass/services/storage"
	"github.com/sahilchouksey/college-compass/utils"
	"github.com/sahilchouksey/college-compass/utils/auth"
	"github.com/sahilchouksey/college-compass/utils/cache"
	"github.com/sahilchouksey/college-compass/utils/middleware"
)

func SetupRoutes(app *fiber.App, store database.Storage) {
	// Get JWT secret from environment
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	jwtIssuer := os.Getenv("JWT_ISSUER")
	if jwtIssuer == "" {
		jwtIssuer = "college-compass-api"
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPasswordHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminEmail == "" || adminPasswordHash == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD_HASH environment variables are not set")
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: jwtSecret,
		Expiry: 24 * time.Hour,
		Issuer: jwtIssuer,
	})

	// Redis is optional: without it catalog name resolution simply skips
	// the cache.
	var redisCache *cache.RedisCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		var err error
		redisCache, err = cache.NewRedisCache(redisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v. Catalog caching will be disabled.", err)
			redisCache = nil
		}
	}

	// Spaces is optional: without it admin file uploads are rejected.
	var spacesClient *storage.SpacesClient
	if os.Getenv("SPACES_ACCESS_KEY") != "" {
		var err error
		spacesClient, err = storage.NewSpacesClient(storage.SpacesConfig{
			AccessKey: os.Getenv("SPACES_ACCESS_KEY"),
			SecretKey: os.Getenv("SPACES_SECRET_KEY"),
			Bucket:    os.Getenv("SPACES_BUCKET"),
			Region:    os.Getenv("SPACES_REGION"),
			Endpoint:  os.Getenv("SPACES_ENDPOINT"),
			CDNURL:    os.Getenv("SPACES_CDN_URL"),
		})
		if err != nil {
			log.Printf("Warning: Failed to create Spaces client: %v. File uploads will be disabled.", err)
		}
	}

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, adminEmail)
	catalogService := catalog.NewService(store, redisCache)

	authHandler := auth_handlers.NewAuthHandler(jwtManager, adminEmail, adminPasswordHash)
	catalogHandler := catalog_handlers.NewHandler(catalogService)
	enquiryHandler := enquiry_handlers.NewHandler(store)
	resourceHandler := admin_handlers.NewResourceHandler(store, spacesClient)
	collegeHandler := admin_handlers.NewCollegeHandler(store)
	adminEnquiryHandler := admin_handlers.NewEnquiryHandler(store)

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://localhost:3001"
	}

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins:    allowedOrigins,
		RateLimitRequests: 100,             // 100 requests
		RateLimitWindow:   1 * time.Minute, // per minute
	})

	// Health check endpoint (public)
	app.Get("/ping", utils.MakeHTTPHandleFunc(handlers.HandleCheckHealth, store))

	// API v1 group
	api := app.Group("/api/v1")

	// Auth routes (public)
	api.Post("/auth/login", authHandler.Login)

	// Public catalog routes
	api.Get("/home", catalogHandler.Home)
	api.Get("/colleges", catalogHandler.ListColleges)
	api.Get("/colleges/:slug", catalogHandler.GetCollege)
	api.Get("/streams", catalogHandler.ListStreams)
	api.Get("/streams/:slug", catalogHandler.GetStream)
	api.Get("/courses", catalogHandler.ListCourses)
	api.Get("/courses/:slug", catalogHandler.GetCourse)
	api.Get("/states", catalogHandler.ListStates)
	api.Get("/cities", catalogHandler.ListCities)

	// Public enquiry capture
	api.Post("/enquiries", enquiryHandler.Create)

	// Admin console routes (single allow-listed account)
	admin := api.Group("/admin", authMiddleware.RequireAdmin())

	// Schema-driven resource editors
	admin.Get("/resources", resourceHandler.ListSchemas)
	admin.Get("/resources/:resource", resourceHandler.List)
	admin.Get("/resources/:resource/options", resourceHandler.Options)
	admin.Post("/resources/:resource", resourceHandler.Save)
	admin.Post("/resources/:resource/upload", resourceHandler.Upload)
	admin.Delete("/resources/:resource/:id", resourceHandler.Delete)

	// Bespoke college editor. The course-options route is registered
	// before the :id route so it does not get captured as an id.
	admin.Get("/colleges", collegeHandler.List)
	admin.Get("/colleges/course-options", collegeHandler.CourseOptions)
	admin.Get("/colleges/:id", collegeHandler.Get)
	admin.Post("/colleges", collegeHandler.Save)
	admin.Delete("/colleges/:id", collegeHandler.Delete)

	// Enquiry inbox
	admin.Get("/enquiries", adminEnquiryHandler.List)
	admin.Delete("/enquiries/:id", adminEnquiryHandler.Delete)
}
