package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"jobboard/internal/database/migration"
	"jobboard/internal/http/middleware"
	"jobboard/internal/hub"
	"jobboard/internal/service"
	"jobboard/internal/session"
)

// Deps bundles everything the route table needs.
type Deps struct {
	DB    *mongo.Database
	Setup []migration.StepResult

	Jobs         service.JobService
	Applications service.ApplicationService
	Media        service.MediaService
	Content      service.ContentService
	Auth         service.AuthService
	Admin        service.AdminService

	Hub      *hub.Hub
	Sessions session.Store

	CookieName  string
	SessionTTL  time.Duration
	AdminSecret string

	Log *zap.Logger
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB, d.Setup))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": "jobboard-api", "status": "ok"})
	})

	api.Get("/jobs", ListJobs(d.Jobs))
	api.Get("/jobs/:id", GetJob(d.Jobs))
	api.Post("/jobs/:id/apply", ApplyToJob(d.Applications))

	api.Post("/media/presign-upload", PresignUpload(d.Media))

	api.Get("/testimonials", ListTestimonials(d.Content))
	api.Post("/testimonials", CreateTestimonial(d.Content))
	api.Get("/partners", ListPartners(d.Content))
	api.Post("/partners", CreatePartner(d.Content))
	api.Get("/blog", ListBlogPosts(d.Content))
	api.Post("/blog", CreateBlogPost(d.Content))

	admin := app.Group("/admin")
	admin.Post("/auth/login", Login(d.Auth, d.CookieName, d.SessionTTL))
	admin.Post("/auth/logout", Logout(d.Auth, d.CookieName))

	requireAdmin := middleware.RequireAdmin(d.Sessions, d.CookieName, d.AdminSecret)
	admin.Get("/auth/me", requireAdmin, Me())

	db := admin.Group("/api/db", requireAdmin)
	db.Post("/find", AdminFind(d.Admin))
	db.Post("/insertOne", AdminInsertOne(d.Admin))
	db.Post("/updateOne", AdminUpdateOne(d.Admin))
	db.Post("/deleteOne", AdminDeleteOne(d.Admin))

	admin.Get("/ws", WSUpgrade(), AdminWS(d.Hub, d.Log))
}
