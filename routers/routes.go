package routers

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/controllers"
	"learnhub/middleware"
	"learnhub/validators"
)

// SetupRoutes wires every API route. Catalog, showcase and social feed are
// public; everything personal sits behind the JWT middleware and the admin
// surface additionally behind the role check.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Auth
	auth := api.Group("/auth")
	auth.Post("/admin/login", validators.AdminLogin(), controllers.AdminLogin)
	auth.Post("/social/login", validators.SocialLogin(), controllers.SocialLogin)

	// Public reads
	api.Get("/courses", controllers.GetCourses)
	api.Get("/courses/:id", validators.CourseID(), controllers.GetCourse)
	api.Get("/projects", controllers.GetProjects)
	api.Get("/social/posts", controllers.GetSocialPosts)

	// Authenticated
	me := api.Group("", middleware.JWTMiddleware)
	me.Get("/profile", controllers.GetProfile)
	me.Put("/profile/avatar", validators.Avatar(), controllers.UpdateAvatar)
	me.Get("/enrollments", controllers.GetEnrollments)
	me.Post("/enrollments", validators.Enroll(), controllers.EnrollInCourse)
	me.Put("/enrollments/progress", validators.Progress(), controllers.UpdateProgress)
	me.Get("/leaderboard", controllers.GetLeaderboard)
	me.Post("/projects", validators.AddProject(), controllers.AddProject)
	me.Post("/projects/:id/like", validators.ProjectID(), controllers.LikeProject)
	me.Get("/labs", controllers.GetLabs)
	me.Get("/labs/:labId/assets", validators.LabID(), controllers.GetAssets)
	me.Get("/labs/:labId/digital-assets", validators.LabID(), controllers.GetDigitalAssets)
	me.Post("/bookings", validators.CreateBooking(), controllers.CreateBooking)
	me.Post("/assets/issue", validators.ReportIssue(), controllers.ReportAssetIssue)
	me.Post("/chat", validators.Chat(), controllers.ChatWithAssistant)

	// Admin
	admin := api.Group("/admin", middleware.JWTMiddleware, middleware.RequireAdmin)
	admin.Post("/courses", validators.CreateCourse(), controllers.AdminCreateCourse)
	admin.Delete("/courses/:id", validators.CourseID(), controllers.AdminDeleteCourse)
	admin.Get("/stats", controllers.AdminGetStats)
}
