package rest

import (
	"github.com/ai-solution/site-backend/internal/application/dto"
	"github.com/ai-solution/site-backend/internal/infra/auth"
	"github.com/gofiber/fiber/v2"
)

func RegisterHandlers(app *fiber.App, s *Server, provider *auth.IdentityProvider) {
	api := app.Group("/api")

	api.Get("/health", s.Health)
	api.Get("/health/db", s.DBHealth)

	api.Post("/auth/login", s.Login)
	api.Post("/auth/verify-otp", s.VerifyOTP)
	api.Post("/auth/login-direct", s.LoginDirect)

	api.Get("/articles", s.ListArticles)
	api.Get("/articles/:slug", s.GetArticleBySlug)
	api.Get("/events", s.ListEvents)
	api.Get("/events/:id", s.GetEvent)
	api.Get("/feedback", s.ListPublicFeedback)
	api.Post("/feedback", s.SubmitFeedback)
	api.Get("/galleries", s.ListGalleryImages)
	api.Post("/inquiries", InquiryLimiter(), s.SubmitInquiry)

	admin := api.Group("/admin", RequireAuth(provider))

	admin.Get("/inquiries", s.ListInquiries)
	admin.Get("/inquiries/export.csv", s.ExportInquiries)
	admin.Get("/inquiries/:id", s.GetInquiry)
	admin.Patch("/inquiries/:id", s.SetInquiryStatus)
	admin.Post("/inquiries/:id/reply", s.ReplyInquiry)
	admin.Delete("/inquiries/:id", s.DeleteInquiry)
	admin.Get("/metrics", s.Metrics)

	admin.Get("/articles", s.ListArticles)
	admin.Get("/articles/:id", s.GetArticle)
	admin.Post("/articles", s.CreateArticle)
	admin.Put("/articles/:id", s.UpdateArticle)
	admin.Delete("/articles/:id", s.DeleteArticle)

	admin.Get("/events", s.ListEvents)
	admin.Get("/events/:id", s.GetEvent)
	admin.Post("/events", s.CreateEvent)
	admin.Put("/events/:id", s.UpdateEvent)
	admin.Delete("/events/:id", s.DeleteEvent)

	admin.Get("/galleries", s.ListGalleryImages)

	admin.Get("/feedback", s.ListFeedback)
	admin.Patch("/feedback/:id", s.SetFeedbackStatus)
	admin.Delete("/feedback/:id", s.DeleteFeedback)

	admin.Post("/galleries", s.UploadGalleryImage)
	admin.Delete("/galleries/:id", s.DeleteGalleryImage)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "route not found"})
	})
}
