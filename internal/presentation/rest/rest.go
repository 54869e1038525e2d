package rest

import (
	"strconv"
	"time"

	"github.com/ai-solution/site-backend/internal/application"
	"github.com/ai-solution/site-backend/internal/application/dto"
	"github.com/ai-solution/site-backend/internal/application/errs"
	"github.com/ai-solution/site-backend/internal/application/query"
	"github.com/gofiber/fiber/v2"
)

type Server struct {
	commands *application.Collection
}

func NewServer(commands *application.Collection) *Server {
	return &Server{commands: commands}
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errs.NewValidation("id", "must be a positive integer")
	}
	return id, nil
}

func listParams(c *fiber.Ctx) query.ListParams {
	return query.ListParams{
		Page:  c.QueryInt("page"),
		Limit: c.QueryInt("limit"),
	}
}

// Health

func (s *Server) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(dto.HealthResponse{OK: true, Now: time.Now().UTC()})
}

func (s *Server) DBHealth(c *fiber.Ctx) error {
	resp, err := s.commands.DBHealth.Query(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// Auth

func (s *Server) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.NewValidation("body", "malformed request body")
	}
	resp, err := s.commands.Auth.Login(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) VerifyOTP(c *fiber.Ctx) error {
	var req dto.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.NewValidation("body", "malformed request body")
	}
	resp, err := s.commands.Auth.VerifyOTP(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) LoginDirect(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.NewValidation("body", "malformed request body")
	}
	resp, err := s.commands.Auth.LoginDirect(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// Inquiries

func (s *Server) SubmitInquiry(c *fiber.Ctx) error {
	var req dto.CreateInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.NewValidation("body", "malformed request body")
	}
	resp, err := s.commands.SubmitInquiry.Execute(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (s *Server) ListInquiries(c *fiber.Ctx) error {
	filters := query.InquiryFilters{
		ListParams: listParams(c),
		Status:     c.Query("status"),
		Search:     c.Query("q"),
	}
	resp, err := s.commands.ListInquiries.Query(c.Context(), filters)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) GetInquiry(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	resp, err := s.commands.GetInquiry.Query(c.Context(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) SetInquiryStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.SetInquiryStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.NewValidation("body", "malformed request body")
	}
	if err := s.commands.SetInquiryStatus.Execute(c.Context(), id, req.Status); err != nil {
		return err
	}
	resp, err := s.commands.GetInquiry.Query(c.Context(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) ReplyInquiry(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.ReplyInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.NewValidation("body", "malformed request body")
	}
	resp, err := s.commands.ReplyInquiry.Execute(c.Context(), id, req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) DeleteInquiry(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.commands.DeleteInquiry.Execute(c.Context(), id); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(dto.DeletedResponse{OK: true})
}

func (s *Server) ExportInquiries(c *fiber.Ctx) error {
	csv, err := s.commands.ExportInquiries.Query(c.Context())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inquiries.csv"`)
	return c.Status(fiber.StatusOK).Send(csv)
}

func (s *Server) Metrics(c *fiber.Ctx) error {
	resp, err := s.commands.GetMetrics.Query(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// Articles

func (s *Server) ListArticles(c *fiber.Ctx) error {
	filters := query.ArticleFilters{
		ListParams: listParams(c),
		Category:   c.Query("category"),
		Search:     c.Query("search"),
	}
	resp, err := s.commands.ListArticles.Query(c.Context(), filters)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) GetArticleBySlug(c *fiber.Ctx) error {
	resp, err := s.commands.GetArticle.QueryBySlug(c.Context(), c.Params("slug"), true)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) GetArticle(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	resp, err := s.commands.GetArticle.QueryByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) CreateArticle(c *fiber.Ctx) error {
	var req dto.UpsertArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.NewValidation("body", "malformed request body")
	}
	upload, _ := c.FormFile("image")
	resp, err := s.commands.CreateArticle.Execute(c.Context(), req, upload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (s *Server) UpdateArticle(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpsertArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.NewValidation("body", "malformed request body")
	}
	upload, _ := c.FormFile("image")
	resp, err := s.commands.UpdateArticle.Execute(c.Context(), id, req, upload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) DeleteArticle(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.commands.DeleteArticle.Execute(c.Context(), id); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(dto.DeletedResponse{OK: true})
}

// Events

func (s *Server) ListEvents(c *fiber.Ctx) error {
	filters := query.EventFilters{
		ListParams: listParams(c),
		Status:     c.Query("status"),
	}
	resp, err := s.commands.ListEvents.Query(c.Context(), filters)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) GetEvent(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	resp, err := s.commands.GetEvent.Query(c.Context(), id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) CreateEvent(c *fiber.Ctx) error {
	var req dto.UpsertEventRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.NewValidation("body", "malformed request body")
	}
	upload, _ := c.FormFile("image")
	resp, err := s.commands.CreateEvent.Execute(c.Context(), req, upload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (s *Server) UpdateEvent(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpsertEventRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.NewValidation("body", "malformed request body")
	}
	upload, _ := c.FormFile("image")
	resp, err := s.commands.UpdateEvent.Execute(c.Context(), id, req, upload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) DeleteEvent(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.commands.DeleteEvent.Execute(c.Context(), id); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(dto.DeletedResponse{OK: true})
}

// Feedback

func (s *Server) ListPublicFeedback(c *fiber.Ctx) error {
	filters := query.FeedbackFilters{
		ListParams: listParams(c),
		PublicOnly: true,
	}
	resp, err := s.commands.ListFeedback.Query(c.Context(), filters)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) ListFeedback(c *fiber.Ctx) error {
	filters := query.FeedbackFilters{
		ListParams: listParams(c),
		Status:     c.Query("status"),
	}
	resp, err := s.commands.ListFeedback.Query(c.Context(), filters)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) SubmitFeedback(c *fiber.Ctx) error {
	var req dto.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.NewValidation("body", "malformed request body")
	}
	resp, err := s.commands.SubmitFeedback.Execute(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (s *Server) SetFeedbackStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.SetFeedbackStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return errs.NewValidation("body", "malformed request body")
	}
	if err := s.commands.SetFeedbackStatus.Execute(c.Context(), id, req.Status); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(dto.DeletedResponse{OK: true})
}

func (s *Server) DeleteFeedback(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.commands.DeleteFeedback.Execute(c.Context(), id); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(dto.DeletedResponse{OK: true})
}

// Galleries

func (s *Server) ListGalleryImages(c *fiber.Ctx) error {
	resp, err := s.commands.ListGalleryImages.Query(c.Context(), listParams(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (s *Server) UploadGalleryImage(c *fiber.Ctx) error {
	upload, err := c.FormFile("image")
	if err != nil {
		return errs.NewValidation("image", "multipart file is required")
	}
	var caption *string
	if v := c.FormValue("caption"); v != "" {
		caption = &v
	}
	resp, err := s.commands.UploadGalleryImage.Execute(c.Context(), upload, caption)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (s *Server) DeleteGalleryImage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.commands.DeleteGalleryImage.Execute(c.Context(), id); err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(dto.DeletedResponse{OK: true})
}
