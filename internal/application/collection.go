package application

import (
	"github.com/ai-solution/site-backend/internal/application/commands"
	"github.com/ai-solution/site-backend/internal/application/commands/auth"
	"github.com/ai-solution/site-backend/internal/application/query"
)

type Collection struct {
	*auth.Auth
	*commands.SubmitInquiry
	*commands.SetInquiryStatus
	*commands.ReplyInquiry
	*commands.DeleteInquiry
	*commands.CreateArticle
	*commands.UpdateArticle
	*commands.DeleteArticle
	*commands.CreateEvent
	*commands.UpdateEvent
	*commands.DeleteEvent
	*commands.SubmitFeedback
	*commands.SetFeedbackStatus
	*commands.DeleteFeedback
	*commands.UploadGalleryImage
	*commands.DeleteGalleryImage
	*query.ListInquiries
	*query.GetInquiry
	*query.ExportInquiries
	*query.ListArticles
	*query.GetArticle
	*query.ListEvents
	*query.GetEvent
	*query.ListFeedback
	*query.ListGalleryImages
	*query.GetMetrics
	*query.DBHealth
}
