package db

import (
	"github.com/ai-solution/site-backend/internal/application/consts"
	"github.com/ai-solution/site-backend/internal/application/dto"
)

func MapArticleToResponse(article Article) dto.ArticleResponse {
	tags := article.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.ArticleResponse{
		ID:          article.ID,
		Title:       article.Title,
		Slug:        article.Slug,
		Excerpt:     article.Excerpt,
		Content:     article.Content,
		Author:      article.Author,
		Category:    article.Category,
		Tags:        tags,
		ReadTime:    article.ReadTime,
		Views:       article.Views,
		Featured:    article.Featured,
		ImageURL:    article.ImageURL,
		PublishedAt: article.PublishedAt,
		CreatedAt:   article.CreatedAt,
		UpdatedAt:   article.UpdatedAt,
	}
}

func MapArticlesToResponses(articles []Article) []dto.ArticleResponse {
	responses := make([]dto.ArticleResponse, 0, len(articles))
	for _, article := range articles {
		responses = append(responses, MapArticleToResponse(article))
	}
	return responses
}

func MapEventToResponse(event Event) dto.EventResponse {
	return dto.EventResponse{
		ID:           event.ID,
		Title:        event.Title,
		Description:  event.Description,
		Date:         event.Date,
		TimeRange:    event.TimeRange,
		Location:     event.Location,
		Type:         string(event.Type),
		Status:       string(event.Status),
		Attendees:    event.Attendees,
		MaxAttendees: event.MaxAttendees,
		Featured:     event.Featured,
		ImageURL:     event.ImageURL,
		CreatedAt:    event.CreatedAt,
		UpdatedAt:    event.UpdatedAt,
	}
}

func MapEventsToResponses(events []Event) []dto.EventResponse {
	responses := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, MapEventToResponse(event))
	}
	return responses
}

func MapFeedbackToResponse(feedback Feedback) dto.FeedbackResponse {
	return dto.FeedbackResponse{
		ID:       feedback.ID,
		Name:     feedback.Name,
		Company:  feedback.Company,
		Project:  feedback.Project,
		Rating:   feedback.Rating,
		Comment:  feedback.Comment,
		Status:   string(feedback.Status),
		Verified: feedback.Status == consts.FeedbackStatusApproved,
		Date:     feedback.CreatedAt,
	}
}

func MapFeedbacksToResponses(feedbacks []Feedback) []dto.FeedbackResponse {
	responses := make([]dto.FeedbackResponse, 0, len(feedbacks))
	for _, feedback := range feedbacks {
		responses = append(responses, MapFeedbackToResponse(feedback))
	}
	return responses
}

func MapInquiryToResponse(inquiry Inquiry) dto.InquiryResponse {
	return dto.InquiryResponse{
		ID:          inquiry.ID,
		Name:        inquiry.Name,
		Email:       inquiry.Email,
		Phone:       inquiry.Phone,
		Company:     inquiry.Company,
		Country:     inquiry.Country,
		JobTitle:    inquiry.JobTitle,
		JobDetails:  inquiry.JobDetails,
		Status:      string(inquiry.Status),
		SubmittedAt: inquiry.SubmittedAt,
	}
}

func MapInquiriesToResponses(inquiries []Inquiry) []dto.InquiryResponse {
	responses := make([]dto.InquiryResponse, 0, len(inquiries))
	for _, inquiry := range inquiries {
		responses = append(responses, MapInquiryToResponse(inquiry))
	}
	return responses
}

func MapGalleryImageToResponse(image GalleryImage) dto.GalleryImageResponse {
	return dto.GalleryImageResponse{
		ID:         image.ID,
		Filename:   image.Filename,
		URL:        image.URL,
		Caption:    image.Caption,
		UploadedAt: image.UploadedAt,
	}
}

func MapGalleryImagesToResponses(images []GalleryImage) []dto.GalleryImageResponse {
	responses := make([]dto.GalleryImageResponse, 0, len(images))
	for _, image := range images {
		responses = append(responses, MapGalleryImageToResponse(image))
	}
	return responses
}
