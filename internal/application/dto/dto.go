package dto

import "time"

type ErrorResponse struct {
	Error any `json:"error"`
}

// Auth

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type AdminInfo struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type AuthResponse struct {
	OK    bool      `json:"ok"`
	Token string    `json:"token"`
	Admin AdminInfo `json:"admin"`
}

type OTPSentResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Inquiries

type CreateInquiryRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=100"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      *string `json:"phone" validate:"omitempty,e164|numeric|min=7"`
	Company    *string `json:"company" validate:"omitempty,max=120"`
	Country    *string `json:"country" validate:"omitempty,max=120"`
	JobTitle   *string `json:"jobTitle" validate:"omitempty,max=120"`
	JobDetails string  `json:"jobDetails" validate:"required,min=10,max=5000"`
}

type InquiryCreatedResponse struct {
	ID          int64     `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type SetInquiryStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ReplyInquiryRequest struct {
	Message string `json:"message" validate:"required,min=1,max=10000"`
}

type ReplyResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type InquiryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	Company     *string   `json:"company"`
	Country     *string   `json:"country"`
	JobTitle    *string   `json:"jobTitle"`
	JobDetails  string    `json:"jobDetails"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Articles

type UpsertArticleRequest struct {
	Title       *string  `json:"title" form:"title" validate:"omitempty,min=2,max=200"`
	Slug        *string  `json:"slug" form:"slug" validate:"omitempty,max=220"`
	Excerpt     *string  `json:"excerpt" form:"excerpt" validate:"omitempty,max=500"`
	Content     *string  `json:"content" form:"content"`
	Author      *string  `json:"author" form:"author" validate:"omitempty,max=120"`
	Category    *string  `json:"category" form:"category" validate:"omitempty,max=80"`
	Tags        []string `json:"tags" form:"tags"`
	ReadTime    *int     `json:"readTime" form:"readTime" validate:"omitempty,min=0"`
	Featured    *bool    `json:"featured" form:"featured"`
	ImageURL    *string  `json:"imageUrl" form:"imageUrl" validate:"omitempty,url"`
	ClearImage  bool     `json:"clearImage" form:"clearImage"`
	PublishedAt *string  `json:"publishedAt" form:"publishedAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type ArticleResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     *string    `json:"excerpt"`
	Content     *string    `json:"content"`
	Author      *string    `json:"author"`
	Category    *string    `json:"category"`
	Tags        []string   `json:"tags"`
	ReadTime    *int       `json:"readTime"`
	Views       int        `json:"views"`
	Featured    bool       `json:"featured"`
	ImageURL    *string    `json:"imageUrl"`
	PublishedAt *time.Time `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Events

type UpsertEventRequest struct {
	Title        *string `json:"title" form:"title" validate:"omitempty,min=2,max=200"`
	Description  *string `json:"description" form:"description"`
	Date         *string `json:"date" form:"date" validate:"omitempty,datetime=2006-01-02"`
	TimeRange    *string `json:"timeRange" form:"timeRange" validate:"omitempty,max=60"`
	Location     *string `json:"location" form:"location" validate:"omitempty,max=200"`
	Type         *string `json:"type" form:"type" validate:"omitempty,oneof=conference workshop webinar demo"`
	Attendees    *int    `json:"attendees" form:"attendees" validate:"omitempty,min=0"`
	MaxAttendees *int    `json:"maxAttendees" form:"maxAttendees" validate:"omitempty,min=0"`
	Featured     *bool   `json:"featured" form:"featured"`
	ImageURL     *string `json:"imageUrl" form:"imageUrl" validate:"omitempty,url"`
	ClearImage   bool    `json:"clearImage" form:"clearImage"`
}

type EventResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	Date         time.Time `json:"date"`
	TimeRange    *string   `json:"timeRange"`
	Location     *string   `json:"location"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	Attendees    int       `json:"attendees"`
	MaxAttendees *int      `json:"maxAttendees"`
	Featured     bool      `json:"featured"`
	ImageURL     *string   `json:"imageUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Feedback

type CreateFeedbackRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=120"`
	Company *string `json:"company" validate:"omitempty,max=120"`
	Project *string `json:"project" validate:"omitempty,max=120"`
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment string  `json:"comment" validate:"required,min=1,max=2000"`
}

type SetFeedbackStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type FeedbackResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Company *string `json:"company"`
	Project *string `json:"project"`
	Rating  int     `json:"rating"`
	Comment string  `json:"comment"`
	Status  string  `json:"status"`
	// Verified mirrors Status for older clients that still read the boolean.
	Verified bool      `json:"verified"`
	Date     time.Time `json:"date"`
}

// Galleries

type GalleryImageResponse struct {
	ID         int64     `json:"id"`
	Filename   *string   `json:"filename"`
	URL        string    `json:"url"`
	Caption    *string   `json:"caption"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Metrics / health

type MetricsDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type MetricsResponse struct {
	TotalInquiries int            `json:"totalInquiries"`
	Last7Days      []MetricsDay   `json:"last7Days"`
	ByStatus       map[string]int `json:"byStatus"`
}

type HealthResponse struct {
	OK  bool      `json:"ok"`
	Now time.Time `json:"now"`
}

type DBHealthResponse struct {
	OK     bool           `json:"ok"`
	Now    time.Time      `json:"now"`
	Counts map[string]int `json:"counts"`
}

type DeletedResponse struct {
	OK bool `json:"ok"`
}
