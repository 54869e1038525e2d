package db

import (
	"time"

	"github.com/ai-solution/site-backend/internal/application/consts"
)

type Admin struct {
	ID           int64      `db:"id"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	OTPCode      *string    `db:"otp_code"`
	OTPExpiresAt *time.Time `db:"otp_expires_at"`
	OTPAttempts  int        `db:"otp_attempts"`
	CreatedAt    time.Time  `db:"created_at"`
}

type Inquiry struct {
	ID          int64                `db:"id"`
	Name        string               `db:"name"`
	Email       string               `db:"email"`
	Phone       *string              `db:"phone"`
	Company     *string              `db:"company"`
	Country     *string              `db:"country"`
	JobTitle    *string              `db:"job_title"`
	JobDetails  string               `db:"job_details"`
	Status      consts.InquiryStatus `db:"status"`
	SubmittedAt time.Time            `db:"submitted_at"`
}

type Article struct {
	ID          int64      `db:"id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	Excerpt     *string    `db:"excerpt"`
	Content     *string    `db:"content"`
	Author      *string    `db:"author"`
	Category    *string    `db:"category"`
	Tags        []string   `db:"tags"`
	ReadTime    *int       `db:"read_time"`
	Views       int        `db:"views"`
	Featured    bool       `db:"featured"`
	ImageURL    *string    `db:"image_url"`
	PublishedAt *time.Time `db:"published_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

type Event struct {
	ID           int64              `db:"id"`
	Title        string             `db:"title"`
	Description  *string            `db:"description"`
	Date         time.Time          `db:"date"`
	TimeRange    *string            `db:"time_range"`
	Location     *string            `db:"location"`
	Type         consts.EventType   `db:"type"`
	Status       consts.EventStatus `db:"status"`
	Attendees    int                `db:"attendees"`
	MaxAttendees *int               `db:"max_attendees"`
	Featured     bool               `db:"featured"`
	ImageURL     *string            `db:"image_url"`
	CreatedAt    time.Time          `db:"created_at"`
	UpdatedAt    time.Time          `db:"updated_at"`
}

type Feedback struct {
	ID        int64                 `db:"id"`
	Name      string                `db:"name"`
	Company   *string               `db:"company"`
	Project   *string               `db:"project"`
	Rating    int                   `db:"rating"`
	Comment   string                `db:"comment"`
	Status    consts.FeedbackStatus `db:"status"`
	CreatedAt time.Time             `db:"created_at"`
}

// ArticlePatch carries partial-update fields; nil keeps the stored value.
// SetImage distinguishes "replace or clear the image" from "leave it alone".
type ArticlePatch struct {
	Title       *string
	Slug        *string
	Excerpt     *string
	Content     *string
	Author      *string
	Category    *string
	Tags        []string
	ReadTime    *int
	Featured    *bool
	SetImage    bool
	ImageURL    *string
	PublishedAt *time.Time
}

type EventPatch struct {
	Title        *string
	Description  *string
	Date         *time.Time
	TimeRange    *string
	Location     *string
	Type         *string
	Status       *consts.EventStatus
	Attendees    *int
	MaxAttendees *int
	Featured     *bool
	SetImage     bool
	ImageURL     *string
}

type DailyCount struct {
	Date  string `db:"date"`
	Count int    `db:"count"`
}

type GalleryImage struct {
	ID         int64     `db:"id"`
	Filename   *string   `db:"filename"`
	URL        string    `db:"url"`
	Caption    *string   `db:"caption"`
	UploadedAt time.Time `db:"uploaded_at"`
}
