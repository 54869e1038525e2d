package consts

type InquiryStatus string

const InquiryStatusNew InquiryStatus = "new"
const InquiryStatusInProgress InquiryStatus = "in-progress"
const InquiryStatusCompleted InquiryStatus = "completed"
const InquiryStatusArchived InquiryStatus = "archived"

var InquiryStatuses = []InquiryStatus{
	InquiryStatusNew, InquiryStatusInProgress, InquiryStatusCompleted, InquiryStatusArchived,
}

func IsInquiryStatus(s string) bool {
	for _, known := range InquiryStatuses {
		if string(known) == s {
			return true
		}
	}
	return false
}

type FeedbackStatus string

const (
	FeedbackStatusPending  FeedbackStatus = "pending"
	FeedbackStatusApproved FeedbackStatus = "approved"
	FeedbackStatusDenied   FeedbackStatus = "denied"
)

func IsFeedbackStatus(s string) bool {
	switch FeedbackStatus(s) {
	case FeedbackStatusPending, FeedbackStatusApproved, FeedbackStatusDenied:
		return true
	}
	return false
}

type EventType string

const (
	EventTypeConference EventType = "conference"
	EventTypeWorkshop   EventType = "workshop"
	EventTypeWebinar    EventType = "webinar"
	EventTypeDemo       EventType = "demo"
)

func IsEventType(s string) bool {
	switch EventType(s) {
	case EventTypeConference, EventTypeWorkshop, EventTypeWebinar, EventTypeDemo:
		return true
	}
	return false
}

type EventStatus string

const (
	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusPast     EventStatus = "past"
)
