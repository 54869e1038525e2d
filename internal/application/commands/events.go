package commands

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/ai-solution/site-backend/internal/application/consts"
	"github.com/ai-solution/site-backend/internal/application/dto"
	"github.com/ai-solution/site-backend/internal/application/errs"
	"github.com/ai-solution/site-backend/internal/application/interfaces"
	"github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/ai-solution/site-backend/internal/infra/db/repo"
	dbs "github.com/ai-solution/site-backend/pkg/db"
)

// eventStatus derives upcoming/past from the event date. Status is never
// taken from the client, so date and status cannot drift apart.
func eventStatus(date time.Time, now time.Time) consts.EventStatus {
	if date.Before(now.Truncate(24 * time.Hour)) {
		return consts.EventStatusPast
	}
	return consts.EventStatusUpcoming
}

type CreateEvent struct {
	uowFactory *dbs.UOWFactory
	storage    interfaces.Storage
}

func NewCreateEvent(uowFactory *dbs.UOWFactory, storage interfaces.Storage) *CreateEvent {
	return &CreateEvent{uowFactory: uowFactory, storage: storage}
}

func (c *CreateEvent) Execute(ctx context.Context, req dto.UpsertEventRequest, upload *multipart.FileHeader) (_ *dto.EventResponse, err error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if req.Title == nil {
		return nil, errs.NewValidation("title", "required")
	}
	if req.Date == nil {
		return nil, errs.NewValidation("date", "required")
	}
	if req.Type == nil {
		return nil, errs.NewValidation("type", "required")
	}

	date, err := time.Parse("2006-01-02", *req.Date)
	if err != nil {
		return nil, errs.NewValidation("date", "must be YYYY-MM-DD")
	}

	_, imageURL, err := resolveImage(ctx, c.storage, "events", upload, req.ImageURL, false)
	if err != nil {
		return nil, err
	}

	event := db.Event{
		Title:        *req.Title,
		Description:  req.Description,
		Date:         date,
		TimeRange:    req.TimeRange,
		Location:     req.Location,
		Type:         consts.EventType(*req.Type),
		Status:       eventStatus(date, time.Now()),
		MaxAttendees: req.MaxAttendees,
		ImageURL:     imageURL,
	}
	if req.Attendees != nil {
		event.Attendees = *req.Attendees
	}
	if req.Featured != nil {
		event.Featured = *req.Featured
	}

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	created, err := repo.NewEventRepo(tx).Insert(ctx, event)
	if err != nil {
		return nil, err
	}
	resp := db.MapEventToResponse(*created)
	return &resp, nil
}

type UpdateEvent struct {
	uowFactory *dbs.UOWFactory
	storage    interfaces.Storage
}

func NewUpdateEvent(uowFactory *dbs.UOWFactory, storage interfaces.Storage) *UpdateEvent {
	return &UpdateEvent{uowFactory: uowFactory, storage: storage}
}

func (c *UpdateEvent) Execute(ctx context.Context, id int64, req dto.UpsertEventRequest, upload *multipart.FileHeader) (_ *dto.EventResponse, err error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	setImage, imageURL, err := resolveImage(ctx, c.storage, "events", upload, req.ImageURL, req.ClearImage)
	if err != nil {
		return nil, err
	}

	patch := db.EventPatch{
		Title:        req.Title,
		Description:  req.Description,
		TimeRange:    req.TimeRange,
		Location:     req.Location,
		Type:         req.Type,
		Attendees:    req.Attendees,
		MaxAttendees: req.MaxAttendees,
		Featured:     req.Featured,
		SetImage:     setImage,
		ImageURL:     imageURL,
	}
	if req.Date != nil {
		date, parseErr := time.Parse("2006-01-02", *req.Date)
		if parseErr != nil {
			return nil, errs.NewValidation("date", "must be YYYY-MM-DD")
		}
		patch.Date = &date
		status := eventStatus(date, time.Now())
		patch.Status = &status
	}

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	updated, err := repo.NewEventRepo(tx).Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	resp := db.MapEventToResponse(*updated)
	return &resp, nil
}

type DeleteEvent struct {
	uowFactory *dbs.UOWFactory
}

func NewDeleteEvent(uowFactory *dbs.UOWFactory) *DeleteEvent {
	return &DeleteEvent{uowFactory: uowFactory}
}

func (c *DeleteEvent) Execute(ctx context.Context, id int64) (err error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return err
	}
	defer uow.Finalize(&err)

	_, err = repo.NewEventRepo(tx).Delete(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return errs.NotFoundError{Entity: "event"}
		}
		return err
	}
	return nil
}
