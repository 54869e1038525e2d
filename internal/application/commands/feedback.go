package commands

import (
	"context"

	"github.com/ai-solution/site-backend/internal/application/consts"
	"github.com/ai-solution/site-backend/internal/application/dto"
	"github.com/ai-solution/site-backend/internal/application/errs"
	"github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/ai-solution/site-backend/internal/infra/db/repo"
	dbs "github.com/ai-solution/site-backend/pkg/db"
)

type SubmitFeedback struct {
	uowFactory *dbs.UOWFactory
}

func NewSubmitFeedback(uowFactory *dbs.UOWFactory) *SubmitFeedback {
	return &SubmitFeedback{uowFactory: uowFactory}
}

// Execute creates the feedback in the pending state; it stays off the public
// listing until an admin approves it.
func (c *SubmitFeedback) Execute(ctx context.Context, req dto.CreateFeedbackRequest) (_ *dto.FeedbackResponse, err error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	created, err := repo.NewFeedbackRepo(tx).Insert(ctx, db.Feedback{
		Name:    req.Name,
		Company: req.Company,
		Project: req.Project,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return nil, err
	}
	resp := db.MapFeedbackToResponse(*created)
	return &resp, nil
}

type SetFeedbackStatus struct {
	uowFactory *dbs.UOWFactory
}

func NewSetFeedbackStatus(uowFactory *dbs.UOWFactory) *SetFeedbackStatus {
	return &SetFeedbackStatus{uowFactory: uowFactory}
}

func (c *SetFeedbackStatus) Execute(ctx context.Context, id int64, status string) (err error) {
	if !consts.IsFeedbackStatus(status) {
		return errs.NewValidation("status", "must be one of pending, approved, denied")
	}

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return err
	}
	defer uow.Finalize(&err)

	updated, err := repo.NewFeedbackRepo(tx).SetStatus(ctx, id, consts.FeedbackStatus(status))
	if err != nil {
		return err
	}
	if !updated {
		return errs.NotFoundError{Entity: "feedback"}
	}
	return nil
}

type DeleteFeedback struct {
	uowFactory *dbs.UOWFactory
}

func NewDeleteFeedback(uowFactory *dbs.UOWFactory) *DeleteFeedback {
	return &DeleteFeedback{uowFactory: uowFactory}
}

func (c *DeleteFeedback) Execute(ctx context.Context, id int64) (err error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return err
	}
	defer uow.Finalize(&err)

	deleted, err := repo.NewFeedbackRepo(tx).Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NotFoundError{Entity: "feedback"}
	}
	return nil
}
