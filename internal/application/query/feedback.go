package query

import (
	"context"

	"github.com/ai-solution/site-backend/internal/application/consts"
	"github.com/ai-solution/site-backend/internal/application/dto"
	"github.com/ai-solution/site-backend/internal/application/errs"
	"github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/ai-solution/site-backend/internal/infra/db/repo"
	dbs "github.com/ai-solution/site-backend/pkg/db"
)

type FeedbackFilters struct {
	ListParams
	// Status filters the admin listing; empty means all.
	Status string
	// PublicOnly restricts the result to approved entries regardless of
	// Status; the public route always sets it.
	PublicOnly bool
}

type ListFeedback struct {
	uowFactory *dbs.UOWFactory
}

func NewListFeedback(uowFactory *dbs.UOWFactory) *ListFeedback {
	return &ListFeedback{uowFactory: uowFactory}
}

func (q *ListFeedback) Query(ctx context.Context, filters FeedbackFilters) (_ []dto.FeedbackResponse, err error) {
	status := filters.Status
	if filters.PublicOnly {
		status = string(consts.FeedbackStatusApproved)
	} else if status != "" && !consts.IsFeedbackStatus(status) {
		return nil, errs.NewValidation("status", "must be one of pending, approved, denied")
	}
	limit, offset := filters.Normalize()

	uow := q.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	feedbacks, err := repo.NewFeedbackRepo(tx).List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	return db.MapFeedbacksToResponses(feedbacks), nil
}
