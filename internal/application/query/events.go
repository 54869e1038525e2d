package query

import (
	"context"
	"errors"

	"github.com/ai-solution/site-backend/internal/application/dto"
	"github.com/ai-solution/site-backend/internal/application/errs"
	"github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/ai-solution/site-backend/internal/infra/db/repo"
	dbs "github.com/ai-solution/site-backend/pkg/db"
	"github.com/jackc/pgx/v5"
)

type EventFilters struct {
	ListParams
	Status string
}

type ListEvents struct {
	uowFactory *dbs.UOWFactory
}

func NewListEvents(uowFactory *dbs.UOWFactory) *ListEvents {
	return &ListEvents{uowFactory: uowFactory}
}

func (q *ListEvents) Query(ctx context.Context, filters EventFilters) (_ []dto.EventResponse, err error) {
	limit, offset := filters.Normalize()

	uow := q.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	events, err := repo.NewEventRepo(tx).List(ctx, filters.Status, limit, offset)
	if err != nil {
		return nil, err
	}
	return db.MapEventsToResponses(events), nil
}

type GetEvent struct {
	uowFactory *dbs.UOWFactory
}

func NewGetEvent(uowFactory *dbs.UOWFactory) *GetEvent {
	return &GetEvent{uowFactory: uowFactory}
}

func (q *GetEvent) Query(ctx context.Context, id int64) (_ *dto.EventResponse, err error) {
	uow := q.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	event, err := repo.NewEventRepo(tx).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFoundError{Entity: "event"}
		}
		return nil, err
	}
	resp := db.MapEventToResponse(*event)
	return &resp, nil
}
