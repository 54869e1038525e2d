package commands

import (
	"context"
	"strings"

	"github.com/ai-solution/site-backend/internal/application/consts"
	"github.com/ai-solution/site-backend/internal/application/dto"
	"github.com/ai-solution/site-backend/internal/application/errs"
	"github.com/ai-solution/site-backend/internal/application/interfaces"
	"github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/ai-solution/site-backend/internal/infra/db/repo"
	dbs "github.com/ai-solution/site-backend/pkg/db"
)

type SubmitInquiry struct {
	uowFactory *dbs.UOWFactory
}

func NewSubmitInquiry(uowFactory *dbs.UOWFactory) *SubmitInquiry {
	return &SubmitInquiry{uowFactory: uowFactory}
}

func (c *SubmitInquiry) Execute(ctx context.Context, req dto.CreateInquiryRequest) (_ *dto.InquiryCreatedResponse, err error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}
	defer uow.Finalize(&err)

	id, submittedAt, err := repo.NewInquiryRepo(tx).Insert(ctx, db.Inquiry{
		Name:       req.Name,
		Email:      strings.ToLower(req.Email),
		Phone:      req.Phone,
		Company:    req.Company,
		Country:    req.Country,
		JobTitle:   req.JobTitle,
		JobDetails: req.JobDetails,
	})
	if err != nil {
		return nil, err
	}
	return &dto.InquiryCreatedResponse{ID: id, SubmittedAt: submittedAt}, nil
}

type SetInquiryStatus struct {
	uowFactory *dbs.UOWFactory
}

func NewSetInquiryStatus(uowFactory *dbs.UOWFactory) *SetInquiryStatus {
	return &SetInquiryStatus{uowFactory: uowFactory}
}

// Execute moves an inquiry through its lifecycle. Anything outside the four
// known statuses is rejected before touching the row.
func (c *SetInquiryStatus) Execute(ctx context.Context, id int64, status string) (err error) {
	if !consts.IsInquiryStatus(status) {
		return errs.NewValidation("status", "must be one of new, in-progress, completed, archived")
	}

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return err
	}
	defer uow.Finalize(&err)

	updated, err := repo.NewInquiryRepo(tx).SetStatus(ctx, id, consts.InquiryStatus(status))
	if err != nil {
		return err
	}
	if !updated {
		return errs.NotFoundError{Entity: "inquiry"}
	}
	return nil
}

type ReplyInquiry struct {
	uowFactory *dbs.UOWFactory
	mailer     interfaces.Mailer
}

func NewReplyInquiry(uowFactory *dbs.UOWFactory, mailer interfaces.Mailer) *ReplyInquiry {
	return &ReplyInquiry{uowFactory: uowFactory, mailer: mailer}
}

// Execute sends the admin's reply to the inquiring party. It never mutates
// the inquiry; the dispatch result is reported on its own.
func (c *ReplyInquiry) Execute(ctx context.Context, id int64, req dto.ReplyInquiryRequest) (*dto.ReplyResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, errs.NewValidation("message", "required")
	}

	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return nil, err
	}

	inquiry, err := repo.NewInquiryRepo(tx).GetByID(ctx, id)
	if err != nil {
		_ = uow.Rollback()
		if isNoRows(err) {
			return nil, errs.NotFoundError{Entity: "inquiry"}
		}
		return nil, err
	}
	// Release the connection before dispatching; SMTP retries must not
	// hold a pool slot.
	if err = uow.Commit(); err != nil {
		return nil, err
	}

	if err = c.mailer.SendInquiryReply(ctx, inquiry.Email, inquiry.Name, strings.TrimSpace(req.Message)); err != nil {
		return nil, err
	}
	return &dto.ReplyResponse{OK: true, Message: "reply sent"}, nil
}

type DeleteInquiry struct {
	uowFactory *dbs.UOWFactory
}

func NewDeleteInquiry(uowFactory *dbs.UOWFactory) *DeleteInquiry {
	return &DeleteInquiry{uowFactory: uowFactory}
}

func (c *DeleteInquiry) Execute(ctx context.Context, id int64) (err error) {
	uow := c.uowFactory.GetUoW()
	tx, err := uow.Begin()
	if err != nil {
		return err
	}
	defer uow.Finalize(&err)

	deleted, err := repo.NewInquiryRepo(tx).Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NotFoundError{Entity: "inquiry"}
	}
	return nil
}
